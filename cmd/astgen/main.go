package main

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var exprTypes = []string{
	"Assign: name tokens.Token, value Expr",
	"Binary: left Expr, operator tokens.Token, right Expr",
	"Grouping: expression Expr",
	"Literal: value tokens.Value",
	"Logical: left Expr, operator tokens.Token, right Expr",
	"Unary: operator tokens.Token, right Expr",
	"Variable: name tokens.Token",
}

var stmtTypes = []string{
	"Block: statements []Stmt",
	"Expression: expression Expr",
	"Print: expression Expr",
	"Var: name tokens.Token, initializer Expr",
	"If: condition Expr, thenBranch Stmt, elseBranch Stmt",
	"While: condition Expr, body Stmt",
}

type field struct {
	name string
	typ  string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: astgen /path/to/output/dir")
		os.Exit(64)
	}
	outDir := os.Args[1]

	for baseName, types := range map[string][]string{"Expr": exprTypes, "Stmt": stmtTypes} {
		out, err := format.Source([]byte(generateAst(baseName, types)))
		if err != nil {
			logrus.WithError(err).WithField("base", baseName).Fatal("generated code does not parse")
		}
		path := filepath.Join(outDir, strings.ToLower(baseName)+".go")
		if err := os.WriteFile(path, out, 0644); err != nil {
			logrus.WithError(err).WithField("path", path).Fatal("cannot write file")
		}
		logrus.WithField("path", path).Info("generated")
	}
}

func generateAst(baseName string, types []string) string {
	lower := strings.ToLower(baseName)

	out := "// Code generated by astgen. DO NOT EDIT.\n\n"
	out += "package ast\n\n"
	if strings.Contains(strings.Join(types, ","), "tokens.") {
		out += "import \"lox/internal/tokens\"\n\n"
	}

	// Start base interface
	out += fmt.Sprintf("// %s is a node of the syntax tree.\n", baseName)
	out += "type " + baseName + " interface {\n"
	out += "\taccept" + baseName + "(" + lower + "Dispatcher)\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("// %sVisitor has one handler per %s variant.\n", baseName, baseName)
	out += fmt.Sprintf("type %sVisitor[R any] interface {\n", baseName)
	for _, t := range types {
		name := typeName(t)
		out += fmt.Sprintf("\tVisit%s%s(%s *%s%s) R\n", name, baseName, lower, name, baseName)
	}
	out += "}\n\n"
	// End Visitor interface

	// Start dispatcher
	out += fmt.Sprintf("type %sDispatcher interface {\n", lower)
	for _, t := range types {
		name := typeName(t)
		out += fmt.Sprintf("\tvisit%s%s(%s *%s%s)\n", name, baseName, lower, name, baseName)
	}
	out += "}\n\n"

	out += fmt.Sprintf("type %sAdapter[R any] struct {\n\tvisitor %sVisitor[R]\n\tresult R\n}\n\n", lower, baseName)
	for _, t := range types {
		name := typeName(t)
		out += fmt.Sprintf("func (a *%sAdapter[R]) visit%s%s(%s *%s%s) {\n", lower, name, baseName, lower, name, baseName)
		out += fmt.Sprintf("\ta.result = a.visitor.Visit%s%s(%s)\n", name, baseName, lower)
		out += "}\n\n"
	}

	out += fmt.Sprintf("// Accept%s calls the handler of visitor matching the variant of %s.\n", baseName, lower)
	out += fmt.Sprintf("func Accept%s[R any](%s %s, visitor %sVisitor[R]) R {\n", baseName, lower, baseName, baseName)
	out += fmt.Sprintf("\ta := &%sAdapter[R]{visitor: visitor}\n", lower)
	out += fmt.Sprintf("\t%s.accept%s(a)\n", lower, baseName)
	out += "\treturn a.result\n"
	out += "}\n\n"
	// End dispatcher

	// Start structs
	for _, t := range types {
		out += generateType(baseName, typeName(t), parseFields(t))
	}
	// End structs

	return out
}

func generateType(baseName, name string, fields []field) string {
	structName := name + baseName
	lower := strings.ToLower(baseName)

	// Start Structure Definition
	out := "type " + structName + " struct {\n"
	for _, f := range fields {
		out += "\t" + f.name + " " + f.typ + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Constructor
	params := make([]string, 0, len(fields))
	for _, f := range fields {
		params = append(params, f.name+" "+f.typ)
	}
	out += fmt.Sprintf("func New%s(%s) *%s {\n", structName, strings.Join(params, ", "), structName)
	out += "\treturn &" + structName + "{\n"
	for _, f := range fields {
		if strings.HasPrefix(f.typ, "[]") {
			out += fmt.Sprintf("\t\t%s: append(%s(nil), %s...),\n", f.name, f.typ, f.name)
		} else {
			out += fmt.Sprintf("\t\t%s: %s,\n", f.name, f.name)
		}
	}
	out += "\t}\n"
	out += "}\n\n"
	// End Constructor

	// Start Accessors
	for _, f := range fields {
		out += fmt.Sprintf("func (s *%s) %s() %s {\n", structName, exported(f.name), f.typ)
		if strings.HasPrefix(f.typ, "[]") {
			// Callers get a copy so the node stays unchanged.
			out += fmt.Sprintf("\treturn append(%s(nil), s.%s...)\n", f.typ, f.name)
		} else {
			out += "\treturn s." + f.name + "\n"
		}
		out += "}\n\n"
	}
	// End Accessors

	// Start Method Definition
	out += "func (s *" + structName + ") accept" + baseName + "(d " + lower + "Dispatcher) {\n"
	out += "\td.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}

func typeName(t string) string {
	return strings.TrimSpace(strings.Split(t, ":")[0])
}

func parseFields(t string) []field {
	typeDef := strings.SplitN(t, ":", 2)
	var fields []field
	for _, f := range strings.Split(typeDef[1], ",") {
		parts := strings.Fields(f)
		fields = append(fields, field{name: parts[0], typ: parts[1]})
	}
	return fields
}

func exported(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}
