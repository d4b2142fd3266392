package ast

import (
	"strings"

	"lox/internal/tokens"
)

// Printer renders trees in parenthesized prefix form
type Printer struct{}

// PrintExpr renders a single expression
func (p Printer) PrintExpr(expr Expr) string {
	return AcceptExpr[string](expr, p)
}

// PrintStmts renders statements, one per line
func (p Printer) PrintStmts(stmts []Stmt) string {
	out := ""
	for _, stmt := range stmts {
		out += AcceptStmt[string](stmt, p) + "\n"
	}
	return out
}

func (p Printer) parenthesize(name string, parts ...string) string {
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}

func (p Printer) VisitAssignExpr(expr *AssignExpr) string {
	return p.parenthesize("=", expr.Name().Lexeme, p.PrintExpr(expr.Value()))
}

func (p Printer) VisitBinaryExpr(expr *BinaryExpr) string {
	return p.parenthesize(expr.Operator().Lexeme, p.PrintExpr(expr.Left()), p.PrintExpr(expr.Right()))
}

func (p Printer) VisitGroupingExpr(expr *GroupingExpr) string {
	return p.parenthesize("group", p.PrintExpr(expr.Expression()))
}

func (p Printer) VisitLiteralExpr(expr *LiteralExpr) string {
	if expr.Value() == nil {
		return tokens.Nil{}.String()
	}
	return expr.Value().String()
}

func (p Printer) VisitLogicalExpr(expr *LogicalExpr) string {
	return p.parenthesize(expr.Operator().Lexeme, p.PrintExpr(expr.Left()), p.PrintExpr(expr.Right()))
}

func (p Printer) VisitUnaryExpr(expr *UnaryExpr) string {
	return p.parenthesize(expr.Operator().Lexeme, p.PrintExpr(expr.Right()))
}

func (p Printer) VisitVariableExpr(expr *VariableExpr) string {
	return expr.Name().Lexeme
}

func (p Printer) VisitBlockStmt(stmt *BlockStmt) string {
	out := "(block"
	for _, s := range stmt.Statements() {
		out += " " + AcceptStmt[string](s, p)
	}
	return out + ")"
}

func (p Printer) VisitExpressionStmt(stmt *ExpressionStmt) string {
	return p.parenthesize(";", p.PrintExpr(stmt.Expression()))
}

func (p Printer) VisitPrintStmt(stmt *PrintStmt) string {
	return p.parenthesize("print", p.PrintExpr(stmt.Expression()))
}

func (p Printer) VisitVarStmt(stmt *VarStmt) string {
	if stmt.Initializer() == nil {
		return "(var " + stmt.Name().Lexeme + ")"
	}
	return p.parenthesize("var", stmt.Name().Lexeme, p.PrintExpr(stmt.Initializer()))
}

func (p Printer) VisitIfStmt(stmt *IfStmt) string {
	if stmt.ElseBranch() == nil {
		return p.parenthesize("if", p.PrintExpr(stmt.Condition()), AcceptStmt[string](stmt.ThenBranch(), p))
	}
	return p.parenthesize(
		"if-else",
		p.PrintExpr(stmt.Condition()),
		AcceptStmt[string](stmt.ThenBranch(), p),
		AcceptStmt[string](stmt.ElseBranch(), p),
	)
}

func (p Printer) VisitWhileStmt(stmt *WhileStmt) string {
	return p.parenthesize("while", p.PrintExpr(stmt.Condition()), AcceptStmt[string](stmt.Body(), p))
}
