package ast

import (
	"testing"

	"lox/internal/tokens"
)

type call struct {
	handler string
	node    interface{}
}

type recorder struct {
	calls []call
}

func (r *recorder) record(handler string, node interface{}) string {
	r.calls = append(r.calls, call{handler, node})
	return handler
}

func (r *recorder) VisitAssignExpr(expr *AssignExpr) string     { return r.record("assign", expr) }
func (r *recorder) VisitBinaryExpr(expr *BinaryExpr) string     { return r.record("binary", expr) }
func (r *recorder) VisitGroupingExpr(expr *GroupingExpr) string { return r.record("grouping", expr) }
func (r *recorder) VisitLiteralExpr(expr *LiteralExpr) string   { return r.record("literal", expr) }
func (r *recorder) VisitLogicalExpr(expr *LogicalExpr) string   { return r.record("logical", expr) }
func (r *recorder) VisitUnaryExpr(expr *UnaryExpr) string       { return r.record("unary", expr) }
func (r *recorder) VisitVariableExpr(expr *VariableExpr) string { return r.record("variable", expr) }

func (r *recorder) VisitBlockStmt(stmt *BlockStmt) string           { return r.record("block", stmt) }
func (r *recorder) VisitExpressionStmt(stmt *ExpressionStmt) string { return r.record("expression", stmt) }
func (r *recorder) VisitPrintStmt(stmt *PrintStmt) string           { return r.record("print", stmt) }
func (r *recorder) VisitVarStmt(stmt *VarStmt) string               { return r.record("var", stmt) }
func (r *recorder) VisitIfStmt(stmt *IfStmt) string                 { return r.record("if", stmt) }
func (r *recorder) VisitWhileStmt(stmt *WhileStmt) string           { return r.record("while", stmt) }

func tok(typ tokens.TokenType, lexeme string) tokens.Token {
	return tokens.New(typ, lexeme, nil, 1)
}

func number(n float64) *LiteralExpr {
	return NewLiteralExpr(tokens.Number(n))
}

func checkDispatch(t *testing.T, r *recorder, result string, handler string, node interface{}) {
	t.Helper()
	if len(r.calls) != 1 {
		t.Fatalf("Expected exactly one call for %s instead of %v", handler, r.calls)
	}
	if r.calls[0].handler != handler || result != handler {
		t.Errorf("Expected handler %s instead of %s", handler, r.calls[0].handler)
	}
	if r.calls[0].node != node {
		t.Errorf("Handler %s did not receive the node itself", handler)
	}
	r.calls = nil
}

func TestExprDispatch(t *testing.T) {
	x := tok(tokens.IDENTIFIER, "x")
	exprs := []struct {
		expr    Expr
		handler string
	}{
		{NewAssignExpr(x, number(1)), "assign"},
		{NewBinaryExpr(number(1), tok(tokens.PLUS, "+"), number(2)), "binary"},
		{NewGroupingExpr(number(1)), "grouping"},
		{number(1), "literal"},
		{NewLogicalExpr(number(1), tok(tokens.OR, "or"), number(2)), "logical"},
		{NewUnaryExpr(tok(tokens.MINUS, "-"), number(1)), "unary"},
		{NewVariableExpr(x), "variable"},
	}

	r := &recorder{}
	for _, tt := range exprs {
		result := AcceptExpr[string](tt.expr, r)
		checkDispatch(t, r, result, tt.handler, tt.expr)
	}
}

func TestStmtDispatch(t *testing.T) {
	cond := NewVariableExpr(tok(tokens.IDENTIFIER, "ok"))
	body := NewPrintStmt(number(1))
	stmts := []struct {
		stmt    Stmt
		handler string
	}{
		{NewBlockStmt([]Stmt{body}), "block"},
		{NewExpressionStmt(number(1)), "expression"},
		{body, "print"},
		{NewVarStmt(tok(tokens.IDENTIFIER, "a"), nil), "var"},
		{NewIfStmt(cond, body, nil), "if"},
		{NewWhileStmt(cond, body), "while"},
	}

	r := &recorder{}
	for _, tt := range stmts {
		result := AcceptStmt[string](tt.stmt, r)
		checkDispatch(t, r, result, tt.handler, tt.stmt)
	}
}

type depth struct{}

func (d depth) VisitAssignExpr(expr *AssignExpr) int {
	return 1 + AcceptExpr[int](expr.Value(), d)
}

func (d depth) VisitBinaryExpr(expr *BinaryExpr) int {
	return 1 + max(AcceptExpr[int](expr.Left(), d), AcceptExpr[int](expr.Right(), d))
}

func (d depth) VisitGroupingExpr(expr *GroupingExpr) int {
	return 1 + AcceptExpr[int](expr.Expression(), d)
}

func (d depth) VisitLiteralExpr(expr *LiteralExpr) int {
	return 1
}

func (d depth) VisitLogicalExpr(expr *LogicalExpr) int {
	return 1 + max(AcceptExpr[int](expr.Left(), d), AcceptExpr[int](expr.Right(), d))
}

func (d depth) VisitUnaryExpr(expr *UnaryExpr) int {
	return 1 + AcceptExpr[int](expr.Right(), d)
}

func (d depth) VisitVariableExpr(expr *VariableExpr) int {
	return 1
}

func TestResultType(t *testing.T) {
	// -(1 + (2 * x))
	expr := NewUnaryExpr(
		tok(tokens.MINUS, "-"),
		NewGroupingExpr(NewBinaryExpr(
			number(1),
			tok(tokens.PLUS, "+"),
			NewGroupingExpr(NewBinaryExpr(number(2), tok(tokens.STAR, "*"), NewVariableExpr(tok(tokens.IDENTIFIER, "x")))),
		)),
	)
	if got := AcceptExpr[int](expr, depth{}); got != 6 {
		t.Errorf("Expected depth 6 instead of %d", got)
	}
}

func TestBlockOwnsStatements(t *testing.T) {
	stmts := []Stmt{NewPrintStmt(number(1)), NewPrintStmt(number(2))}
	block := NewBlockStmt(stmts)
	stmts[0] = NewPrintStmt(number(3))

	if block.Statements()[0] == stmts[0] {
		t.Errorf("Block should not share its statement slice with the caller")
	}
	if len(block.Statements()) != 2 {
		t.Errorf("Expected 2 statements instead of %d", len(block.Statements()))
	}

	block.Statements()[0] = NewPrintStmt(number(99))
	got := block.Statements()
	got[1] = nil
	if out := (Printer{}).PrintStmts([]Stmt{block}); out != "(block (print 1) (print 2))\n" {
		t.Errorf("Block changed through its accessor: %q", out)
	}
}
