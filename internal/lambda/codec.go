package lambda

import "fmt"

// Codec maps an expression from and to an encoding of type T.
type Codec[T any] interface {
	Encode(expr Expr) T
	Decode(val T) (Expr, error)
}

// Core is the canonical textual encoding of expressions. Encoding puts in the
// fewest parentheses needed for Decode to give back the same tree.
type Core struct {
	// ShowIndices renders bound variables as their De Bruijn index rather than
	// their original symbol.
	ShowIndices bool
	// Policy is used to build binders when decoding, nil means DefaultPolicy.
	Policy BindPolicy
	// Reporter receives decoding errors, it may be nil.
	Reporter Reporter
}

var _ Codec[string] = (*Core)(nil)

// Encode renders the expression as source text.
func (core *Core) Encode(expr Expr) string {
	return (&encoder{showIndices: core.ShowIndices}).encode(expr)
}

// Decode scans and parses source text into an expression.
func (core *Core) Decode(val string) (Expr, error) {
	tokens := NewScanner([]rune(val)).Scan()
	return NewParser(tokens, core.Policy, core.Reporter).Parse()
}

// encoder tracks where in the tree the expression being encoded sits.
// trailing is set when more input follows the expression at the same
// parenthesis level, argument when it is the argument of an application. A
// trailing binder would swallow what follows and an application as argument
// would be read left-associatively, those are the only cases that need
// parentheses.
type encoder struct {
	showIndices bool
	trailing    bool
	argument    bool
}

func (enc *encoder) encode(expr Expr) string {
	s, _ := expr.Accept(enc)
	return s.(string)
}

// reset starts a new branch which is not ambiguous whatever its content
func (enc *encoder) reset() *encoder {
	return &encoder{showIndices: enc.showIndices}
}

func (enc *encoder) parens(parens bool, s string) string {
	if parens {
		return fmt.Sprintf("(%s)", s)
	}
	return s
}

func (enc *encoder) binder(expr Binder) string {
	sym, typ, body := expr.Parts()
	s := fmt.Sprintf(
		"%s%s : %s . %s",
		expr.Kind(),
		sym,
		enc.reset().encode(typ),
		enc.reset().encode(body),
	)
	return enc.parens(enc.trailing, s)
}

func (enc *encoder) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	if expr.Idx != nil && enc.showIndices {
		return expr.Idx.String(), nil
	}
	return expr.Sym.String(), nil
}

func (enc *encoder) VisitUnvExpr(expr *UnvExpr) (interface{}, error) {
	return "□", nil
}

func (enc *encoder) VisitAppExpr(expr *AppExpr) (interface{}, error) {
	// nothing trails inside the parentheses of an argument
	trailing := enc.trailing && !enc.argument
	fun := &encoder{enc.showIndices, true, false}
	arg := &encoder{enc.showIndices, trailing, true}
	s := fmt.Sprintf("%s %s", fun.encode(expr.Fun), arg.encode(expr.Arg))
	return enc.parens(enc.argument, s), nil
}

func (enc *encoder) VisitAbsExpr(expr *AbsExpr) (interface{}, error) {
	return enc.binder(expr), nil
}

func (enc *encoder) VisitPrdExpr(expr *PrdExpr) (interface{}, error) {
	return enc.binder(expr), nil
}

func (enc *encoder) VisitSumExpr(expr *SumExpr) (interface{}, error) {
	return enc.binder(expr), nil
}
