package lambda

import orderedmap "github.com/wk8/go-ordered-map/v2"

// FreeVars returns the symbols of the variables that no binder in expr binds,
// in the order they first appear, each one once.
//
// Variables holding an index are bound. Unindexed variables are also checked
// against the patterns in scope, so the result holds whatever policy the
// binders were built with.
func FreeVars(expr Expr) []Symbol {
	collector := &freeVars{
		scopes: make([]Symbol, 0),
		found:  orderedmap.New[Symbol, struct{}](),
	}
	expr.Accept(collector)

	syms := make([]Symbol, 0, collector.found.Len())
	for pair := collector.found.Oldest(); pair != nil; pair = pair.Next() {
		syms = append(syms, pair.Key)
	}
	return syms
}

// Each element is the pattern of a binder enclosing the current node, the
// innermost one last.
type freeVars struct {
	scopes []Symbol
	found  *orderedmap.OrderedMap[Symbol, struct{}]
}

func (fv *freeVars) inScope(sym Symbol) bool {
	for i := len(fv.scopes) - 1; i >= 0; i-- {
		if fv.scopes[i] == sym {
			return true
		}
	}
	return false
}

func (fv *freeVars) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	if expr.Idx == nil && !fv.inScope(expr.Sym) {
		fv.found.Set(expr.Sym, struct{}{})
	}
	return nil, nil
}

func (fv *freeVars) VisitUnvExpr(expr *UnvExpr) (interface{}, error) {
	return nil, nil
}

func (fv *freeVars) VisitAppExpr(expr *AppExpr) (interface{}, error) {
	expr.Fun.Accept(fv)
	expr.Arg.Accept(fv)
	return nil, nil
}

func (fv *freeVars) VisitAbsExpr(expr *AbsExpr) (interface{}, error) {
	fv.binder(expr)
	return nil, nil
}

func (fv *freeVars) VisitPrdExpr(expr *PrdExpr) (interface{}, error) {
	fv.binder(expr)
	return nil, nil
}

func (fv *freeVars) VisitSumExpr(expr *SumExpr) (interface{}, error) {
	fv.binder(expr)
	return nil, nil
}

// The pattern is in scope of the body only, not of its own annotation.
func (fv *freeVars) binder(expr Binder) {
	sym, typ, body := expr.Parts()
	typ.Accept(fv)
	fv.scopes = append(fv.scopes, sym)
	body.Accept(fv)
	fv.scopes = fv.scopes[:len(fv.scopes)-1]
}
