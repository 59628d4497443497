package lambda

// DeBruijn is the binding policy that claims every free occurrence of the
// pattern inside the body by giving it a De Bruijn index.
//
// The scan starts at index 0 and goes one higher each time it enters the body
// of another binder, so an index counts the binders between a variable and the
// binder that binds it. A nested binder with the same pattern shadows the
// outer one, its body is left alone. Type annotations of nested binders are
// scanned at the current index since their own pattern is not in scope there.
type DeBruijn struct {
	// Limit is the largest index that can be given out, zero means no limit
	// other than the size of an index.
	Limit uint64
}

func (policy *DeBruijn) Bind(kind BinderKind, sym Symbol, typ Expr, body Expr) (Expr, error) {
	return policy.Index(body, sym, Index{})
}

// Index returns a copy of expr where the free occurrences of sym are bound
// with the given index.
func (policy *DeBruijn) Index(expr Expr, sym Symbol, idx Index) (Expr, error) {
	in := &indexer{sym, idx, policy.Limit}
	return in.index(expr)
}

type indexer struct {
	sym   Symbol
	idx   Index
	limit uint64
}

func (in *indexer) index(expr Expr) (Expr, error) {
	res, err := expr.Accept(in)
	if err != nil {
		return nil, err
	}
	return res.(Expr), nil
}

// deeper returns the indexer used for the body of a nested binder
func (in *indexer) deeper() (*indexer, error) {
	if in.limit != 0 && in.idx.Val >= in.limit {
		return nil, NewSystemError(ErrMaxLimitIdx, in.idx.Val)
	}
	idx, err := in.idx.Inc()
	if err != nil {
		return nil, err
	}
	return &indexer{in.sym, idx, in.limit}, nil
}

// binder indexes the annotation and, unless shadowed, the body of a nested
// binder
func (in *indexer) binder(sym Symbol, typ Expr, body Expr) (Expr, Expr, error) {
	typ, err := in.index(typ)
	if err != nil {
		return nil, nil, err
	}
	if sym == in.sym {
		return typ, body, nil
	}
	nested, err := in.deeper()
	if err != nil {
		return nil, nil, err
	}
	body, err = nested.index(body)
	if err != nil {
		return nil, nil, err
	}
	return typ, body, nil
}

func (in *indexer) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	// already bound variables keep their index
	if expr.Idx != nil || expr.Sym != in.sym {
		return expr, nil
	}
	idx := in.idx
	return NewVarExpr(expr.Sym, &idx), nil
}

func (in *indexer) VisitUnvExpr(expr *UnvExpr) (interface{}, error) {
	return expr, nil
}

func (in *indexer) VisitAppExpr(expr *AppExpr) (interface{}, error) {
	fun, err := in.index(expr.Fun)
	if err != nil {
		return nil, err
	}
	arg, err := in.index(expr.Arg)
	if err != nil {
		return nil, err
	}
	return NewAppExpr(fun, arg), nil
}

func (in *indexer) VisitAbsExpr(expr *AbsExpr) (interface{}, error) {
	typ, body, err := in.binder(expr.Sym, expr.Typ, expr.Body)
	if err != nil {
		return nil, err
	}
	return &AbsExpr{expr.Sym, typ, body}, nil
}

func (in *indexer) VisitPrdExpr(expr *PrdExpr) (interface{}, error) {
	typ, body, err := in.binder(expr.Sym, expr.Typ, expr.Body)
	if err != nil {
		return nil, err
	}
	return &PrdExpr{expr.Sym, typ, body}, nil
}

func (in *indexer) VisitSumExpr(expr *SumExpr) (interface{}, error) {
	typ, body, err := in.binder(expr.Sym, expr.Typ, expr.Body)
	if err != nil {
		return nil, err
	}
	return &SumExpr{expr.Sym, typ, body}, nil
}
