package lambda

// Binder is implemented by the nodes that introduce a pattern scoped over a
// body: λ-abstractions, Π-types and Σ-types.
type Binder interface {
	Expr
	Kind() BinderKind
	// Parts returns the pattern, its type annotation and the body.
	Parts() (Symbol, Expr, Expr)
}

// BindPolicy decides whether a binder can be built out of its parts. It
// returns the body to be stored in the node, which may be a rewritten version
// of the one given, or an error if the binder is rejected.
type BindPolicy interface {
	Bind(kind BinderKind, sym Symbol, typ Expr, body Expr) (Expr, error)
}

// BindPolicyFunc lets an ordinary function be used as a BindPolicy.
type BindPolicyFunc func(kind BinderKind, sym Symbol, typ Expr, body Expr) (Expr, error)

func (f BindPolicyFunc) Bind(kind BinderKind, sym Symbol, typ Expr, body Expr) (Expr, error) {
	return f(kind, sym, typ, body)
}

// DefaultPolicy converts the variables bound by a binder into De Bruijn
// indices, with no limit other than the size of an index.
var DefaultPolicy BindPolicy = &DeBruijn{}

// NewBinder builds a binder of the given kind after the policy accepted it. A
// nil policy means DefaultPolicy.
func NewBinder(
	policy BindPolicy,
	kind BinderKind,
	sym Symbol,
	typ Expr,
	body Expr,
) (Binder, error) {
	if policy == nil {
		policy = DefaultPolicy
	}
	body, err := policy.Bind(kind, sym, typ, body)
	if err != nil {
		return nil, err
	}
	switch kind {
	case Pi:
		return &PrdExpr{sym, typ, body}, nil
	case Sigma:
		return &SumExpr{sym, typ, body}, nil
	}
	return &AbsExpr{sym, typ, body}, nil
}

// NewAbsExpr creates a λ-abstraction, which maps one expression to another.
func NewAbsExpr(sym Symbol, typ Expr, body Expr) (*AbsExpr, error) {
	binder, err := NewBinder(DefaultPolicy, Lambda, sym, typ, body)
	if err != nil {
		return nil, err
	}
	return binder.(*AbsExpr), nil
}

// NewPrdExpr creates a Π-type, whose body is a type that may depend on the
// value of the pattern.
func NewPrdExpr(sym Symbol, typ Expr, body Expr) (*PrdExpr, error) {
	binder, err := NewBinder(DefaultPolicy, Pi, sym, typ, body)
	if err != nil {
		return nil, err
	}
	return binder.(*PrdExpr), nil
}

// NewSumExpr creates a Σ-type, the type of pairs whose second component's type
// may depend on the first.
func NewSumExpr(sym Symbol, typ Expr, body Expr) (*SumExpr, error) {
	binder, err := NewBinder(DefaultPolicy, Sigma, sym, typ, body)
	if err != nil {
		return nil, err
	}
	return binder.(*SumExpr), nil
}

func (expr *AbsExpr) Kind() BinderKind { return Lambda }
func (expr *PrdExpr) Kind() BinderKind { return Pi }
func (expr *SumExpr) Kind() BinderKind { return Sigma }

func (expr *AbsExpr) Parts() (Symbol, Expr, Expr) { return expr.Sym, expr.Typ, expr.Body }
func (expr *PrdExpr) Parts() (Symbol, Expr, Expr) { return expr.Sym, expr.Typ, expr.Body }
func (expr *SumExpr) Parts() (Symbol, Expr, Expr) { return expr.Sym, expr.Typ, expr.Body }
