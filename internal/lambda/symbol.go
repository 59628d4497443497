package lambda

import (
	"math"
	"strconv"
)

// Symbol is the name given to a variable. Bound variables keep the symbol they
// were written with even after a binder claimed them, this has no semantic
// significance.
type Symbol struct {
	val string
}

// NewSymbol wraps an identifier into a symbol
func NewSymbol(val string) Symbol {
	return Symbol{val}
}

func (sym Symbol) String() string {
	return sym.val
}

// Index is the De Bruijn index of a bound variable, the number of binders
// between the variable and the binder that binds it.
type Index struct {
	Val uint64
}

// Inc returns the index one binder further away from its binder.
func (idx Index) Inc() (Index, error) {
	if idx.Val == math.MaxUint64 {
		return idx, NewSystemError(ErrMaxLimitIdx, idx.Val)
	}
	return Index{idx.Val + 1}, nil
}

func (idx Index) String() string {
	return strconv.FormatUint(idx.Val, 10)
}

// Inc returns the universe one level above, universes are cumulative so
// anything living at this level also lives at the next one.
func (expr *UnvExpr) Inc() (*UnvExpr, error) {
	if expr.Level == math.MaxUint64 {
		return nil, NewSystemError(ErrMaxLimitUnv, expr.Level)
	}
	return NewUnvExpr(expr.Level + 1), nil
}
