package lambda

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBinders(t *testing.T) {
	assert := assert.New(t)
	x := NewSymbol("x")

	absExpr, err := NewAbsExpr(x, unv(), app(v("x"), v("y")))
	assert.NoError(err)
	assert.Equal(abs("x", unv(), app(bound("x", 0), v("y"))), absExpr)

	prdExpr, err := NewPrdExpr(x, v("x"), v("x"))
	assert.NoError(err)
	assert.Equal(prd("x", v("x"), bound("x", 0)), prdExpr)

	sumExpr, err := NewSumExpr(x, unv(), absExpr)
	assert.NoError(err)
	// shadowed by the inner binder
	assert.Equal(sum("x", unv(), absExpr), sumExpr)
}

func TestBinderParts(t *testing.T) {
	testCases := []struct {
		binder Binder
		kind   BinderKind
		prefix string
	}{
		{abs("x", unv(), v("y")), Lambda, "λ"},
		{prd("x", unv(), v("y")), Pi, "Π"},
		{sum("x", unv(), v("y")), Sigma, "Σ"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		sym, typ, body := tc.binder.Parts()
		assert.Equal(tc.kind, tc.binder.Kind())
		assert.Equal(tc.prefix, tc.binder.Kind().String())
		assert.Equal(NewSymbol("x"), sym)
		assert.Equal(unv(), typ)
		assert.Equal(v("y"), body)
	}
	assert.Equal("BinderKind(7)", BinderKind(7).String())
}

func TestNewBinderWithPolicy(t *testing.T) {
	assert := assert.New(t)
	reason := errors.New("no")

	var seen []BinderKind
	policy := BindPolicyFunc(func(kind BinderKind, sym Symbol, typ Expr, body Expr) (Expr, error) {
		seen = append(seen, kind)
		if kind == Sigma {
			return nil, reason
		}
		return v("replaced"), nil
	})

	binder, err := NewBinder(policy, Pi, NewSymbol("x"), unv(), v("x"))
	assert.NoError(err)
	assert.Equal(prd("x", unv(), v("replaced")), binder)

	binder, err = NewBinder(policy, Sigma, NewSymbol("x"), unv(), v("x"))
	assert.Nil(binder)
	assert.Equal(reason, err)
	assert.Equal([]BinderKind{Pi, Sigma}, seen)

	// nil falls back to the default policy
	binder, err = NewBinder(nil, Lambda, NewSymbol("x"), unv(), v("x"))
	assert.NoError(err)
	assert.Equal(abs("x", unv(), bound("x", 0)), binder)
}

func TestDeBruijnIndex(t *testing.T) {
	testCases := []struct {
		expr    Expr
		indexed Expr
	}{
		{v("x"), bound("x", 3)},
		{v("y"), v("y")},
		{bound("x", 0), bound("x", 0)},
		{unv(), unv()},
		{app(v("x"), v("x")), app(bound("x", 3), bound("x", 3))},
		{
			abs("y", v("x"), app(v("x"), bound("y", 0))),
			abs("y", bound("x", 3), app(bound("x", 4), bound("y", 0))),
		},
		{
			sum("x", v("x"), v("x")),
			sum("x", bound("x", 3), v("x")),
		},
	}

	assert := assert.New(t)
	policy := &DeBruijn{}
	for _, tc := range testCases {
		indexed, err := policy.Index(tc.expr, NewSymbol("x"), Index{3})
		assert.NoError(err)
		assert.Equal(tc.indexed, indexed)
	}
}

func TestDeBruijnOverflow(t *testing.T) {
	assert := assert.New(t)

	policy := &DeBruijn{}
	_, err := policy.Index(abs("y", unv(), v("x")), NewSymbol("x"), Index{math.MaxUint64})
	assert.Equal(NewSystemError(ErrMaxLimitIdx, math.MaxUint64), err)

	// the limit applies whether or not the variable shows up
	policy = &DeBruijn{Limit: 2}
	_, err = policy.Index(abs("a", unv(), abs("b", unv(), v("c"))), NewSymbol("x"), Index{1})
	assert.Equal(NewSystemError(ErrMaxLimitIdx, 2), err)

	// shadowing binders are not entered
	indexed, err := policy.Index(abs("x", unv(), abs("b", unv(), v("x"))), NewSymbol("x"), Index{2})
	assert.NoError(err)
	assert.Equal(abs("x", unv(), abs("b", unv(), v("x"))), indexed)
}
