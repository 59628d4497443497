package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncode(t *testing.T) {
	// already in canonical form, so encoding gives back the same text
	testCases := []string{
		"foo",
		"□",
		"foo bar",
		"foo bar moo",
		"foo (bar moo)",
		"foo (bar (moo goo))",
		"λbar : float . λmoo : char . λfoo : int . foo (bar moo)",
		"λfoo : int . foo (bar moo)",
		"λbar : char . λfoo : int . foo (bar moo)",
		"λbar : Πf : int . f . λmoo : char . λfoo : int . foo (bar moo)",
		"λfoo : Πf : int . f . foo (bar moo)",
		"λbar : Πf : char . f . λfoo : int . foo (bar moo)",
		"λbar : Σf : int . f . λmoo : char . λfoo : int . foo (bar moo)",
		"λfoo : Σf : int . f . foo (bar moo)",
		"λbar : Σf : char . f . λfoo : int . foo (bar moo)",
		"foo λbar : int . bar moo",
		"(λfoo : □ . bar) λmoo : □ . moo",
		"(λfoo : □ . foo) (λmoo : □ . moo) goo",
		"foo (λbar : □ . bar) moo",
		"foo (bar λmoo : □ . moo)",
		"Πa : □ . Σb : a . a b",
		"λf : Πx : □ . □ . f □",
	}

	assert := assert.New(t)
	core := &Core{}
	for _, src := range testCases {
		expr, err := core.Decode(src)
		if assert.NoError(err, src) {
			assert.Equal(src, core.Encode(expr))
		}
	}
}

func TestDecodeCanonicalizes(t *testing.T) {
	testCases := []struct {
		src       string
		canonical string
	}{
		{"(foo)", "foo"},
		{"((foo) (bar)) moo", "foo bar moo"},
		{"λx:□.x", "λx : □ . x"},
		{"f (λx : □ . (x y))", "f λx : □ . x y"},
		{"(λx : (□) . x)\n\ty", "(λx : □ . x) y"},
	}

	assert := assert.New(t)
	core := &Core{}
	for _, tc := range testCases {
		expr, err := core.Decode(tc.src)
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.canonical, core.Encode(expr))
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// trees that cannot be written without parentheses
	testCases := []Expr{
		app(app(v("f"), abs("x", unv(), bound("x", 0))), v("y")),
		app(v("f"), app(v("g"), app(v("h"), v("k")))),
		app(v("f"), app(abs("x", unv(), bound("x", 0)), v("z"))),
		app(app(prd("x", unv(), bound("x", 0)), sum("y", unv(), bound("y", 0))), v("z")),
		abs("x", abs("y", unv(), bound("y", 0)), app(v("f"), app(v("g"), bound("x", 0)))),
		app(app(v("f"), app(v("g"), abs("x", unv(), bound("x", 0)))), v("z")),
	}

	assert := assert.New(t)
	core := &Core{}
	for _, expr := range testCases {
		src := core.Encode(expr)
		decoded, err := core.Decode(src)
		if assert.NoError(err, src) {
			assert.Equal(expr, decoded, src)
		}
	}
}

func TestEncodeParentheses(t *testing.T) {
	assert := assert.New(t)
	core := &Core{}

	assert.Equal(
		"f (λx : □ . x) y",
		core.Encode(app(app(v("f"), abs("x", unv(), bound("x", 0))), v("y"))),
	)
	assert.Equal(
		"f (g (h k))",
		core.Encode(app(v("f"), app(v("g"), app(v("h"), v("k"))))),
	)
	assert.Equal(
		"f ((λx : □ . x) z)",
		core.Encode(app(v("f"), app(abs("x", unv(), bound("x", 0)), v("z")))),
	)
}

func TestEncodeShowIndices(t *testing.T) {
	assert := assert.New(t)

	core := &Core{}
	expr, err := core.Decode("λx : □ . λy : x . x y z")
	require.NoError(t, err)

	assert.Equal("λx : □ . λy : x . x y z", core.Encode(expr))
	assert.Equal("λx : □ . λy : 0 . 1 0 z", (&Core{ShowIndices: true}).Encode(expr))
}

func TestDecodeError(t *testing.T) {
	testCases := []struct {
		src  string
		kind ParseErrorKind
		msg  string
	}{
		{"", ErrEndOfStream, "unexpected end of stream, at location: 0, expected: ( | IDENT | λ | Π | Σ | □"},
		{"λx : □", ErrEndOfStream, "unexpected end of stream, at location: 6, expected: ( | IDENT | λ | Π | Σ | □ | ."},
		{"f X", ErrInvalidToken, "invalid token, at location 2"},
		{"f x)", ErrUnexpectedToken, "unexpected token: ), at location: 3..4, expected: none"},
		{"λ : □ . x", ErrUnexpectedToken, "unexpected token: :, at location: 2..3, expected: IDENT"},
		{"λx □ . x", ErrUnexpectedToken, "unexpected token: □, at location: 3..4, expected: :"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		core := &Core{Reporter: report}
		expr, err := core.Decode(tc.src)
		assert.Nil(expr, tc.src)

		var parseErr *ParseError
		if assert.ErrorAs(err, &parseErr, tc.src) {
			assert.Equal(tc.kind, parseErr.Kind, tc.src)
			assert.EqualError(err, tc.msg, tc.src)
		}
		assert.True(report.HadError(), tc.src)
		assert.False(report.HadSystemError(), tc.src)
	}
}

func TestDecodeWithPolicy(t *testing.T) {
	assert := assert.New(t)

	// keeps names as they are
	core := &Core{Policy: BindPolicyFunc(func(kind BinderKind, sym Symbol, typ Expr, body Expr) (Expr, error) {
		return body, nil
	})}
	expr, err := core.Decode("λx : □ . x")
	assert.NoError(err)
	assert.Equal(abs("x", unv(), v("x")), expr)

	core = &Core{Policy: &DeBruijn{Limit: 1}}
	_, err = core.Decode("λx : □ . λy : □ . λz : □ . x")
	assert.EqualError(err, "max limit 1 for indices has been reached, at location: 0")
}
