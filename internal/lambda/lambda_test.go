package lambda

import "errors"

type mockReporter struct {
	errors    []error
	hadErr    bool
	hadSysErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	var sysErr *SystemError
	if errors.As(err, &sysErr) {
		reporter.hadSysErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadSysErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadSystemError() bool {
	return reporter.hadSysErr
}

func tokEOF(offset int) *Token {
	return NewToken(EOF, "", offset, 1)
}

var singleTokens = map[string]TokenType{
	"(": L_PAREN,
	")": R_PAREN,
	".": DOT,
	":": COLON,
	"λ": LAMBDA,
	"Π": PI,
	"Σ": SIGMA,
	"□": UNIVERSE,
	"?": INVALID,
}

// toks builds the token stream of the lexemes written one after the other,
// separated by a single space.
func toks(lexemes ...string) []*Token {
	tokens := make([]*Token, 0, len(lexemes)+1)
	offset := 0
	for _, lexeme := range lexemes {
		typ, ok := singleTokens[lexeme]
		if !ok {
			typ = IDENT
		}
		tokens = append(tokens, NewToken(typ, lexeme, offset, 1))
		offset += len([]rune(lexeme)) + 1
	}
	if offset > 0 {
		offset--
	}
	return append(tokens, tokEOF(offset))
}

func v(name string) *VarExpr {
	return NewVarExpr(NewSymbol(name), nil)
}

func bound(name string, idx uint64) *VarExpr {
	return NewVarExpr(NewSymbol(name), &Index{idx})
}

func unv() *UnvExpr {
	return NewUnvExpr(0)
}

func app(fun Expr, arg Expr) *AppExpr {
	return NewAppExpr(fun, arg)
}

// abs, prd and sum build nodes as they are stored, without going through a
// policy
func abs(name string, typ Expr, body Expr) *AbsExpr {
	return &AbsExpr{NewSymbol(name), typ, body}
}

func prd(name string, typ Expr, body Expr) *PrdExpr {
	return &PrdExpr{NewSymbol(name), typ, body}
}

func sum(name string, typ Expr, body Expr) *SumExpr {
	return &SumExpr{NewSymbol(name), typ, body}
}
