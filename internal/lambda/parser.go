package lambda

// Parser composes the syntax tree from the sequence of tokens that follow the
// grammar described in the package documentation.
//
// Application and binders are told apart by the position they appear in. The
// function position of an application only holds objects, while the argument
// position also holds a bare binder. A binder there ends the application since
// its body goes on until the closing parenthesis or the end of input.
type Parser struct {
	current  int
	tokens   []*Token
	policy   BindPolicy
	reporter Reporter
}

// NewParser creates a new parser. Binders are built with the given policy, or
// with DefaultPolicy if it is nil. The reporter may be nil.
func NewParser(tokens []*Token, policy BindPolicy, reporter Reporter) *Parser {
	if policy == nil {
		policy = DefaultPolicy
	}
	return &Parser{0, tokens, policy, reporter}
}

// Parse consumes the whole token stream and returns the expression that it
// denotes. On failure the error is a *ParseError, it is also sent to the
// reporter.
func (parser *Parser) Parse() (Expr, error) {
	expr, err := parser.parse()
	if err != nil {
		if parser.reporter != nil {
			parser.reporter.Report(err)
		}
		return nil, err
	}
	return expr, nil
}

func (parser *Parser) parse() (Expr, error) {
	if len(parser.tokens) == 0 || parser.tokens[len(parser.tokens)-1].Typ != EOF {
		parser.tokens = append(parser.tokens, NewToken(EOF, "", parser.endOffset(), 0))
	}
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if !parser.isEOF() {
		return nil, parser.unexpected()
	}
	return expr, nil
}

// expression --> binder | application ;
func (parser *Parser) expression() (Expr, error) {
	if parser.checkBinder() {
		return parser.binder()
	}
	return parser.application()
}

// Creates a left-associative nested tree of application nodes. The function
// position is built from objects only, a bare binder may only come last as an
// argument.
//
// application --> function argument? ;
// function    --> object object* ;
// argument    --> binder ;
func (parser *Parser) application() (Expr, error) {
	expr, err := parser.object()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case parser.checkObject():
			arg, err := parser.object()
			if err != nil {
				return nil, err
			}
			expr = NewAppExpr(expr, arg)
		case parser.checkBinder():
			arg, err := parser.binder()
			if err != nil {
				return nil, err
			}
			return NewAppExpr(expr, arg), nil
		default:
			return expr, nil
		}
	}
}

// The body of a binder is a full expression, so it is greedy and extends as
// far right as possible.
//
// binder --> ( "λ" | "Π" | "Σ" ) IDENT ":" expression "." expression ;
func (parser *Parser) binder() (Expr, error) {
	keyword := parser.advance()
	if err := parser.consume(IDENT); err != nil {
		return nil, err
	}
	sym := NewSymbol(parser.prev().Lexeme)
	if err := parser.consume(COLON); err != nil {
		return nil, err
	}
	typ, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(DOT, expressionFollow...); err != nil {
		return nil, err
	}
	body, err := parser.expression()
	if err != nil {
		return nil, err
	}
	expr, err := NewBinder(parser.policy, BinderTokens[keyword.Typ], sym, typ, body)
	if err != nil {
		if _, ok := err.(*SystemError); !ok {
			err = NewRejectedBinderError(BinderTokens[keyword.Typ], sym, err)
		}
		return nil, NewSystemParseError(keyword, err)
	}
	return expr, nil
}

// object --> IDENT | "□" | "(" expression ")" ;
func (parser *Parser) object() (Expr, error) {
	if parser.match(IDENT) {
		return NewVarExpr(NewSymbol(parser.prev().Lexeme), nil), nil
	}
	if parser.match(UNIVERSE) {
		return NewUnvExpr(0), nil
	}
	if parser.match(L_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(R_PAREN, expressionFollow...); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, parser.fail(expressionFirst)
}

// Tokens that can start an expression
var expressionFirst = []TokenType{L_PAREN, IDENT, LAMBDA, PI, SIGMA, UNIVERSE}

// Tokens that can continue an expression which is not yet closed
var expressionFollow = expressionFirst

func (parser *Parser) checkObject() bool {
	return parser.check(IDENT) || parser.check(UNIVERSE) || parser.check(L_PAREN)
}

func (parser *Parser) checkBinder() bool {
	_, ok := BinderTokens[parser.peek().Typ]
	return ok
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the given type. Otherwise it fails and the
// error lists the type together with the other tokens that could have been
// accepted in its place.
func (parser *Parser) consume(typ TokenType, alternatives ...TokenType) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return parser.fail(append(alternatives[:len(alternatives):len(alternatives)], typ))
}

// fail creates the error for the current token, which was not one of the
// expected ones.
func (parser *Parser) fail(expected []TokenType) error {
	names := make([]string, len(expected))
	for i, tt := range expected {
		names[i] = tt.String()
	}
	switch tok := parser.peek(); tok.Typ {
	case EOF:
		var last *Token
		if parser.current > 0 {
			last = parser.prev()
		}
		return NewParseError(ErrEndOfStream, last, names)
	case INVALID:
		return NewParseError(ErrInvalidToken, tok, nil)
	default:
		return NewParseError(ErrUnexpectedToken, tok, names)
	}
}

// unexpected creates the error for a token found after a complete expression
func (parser *Parser) unexpected() error {
	tok := parser.peek()
	if tok.Typ == INVALID {
		return NewParseError(ErrInvalidToken, tok, nil)
	}
	return NewParseError(ErrUnexpectedToken, tok, nil)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

func (parser *Parser) endOffset() int {
	if len(parser.tokens) == 0 {
		return 0
	}
	return parser.tokens[len(parser.tokens)-1].End()
}
