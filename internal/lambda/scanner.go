package lambda

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line    int
	start   int
	current int
	source  []rune
	tokens  []*Token
}

// NewScanner creates a new token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. Runes that do not start a token are kept as INVALID tokens, it is up
// to the parser to reject them.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\f':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(L_PAREN)
		case ')':
			scanner.addToken(R_PAREN)
		case '.':
			scanner.addToken(DOT)
		case ':':
			scanner.addToken(COLON)
		case 'λ':
			scanner.addToken(LAMBDA)
		case 'Π':
			scanner.addToken(PI)
		case 'Σ':
			scanner.addToken(SIGMA)
		case '□':
			scanner.addToken(UNIVERSE)
		default:
			if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.addToken(INVALID)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", len(scanner.source), scanner.line),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanIdentifier() {
	for isIdentPart(scanner.peek()) {
		scanner.advance()
	}
	scanner.addToken(IDENT)
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, scanner.start, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// Identifiers start with a lowercase ASCII letter, digits and underscores may
// only follow.
func isBeginIdent(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isIdentPart(r rune) bool {
	return isBeginIdent(r) || (r >= '0' && r <= '9') || r == '_'
}
