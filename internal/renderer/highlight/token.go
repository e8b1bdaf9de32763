package highlight

// TokenType is the role of a span of the line.
type TokenType uint8

// Token types produced by Tokenize.
const (
	TokenNone TokenType = iota
	TokenSpace
	TokenCommand  // first word of a command
	TokenWord     // any other word
	TokenFlag     // word starting with '-'
	TokenNumber   // digits with an optional fraction
	TokenString   // quoted with ' or "
	TokenOperator // | & ; < > ( ) =
	TokenInvalid  // unterminated string

	tokenTypeCount
)

var tokenTypeNames = [...]string{
	TokenNone:     "none",
	TokenSpace:    "space",
	TokenCommand:  "command",
	TokenWord:     "word",
	TokenFlag:     "flag",
	TokenNumber:   "number",
	TokenString:   "string",
	TokenOperator: "operator",
	TokenInvalid:  "invalid",
}

// String returns the lower-case name of the token type.
func (t TokenType) String() string {
	if t < tokenTypeCount {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// TokenTypeFromString is the inverse of String. Unknown names return
// TokenNone.
func TokenTypeFromString(s string) TokenType {
	for i, name := range tokenTypeNames {
		if name == s {
			return TokenType(i)
		}
	}
	return TokenNone
}

// Token is a half-open byte range [Start, End) of the line.
type Token struct {
	Type  TokenType
	Start int
	End   int
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Contains returns true if offset i is inside the token.
func (t Token) Contains(i int) bool {
	return i >= t.Start && i < t.End
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isOperator(c byte) bool {
	switch c {
	case '|', '&', ';', '<', '>', '(', ')', '=':
		return true
	}
	return false
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// Tokenize splits line into contiguous tokens covering every byte.
//
// The lexer is shell-flavored: the first word of the line and the first
// word after an operator are commands.
func Tokenize(line []byte) []Token {
	var tokens []Token
	expectCommand := true

	for i := 0; i < len(line); {
		start := i
		c := line[i]

		switch {
		case isSpace(c):
			for i < len(line) && isSpace(line[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: TokenSpace, Start: start, End: i})

		case isOperator(c):
			i++
			tokens = append(tokens, Token{Type: TokenOperator, Start: start, End: i})
			expectCommand = c != '=' && c != '<' && c != '>'

		case isQuote(c):
			i++
			for i < len(line) && line[i] != c {
				i++
			}
			typ := TokenInvalid
			if i < len(line) {
				i++
				typ = TokenString
			}
			tokens = append(tokens, Token{Type: typ, Start: start, End: i})
			expectCommand = false

		default:
			for i < len(line) && !isSpace(line[i]) && !isOperator(line[i]) && !isQuote(line[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: classifyWord(line[start:i], expectCommand), Start: start, End: i})
			expectCommand = false
		}
	}
	return tokens
}

func classifyWord(word []byte, command bool) TokenType {
	switch {
	case isNumber(word):
		return TokenNumber
	case command:
		return TokenCommand
	case len(word) > 1 && word[0] == '-':
		return TokenFlag
	default:
		return TokenWord
	}
}

func isNumber(word []byte) bool {
	digits, dots := 0, 0
	for _, c := range word {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
