package window

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bytepress/pack"
)

// TokenKind tells which of the two token shapes a Token holds.
type TokenKind uint8

const (
	LiteralToken TokenKind = iota
	MatchToken
)

// A Token is one decoded unit of a window stream: either a literal byte or
// a back-reference.
type Token struct {
	Kind TokenKind

	// Literal is the byte of a LiteralToken.
	Literal byte

	// Offset and Length describe a MatchToken.
	Offset int
	Length int
}

func (t Token) String() string {
	if t.Kind == MatchToken {
		return fmt.Sprintf("match(offset=%d, length=%d)", t.Offset, t.Length)
	}
	return fmt.Sprintf("literal(0x%02x)", t.Literal)
}

// readToken parses the token that starts at src[i], and returns it along
// with the number of bytes it occupies.
func readToken(src []byte, i int) (Token, int, error) {
	switch src[i] {
	case TagLiteral:
		if i+2 > len(src) {
			return Token{}, 0, errors.Wrapf(pack.ErrMalformedInput, "window: truncated literal at offset %d", i)
		}
		return Token{Kind: LiteralToken, Literal: src[i+1]}, 2, nil
	case TagMatch:
		if i+3 > len(src) {
			return Token{}, 0, errors.Wrapf(pack.ErrMalformedInput, "window: truncated match at offset %d", i)
		}
		return Token{Kind: MatchToken, Offset: int(src[i+1]), Length: int(src[i+2])}, 3, nil
	default:
		return Token{}, 0, errors.Wrapf(pack.ErrMalformedInput, "window: unknown tag 0x%02x at offset %d", src[i], i)
	}
}

// checkOffset returns an error wrapping ErrMalformedInput if the match token
// read at offset i reaches before the start of the decoded bytes of output.
func checkOffset(t Token, decoded, i int) error {
	if t.Offset == 0 || t.Offset > decoded {
		return errors.Wrapf(pack.ErrMalformedInput, "window: match at offset %d reaches %d bytes back, only %d decoded", i, t.Offset, decoded)
	}
	return nil
}

// Tokens parses src into its tokens. It applies the same checks as
// Decompress.
func Tokens(src []byte) ([]Token, error) {
	var tokens []Token
	decoded := 0
	for i := 0; i < len(src); {
		t, n, err := readToken(src, i)
		if err != nil {
			return nil, err
		}
		if t.Kind == MatchToken {
			if err := checkOffset(t, decoded, i); err != nil {
				return nil, err
			}
			decoded += t.Length
		} else {
			decoded++
		}
		tokens = append(tokens, t)
		i += n
	}
	return tokens, nil
}
