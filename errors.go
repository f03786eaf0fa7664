package pack

import "github.com/pkg/errors"

// ErrMalformedInput is returned (wrapped with details) when a decoder is
// given data that does not follow its format's grammar.
var ErrMalformedInput = errors.New("malformed input")
