package corpus

import "errors"

var (
	// ErrResource indicates the corpus resource is missing or unreadable.
	ErrResource = errors.New("corpus resource unavailable")
	// ErrDecode indicates the corpus content is not valid UTF-8 text.
	ErrDecode = errors.New("corpus not decodable as text")
)
