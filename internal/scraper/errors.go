package scraper

import "fmt"

// Kind classifies scraper failures into the closed set surfaced to merchants.
type Kind string

// Failure kinds.
const (
	KindInvalidURL    Kind = "INVALID_URL"
	KindAPIKeyMissing Kind = "API_KEY_MISSING"
	KindAPIError      Kind = "API_ERROR"
)

// Error is a typed scraper failure: a closed kind plus a human-readable
// message. Transport-level failures (timeouts, connection errors) are NOT
// wrapped in Error; they propagate with their underlying message text.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so callers can use errors.Is
// against the kind sentinels without caring about message text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Kind sentinels for errors.Is checks.
var (
	ErrInvalidURL    = &Error{Kind: KindInvalidURL, Message: "invalid eBay URL"}
	ErrAPIKeyMissing = &Error{Kind: KindAPIKeyMissing, Message: "scraping API key missing"}
	ErrAPIError      = &Error{Kind: KindAPIError, Message: "scraping API error"}
)

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
