package classifier

import "errors"

// Kind classifies a failed call at the network boundary, so callers never
// have to inspect message text to decide how to respond.
type Kind string

const (
	// KindNetwork covers transport failures: connection refused, DNS,
	// timeouts, truncated bodies.
	KindNetwork Kind = "network"
	// KindUpstream covers non-2xx responses from the prediction service.
	KindUpstream Kind = "upstream"
	// KindDecode covers 2xx responses whose body could not be parsed.
	KindDecode Kind = "decode"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func IsKind(err error, kind Kind) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind
}
