package streaming

import "fmt"

// InvalidVariantError reports a stream type with no endpoint mapping.
// The StreamType constants make this unreachable in normal use, but
// the table lookup still has to define behaviour for values it has
// never heard of.
type InvalidVariantError struct {
	Variant StreamType
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("streaming: unknown stream type %q", string(e.Variant))
}

// ConnectionError reports a transport-level failure while establishing
// or reading a streaming connection. It is fatal to the stream: the
// caller decides whether to open a new one.
type ConnectionError struct {
	Op  string // "connect" or "read"
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	msg := "streaming: " + e.Op
	if e.URL != "" {
		msg += " " + e.URL
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

const maxLineDisplayLength = 100

// ParsingError reports that a single line could not be decoded into a
// recognised message. It never escapes as an error from the stream:
// the dispatcher recovers it into a RawJSONMessage, where it is
// available for inspection. Line carries the offending text verbatim.
type ParsingError struct {
	Line string
	Err  error
}

func (e *ParsingError) Error() string {
	line := e.Line
	if len(line) > maxLineDisplayLength {
		line = line[:maxLineDisplayLength] + "..."
	}
	return fmt.Sprintf("streaming: unable to decode message %q: %v", line, e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}
