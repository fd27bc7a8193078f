package stream

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// MaxLineSize is the largest single payload line the reader will
// accept. Lines are JSON documents, so anything beyond this indicates a
// broken peer rather than a legitimate message. Exceeding it is fatal
// to the stream: Next reports bufio.ErrTooLong and the connection must
// be reopened.
const MaxLineSize = 1024 * 1024

// LineStream reads a response body one newline-delimited payload at a
// time. Blank lines, which long-lived endpoints send as keep-alive
// markers, are skipped and never surface through Next.
//
// The stream owns the body: Close releases it, and must be called when
// the consumer abandons the stream before exhaustion.
type LineStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	mutex   sync.Mutex
	closed  bool
}

func NewLineStream(body io.ReadCloser) *LineStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	return &LineStream{
		body:    body,
		scanner: scanner,
	}
}

// Next blocks until the next non-empty line arrives and returns it
// with only the line terminator stripped: interior and surrounding
// whitespace belong to the payload and are handed on verbatim.
// Returns io.EOF when the body ends cleanly, or the read error that
// interrupted it.
func (ls *LineStream) Next() (string, error) {
	for ls.scanner.Scan() {
		line := ls.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, nil
	}

	if err := ls.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// Close releases the underlying body. Closing an already closed stream
// is a no-op.
func (ls *LineStream) Close() error {
	ls.mutex.Lock()
	defer ls.mutex.Unlock()

	if ls.closed {
		return nil
	}
	ls.closed = true

	return ls.body.Close()
}

var (
	_ Stream[string] = &LineStream{}
	_ io.Closer      = &LineStream{}
)
