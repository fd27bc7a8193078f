package stream_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttakahari/CoreTweet/pkg/stream"
)

type countingCloser struct {
	io.Reader
	closed int
}

func (cc *countingCloser) Close() error {
	cc.closed++
	return nil
}

func TestLineStream_YieldsNonEmptyLinesInOrder(t *testing.T) {
	t.Parallel()

	body := "first\n\nsecond\n   \r\nthird\n"
	ls := stream.NewLineStream(&countingCloser{Reader: strings.NewReader(body)})

	var lines []string
	for {
		line, err := ls.Next()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestLineStream_PreservesPayloadWhitespace(t *testing.T) {
	t.Parallel()

	ls := stream.NewLineStream(&countingCloser{Reader: strings.NewReader("  padded payload  \n")})

	line, err := ls.Next()
	require.NoError(t, err)
	assert.Equal(t, "  padded payload  ", line, "only the terminator may be stripped")
}

func TestLineStream_BlankBodyYieldsNothing(t *testing.T) {
	t.Parallel()

	ls := stream.NewLineStream(&countingCloser{Reader: strings.NewReader("\n\n  \n")})

	_, err := ls.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineStream_ReadErrorPropagates(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("connection reset")
	body := io.MultiReader(strings.NewReader("payload\n"), iotest.ErrReader(errBoom))
	ls := stream.NewLineStream(&countingCloser{Reader: body})

	line, err := ls.Next()
	require.NoError(t, err)
	assert.Equal(t, "payload", line)

	_, err = ls.Next()
	assert.ErrorIs(t, err, errBoom)
}

func TestLineStream_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	cc := &countingCloser{Reader: strings.NewReader("x\n")}
	ls := stream.NewLineStream(cc)

	require.NoError(t, ls.Close())
	require.NoError(t, ls.Close())
	assert.Equal(t, 1, cc.closed)
}
