package stream_test

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttakahari/CoreTweet/pkg/stream"
)

func TestBufferedStream_QueuesAheadOfConsumer(t *testing.T) {
	t.Parallel()

	src := &sliceStream{items: []string{"a", "b", "c"}}
	bs := stream.NewBufferedStream[string](src)

	// The producer drains the source without anyone pulling.
	require.Eventually(t, func() bool {
		return bs.Len() == 3
	}, time.Second, 10*time.Millisecond)

	for _, want := range []string{"a", "b", "c"} {
		item, err := bs.Next()
		require.NoError(t, err)
		assert.Equal(t, want, item)
	}

	_, err := bs.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestBufferedStream_DrainsQueueBeforeReportingError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	src := &sliceStream{items: []string{"a"}, err: errBoom}
	bs := stream.NewBufferedStream[string](src)

	item, err := bs.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", item)

	_, err = bs.Next()
	assert.ErrorIs(t, err, errBoom)
}

func TestBufferedStream_StopReleasesSource(t *testing.T) {
	t.Parallel()

	src := &sliceStream{items: []string{"a", "b"}}
	bs := stream.NewBufferedStream[string](src)

	bs.Stop()
	bs.Stop() // second call is a no-op

	require.Eventually(t, func() bool {
		return src.closeCount() == 1
	}, time.Second, 10*time.Millisecond)

	_, err := bs.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEach_InvokesHandlerUntilExhaustion(t *testing.T) {
	t.Parallel()

	src := &sliceStream{items: []string{"a", "b"}}

	var seen []string
	err := stream.Each[string](src, func(item string) {
		seen = append(seen, item)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestEach_ReturnsTerminatingError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	src := &sliceStream{err: errBoom}

	err := stream.Each[string](src, func(string) {
		t.Fatal("handler must not run")
	})

	assert.ErrorIs(t, err, errBoom)
}
