package stream

import (
	"io"
	"sync"

	"github.com/gammazero/deque"
)

// BufferedStream decouples a slow consumer from its source: a
// background goroutine pulls the source as fast as it produces and
// queues items in an elastic FIFO for the consumer to drain at its own
// pace.
//
// This matters for servers that disconnect consumers who fall behind
// the wire - the socket keeps being drained even while the consumer is
// busy processing. It trades the no-read-ahead guarantee of the plain
// stream for stall protection, so it is strictly opt-in.
type BufferedStream[T any] struct {
	stream  Stream[T]
	queue   *deque.Deque[T]
	lock    sync.Mutex
	cond    *sync.Cond
	stopped bool
	err     error
}

func NewBufferedStream[T any](stream Stream[T]) *BufferedStream[T] {
	b := &BufferedStream[T]{
		stream: stream,
		queue:  deque.New[T](),
	}
	b.cond = sync.NewCond(&b.lock)

	go b.run()

	return b
}

func (b *BufferedStream[T]) run() {
	for {
		item, err := b.stream.Next()

		b.lock.Lock()
		if b.stopped {
			b.lock.Unlock()
			return
		}
		if err != nil {
			b.err = err
			b.lock.Unlock()
			b.cond.Broadcast()
			return
		}
		b.queue.PushBack(item)
		b.lock.Unlock()
		b.cond.Signal()
	}
}

// Next returns the oldest queued item, blocking while the queue is
// empty. Queued items are drained before the source's terminating
// error is reported.
func (b *BufferedStream[T]) Next() (T, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	for b.queue.Len() == 0 && b.err == nil && !b.stopped {
		b.cond.Wait()
	}

	var zero T
	if b.stopped {
		return zero, io.EOF
	}
	if b.queue.Len() > 0 {
		return b.queue.PopFront(), nil
	}

	return zero, b.err
}

// Len reports how many items are queued and not yet consumed.
func (b *BufferedStream[T]) Len() int {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.queue.Len()
}

// Stop ends buffering and releases the wrapped stream. Stopping twice
// is a no-op. Items still queued are discarded.
func (b *BufferedStream[T]) Stop() {
	b.lock.Lock()
	if b.stopped {
		b.lock.Unlock()
		return
	}
	b.stopped = true
	b.lock.Unlock()

	b.cond.Broadcast()

	if closer, ok := b.stream.(io.Closer); ok {
		closer.Close()
	}
}

var _ Stream[int] = &BufferedStream[int]{}
