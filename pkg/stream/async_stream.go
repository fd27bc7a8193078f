package stream

import (
	"io"
	"sync"
)

// AsyncStream acts as a wrapper for any Stream and allows items to be
// read from it asynchronously.
//
// Most streams are synchronous by their nature, because the underlying
// source needs to be read sequentially, however once decoded it's
// common that items can be consumed via a channel select instead.
type AsyncStream[T any] struct {
	stream  Stream[T]
	result  chan T
	done    chan struct{}
	lock    sync.RWMutex
	stopped bool
	err     error
}

func NewAsyncStream[T any](stream Stream[T]) *AsyncStream[T] {
	sd := &AsyncStream[T]{
		stream: stream,
		result: make(chan T),
		done:   make(chan struct{}),
	}

	go sd.run()

	return sd
}

func (sd *AsyncStream[T]) Stopped() bool {
	sd.lock.RLock()
	defer sd.lock.RUnlock()

	return sd.stopped
}

func (sd *AsyncStream[T]) run() {
	defer close(sd.result)

	for {
		result, err := sd.stream.Next()

		if err != nil {
			sd.lock.Lock()
			if !sd.stopped {
				sd.err = err
			}
			sd.lock.Unlock()
			sd.Stop()
			return
		}

		select {
		case sd.result <- result:
		case <-sd.done:
			return
		}
	}
}

// Stop ends delivery and releases the wrapped stream. Stopping twice is
// a no-op. The result channel is closed once the run loop has wound
// down.
func (sd *AsyncStream[T]) Stop() {
	sd.lock.Lock()
	defer sd.lock.Unlock()

	if sd.stopped {
		return
	}
	sd.stopped = true
	if sd.err == nil {
		// A caller-initiated Stop is a normal end of delivery: without
		// a terminal error every later Next would hand out zero values
		// as if they had arrived.
		sd.err = io.EOF
	}

	// Unblocks the run loop if it is mid-send, then releases the
	// underlying source so any blocked read returns.
	close(sd.done)

	if closer, ok := sd.stream.(io.Closer); ok {
		closer.Close()
	}
}

// Next blocks for the next item. Once the channel has been closed it
// returns the zero value together with Error().
func (sd *AsyncStream[T]) Next() (T, error) {
	item, ok := <-sd.result
	if !ok {
		return item, sd.Error()
	}
	return item, nil
}

func (sd *AsyncStream[T]) ResultChan() <-chan T {
	return sd.result
}

// Error reports why delivery ended. It is nil while the stream is
// live, io.EOF after a caller-initiated Stop or normal exhaustion, and
// the source's failure otherwise.
func (sd *AsyncStream[T]) Error() error {
	sd.lock.RLock()
	defer sd.lock.RUnlock()

	return sd.err
}
