// Package stream implements a set of generic interfaces and classes
// designed to allow streams of atomic values to be pipelined, much
// like one might do with an [io.Reader]
package stream

import (
	"errors"
	"io"
)

// A Stream is able to provide a source of atomic data values.
//
// The source of a Stream's data is implementation specific - an example
// is reading newline-delimited JSON payloads from a long running HTTP
// response. Streams are single-pass: once Next has returned an error
// the stream is finished and will not recover.
type Stream[T any] interface {
	Next() (T, error)
}

// Each drives a Stream with a callback, pulling items one at a time
// until the stream ends. Returns nil when the stream was exhausted
// normally, or the terminating error otherwise.
func Each[T any](s Stream[T], fn func(T)) error {
	for {
		item, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		fn(item)
	}
}
