// Package streaming opens long-lived streaming connections and exposes
// them as lazily decoded message sequences.
//
// The package splits into two halves: resolving a StreamType into an
// endpoint and opening the connection (the launcher), and turning each
// line of the response body into a StreamingMessage (the dispatcher).
// Decode failures are recovered into RawJSONMessage fallbacks so the
// stream keeps flowing; transport failures end the stream and are the
// caller's to handle - there is no automatic reconnect.
package streaming

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/ttakahari/CoreTweet/pkg/client"
	"github.com/ttakahari/CoreTweet/pkg/stream"
	"github.com/ttakahari/CoreTweet/types"
)

// API opens streaming connections on behalf of a client.
type API struct {
	kc        client.Interface
	endpoints Endpoints
	log       client.Logger
}

type Option func(*API)

// WithEndpoints overrides the base URLs, e.g. to point at a proxy or a
// test server.
func WithEndpoints(e Endpoints) Option {
	return func(a *API) {
		a.endpoints = e
	}
}

func WithLogger(log client.Logger) Option {
	return func(a *API) {
		a.log = log
	}
}

func NewAPI(kc client.Interface, opt ...Option) *API {
	a := &API{
		kc:        kc,
		endpoints: DefaultEndpoints,
		log:       client.NopLogger{},
	}
	for _, o := range opt {
		o(a)
	}

	return a
}

// Start resolves the endpoint for st, issues the long-lived request
// and returns the stream of decoded messages. params may be nil for
// streams that take no predicates.
//
// The returned stream is single-pass and must be closed when the
// caller abandons it; exhausting it (server close) releases the
// connection as well. Cancelling ctx severs the connection, which the
// consumer observes as a read error on the next pull.
func (a *API) Start(ctx context.Context, st StreamType, params *Params) (*MessageStream, error) {
	verb, reqURL, err := a.endpoints.Resolve(st)
	if err != nil {
		return nil, err
	}

	body, err := a.open(ctx, verb, reqURL, params)
	if err != nil {
		return nil, err
	}

	return &MessageStream{
		lines: stream.NewLineStream(body),
		log:   a.log,
	}, nil
}

// open issues exactly one request: parameters travel in the query
// string for GET and in a form body for POST.
func (a *API) open(ctx context.Context, verb, reqURL string, params *Params) (io.ReadCloser, error) {
	var body io.Reader
	if verb == http.MethodPost {
		body = strings.NewReader(params.Encode())
	} else if query := params.Encode(); query != "" {
		reqURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, verb, reqURL, body)
	if err != nil {
		return nil, &ConnectionError{Op: "connect", URL: reqURL, Err: err}
	}
	if verb == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := a.kc.Do(req)
	if err != nil {
		return nil, &ConnectionError{Op: "connect", URL: reqURL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 226 {
		defer resp.Body.Close()
		errmsg, _ := io.ReadAll(resp.Body)
		return nil, &ConnectionError{
			Op:  "connect",
			URL: reqURL,
			Err: fmt.Errorf("invalid response code %d: %s", resp.StatusCode, errmsg),
		}
	}

	return resp.Body, nil
}

// StartStream is the one-call entry point: open the st stream with the
// default endpoints and return its message sequence. params may be
// nil.
func StartStream(ctx context.Context, kc client.Interface, st StreamType, params *Params) (*MessageStream, error) {
	return NewAPI(kc).Start(ctx, st, params)
}

// MessageStream is the lazily decoded message sequence of one open
// streaming connection. Each pull decodes exactly one wire line, so
// the consumer's pace is the connection's pace - there is no
// read-ahead and no internal history.
//
// A MessageStream is not safe for concurrent pulls; wrap it in an
// AsyncStream or BufferedStream to fan out.
type MessageStream struct {
	lines *stream.LineStream
	log   client.Logger

	mutex  sync.Mutex
	closed bool
}

// Next blocks until the next line arrives and returns its decoded
// message. Undecodable lines are delivered as RawJSONMessage
// fallbacks, not errors. io.EOF reports a clean server-side close; any
// other failure is a ConnectionError and the stream is dead.
func (ms *MessageStream) Next() (types.StreamingMessage, error) {
	line, err := ms.lines.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, &ConnectionError{Op: "read", Err: err}
	}

	msg := ParseMessage(line)
	if raw, ok := msg.(*types.RawJSONMessage); ok {
		ms.log.Infof("streaming: falling back to raw message: %v", raw.Err)
	}

	return msg, nil
}

// Close releases the underlying connection. Closing an already closed
// stream is a no-op.
func (ms *MessageStream) Close() error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if ms.closed {
		return nil
	}
	ms.closed = true

	return ms.lines.Close()
}

var (
	_ stream.Stream[types.StreamingMessage] = &MessageStream{}
	_ io.Closer                             = &MessageStream{}
)
