package client

import (
	"net/http"

	"github.com/ttakahari/CoreTweet/pkg/token"
)

const defaultUserAgent = "coretweet-go"

// Interface is the minimal transport the API surfaces are built on.
type Interface interface {
	// Do sends an HTTP request with credentials attached.
	Do(req *http.Request) (*http.Response, error)
}

// Client attaches credentials from a TokenProvider to every outgoing
// request. Connection pooling and TLS are left to the wrapped
// http.Client.
type Client struct {
	HttpClient *http.Client

	token     token.TokenProvider
	userAgent string
	log       Logger
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport, e.g. to add a proxy
// or custom TLS configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HttpClient = hc
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client around the given TokenProvider.
//
// The default http.Client carries no timeout: streaming responses stay
// open indefinitely and a request timeout would sever them mid-flight.
// Callers wanting connect timeouts should supply their own transport
// via WithHTTPClient.
func New(tp token.TokenProvider, opt ...Option) *Client {
	c := &Client{
		HttpClient: &http.Client{Timeout: 0},
		token:      tp,
		userAgent:  defaultUserAgent,
		log:        NopLogger{},
	}
	for _, o := range opt {
		o(c)
	}

	return c
}

// Logger returns the logger the client was configured with.
func (c *Client) Logger() Logger {
	return c.log
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if token := c.token.Token(); len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return c.HttpClient.Do(req)
}

var _ Interface = &Client{}
