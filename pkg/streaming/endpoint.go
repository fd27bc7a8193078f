package streaming

import (
	"net/http"

	"github.com/ttakahari/CoreTweet/pkg/util"
)

// StreamType selects which of the long-lived feeds a connection is
// opened against.
type StreamType string

const (
	UserStream     StreamType = "user"
	SiteStream     StreamType = "site"
	FilterStream   StreamType = "filter"
	SampleStream   StreamType = "sample"
	FirehoseStream StreamType = "firehose"
)

// Endpoints holds the base URLs streams are resolved against. User and
// site streams live on one host, the public statuses streams on
// another.
type Endpoints struct {
	UserStreamBase   string
	PublicStreamBase string
}

var DefaultEndpoints = Endpoints{
	UserStreamBase:   "https://userstream.twitter.com/1.1",
	PublicStreamBase: "https://stream.twitter.com/1.1",
}

type endpoint struct {
	verb     string
	public   bool
	resource string
}

// Filter is the only variant taking its predicates in a request body,
// so it is also the only one using POST.
var endpointTable = map[StreamType]endpoint{
	UserStream:     {http.MethodGet, false, "user"},
	SiteStream:     {http.MethodGet, false, "site"},
	FilterStream:   {http.MethodPost, true, "statuses/filter"},
	SampleStream:   {http.MethodGet, true, "statuses/sample"},
	FirehoseStream: {http.MethodGet, true, "statuses/firehose"},
}

// Resolve returns the HTTP verb and fully built URL for a stream type.
func (e Endpoints) Resolve(st StreamType) (verb, url string, err error) {
	ep, ok := endpointTable[st]
	if !ok {
		return "", "", &InvalidVariantError{Variant: st}
	}

	base := e.UserStreamBase
	if ep.public {
		base = e.PublicStreamBase
	}

	return ep.verb, util.BuildURL(base, true, ep.resource), nil
}
