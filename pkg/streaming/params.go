package streaming

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params is an ordered set of request parameters. It is built once
// before connecting and encoded into the query string (GET) or form
// body (POST) of the streaming request.
//
// url.Values is deliberately not used here: its Encode sorts keys,
// and predicates are sent in the order they were set.
type Params struct {
	entries []paramEntry
}

type paramEntry struct {
	name  string
	value string
}

func NewParams() *Params {
	return &Params{}
}

// Set appends a parameter. Supported values are strings, bools,
// integers, floats, and slices of strings or int64s, which are
// serialized as a single comma-joined entry the way the filter
// endpoints expect (e.g. follow=1,2,3). Anything else falls back to
// its fmt representation.
func (p *Params) Set(name string, value any) *Params {
	p.entries = append(p.entries, paramEntry{name: name, value: formatValue(value)})
	return p
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Encode serializes the parameters in insertion order, percent-escaped
// for use as a query string or form body. A nil receiver encodes to
// the empty string, standing in for "no parameters".
func (p *Params) Encode() string {
	if p == nil || len(p.entries) == 0 {
		return ""
	}

	var b strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(e.name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(e.value))
	}

	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ",")
	case []int64:
		parts := make([]string, len(v))
		for i, id := range v {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
