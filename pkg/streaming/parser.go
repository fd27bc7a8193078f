package streaming

import (
	"encoding/json"
	"errors"

	"github.com/ttakahari/CoreTweet/types"
)

// errUnrecognizedShape marks a line that is valid JSON but matches no
// known message kind.
var errUnrecognizedShape = errors.New("no recognised message shape")

// ParseMessage classifies one line of a streaming response by its
// top-level keys and decodes it into the matching message variant.
//
// It never fails: any line that cannot be decoded - malformed syntax
// or an unrecognised shape - comes back as a RawJSONMessage carrying
// the original text and a ParsingError describing why. One bad line
// must never take the stream down.
func ParseMessage(line string) types.StreamingMessage {
	msg, err := parseLine([]byte(line))
	if err != nil {
		return &types.RawJSONMessage{
			Raw: line,
			Err: &ParsingError{Line: line, Err: err},
		}
	}

	return msg
}

func parseLine(data []byte) (types.StreamingMessage, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch {
	case hasKey(probe, "for_user"):
		return parseEnvelope(probe)

	case hasKey(probe, "delete"):
		var wire struct {
			Delete struct {
				Status struct {
					ID     int64 `json:"id"`
					UserID int64 `json:"user_id"`
				} `json:"status"`
			} `json:"delete"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		return &types.DeleteMessage{
			StatusID: wire.Delete.Status.ID,
			UserID:   wire.Delete.Status.UserID,
		}, nil

	case hasKey(probe, "friends"):
		var msg types.FriendsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return &msg, nil

	case hasKey(probe, "event"):
		var msg types.EventMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return &msg, nil

	case hasKey(probe, "limit"):
		var wire struct {
			Limit struct {
				Track int64 `json:"track"`
			} `json:"limit"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		return &types.LimitMessage{Track: wire.Limit.Track}, nil

	case hasKey(probe, "disconnect"):
		var wire struct {
			Disconnect types.DisconnectMessage `json:"disconnect"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		return &wire.Disconnect, nil

	case hasKey(probe, "warning"):
		var wire struct {
			Warning types.WarningMessage `json:"warning"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		return &wire.Warning, nil

	case hasKey(probe, "text"):
		var msg types.StatusMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, err
		}
		return &msg, nil

	default:
		return nil, errUnrecognizedShape
	}
}

// parseEnvelope decodes a site stream envelope and, recursively, the
// message it wraps. A broken inner message fails the whole line so the
// fallback preserves the full envelope text.
func parseEnvelope(probe map[string]json.RawMessage) (types.StreamingMessage, error) {
	var forUser int64
	if err := json.Unmarshal(probe["for_user"], &forUser); err != nil {
		return nil, err
	}

	inner, ok := probe["message"]
	if !ok {
		return nil, errUnrecognizedShape
	}

	msg, err := parseLine(inner)
	if err != nil {
		return nil, err
	}

	return &types.EnvelopeMessage{ForUser: forUser, Message: msg}, nil
}

func hasKey(probe map[string]json.RawMessage, key string) bool {
	_, ok := probe[key]
	return ok
}
