package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttakahari/CoreTweet/types"
)

func TestMessageTypeSwitch_Exhaustive(t *testing.T) {
	t.Parallel()

	messages := []types.StreamingMessage{
		&types.StatusMessage{},
		&types.DeleteMessage{},
		&types.FriendsMessage{},
		&types.EventMessage{},
		&types.LimitMessage{},
		&types.DisconnectMessage{},
		&types.WarningMessage{},
		&types.EnvelopeMessage{},
		&types.RawJSONMessage{},
	}
	assert.Len(t, messages, 9, "update the slice and switch when adding message kinds")

	seen := make(map[types.MessageType]bool)
	for _, msg := range messages {
		switch msg.(type) {
		case *types.StatusMessage:
		case *types.DeleteMessage:
		case *types.FriendsMessage:
		case *types.EventMessage:
		case *types.LimitMessage:
		case *types.DisconnectMessage:
		case *types.WarningMessage:
		case *types.EnvelopeMessage:
		case *types.RawJSONMessage:
		default:
			t.Fatalf("unhandled message kind %T", msg)
		}

		assert.False(t, seen[msg.Type()], "duplicate message type %q", msg.Type())
		seen[msg.Type()] = true
	}
}
