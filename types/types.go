// Package types contains the data model shared by the streaming client:
// the set of message kinds a stream can deliver and the structs they
// decode into.
package types

import "encoding/json"

type MessageType string

const (
	MessageTypeStatus     MessageType = "status"
	MessageTypeDelete     MessageType = "delete"
	MessageTypeFriends    MessageType = "friends"
	MessageTypeEvent      MessageType = "event"
	MessageTypeLimit      MessageType = "limit"
	MessageTypeDisconnect MessageType = "disconnect"
	MessageTypeWarning    MessageType = "warning"
	MessageTypeEnvelope   MessageType = "envelope"
	MessageTypeRawJSON    MessageType = "raw_json"
)

// StreamingMessage is one decoded unit of a streaming response. Exactly
// one StreamingMessage is produced per non-empty line on the wire.
//
// The unexported marker method seals the interface: the catalogue of
// message kinds is fixed by this package, with RawJSONMessage acting as
// the fallback for anything the classifier does not recognise.
type StreamingMessage interface {
	Type() MessageType
	message()
}

// User is the subset of an account's fields that streaming messages
// carry inline.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
}

// StatusMessage is a newly published status update.
type StatusMessage struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	User      *User  `json:"user"`
}

func (*StatusMessage) Type() MessageType { return MessageTypeStatus }
func (*StatusMessage) message()          {}

// DeleteMessage reports that a previously delivered status was deleted
// and should no longer be displayed.
type DeleteMessage struct {
	StatusID int64
	UserID   int64
}

func (*DeleteMessage) Type() MessageType { return MessageTypeDelete }
func (*DeleteMessage) message()          {}

// FriendsMessage is the preamble of a user stream: the IDs of the
// accounts the authenticated user follows.
type FriendsMessage struct {
	Friends []int64 `json:"friends"`
}

func (*FriendsMessage) Type() MessageType { return MessageTypeFriends }
func (*FriendsMessage) message()          {}

// EventMessage notifies about an account-level action such as a
// favorite, follow or list change. TargetObject is left undecoded as
// its shape depends on the event name.
type EventMessage struct {
	Event        string          `json:"event"`
	CreatedAt    string          `json:"created_at"`
	Source       *User           `json:"source"`
	Target       *User           `json:"target"`
	TargetObject json.RawMessage `json:"target_object"`
}

func (*EventMessage) Type() MessageType { return MessageTypeEvent }
func (*EventMessage) message()          {}

// LimitMessage reports how many matching statuses were withheld from a
// filtered stream since the connection was opened.
type LimitMessage struct {
	Track int64
}

func (*LimitMessage) Type() MessageType { return MessageTypeLimit }
func (*LimitMessage) message()          {}

// DisconnectMessage is the server's announcement that it is about to
// close the connection.
type DisconnectMessage struct {
	Code       int    `json:"code"`
	StreamName string `json:"stream_name"`
	Reason     string `json:"reason"`
}

func (*DisconnectMessage) Type() MessageType { return MessageTypeDisconnect }
func (*DisconnectMessage) message()          {}

// WarningMessage signals a stall warning: the client is not consuming
// fast enough and the server-side queue is filling up.
type WarningMessage struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	PercentFull int    `json:"percent_full"`
}

func (*WarningMessage) Type() MessageType { return MessageTypeWarning }
func (*WarningMessage) message()          {}

// EnvelopeMessage wraps a message delivered on a site stream on behalf
// of one of the connected users. Message holds the decoded inner
// message.
type EnvelopeMessage struct {
	ForUser int64
	Message StreamingMessage
}

func (*EnvelopeMessage) Type() MessageType { return MessageTypeEnvelope }
func (*EnvelopeMessage) message()          {}

// RawJSONMessage is the fallback variant: a line that could not be
// decoded into any recognised kind. Raw carries the line verbatim and
// Err the decoding failure that caused the fallback.
type RawJSONMessage struct {
	Raw string
	Err error
}

func (*RawJSONMessage) Type() MessageType { return MessageTypeRawJSON }
func (*RawJSONMessage) message()          {}

// Interface compliance checks.
var (
	_ StreamingMessage = (*StatusMessage)(nil)
	_ StreamingMessage = (*DeleteMessage)(nil)
	_ StreamingMessage = (*FriendsMessage)(nil)
	_ StreamingMessage = (*EventMessage)(nil)
	_ StreamingMessage = (*LimitMessage)(nil)
	_ StreamingMessage = (*DisconnectMessage)(nil)
	_ StreamingMessage = (*WarningMessage)(nil)
	_ StreamingMessage = (*EnvelopeMessage)(nil)
	_ StreamingMessage = (*RawJSONMessage)(nil)
)
