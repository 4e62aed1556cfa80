// Package channel carries the messages exchanged between the exporter and
// its user interface.
//
// Three transports are provided: JSON lines over a reader/writer pair
// (stdio), a socket.io connection and an in-memory pair for tests.
package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by Receive once the peer is gone and by Send on a closed channel.
	ErrClosed = errors.New("channel closed")
	// ErrUnknownMessage is returned by handlers for message types they do not understand.
	ErrUnknownMessage = errors.New("unknown message type")
)

// Message types.
const (
	// TypeRunPlugin asks for the value-only JSON export.
	TypeRunPlugin = "run-plugin"
	// TypeGenerateVisual asks for the visual layout to be built on the canvas.
	TypeGenerateVisual = "generate-visual"
	// TypeJSONOutput carries the exported JSON text.
	TypeJSONOutput = "json-output"
	// TypeVisualGenerated reports that the visual layout was committed.
	TypeVisualGenerated = "visual-generated"
)

// Message is a single UI message.
type Message struct {
	Type string `json:"type"`
	JSON string `json:"json,omitempty"`
}

// JSONOutput returns a json-output message carrying text.
func JSONOutput(text string) Message {
	return Message{Type: TypeJSONOutput, JSON: text}
}

// VisualGenerated returns a visual-generated message.
func VisualGenerated() Message {
	return Message{Type: TypeVisualGenerated}
}

// Channel is a bidirectional message channel.
type Channel interface {
	// Receive blocks until the next inbound message arrives.
	// It returns ErrClosed when no more messages will arrive.
	Receive(ctx context.Context) (Message, error)
	// Send posts msg to the peer.
	Send(ctx context.Context, msg Message) error
}

// decode parses a message payload. Payloads arrive either as JSON text or,
// from the socket.io transport, as already decoded maps.
func decode(payload any) (Message, error) {
	var data []byte
	switch p := payload.(type) {
	case Message:
		return p, nil
	case string:
		data = []byte(p)
	case []byte:
		data = p
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return Message{}, fmt.Errorf("encode payload: %w", err)
		}
		data = b
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	return msg, nil
}
