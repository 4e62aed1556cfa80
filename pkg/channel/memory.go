package channel

import (
	"context"
	"sync"
)

// Memory is an in-process Channel. Push feeds inbound messages and Sent
// returns everything sent so far.
type Memory struct {
	in     chan Message
	closed chan struct{}
	once   sync.Once

	mu   sync.Mutex
	sent []Message
}

var _ Channel = (*Memory)(nil)

// NewMemory returns an open in-memory channel.
func NewMemory() *Memory {
	return &Memory{
		in:     make(chan Message, 16),
		closed: make(chan struct{}),
	}
}

// Push queues an inbound message. It blocks while the queue is full.
func (m *Memory) Push(msg Message) {
	select {
	case <-m.closed:
	case m.in <- msg:
	}
}

// Close ends the inbound side; Receive drains queued messages and then returns ErrClosed.
func (m *Memory) Close() {
	m.once.Do(func() { close(m.closed) })
}

// Receive implements Channel.
func (m *Memory) Receive(ctx context.Context) (Message, error) {
	// queued messages win over close
	select {
	case msg := <-m.in:
		return msg, nil
	default:
	}

	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case msg := <-m.in:
		return msg, nil
	case <-m.closed:
		select {
		case msg := <-m.in:
			return msg, nil
		default:
			return Message{}, ErrClosed
		}
	}
}

// Send implements Channel.
func (m *Memory) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

// Sent returns a copy of the messages sent so far.
func (m *Memory) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.sent...)
}
