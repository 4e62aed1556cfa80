package channel

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Event is the socket.io event name both directions use.
const Event = "message"

// DefaultDialTimeout bounds the initial connection when ctx carries no deadline.
const DefaultDialTimeout = 15 * time.Second

// SocketIO is a Channel over a socket.io connection. Inbound payloads may
// be JSON text or objects.
type SocketIO struct {
	io *socket.Socket

	in     chan received
	closed chan struct{}
	once   sync.Once
}

var _ Channel = (*SocketIO)(nil)

// DialSocketIO connects to rawURL, joins namespace and waits for the connection to be acknowledged.
// The URL path, if any, overrides the default "/socket.io" endpoint path.
func DialSocketIO(ctx context.Context, rawURL, namespace string) (*SocketIO, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse socket.io url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse socket.io url: %q is not absolute", rawURL)
	}
	if namespace == "" {
		namespace = "/"
	}

	opts := socket.DefaultOptions()
	if u.Path != "" && u.Path != "/" {
		opts.SetPath(u.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", u.Scheme, u.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	s := &SocketIO{
		io:     io,
		in:     make(chan received, 16),
		closed: make(chan struct{}),
	}

	io.On(types.EventName(Event), func(args ...any) {
		if len(args) == 0 {
			return
		}
		msg, err := decode(args[0])
		select {
		case s.in <- received{msg: msg, err: err}:
		case <-s.closed:
		}
	})
	io.On(types.EventName("disconnect"), func(...any) {
		s.markClosed()
	})

	connected := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		select {
		case connected <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("socket.io connect error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = fmt.Errorf("socket.io connect: %w", e)
			}
		}
		select {
		case connected <- err:
		default:
		}
	})

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultDialTimeout)
		defer cancel()
	}

	io.Connect()

	select {
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("timed out while waiting for socket.io connection: %w", ctx.Err())
	case err := <-connected:
		if err != nil {
			io.Disconnect()
			return nil, err
		}
	}

	return s, nil
}

// ID returns the socket id assigned by the server.
func (s *SocketIO) ID() string { return s.io.Id() }

func (s *SocketIO) markClosed() {
	s.once.Do(func() { close(s.closed) })
}

// Receive implements Channel.
func (s *SocketIO) Receive(ctx context.Context) (Message, error) {
	select {
	case r := <-s.in:
		return r.msg, r.err
	default:
	}

	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case r := <-s.in:
		return r.msg, r.err
	case <-s.closed:
		return Message{}, ErrClosed
	}
}

// Send emits msg as a "message" event.
func (s *SocketIO) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-s.closed:
		return ErrClosed
	default:
	}

	payload := map[string]any{"type": msg.Type}
	if msg.JSON != "" {
		payload["json"] = msg.JSON
	}
	if err := s.io.Emit(Event, payload); err != nil {
		return fmt.Errorf("emit %s: %w", msg.Type, err)
	}
	return nil
}

// Close disconnects the socket.
func (s *SocketIO) Close() error {
	s.io.Disconnect()
	s.markClosed()
	return nil
}
