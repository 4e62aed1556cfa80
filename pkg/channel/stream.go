package channel

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
)

const maxLineSize = 16 << 20

type received struct {
	msg Message
	err error
}

// Stream exchanges newline-delimited JSON messages over a reader and a writer.
type Stream struct {
	in   <-chan received
	done chan struct{}
	once sync.Once

	mu  sync.Mutex
	w   io.Writer
	enc *json.Encoder
}

var _ Channel = (*Stream)(nil)

// NewStream starts reading messages from r; outbound messages are written to w.
func NewStream(r io.Reader, w io.Writer) *Stream {
	in := make(chan received)
	done := make(chan struct{})
	go readLines(r, in, done)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Stream{in: in, done: done, w: w, enc: enc}
}

// readLines stops at the end of r or once done is closed, whichever comes
// first. A blocked read of r is not interrupted.
func readLines(r io.Reader, out chan<- received, done <-chan struct{}) {
	defer close(out)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		msg, err := decode(line)
		select {
		case <-done:
			return
		case out <- received{msg: msg, err: err}:
		}
	}
	if err := sc.Err(); err != nil {
		select {
		case <-done:
		case out <- received{err: err}:
		}
	}
}

// Close releases the reader goroutine; later Receive calls return ErrClosed.
// It does not close the underlying reader or writer.
func (s *Stream) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

// Receive returns the next decoded line. Malformed lines are reported as
// errors without closing the stream.
func (s *Stream) Receive(ctx context.Context) (Message, error) {
	select {
	case <-s.done:
		return Message{}, ErrClosed
	default:
	}

	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case <-s.done:
		return Message{}, ErrClosed
	case r, ok := <-s.in:
		if !ok {
			return Message{}, ErrClosed
		}
		return r.msg, r.err
	}
}

// Send writes msg as a single JSON line.
func (s *Stream) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(msg)
}
