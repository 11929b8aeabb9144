package hypr

import (
	"bufio"
	"context"
	"net"
	"strings"

	"github.com/jbshell/jbshell/internal/logging"
)

// Event is one notification from Hyprland's event socket. Lines arrive as
// "NAME>>payload" with comma-separated fields. Data holds the naive comma
// split; Raw keeps the payload intact for fields that may themselves
// contain commas (window titles).
type Event struct {
	Name string
	Data []string
	Raw  string
}

// ParseEventLine splits one raw socket2 line. The second return is false
// when the line does not carry the ">>" separator.
func ParseEventLine(line string) (Event, bool) {
	name, payload, found := strings.Cut(line, ">>")
	if !found || name == "" {
		return Event{}, false
	}
	return Event{
		Name: name,
		Data: strings.Split(payload, ","),
		Raw:  payload,
	}, true
}

// Listener consumes the event socket and forwards parsed events on a
// channel, in delivery order, until the context is cancelled or the stream
// closes.
type Listener struct {
	eventPath string
	events    chan Event
}

// NewListener builds a listener for the client's event socket.
func NewListener(c *Client) *Listener {
	return &Listener{
		eventPath: c.eventPath,
		events:    make(chan Event, 64),
	}
}

// Events returns the delivery channel. It is closed when the stream ends.
func (l *Listener) Events() <-chan Event {
	return l.events
}

// Start connects and spawns the reader goroutine. The goroutine owns the
// connection and closes the events channel on exit.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := net.DialTimeout("unix", l.eventPath, DialTimeout)
	if err != nil {
		return err
	}

	// Unblock the scanner when the context ends.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	log := logging.NewLogger("hypr")
	go func() {
		defer close(l.events)
		scanner := bufio.NewScanner(conn)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			ev, ok := ParseEventLine(scanner.Text())
			if !ok {
				continue
			}
			select {
			case l.events <- ev:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("event stream closed")
		}
	}()
	return nil
}
