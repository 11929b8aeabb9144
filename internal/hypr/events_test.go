package hypr

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOK   bool
		wantName string
		wantData []string
		wantRaw  string
	}{
		{
			name:     "two fields",
			line:     "workspacev2>>3,3",
			wantOK:   true,
			wantName: "workspacev2",
			wantData: []string{"3", "3"},
			wantRaw:  "3,3",
		},
		{
			name:     "single field",
			line:     "urgent>>5934ab2c80d0",
			wantOK:   true,
			wantName: "urgent",
			wantData: []string{"5934ab2c80d0"},
			wantRaw:  "5934ab2c80d0",
		},
		{
			name:     "title with commas keeps raw payload",
			line:     "activewindow>>firefox,a, b, and c",
			wantOK:   true,
			wantName: "activewindow",
			wantData: []string{"firefox", "a", " b", " and c"},
			wantRaw:  "firefox,a, b, and c",
		},
		{
			name:     "empty payload",
			line:     "activewindow>>",
			wantOK:   true,
			wantName: "activewindow",
			wantData: []string{""},
			wantRaw:  "",
		},
		{
			name:   "no separator",
			line:   "not an event line",
			wantOK: false,
		},
		{
			name:   "empty name",
			line:   ">>payload",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := ParseEventLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, ev.Name)
			assert.Equal(t, tt.wantData, ev.Data)
			assert.Equal(t, tt.wantRaw, ev.Raw)
		})
	}
}

func TestListenerDeliversInOrder(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "events.sock")
	srv, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	defer srv.Close()

	go func() {
		conn, err := srv.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		conn.Write([]byte("createworkspacev2>>4,4\nworkspacev2>>4,4\ngarbage line\nurgent>>abc\n"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l := &Listener{eventPath: socketPath, events: make(chan Event, 8)}
	require.NoError(t, l.Start(ctx))

	var names []string
	for ev := range l.Events() {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"createworkspacev2", "workspacev2", "urgent"}, names)
}
