// Package hypr speaks Hyprland's IPC protocol: line commands over the
// request socket and the asynchronous event stream on the second socket.
package hypr

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"
)

// DialTimeout bounds every socket connect; a stalled compositor must not
// hang the bar's event loop for longer than this.
const DialTimeout = 2 * time.Second

// Client issues commands against Hyprland's request socket. Each command is
// a fresh connect/write/read/close round-trip, matching hyprctl. The zero
// value is not usable; call NewClient.
//
// A single Client is shared read-only by every per-monitor synchronizer, so
// it carries no mutable per-consumer state.
type Client struct {
	socketPath string
	eventPath  string
}

// NewClient locates the Hyprland sockets from the environment. It does not
// connect; a missing instance surfaces on the first command (or via Ready).
func NewClient() (*Client, error) {
	dir, err := runtimeDir()
	if err != nil {
		return nil, err
	}
	return &Client{
		socketPath: filepath.Join(dir, ".socket.sock"),
		eventPath:  filepath.Join(dir, ".socket2.sock"),
	}, nil
}

func runtimeDir() (string, error) {
	sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if sig == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE not set; is Hyprland running?")
	}
	runtime := os.Getenv("XDG_RUNTIME_DIR")
	if runtime == "" {
		runtime = fmt.Sprintf("/run/user/%d", os.Getuid())
	}
	return filepath.Join(runtime, "hypr", sig), nil
}

// Ready reports whether the request socket currently accepts connections.
func (c *Client) Ready() bool {
	conn, err := net.DialTimeout("unix", c.socketPath, DialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// SendCommand writes one command and returns the raw reply bytes.
func (c *Client) SendCommand(cmd string) ([]byte, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to dial hyprland socket: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(DialTimeout)); err != nil {
		return nil, err
	}
	if _, err := conn.Write([]byte(cmd)); err != nil {
		return nil, fmt.Errorf("failed to send %q: %w", cmd, err)
	}
	reply, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read reply for %q: %w", cmd, err)
	}
	return reply, nil
}

// Commander is the query/dispatch surface consumed by the workspace engine
// and the widgets. *Client implements it; tests substitute fakes.
type Commander interface {
	Ready() bool
	SendCommand(cmd string) ([]byte, error)
}

// Workspaces runs j/workspaces.
func Workspaces(c Commander) ([]Workspace, error) {
	var out []Workspace
	if err := query(c, "j/workspaces", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveWorkspaceID runs j/activeworkspace and returns the focused id.
func ActiveWorkspaceID(c Commander) (int, error) {
	var out ActiveWorkspace
	if err := query(c, "j/activeworkspace", &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Clients runs j/clients.
func Clients(c Commander) ([]ClientInfo, error) {
	var out []ClientInfo
	if err := query(c, "j/clients", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Monitors runs j/monitors.
func Monitors(c Commander) ([]Monitor, error) {
	var out []Monitor
	if err := query(c, "j/monitors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DispatchWorkspace issues a workspace switch. The spec argument is a
// workspace selector in dispatcher syntax: an absolute id, "e+1"/"e-1" for
// the next/previous occupied workspace, or "+1"/"-1" for any neighbor.
func DispatchWorkspace(c Commander, spec string) error {
	_, err := c.SendCommand("batch/dispatch workspace " + spec)
	return err
}

func query(c Commander, cmd string, v any) error {
	reply, err := c.SendCommand(cmd)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(reply, v); err != nil {
		return fmt.Errorf("malformed reply for %q: %w", cmd, err)
	}
	return nil
}
