package workspace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbshell/jbshell/internal/hypr"
)

// fakeConn implements hypr.Commander with canned replies keyed by command.
type fakeConn struct {
	ready   bool
	replies map[string]string
	errs    map[string]error
	sent    []string
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		ready:   true,
		replies: make(map[string]string),
		errs:    make(map[string]error),
	}
}

func (f *fakeConn) Ready() bool { return f.ready }

func (f *fakeConn) SendCommand(cmd string) ([]byte, error) {
	f.sent = append(f.sent, cmd)
	if err, ok := f.errs[cmd]; ok {
		return nil, err
	}
	if reply, ok := f.replies[cmd]; ok {
		return []byte(reply), nil
	}
	return []byte("[]"), nil
}

func event(name string, data ...string) hypr.Event {
	return hypr.Event{Name: name, Data: data}
}

func TestInitialSync(t *testing.T) {
	conn := newFakeConn()
	conn.replies["j/workspaces"] = `[{"id":1,"monitor":"DP-1","windows":2},{"id":2,"monitor":"DP-2","windows":0}]`
	conn.replies["j/activeworkspace"] = `{"id":1}`

	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)

	assert.Equal(t, []int{1}, s.Registry().IDs())
	st, ok := s.Registry().Get(1)
	require.True(t, ok)
	assert.True(t, st.Active)
	assert.False(t, st.Empty)
	assert.False(t, s.Registry().Has(2))
}

func TestInitialSyncDeferredUntilReady(t *testing.T) {
	conn := newFakeConn()
	conn.ready = false
	conn.replies["j/workspaces"] = `[{"id":1,"monitor":"DP-1"}]`
	conn.replies["j/activeworkspace"] = `{"id":1}`

	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
	assert.Empty(t, s.Registry().IDs())

	// Readiness notification fires.
	conn.ready = true
	s.EnsureSynced()
	assert.Equal(t, []int{1}, s.Registry().IDs())

	// A second notification must not re-run the queries.
	queries := len(conn.sent)
	s.EnsureSynced()
	assert.Equal(t, queries, len(conn.sent))
}

func TestMembershipGatedCreation(t *testing.T) {
	tests := []struct {
		name     string
		monitor  string
		expectID bool
	}{
		{name: "workspace on other monitor", monitor: "DP-2", expectID: false},
		{name: "workspace on bound monitor", monitor: "DP-1", expectID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn()
			s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
			conn.replies["j/workspaces"] = `[{"id":5,"monitor":"` + tt.monitor + `","windows":0}]`

			s.HandleEvent(event("createworkspacev2", "5", "5"))

			assert.Equal(t, tt.expectID, s.Registry().Has(5))
		})
	}
}

func TestWorkspaceChangedActivatesOnlyOwned(t *testing.T) {
	conn := newFakeConn()
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
	s.Registry().Create(3)

	conn.replies["j/workspaces"] = `[{"id":3,"monitor":"DP-2"}]`
	s.HandleEvent(event("workspacev2", "3", "3"))
	st, _ := s.Registry().Get(3)
	assert.False(t, st.Active, "foreign workspace must not activate")

	conn.replies["j/workspaces"] = `[{"id":3,"monitor":"DP-1","windows":1}]`
	s.HandleEvent(event("workspacev2", "3", "3"))
	st, _ = s.Registry().Get(3)
	assert.True(t, st.Active)
}

func TestMonitorFocusActivatesWithoutQuery(t *testing.T) {
	conn := newFakeConn()
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
	s.Registry().Create(2)
	sentBefore := len(conn.sent)

	s.HandleEvent(event("focusedmonv2", "DP-1", "2"))

	st, _ := s.Registry().Get(2)
	assert.True(t, st.Active)
	assert.Equal(t, sentBefore, len(conn.sent), "event names the monitor; no membership query expected")

	s.HandleEvent(event("focusedmonv2", "DP-2", "2"))
	assert.Equal(t, 2, s.Registry().ActiveID(), "foreign monitor focus leaves state alone")
}

func TestUnconditionalDestroy(t *testing.T) {
	conn := newFakeConn()
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
	s.Registry().Create(7)

	// Even if a membership query would still attribute 7 elsewhere, the
	// destroy must go through without consulting it.
	conn.replies["j/workspaces"] = `[{"id":7,"monitor":"DP-2"}]`
	sentBefore := len(conn.sent)
	s.HandleEvent(event("destroyworkspacev2", "7", "7"))

	assert.False(t, s.Registry().Has(7))
	assert.Equal(t, sentBefore, len(conn.sent))
}

func TestMoveAtomicity(t *testing.T) {
	conn := newFakeConn()
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)

	// Move toward the bound monitor: id appears.
	s.HandleEvent(event("moveworkspacev2", "4", "DP-1"))
	assert.Contains(t, s.Registry().IDs(), 4)

	// Move away while held: id disappears.
	s.HandleEvent(event("moveworkspacev2", "4", "DP-2"))
	assert.NotContains(t, s.Registry().IDs(), 4)

	// Move away of an id never held: no-op.
	s.HandleEvent(event("moveworkspacev2", "9", "DP-2"))
	assert.Empty(t, s.Registry().IDs())
}

func TestArityGuard(t *testing.T) {
	tests := []struct {
		name string
		ev   hypr.Event
	}{
		{"workspacev2 short", event("workspacev2", "1")},
		{"focusedmonv2 long", event("focusedmonv2", "DP-1", "1", "extra")},
		{"createworkspacev2 short", event("createworkspacev2", "5")},
		{"destroyworkspacev2 long", event("destroyworkspacev2", "1", "1", "x")},
		{"moveworkspacev2 short", event("moveworkspacev2", "1")},
		{"urgent long", event("urgent", "abc", "def")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn()
			conn.replies["j/workspaces"] = `[{"id":1,"monitor":"DP-1"},{"id":5,"monitor":"DP-1"}]`
			s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
			s.Registry().Create(1)
			before := s.Registry().IDs()

			s.HandleEvent(tt.ev)

			assert.Equal(t, before, s.Registry().IDs())
			st, _ := s.Registry().Get(1)
			assert.Equal(t, State{}, st)
		})
	}
}

func TestUrgentResolution(t *testing.T) {
	conn := newFakeConn()
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
	s.Registry().Create(3)
	conn.replies["j/clients"] = `[{"address":"0xabc","workspace":{"id":3}}]`

	s.HandleEvent(event("urgent", "abc"))

	st, _ := s.Registry().Get(3)
	assert.True(t, st.Urgent)
}

func TestUrgentDroppedWhenUnresolvable(t *testing.T) {
	tests := []struct {
		name    string
		clients string
		errs    bool
	}{
		{name: "empty client list", clients: `[]`},
		{name: "query error", errs: true},
		{name: "address unknown", clients: `[{"address":"0xother","workspace":{"id":3}}]`},
		{name: "workspace field absent", clients: `[{"address":"0xabc","workspace":null}]`},
		{name: "workspace not held", clients: `[{"address":"0xabc","workspace":{"id":8}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn()
			s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
			s.Registry().Create(3)
			if tt.errs {
				conn.errs["j/clients"] = errors.New("connection refused")
			} else {
				conn.replies["j/clients"] = tt.clients
			}

			s.HandleEvent(event("urgent", "abc"))

			st, _ := s.Registry().Get(3)
			assert.False(t, st.Urgent)
		})
	}
}

func TestQueryFailureDropsEvent(t *testing.T) {
	conn := newFakeConn()
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
	conn.errs["j/workspaces"] = errors.New("connection reset")

	s.HandleEvent(event("createworkspacev2", "5", "5"))
	s.HandleEvent(event("workspacev2", "5", "5"))

	assert.Empty(t, s.Registry().IDs())
}

func TestMalformedReplyTreatedAsNoData(t *testing.T) {
	conn := newFakeConn()
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)
	conn.replies["j/workspaces"] = `unknown request`

	s.HandleEvent(event("createworkspacev2", "5", "5"))

	assert.Empty(t, s.Registry().IDs())
}

func TestNonNumericWorkspaceIDDropped(t *testing.T) {
	conn := newFakeConn()
	conn.replies["j/workspaces"] = `[{"id":1,"monitor":"DP-1"}]`
	s := NewSynchronizer("DP-1", conn, NewRegistry(nil), false)

	s.HandleEvent(event("workspacev2", "special:magic", "magic"))
	s.HandleEvent(event("destroyworkspacev2", "special:magic", "magic"))

	assert.Empty(t, s.Registry().IDs())
}

func TestDispatchCommands(t *testing.T) {
	tests := []struct {
		name        string
		emptyScroll bool
		act         func(s *Synchronizer)
		want        string
	}{
		{
			name: "next occupied",
			act:  func(s *Synchronizer) { _ = s.Next() },
			want: "batch/dispatch workspace e+1",
		},
		{
			name: "previous occupied",
			act:  func(s *Synchronizer) { _ = s.Previous() },
			want: "batch/dispatch workspace e-1",
		},
		{
			name:        "next with empty scroll",
			emptyScroll: true,
			act:         func(s *Synchronizer) { _ = s.Next() },
			want:        "batch/dispatch workspace +1",
		},
		{
			name:        "previous with empty scroll",
			emptyScroll: true,
			act:         func(s *Synchronizer) { _ = s.Previous() },
			want:        "batch/dispatch workspace -1",
		},
		{
			name: "absolute switch",
			act:  func(s *Synchronizer) { _ = s.Switch(6) },
			want: "batch/dispatch workspace 6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn()
			s := NewSynchronizer("DP-1", conn, NewRegistry(nil), tt.emptyScroll)
			conn.sent = nil

			tt.act(s)

			require.Len(t, conn.sent, 1)
			assert.Equal(t, tt.want, conn.sent[0])
		})
	}
}
