package workspace

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/jbshell/jbshell/internal/hypr"
	"github.com/jbshell/jbshell/internal/logging"
)

// Synchronizer keeps one monitor's Registry in sync with the compositor.
// It consumes the shared event stream, decides which events concern its
// monitor, and resolves ambiguous events (events that name a workspace but
// not a monitor) with a fresh j/workspaces query rather than a local cache.
// That re-query is what bounds staleness: between an event's arrival and
// the query resolving it the registry may briefly lag the compositor, but
// it converges on the next event.
//
// All methods run on the event loop; there is no internal locking.
type Synchronizer struct {
	monitor     string
	conn        hypr.Commander
	registry    *Registry
	emptyScroll bool
	synced      bool
	log         *logrus.Entry
}

// NewSynchronizer binds a synchronizer to a monitor name for its lifetime.
// The monitor name may be empty, meaning the synchronizer matches nothing
// until the compositor reports workspaces with an empty monitor field.
// If the connection is already ready the initial sync runs immediately;
// otherwise call EnsureSynced when readiness is signalled.
func NewSynchronizer(monitor string, conn hypr.Commander, registry *Registry, emptyScroll bool) *Synchronizer {
	s := &Synchronizer{
		monitor:     monitor,
		conn:        conn,
		registry:    registry,
		emptyScroll: emptyScroll,
		log:         logging.NewLogger("workspace").WithField("monitor", monitor),
	}
	if conn.Ready() {
		s.EnsureSynced()
	}
	return s
}

// Monitor returns the bound monitor name.
func (s *Synchronizer) Monitor() string {
	return s.monitor
}

// Registry returns the registry this synchronizer drives.
func (s *Synchronizer) Registry() *Registry {
	return s.registry
}

// Synced reports whether the initial full-state sync has completed.
func (s *Synchronizer) Synced() bool {
	return s.synced
}

// EnsureSynced runs the initial full-state sync once: every workspace the
// compositor reports on the bound monitor is created, and the compositor's
// active workspace is activated if it lives here. A failed query leaves the
// synchronizer unsynced so the next readiness notification retries; Create
// is idempotent, so a retry after partial success is harmless.
func (s *Synchronizer) EnsureSynced() {
	if s.synced {
		return
	}
	workspaces, err := hypr.Workspaces(s.conn)
	if err != nil {
		s.log.WithError(err).Debug("initial sync: workspace query failed")
		return
	}
	activeID, err := hypr.ActiveWorkspaceID(s.conn)
	if err != nil {
		s.log.WithError(err).Debug("initial sync: active workspace query failed")
		return
	}
	for _, ws := range workspaces {
		if ws.Monitor != s.monitor {
			continue
		}
		s.registry.Create(ws.ID)
		s.registry.SetEmpty(ws.ID, ws.Windows == 0)
		if ws.ID == activeID {
			s.registry.Activate(ws.ID)
		}
	}
	s.synced = true
}

// eventHandler processes the fields of one event whose arity has already
// been checked.
type eventHandler func(s *Synchronizer, data []string)

// eventTable maps each consumed event tag to its documented field count and
// handler. An event whose field count disagrees is dropped before the
// handler runs; a changed schema must never be half-interpreted.
var eventTable = map[string]struct {
	arity   int
	handler eventHandler
}{
	"workspacev2":        {2, (*Synchronizer).onWorkspaceChanged},
	"focusedmonv2":       {2, (*Synchronizer).onMonitorFocusChanged},
	"createworkspacev2":  {2, (*Synchronizer).onWorkspaceCreated},
	"destroyworkspacev2": {2, (*Synchronizer).onWorkspaceDestroyed},
	"moveworkspacev2":    {2, (*Synchronizer).onWorkspaceMoved},
	"urgent":             {1, (*Synchronizer).onUrgent},
}

// HandleEvent routes one event through the dispatch table. Unknown tags and
// arity mismatches are dropped without touching the registry.
func (s *Synchronizer) HandleEvent(ev hypr.Event) {
	entry, ok := eventTable[ev.Name]
	if !ok {
		return
	}
	if len(ev.Data) != entry.arity {
		s.log.WithFields(logrus.Fields{"event": ev.Name, "fields": len(ev.Data)}).
			Debug("dropping event with unexpected arity")
		return
	}
	entry.handler(s, ev.Data)
}

// workspaceInfo resolves which monitor currently owns a workspace via a
// fresh full-list query. Any failure, or an id the compositor no longer
// reports, returns ok=false and the caller drops the event.
func (s *Synchronizer) workspaceInfo(id int) (hypr.Workspace, bool) {
	workspaces, err := hypr.Workspaces(s.conn)
	if err != nil {
		s.log.WithError(err).Debug("membership query failed")
		return hypr.Workspace{}, false
	}
	for _, ws := range workspaces {
		if ws.ID == id {
			return ws, true
		}
	}
	return hypr.Workspace{}, false
}

func (s *Synchronizer) onWorkspaceChanged(data []string) {
	id, err := strconv.Atoi(data[0])
	if err != nil {
		return
	}
	if ws, ok := s.workspaceInfo(id); ok && ws.Monitor == s.monitor {
		s.registry.Activate(id)
		s.registry.SetEmpty(id, ws.Windows == 0)
	}
}

// onMonitorFocusChanged activates unconditionally: the event names the
// monitor itself, so no membership query is needed.
func (s *Synchronizer) onMonitorFocusChanged(data []string) {
	if data[0] != s.monitor {
		return
	}
	id, err := strconv.Atoi(data[1])
	if err != nil {
		return
	}
	s.registry.Activate(id)
}

func (s *Synchronizer) onWorkspaceCreated(data []string) {
	id, err := strconv.Atoi(data[0])
	if err != nil {
		return
	}
	if ws, ok := s.workspaceInfo(id); ok && ws.Monitor == s.monitor {
		s.registry.Create(id)
		s.registry.SetEmpty(id, ws.Windows == 0)
	}
}

// onWorkspaceDestroyed removes the workspace whenever the registry holds
// it. No membership query: by the time one ran, the workspace would already
// be gone compositor-side and the query could never attribute it.
func (s *Synchronizer) onWorkspaceDestroyed(data []string) {
	id, err := strconv.Atoi(data[0])
	if err != nil {
		return
	}
	if s.registry.Has(id) {
		s.registry.Destroy(id)
	}
}

// onWorkspaceMoved transfers ownership. The arriving side creates before
// any other registry processes the same event's departing side, but ids are
// globally unique, so the two registries never collide on a key.
func (s *Synchronizer) onWorkspaceMoved(data []string) {
	id, err := strconv.Atoi(data[0])
	if err != nil {
		return
	}
	target := data[1]
	if target == s.monitor {
		s.registry.Create(id)
	} else if s.registry.Has(id) {
		s.registry.Destroy(id)
	}
}

// onUrgent resolves the urgent client's workspace through j/clients. The
// event carries a bare hex address; client addresses are "0x"-prefixed.
func (s *Synchronizer) onUrgent(data []string) {
	clients, err := hypr.Clients(s.conn)
	if err != nil {
		s.log.WithError(err).Debug("clients query failed")
		return
	}
	address := "0x" + data[0]
	for _, client := range clients {
		if client.Address != address {
			continue
		}
		if client.Workspace == nil {
			return
		}
		if s.registry.Has(client.Workspace.ID) {
			s.registry.MarkUrgent(client.Workspace.ID)
		}
		return
	}
}

// Next switches to the following workspace. With emptyScroll the dispatch
// walks sequential workspace numbers, creating as it goes; without it only
// occupied workspaces are cycled.
func (s *Synchronizer) Next() error {
	return hypr.DispatchWorkspace(s.conn, s.relativeSpec("+1"))
}

// Previous switches to the preceding workspace.
func (s *Synchronizer) Previous() error {
	return hypr.DispatchWorkspace(s.conn, s.relativeSpec("-1"))
}

func (s *Synchronizer) relativeSpec(step string) string {
	if s.emptyScroll {
		return step
	}
	return "e" + step
}

// Switch jumps to an absolute workspace id.
func (s *Synchronizer) Switch(id int) error {
	return hypr.DispatchWorkspace(s.conn, strconv.Itoa(id))
}
