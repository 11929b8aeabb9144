// Package workspace maintains a per-monitor view of Hyprland workspace
// state. Registry owns the set of workspace ids a monitor currently holds;
// Synchronizer drives it from the IPC event stream.
package workspace

// State is the renderer-visible state of one workspace.
type State struct {
	// Active marks the focused workspace on its owning monitor.
	Active bool
	// Urgent is set when a window on the workspace demands attention and
	// stays set until the renderer clears it on focus.
	Urgent bool
	// Empty marks a workspace with zero windows; it only affects styling.
	Empty bool
}

// Registry holds the workspaces belonging to one monitor. Workspace ids are
// globally unique across the compositor, so two registries never hold the
// same id once state has converged. All methods are single-goroutine; the
// event loop serializes access.
type Registry struct {
	order    []int
	states   map[int]*State
	activeID int
	onChange func()
}

// NewRegistry creates an empty registry. onChange is invoked after every
// mutation that altered state, so the renderer can redraw; it may be nil.
func NewRegistry(onChange func()) *Registry {
	return &Registry{
		states:   make(map[int]*State),
		onChange: onChange,
	}
}

func (r *Registry) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}

// Create adds a workspace with all flags clear. Adding an id the registry
// already holds is a no-op.
func (r *Registry) Create(id int) {
	if _, ok := r.states[id]; ok {
		return
	}
	r.states[id] = &State{}
	r.order = append(r.order, id)
	r.notify()
}

// Destroy removes a workspace. Removing an unknown id is a no-op.
func (r *Registry) Destroy(id int) {
	if _, ok := r.states[id]; !ok {
		return
	}
	delete(r.states, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.activeID == id {
		r.activeID = 0
	}
	r.notify()
}

// Activate marks id as the focused workspace and clears the previous one.
// An id the registry does not hold is silently dropped; the activation may
// have raced ahead of its creation event, and the next corrective event
// resolves it.
func (r *Registry) Activate(id int) {
	st, ok := r.states[id]
	if !ok {
		return
	}
	if prev, ok := r.states[r.activeID]; ok {
		prev.Active = false
	}
	st.Active = true
	r.activeID = id
	r.notify()
}

// MarkUrgent flags a held workspace as urgent.
func (r *Registry) MarkUrgent(id int) {
	st, ok := r.states[id]
	if !ok {
		return
	}
	if !st.Urgent {
		st.Urgent = true
		r.notify()
	}
}

// ClearUrgent removes the urgency flag. The renderer calls this when the
// workspace gains focus.
func (r *Registry) ClearUrgent(id int) {
	st, ok := r.states[id]
	if !ok {
		return
	}
	if st.Urgent {
		st.Urgent = false
		r.notify()
	}
}

// SetEmpty records whether the workspace has zero windows.
func (r *Registry) SetEmpty(id int, empty bool) {
	st, ok := r.states[id]
	if !ok {
		return
	}
	if st.Empty != empty {
		st.Empty = empty
		r.notify()
	}
}

// Has reports whether the registry currently holds id.
func (r *Registry) Has(id int) bool {
	_, ok := r.states[id]
	return ok
}

// Get returns a copy of the state for id.
func (r *Registry) Get(id int) (State, bool) {
	st, ok := r.states[id]
	if !ok {
		return State{}, false
	}
	return *st, true
}

// ActiveID returns the focused workspace id, or 0 when none is active.
func (r *Registry) ActiveID() int {
	if _, ok := r.states[r.activeID]; !ok {
		return 0
	}
	return r.activeID
}

// IDs returns the held workspace ids in creation order.
func (r *Registry) IDs() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of held workspaces.
func (r *Registry) Len() int {
	return len(r.order)
}
