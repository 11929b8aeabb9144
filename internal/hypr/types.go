package hypr

// Workspace is one entry of a j/workspaces reply.
type Workspace struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Monitor         string `json:"monitor"`
	MonitorID       int    `json:"monitorID"`
	Windows         int    `json:"windows"`
	HasFullscreen   bool   `json:"hasfullscreen"`
	LastWindow      string `json:"lastwindow"`
	LastWindowTitle string `json:"lastwindowtitle"`
}

// ActiveWorkspace is the j/activeworkspace reply. It shares the workspace
// shape; only the id is consumed here.
type ActiveWorkspace struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Monitor string `json:"monitor"`
}

// ClientWorkspace is the workspace reference embedded in a client entry.
// A pointer field distinguishes "no workspace" from workspace 0.
type ClientWorkspace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ClientInfo is one entry of a j/clients reply.
type ClientInfo struct {
	Address   string           `json:"address"`
	Mapped    bool             `json:"mapped"`
	Workspace *ClientWorkspace `json:"workspace"`
	Monitor   int              `json:"monitor"`
	Class     string           `json:"class"`
	Title     string           `json:"title"`
	PID       int              `json:"pid"`
}

// Monitor is one entry of a j/monitors reply.
type Monitor struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	X               int     `json:"x"`
	Y               int     `json:"y"`
	Scale           float64 `json:"scale"`
	Focused         bool    `json:"focused"`
	Disabled        bool    `json:"disabled"`
	ActiveWorkspace struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"activeWorkspace"`
}
