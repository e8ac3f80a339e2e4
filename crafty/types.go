package crafty

import "encoding/json"

// Envelope statuses used by the panel's API v2.
const (
	statusOK    = "ok"
	statusError = "error"
)

// apiEnvelope is the wrapper the panel puts around every API v2 response:
// {"status": "ok"|"error", "data": ..., "error": "CODE", "info"/"error_data": ...}
type apiEnvelope struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Info      string          `json:"info"`
	ErrorData string          `json:"error_data"`
}

// info returns the envelope's detail text, whichever field the panel used.
func (e *apiEnvelope) info() string {
	if e.Info != "" {
		return e.Info
	}
	return e.ErrorData
}

// Server represents a game server instance managed by the panel.
type Server struct {
	ServerID            int    `json:"server_id"`
	Created             string `json:"created,omitempty"`
	ServerUUID          string `json:"server_uuid,omitempty"`
	ServerName          string `json:"server_name"`
	Path                string `json:"path,omitempty"`
	BackupPath          string `json:"backup_path,omitempty"`
	Executable          string `json:"executable,omitempty"`
	LogPath             string `json:"log_path,omitempty"`
	ExecutionCommand    string `json:"execution_command,omitempty"`
	AutoStart           bool   `json:"auto_start,omitempty"`
	AutoStartDelay      int    `json:"auto_start_delay,omitempty"`
	CrashDetection      bool   `json:"crash_detection,omitempty"`
	StopCommand         string `json:"stop_command,omitempty"`
	ExecutableUpdateURL string `json:"executable_update_url,omitempty"`
	ServerIP            string `json:"server_ip,omitempty"`
	ServerPort          int    `json:"server_port,omitempty"`
	LogsDeleteAfter     int    `json:"logs_delete_after,omitempty"`
	Type                string `json:"type,omitempty"`
	ShowStatus          bool   `json:"show_status,omitempty"`
	ShutdownTimeout     int    `json:"shutdown_timeout,omitempty"`
}

// ServerUpdateRequest describes a partial update of a server's settings.
// Only non-nil fields are sent to the panel.
type ServerUpdateRequest struct {
	ServerName          *string `json:"server_name,omitempty"`
	Path                *string `json:"path,omitempty"`
	BackupPath          *string `json:"backup_path,omitempty"`
	Executable          *string `json:"executable,omitempty"`
	LogPath             *string `json:"log_path,omitempty"`
	ExecutionCommand    *string `json:"execution_command,omitempty"`
	AutoStart           *bool   `json:"auto_start,omitempty"`
	AutoStartDelay      *int    `json:"auto_start_delay,omitempty"`
	CrashDetection      *bool   `json:"crash_detection,omitempty"`
	StopCommand         *string `json:"stop_command,omitempty"`
	ExecutableUpdateURL *string `json:"executable_update_url,omitempty"`
	ServerIP            *string `json:"server_ip,omitempty"`
	ServerPort          *int    `json:"server_port,omitempty"`
	LogsDeleteAfter     *int    `json:"logs_delete_after,omitempty"`
	Type                *string `json:"type,omitempty"`
	ShowStatus          *bool   `json:"show_status,omitempty"`
	ShutdownTimeout     *int    `json:"shutdown_timeout,omitempty"`
}

// ServerPublicData is the subset of server information the panel exposes
// without server-level permissions.
type ServerPublicData struct {
	ServerID   int    `json:"server_id"`
	Created    string `json:"created,omitempty"`
	ServerName string `json:"server_name"`
	Type       string `json:"type,omitempty"`
}

// ServerStats holds the panel's live statistics for a server instance.
type ServerStats struct {
	StatsID        int     `json:"stats_id"`
	Created        string  `json:"created,omitempty"`
	Server         *Server `json:"server_id,omitempty"`
	Started        string  `json:"started,omitempty"`
	Running        bool    `json:"running"`
	CPU            float64 `json:"cpu"`
	Mem            string  `json:"mem,omitempty"`
	MemPercent     float64 `json:"mem_percent"`
	WorldName      string  `json:"world_name,omitempty"`
	WorldSize      string  `json:"world_size,omitempty"`
	ServerPort     int     `json:"server_port,omitempty"`
	IntPingResults string  `json:"int_ping_results,omitempty"`
	Online         int     `json:"online"`
	Max            int     `json:"max"`
	Players        string  `json:"players,omitempty"`
	Desc           string  `json:"desc,omitempty"`
	Version        string  `json:"version,omitempty"`
	Updating       bool    `json:"updating"`
	WaitingStart   bool    `json:"waiting_start"`
	FirstRun       bool    `json:"first_run"`
	Crashed        bool    `json:"crashed"`
	Downloading    bool    `json:"downloading"`
}

// ServerAction is a lifecycle action that can be sent to a server.
type ServerAction string

// Actions accepted by ServersService.SendAction.
const (
	ActionCloneServer      ServerAction = "clone_server"
	ActionStartServer      ServerAction = "start_server"
	ActionStopServer       ServerAction = "stop_server"
	ActionRestartServer    ServerAction = "restart_server"
	ActionKillServer       ServerAction = "kill_server"
	ActionBackupServer     ServerAction = "backup_server"
	ActionUpdateExecutable ServerAction = "update_executable"
)

var validActions = map[ServerAction]bool{
	ActionCloneServer:      true,
	ActionStartServer:      true,
	ActionStopServer:       true,
	ActionRestartServer:    true,
	ActionKillServer:       true,
	ActionBackupServer:     true,
	ActionUpdateExecutable: true,
}

// LogsOptions specifies optional parameters to ServersService.Logs.
type LogsOptions struct {
	// File reads the logs from the log file instead of stdout.
	File bool `url:"file,omitempty"`

	// Colors adds HTML coloring to the log output.
	Colors bool `url:"colors,omitempty"`

	// Raw disables ANSI stripping.
	Raw bool `url:"raw,omitempty"`

	// HTML returns HTML formatted logs.
	HTML bool `url:"html,omitempty"`
}

// Task represents a scheduled task attached to a server.
type Task struct {
	ScheduleID   int    `json:"schedule_id,omitempty"`
	ServerID     int    `json:"server_id,omitempty"`
	Action       string `json:"action,omitempty"`
	Command      string `json:"command,omitempty"`
	Interval     int    `json:"interval,omitempty"`
	IntervalType string `json:"interval_type,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	CronString   string `json:"cron_string,omitempty"`
	Enabled      *bool  `json:"enabled,omitempty"`
	OneTime      *bool  `json:"one_time,omitempty"`
}

// Role represents a permission role known to the panel.
type Role struct {
	RoleID     int          `json:"role_id"`
	Created    string       `json:"created,omitempty"`
	LastUpdate string       `json:"last_update,omitempty"`
	Name       string       `json:"role_name"`
	Servers    []RoleServer `json:"servers,omitempty"`
}

// RoleServer grants a role access to one server. Permissions is a string
// of eight binary digits covering commands, terminal, logs, schedule,
// backup, files, config and players, in that order.
type RoleServer struct {
	ServerID    int    `json:"server_id"`
	Permissions string `json:"permissions"`
}

// RoleCreateRequest describes a new role.
type RoleCreateRequest struct {
	Name    string       `json:"name"`
	Servers []RoleServer `json:"servers,omitempty"`
}

// RoleUpdateRequest describes a partial update of a role.
type RoleUpdateRequest struct {
	Name    *string      `json:"name,omitempty"`
	Servers []RoleServer `json:"servers,omitempty"`
}

// User represents a panel user account.
type User struct {
	UserID     int    `json:"user_id"`
	Created    string `json:"created,omitempty"`
	LastLogin  string `json:"last_login,omitempty"`
	LastUpdate string `json:"last_update,omitempty"`
	LastIP     string `json:"last_ip,omitempty"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Enabled    bool   `json:"enabled"`
	Superuser  bool   `json:"superuser"`
	Lang       string `json:"lang,omitempty"`
	Hints      bool   `json:"hints"`
	Roles      []int  `json:"roles,omitempty"`
}

// UserCreateRequest describes a new user account.
type UserCreateRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
	Hints     *bool  `json:"hints,omitempty"`
	Lang      string `json:"lang,omitempty"`
	Roles     []int  `json:"roles,omitempty"`
	Superuser *bool  `json:"superuser,omitempty"`
}

// UserUpdateRequest describes a partial update of a user account. Only
// non-nil fields are sent to the panel.
type UserUpdateRequest struct {
	Username    *string                 `json:"username,omitempty"`
	Password    *string                 `json:"password,omitempty"`
	Email       *string                 `json:"email,omitempty"`
	Enabled     *bool                   `json:"enabled,omitempty"`
	Superuser   *bool                   `json:"superuser,omitempty"`
	Lang        *string                 `json:"lang,omitempty"`
	Hints       *bool                   `json:"hints,omitempty"`
	Roles       []int                   `json:"roles,omitempty"`
	Permissions *CraftyPermissionsPatch `json:"permissions,omitempty"`
}

// CraftyPermissionsPatch updates one of a user's panel-level permission
// counters (SERVER_CREATION, USER_CONFIG or ROLES_CONFIG).
type CraftyPermissionsPatch struct {
	Enabled  bool   `json:"enabled"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CraftyPermissions holds a user's panel-level permission mask and
// creation counters.
type CraftyPermissions struct {
	Permissions string         `json:"permissions"`
	Counters    map[string]int `json:"counters,omitempty"`
}
