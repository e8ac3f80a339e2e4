package crafty

import (
	"context"
	"fmt"
)

// ServersService handles communication with the server related endpoints
// of the panel API.
type ServersService service

// List returns all servers the authenticated user has access to.
func (s *ServersService) List(ctx context.Context) ([]Server, *Response, error) {
	req, err := s.client.NewRequest("GET", serversPath, nil)
	if err != nil {
		return nil, nil, err
	}

	var servers []Server
	resp, err := s.client.do(ctx, req, &servers)
	if err != nil {
		return nil, resp, err
	}
	return servers, resp, nil
}

// Get returns the server with the given ID.
func (s *ServersService) Get(ctx context.Context, serverID int) (*Server, *Response, error) {
	u := fmt.Sprintf("%s/%d", serversPath, serverID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var server *Server
	resp, err := s.client.do(ctx, req, &server)
	if err != nil {
		return nil, resp, err
	}
	return server, resp, nil
}

// Update applies a partial update to the server with the given ID. Only
// the non-nil fields of update are sent.
func (s *ServersService) Update(ctx context.Context, serverID int, update *ServerUpdateRequest) (*Response, error) {
	if update == nil {
		return nil, fmt.Errorf("update must be non-nil")
	}
	u := fmt.Sprintf("%s/%d", serversPath, serverID)
	req, err := s.client.NewRequest("PATCH", u, update)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// Delete permanently removes the server with the given ID from the panel.
func (s *ServersService) Delete(ctx context.Context, serverID int) (*Response, error) {
	u := fmt.Sprintf("%s/%d", serversPath, serverID)
	req, err := s.client.NewRequest("DELETE", u, nil)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// SendAction sends a lifecycle action to the server with the given ID.
// Unknown actions are rejected before any network I/O.
func (s *ServersService) SendAction(ctx context.Context, serverID int, action ServerAction) (*Response, error) {
	if !validActions[action] {
		return nil, fmt.Errorf("invalid server action %q", action)
	}
	u := fmt.Sprintf("%s/%d/action/%s", serversPath, serverID, action)
	req, err := s.client.NewRequest("POST", u, nil)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// SendStdin writes a command to the server console's standard input.
func (s *ServersService) SendStdin(ctx context.Context, serverID int, command string) (*Response, error) {
	if command == "" {
		return nil, fmt.Errorf("command must be non-empty")
	}
	u := fmt.Sprintf("%s/%d/stdin", serversPath, serverID)
	req, err := s.client.NewRequest("POST", u, command)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// Logs returns the log lines of the server with the given ID.
func (s *ServersService) Logs(ctx context.Context, serverID int, opts *LogsOptions) ([]string, *Response, error) {
	u := fmt.Sprintf("%s/%d/logs", serversPath, serverID)
	u, err := addOptions(u, opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var lines []string
	resp, err := s.client.do(ctx, req, &lines)
	if err != nil {
		return nil, resp, err
	}
	return lines, resp, nil
}

// PublicData returns the public information of the server with the given
// ID. It needs no server-level permissions.
func (s *ServersService) PublicData(ctx context.Context, serverID int) (*ServerPublicData, *Response, error) {
	u := fmt.Sprintf("%s/%d/public", serversPath, serverID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var data *ServerPublicData
	resp, err := s.client.do(ctx, req, &data)
	if err != nil {
		return nil, resp, err
	}
	return data, resp, nil
}

// Stats returns the live statistics of the server with the given ID.
func (s *ServersService) Stats(ctx context.Context, serverID int) (*ServerStats, *Response, error) {
	u := fmt.Sprintf("%s/%d/stats", serversPath, serverID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var stats *ServerStats
	resp, err := s.client.do(ctx, req, &stats)
	if err != nil {
		return nil, resp, err
	}
	return stats, resp, nil
}

// Users returns the IDs of the users with access to the server with the
// given ID.
func (s *ServersService) Users(ctx context.Context, serverID int) ([]int, *Response, error) {
	u := fmt.Sprintf("%s/%d/users", serversPath, serverID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var users []int
	resp, err := s.client.do(ctx, req, &users)
	if err != nil {
		return nil, resp, err
	}
	return users, resp, nil
}

// CreateTask schedules a new task on the server with the given ID.
func (s *ServersService) CreateTask(ctx context.Context, serverID int, task *Task) (*Response, error) {
	if task == nil {
		return nil, fmt.Errorf("task must be non-nil")
	}
	u := fmt.Sprintf("%s/%d/tasks", serversPath, serverID)
	req, err := s.client.NewRequest("POST", u, task)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// UpdateTask applies a partial update to a scheduled task.
func (s *ServersService) UpdateTask(ctx context.Context, serverID, taskID int, task *Task) (*Response, error) {
	if task == nil {
		return nil, fmt.Errorf("task must be non-nil")
	}
	u := fmt.Sprintf("%s/%d/tasks/%d", serversPath, serverID, taskID)
	req, err := s.client.NewRequest("PATCH", u, task)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// DeleteTask removes a scheduled task from the server with the given ID.
func (s *ServersService) DeleteTask(ctx context.Context, serverID, taskID int) (*Response, error) {
	u := fmt.Sprintf("%s/%d/tasks/%d", serversPath, serverID, taskID)
	req, err := s.client.NewRequest("DELETE", u, nil)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}
