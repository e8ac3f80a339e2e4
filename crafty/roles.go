package crafty

import (
	"context"
	"fmt"
)

// RolesService handles communication with the role related endpoints of
// the panel API.
type RolesService service

// List returns all roles.
func (s *RolesService) List(ctx context.Context) ([]Role, *Response, error) {
	req, err := s.client.NewRequest("GET", rolesPath, nil)
	if err != nil {
		return nil, nil, err
	}

	var roles []Role
	resp, err := s.client.do(ctx, req, &roles)
	if err != nil {
		return nil, resp, err
	}
	return roles, resp, nil
}

// Get returns the role with the given ID.
func (s *RolesService) Get(ctx context.Context, roleID int) (*Role, *Response, error) {
	u := fmt.Sprintf("%s/%d", rolesPath, roleID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var role *Role
	resp, err := s.client.do(ctx, req, &role)
	if err != nil {
		return nil, resp, err
	}
	return role, resp, nil
}

// Create adds a new role. Each RoleServer entry grants the role its
// permission mask on one server.
func (s *RolesService) Create(ctx context.Context, role *RoleCreateRequest) (*Response, error) {
	if role == nil {
		return nil, fmt.Errorf("role must be non-nil")
	}
	if role.Name == "" {
		return nil, fmt.Errorf("role name must be non-empty")
	}
	req, err := s.client.NewRequest("POST", rolesPath, role)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// Update applies a partial update to the role with the given ID.
func (s *RolesService) Update(ctx context.Context, roleID int, update *RoleUpdateRequest) (*Response, error) {
	if update == nil {
		return nil, fmt.Errorf("update must be non-nil")
	}
	u := fmt.Sprintf("%s/%d", rolesPath, roleID)
	req, err := s.client.NewRequest("PATCH", u, update)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// Delete removes the role with the given ID. Requires superuser.
func (s *RolesService) Delete(ctx context.Context, roleID int) (*Response, error) {
	u := fmt.Sprintf("%s/%d", rolesPath, roleID)
	req, err := s.client.NewRequest("DELETE", u, nil)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// Servers returns the servers the role with the given ID has access to,
// along with its permission mask on each.
func (s *RolesService) Servers(ctx context.Context, roleID int) ([]RoleServer, *Response, error) {
	u := fmt.Sprintf("%s/%d/servers", rolesPath, roleID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var servers []RoleServer
	resp, err := s.client.do(ctx, req, &servers)
	if err != nil {
		return nil, resp, err
	}
	return servers, resp, nil
}

// Users returns the IDs of the users assigned to the role with the given ID.
func (s *RolesService) Users(ctx context.Context, roleID int) ([]int, *Response, error) {
	u := fmt.Sprintf("%s/%d/users", rolesPath, roleID)
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
