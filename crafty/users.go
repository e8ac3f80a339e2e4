package crafty

import (
	"context"
	"fmt"
)

// UsersService handles communication with the user related endpoints of
// the panel API.
type UsersService service

// List returns all user accounts known to the panel.
func (s *UsersService) List(ctx context.Context) ([]User, *Response, error) {
	req, err := s.client.NewRequest("GET", usersPath, nil)
	if err != nil {
		return nil, nil, err
	}

	var users []User
	resp, err := s.client.do(ctx, req, &users)
	if err != nil {
		return nil, resp, err
	}
	return users, resp, nil
}

// Get returns the user with the given ID.
func (s *UsersService) Get(ctx context.Context, userID int) (*User, *Response, error) {
	u := fmt.Sprintf("%s/%d", usersPath, userID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var user *User
	resp, err := s.client.do(ctx, req, &user)
	if err != nil {
		return nil, resp, err
	}
	return user, resp, nil
}

type userCreatedData struct {
	UserID int `json:"user_id"`
}

// Create adds a new user account and returns the new user's ID.
func (s *UsersService) Create(ctx context.Context, user *UserCreateRequest) (int, *Response, error) {
	if user == nil {
		return 0, nil, fmt.Errorf("user must be non-nil")
	}
	if user.Username == "" || user.Password == "" {
		return 0, nil, fmt.Errorf("username and password must be non-empty")
	}
	req, err := s.client.NewRequest("POST", usersPath, user)
	if err != nil {
		return 0, nil, err
	}

	var data userCreatedData
	resp, err := s.client.do(ctx, req, &data)
	if err != nil {
		return 0, resp, err
	}
	return data.UserID, resp, nil
}

// Update applies a partial update to the user with the given ID. Only the
// non-nil fields of update are sent.
func (s *UsersService) Update(ctx context.Context, userID int, update *UserUpdateRequest) (*Response, error) {
	if update == nil {
		return nil, fmt.Errorf("update must be non-nil")
	}
	u := fmt.Sprintf("%s/%d", usersPath, userID)
	req, err := s.client.NewRequest("PATCH", u, update)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// Delete removes the user with the given ID.
func (s *UsersService) Delete(ctx context.Context, userID int) (*Response, error) {
	u := fmt.Sprintf("%s/%d", usersPath, userID)
	req, err := s.client.NewRequest("DELETE", u, nil)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}

// Permissions returns the panel-level permission mask and counters of the
// user with the given ID.
func (s *UsersService) Permissions(ctx context.Context, userID int) (*CraftyPermissions, *Response, error) {
	u := fmt.Sprintf("%s/%d/permissions", usersPath, userID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var perms *CraftyPermissions
	resp, err := s.client.do(ctx, req, &perms)
	if err != nil {
		return nil, resp, err
	}
	return perms, resp, nil
}

// ProfilePicture returns a link to the profile picture of the user with
// the given ID.
func (s *UsersService) ProfilePicture(ctx context.Context, userID int) (string, *Response, error) {
	u := fmt.Sprintf("%s/%d/pfp", usersPath, userID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return "", nil, err
	}

	var link string
	resp, err := s.client.do(ctx, req, &link)
	if err != nil {
		return "", resp, err
	}
	return link, resp, nil
}

// PublicData returns the public subset of the user with the given ID.
func (s *UsersService) PublicData(ctx context.Context, userID int) (*User, *Response, error) {
	u := fmt.Sprintf("%s/%d/public", usersPath, userID)
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var user *User
	resp, err := s.client.do(ctx, req, &user)
	if err != nil {
		return nil, resp, err
	}
	return user, resp, nil
}
