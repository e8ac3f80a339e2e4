package crafty

import (
	"context"
	"fmt"
)

// AuthService handles authentication against the panel.
type AuthService service

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginData struct {
	Token  string `json:"token"`
	UserID int    `json:"user_id"`
}

// Login exchanges a username and password for an API token. The request is
// sent without the client's configured token, so a client constructed with
// an empty token can be used for the login-only flow. The returned token
// can then be passed to NewClient to build an authenticated client.
//
// A rejected login returns an *ErrorResponse matching
// ErrIncorrectCredentials under errors.Is.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *Response, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("username and password must be non-empty")
	}

	u := authPath + "/login"
	req, err := s.client.NewRequest("POST", u, &loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", nil, err
	}
	// Credentials authenticate this request, not a stale token.
	req.Header.Del("Authorization")

	var data loginData
	resp, err := s.client.do(ctx, req, &data)
	if err != nil {
		return "", resp, err
	}
	if data.Token == "" {
		return "", resp, fmt.Errorf("login response contained no token")
	}
	return data.Token, resp, nil
}

// Logout invalidates all of the authenticated user's tokens, including the
// one this client is configured with.
func (s *AuthService) Logout(ctx context.Context) (*Response, error) {
	u := authPath + "/invalidate_tokens"
	req, err := s.client.NewRequest("POST", u, nil)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, req, nil)
}
