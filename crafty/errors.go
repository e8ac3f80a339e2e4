package crafty

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Sentinel errors for the panel's error codes. They are reachable through
// errors.Is on any *ErrorResponse returned by the client.
var (
	// ErrIncorrectCredentials is returned when a login attempt fails or an
	// API token is rejected (panel code INCORRECT_CREDENTIALS).
	ErrIncorrectCredentials = errors.New("crafty: incorrect credentials")

	// ErrServerNotRunning is returned when an operation needs a running
	// server instance (panel code SER_NOT_RUNNING).
	ErrServerNotRunning = errors.New("crafty: server not running")

	// ErrServerAlreadyRunning is returned when starting a server that is
	// already up (panel code SER_RUNNING).
	ErrServerAlreadyRunning = errors.New("crafty: server already running")

	// ErrMissingParameters is returned when the request lacks essential
	// parameters or they are invalid (panel code NO_COMMAND).
	ErrMissingParameters = errors.New("crafty: request is missing essential parameters")

	// ErrAccessDenied is returned when the authenticated user lacks the
	// required permission (panel codes NOT_AUTHORIZED and ACCESS_DENIED).
	ErrAccessDenied = errors.New("crafty: access denied")

	// ErrNotAllowed is returned when the panel refuses the operation
	// (panel code NOT_ALLOWED).
	ErrNotAllowed = errors.New("crafty: operation not allowed")

	// ErrNotFound is returned when the addressed resource does not exist
	// (panel code NOT_FOUND).
	ErrNotFound = errors.New("crafty: not found")
)

// panelErrors maps the panel's wire error codes to sentinel errors.
var panelErrors = map[string]error{
	"INCORRECT_CREDENTIALS": ErrIncorrectCredentials,
	"SER_NOT_RUNNING":       ErrServerNotRunning,
	"SER_RUNNING":           ErrServerAlreadyRunning,
	"NO_COMMAND":            ErrMissingParameters,
	"NOT_AUTHORIZED":        ErrAccessDenied,
	"ACCESS_DENIED":         ErrAccessDenied,
	"NOT_ALLOWED":           ErrNotAllowed,
	"NOT_FOUND":             ErrNotFound,
}

// An ErrorResponse reports an error returned by the panel, either as a
// non-2xx HTTP status or as a success response whose envelope carries
// status "error". Code holds the panel's error code when one was supplied.
type ErrorResponse struct {
	Response *http.Response // HTTP response that caused this error

	Code string `json:"error"` // panel error code, e.g. "ACCESS_DENIED"
	Info string `json:"info"`  // human-readable detail supplied by the panel
}

func (r *ErrorResponse) Error() string {
	var sb strings.Builder
	if r.Response != nil && r.Response.Request != nil {
		fmt.Fprintf(&sb, "%v %v: %d",
			r.Response.Request.Method, r.Response.Request.URL, r.Response.StatusCode)
	} else {
		sb.WriteString("crafty: API error")
	}
	if r.Code != "" {
		fmt.Fprintf(&sb, " %v", r.Code)
	}
	if r.Info != "" {
		fmt.Fprintf(&sb, " (%v)", r.Info)
	}
	return sb.String()
}

// Unwrap maps the panel error code to its sentinel error so callers can
// use errors.Is. It returns nil for codes without a known mapping.
func (r *ErrorResponse) Unwrap() error {
	return panelErrors[r.Code]
}

// CheckResponse checks the API response for an error and returns it if
// present. A response is considered an error if it has a status code
// outside the 200 range. The response body is consumed when an error is
// returned: the panel's error envelope is decoded when possible, otherwise
// the raw body is kept as the error detail.
func CheckResponse(r *http.Response) error {
	if c := r.StatusCode; 200 <= c && c <= 299 {
		return nil
	}

	errorResponse := &ErrorResponse{Response: r}
	data, err := io.ReadAll(r.Body)
	if err == nil && len(data) > 0 {
		var env apiEnvelope
		if jsonErr := json.Unmarshal(data, &env); jsonErr == nil && (env.Error != "" || env.Status != "") {
			errorResponse.Code = env.Error
			errorResponse.Info = env.info()
		} else {
			errorResponse.Info = strings.TrimSpace(string(data))
		}
	}
	return errorResponse
}
