// Package crafty provides a Go client library for the Crafty Controller
// web panel API v2.
//
// Crafty Controller is a self-hosted control panel for managing Minecraft
// server instances. This client library provides an idiomatic Go interface
// to the panel's REST API, following architectural patterns established by
// popular Go libraries like google/go-github.
//
// # Features
//
//   - List servers and read per-server details, stats, logs and public data
//   - Send lifecycle actions (start, stop, restart, kill, backup, ...)
//   - Write to a server's console via stdin
//   - Manage scheduled tasks, roles and user accounts
//   - Exchange credentials for an API token and invalidate tokens
//   - Context support for all API calls
//   - Structured error handling mapped to the panel's error codes
//
// # Authentication
//
// The panel authenticates requests with a bearer token. Pass the token to
// NewClient; it is attached to every request and is immutable for the
// lifetime of the client:
//
//	client, err := crafty.NewClient("https://crafty.example.com:8443", token, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A token can be obtained from a username and password with a client that
// has no token yet:
//
//	anon, _ := crafty.NewClient(panelURL, "", nil)
//	token, _, err := anon.Auth.Login(context.Background(), "admin", password)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := crafty.NewClient(panelURL, token, nil)
//
// Many self-hosted panels run with self-signed TLS certificates. Verification
// is on by default; opt out explicitly when you must:
//
//	client, err := crafty.NewClient(panelURL, token, nil, crafty.WithInsecureSkipVerify())
//
// # Usage
//
// List all servers:
//
//	servers, _, err := client.Servers.List(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range servers {
//	    fmt.Printf("%d: %s (%s)\n", s.ServerID, s.ServerName, s.Type)
//	}
//
// Start a server and tail its logs:
//
//	_, err = client.Servers.SendAction(ctx, 1, crafty.ActionStartServer)
//	lines, _, err := client.Servers.Logs(ctx, 1, &crafty.LogsOptions{File: true})
//
// Update a server's settings (only non-nil fields are sent):
//
//	_, err = client.Servers.Update(ctx, 1, &crafty.ServerUpdateRequest{
//	    ServerName: crafty.String("lobby"),
//	    AutoStart:  crafty.Bool(true),
//	})
//
// Create a user and give it a role:
//
//	userID, _, err := client.Users.Create(ctx, &crafty.UserCreateRequest{
//	    Username: "steve",
//	    Password: secret,
//	    Roles:    []int{2},
//	})
//
// # Error Handling
//
// Three classes of failure can come back from a call:
//
//   - Transport errors (connection refused, timeout, canceled context)
//     propagate as the underlying *url.Error or the context's error.
//   - Panel errors — a non-2xx HTTP status, or a 200 whose envelope carries
//     status "error" — are returned as *ErrorResponse with the HTTP
//     response, the panel's error code and its detail text.
//   - Malformed response bodies surface the encoding/json decode error.
//
// Panel error codes map to sentinel errors, so callers can branch without
// string matching:
//
//	_, _, err := client.Servers.Get(ctx, 42)
//	switch {
//	case errors.Is(err, crafty.ErrNotFound):
//	    // no such server
//	case errors.Is(err, crafty.ErrAccessDenied):
//	    // token lacks permission
//	case err != nil:
//	    log.Fatal(err)
//	}
//
// # Service Architecture
//
// The client follows a service-oriented architecture where different API
// endpoints are organized into service structs:
//
//	client.Auth     // Login, Logout
//	client.Servers  // List, Get, Update, Delete, SendAction, SendStdin,
//	                // Logs, PublicData, Stats, Users, CreateTask,
//	                // UpdateTask, DeleteTask
//	client.Roles    // List, Get, Create, Update, Delete, Servers, Users
//	client.Users    // List, Get, Create, Update, Delete, Permissions,
//	                // ProfilePicture, PublicData
//	client.Schemas  // Get
//
// # Helper Functions
//
// The package provides helper functions for working with pointer types,
// following Go API conventions:
//
//	crafty.String("value")  // Returns *string
//	crafty.Int(42)          // Returns *int
//	crafty.Bool(true)       // Returns *bool
//
//	crafty.StringValue(ptr) // Returns string value or ""
//	crafty.IntValue(ptr)    // Returns int value or 0
//	crafty.BoolValue(ptr)   // Returns bool value or false
//
// # Examples
//
// See the examples/ directory for complete working examples:
//
//   - examples/list/   - List servers
//   - examples/get/    - Get server details and stats
//   - examples/action/ - Send a lifecycle action to a server
//   - examples/logs/   - Fetch server logs with options
//   - examples/login/  - Obtain a token from credentials
//   - examples/debug/  - Enable request debug logging
//
// # See Also
//
//   - Crafty Controller: https://craftycontrol.com
//   - Project repository: https://gitlab.com/crafty-controller
package crafty
