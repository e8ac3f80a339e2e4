//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/crafty-controller/go-crafty/crafty"
)

// These tests run against a live panel. Set INTEGRATION_TESTS=true plus
// CRAFTY_SERVER and CRAFTY_TOKEN to enable them.

func integrationClient(t *testing.T) *crafty.Client {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TESTS=true to run.")
	}

	baseURL := os.Getenv("CRAFTY_SERVER")
	token := os.Getenv("CRAFTY_TOKEN")
	if baseURL == "" || token == "" {
		t.Skip("CRAFTY_SERVER and CRAFTY_TOKEN must be set to run integration tests.")
	}

	client, err := crafty.NewClient(baseURL, token, nil)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestClient_APIVersion_Integration(t *testing.T) {
	client := integrationClient(t)
	ctx := context.Background()

	version, _, err := client.APIVersion(ctx)
	if err != nil {
		t.Fatalf("APIVersion returned error: %v", err)
	}
	if version == "" {
		t.Fatal("APIVersion returned an empty version")
	}

	t.Logf("Panel API version: %s", version)
	if !crafty.APIVersionSupported(version) {
		t.Errorf("Panel API version %s is outside the supported range", version)
	}
}

func TestServersService_List_Integration(t *testing.T) {
	client := integrationClient(t)
	ctx := context.Background()

	servers, _, err := client.Servers.List(ctx)
	if err != nil {
		t.Fatalf("Servers.List returned error: %v", err)
	}

	t.Logf("Found %d servers", len(servers))
	for i, server := range servers {
		if i < 3 {
			t.Logf("  - [%d] %s (type %s)", server.ServerID, server.ServerName, server.Type)
		}
	}
}

func TestServersService_Stats_Integration(t *testing.T) {
	client := integrationClient(t)
	ctx := context.Background()

	servers, _, err := client.Servers.List(ctx)
	if err != nil {
		t.Fatalf("Servers.List returned error: %v", err)
	}
	if len(servers) == 0 {
		t.Skip("No servers available to test")
	}

	serverID := servers[0].ServerID
	stats, _, err := client.Servers.Stats(ctx, serverID)
	if err != nil {
		t.Fatalf("Servers.Stats returned error: %v", err)
	}

	t.Logf("Server %d running=%v online=%d/%d", serverID, stats.Running, stats.Online, stats.Max)
}

func TestSchemasService_Get_Integration(t *testing.T) {
	client := integrationClient(t)
	ctx := context.Background()

	schema, _, err := client.Schemas.Get(ctx, "login")
	if err != nil {
		t.Fatalf("Schemas.Get returned error: %v", err)
	}
	if len(schema) == 0 {
		t.Fatal("Schemas.Get returned an empty schema")
	}

	t.Logf("login schema is %d bytes", len(schema))
}
