package crafty

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestSchemasService_Get(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/jsonschema/login", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "GET")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"status": "ok",
			"data": {"type": "object", "required": ["username", "password"]}
		}`)
	})

	schema, _, err := client.Schemas.Get(context.Background(), "login")
	if err != nil {
		t.Fatalf("Schemas.Get returned error: %v", err)
	}
	if !strings.Contains(string(schema), `"required"`) {
		t.Errorf("Schemas.Get returned %s, want schema document", schema)
	}
}

func TestSchemasService_Get_InvalidName(t *testing.T) {
	client, _, _, teardown := setup()
	defer teardown()

	_, _, err := client.Schemas.Get(context.Background(), "nonexistent")
	if err == nil {
		t.Fatal("Schemas.Get with invalid name expected error, got nil")
	}
	if !strings.Contains(err.Error(), `invalid schema "nonexistent"`) {
		t.Errorf("Schemas.Get error = %q, want invalid schema message", err.Error())
	}
}
