package crafty

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestClient_APIVersion(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "GET")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ok", "data": {"version": "2.0.0"}}`)
	})

	version, _, err := client.APIVersion(context.Background())
	if err != nil {
		t.Fatalf("APIVersion returned error: %v", err)
	}
	if version != "2.0.0" {
		t.Errorf("APIVersion = %q, want %q", version, "2.0.0")
	}
}

func TestAPIVersionSupported(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"2.0.0", true},
		{"2.1.3", true},
		{"1.0.0", false},
		{"3.0.0", false},
		{"not-a-version", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			if got := APIVersionSupported(tt.version); got != tt.want {
				t.Errorf("APIVersionSupported(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
