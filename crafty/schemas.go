package crafty

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SchemasService retrieves the JSON schemas the panel publishes for its
// request bodies.
type SchemasService service

// Schema names accepted by SchemasService.Get.
var validSchemas = map[string]bool{
	"login":        true,
	"modify_role":  true,
	"create_role":  true,
	"server_patch": true,
	"new_server":   true,
	"user_patch":   true,
	"new_user":     true,
	"new_task":     true,
	"patch_task":   true,
}

// Get returns the JSON schema document for the named endpoint. Unknown
// names are rejected before any network I/O.
func (s *SchemasService) Get(ctx context.Context, name string) (json.RawMessage, *Response, error) {
	if !validSchemas[name] {
		names := make([]string, 0, len(validSchemas))
		for n := range validSchemas {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, nil, fmt.Errorf("invalid schema %q, must be one of: %s", name, strings.Join(names, ", "))
	}

	u := schemaPath + "/" + name
	req, err := s.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, nil, err
	}

	var schema json.RawMessage
	resp, err := s.client.do(ctx, req, &schema)
	if err != nil {
		return nil, resp, err
	}
	return schema, resp, nil
}
