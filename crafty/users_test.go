package crafty

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"testing"
)

func TestUsersService_List(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "GET")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"status": "ok",
			"data": [
				{"user_id": 1, "username": "admin", "enabled": true, "superuser": true},
				{"user_id": 2, "username": "steve", "enabled": true, "superuser": false, "roles": [2]}
			]
		}`)
	})

	users, _, err := client.Users.List(context.Background())
	if err != nil {
		t.Fatalf("Users.List returned error: %v", err)
	}

	want := []User{
		{UserID: 1, Username: "admin", Enabled: true, Superuser: true},
		{UserID: 2, Username: "steve", Enabled: true, Roles: []int{2}},
	}
	if !reflect.DeepEqual(users, want) {
		t.Errorf("Users.List returned %+v, want %+v", users, want)
	}
}

func TestUsersService_Get(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users/2", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "GET")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"status": "ok",
			"data": {
				"user_id": 2,
				"username": "steve",
				"email": "steve@example.com",
				"enabled": true,
				"lang": "en_US",
				"hints": true,
				"roles": [2, 3]
			}
		}`)
	})

	user, _, err := client.Users.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("Users.Get returned error: %v", err)
	}

	want := &User{
		UserID:   2,
		Username: "steve",
		Email:    "steve@example.com",
		Enabled:  true,
		Lang:     "en_US",
		Hints:    true,
		Roles:    []int{2, 3},
	}
	if !reflect.DeepEqual(user, want) {
		t.Errorf("Users.Get returned %+v, want %+v", user, want)
	}
}

func TestUsersService_Create(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "POST")

		var body map[string]any
		testBody(t, r, &body)
		if body["username"] != "steve" {
			t.Errorf("Create request username = %v, want steve", body["username"])
		}
		if _, ok := body["email"]; ok {
			t.Errorf("Create request body = %v, want empty email omitted", body)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ok", "data": {"user_id": 5}}`)
	})

	userID, _, err := client.Users.Create(context.Background(), &UserCreateRequest{
		Username: "steve",
		Password: "hunter2hunter2",
		Roles:    []int{2},
	})
	if err != nil {
		t.Fatalf("Users.Create returned error: %v", err)
	}
	if userID != 5 {
		t.Errorf("Users.Create returned user ID %d, want 5", userID)
	}
}

func TestUsersService_Create_Invalid(t *testing.T) {
	client, _, _, teardown := setup()
	defer teardown()

	ctx := context.Background()
	if _, _, err := client.Users.Create(ctx, nil); err == nil {
		t.Error("Users.Create with nil request expected error, got nil")
	}
	if _, _, err := client.Users.Create(ctx, &UserCreateRequest{Username: "steve"}); err == nil {
		t.Error("Users.Create without password expected error, got nil")
	}
	if _, _, err := client.Users.Create(ctx, &UserCreateRequest{Password: "x"}); err == nil {
		t.Error("Users.Create without username expected error, got nil")
	}
}

func TestUsersService_Update(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users/5", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "PATCH")

		var body map[string]any
		testBody(t, r, &body)
		want := map[string]any{
			"email":   "new@example.com",
			"enabled": false,
		}
		if !reflect.DeepEqual(body, want) {
			t.Errorf("Update request body = %v, want %v", body, want)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ok"}`)
	})

	_, err := client.Users.Update(context.Background(), 5, &UserUpdateRequest{
		Email:   String("new@example.com"),
		Enabled: Bool(false),
	})
	if err != nil {
		t.Errorf("Users.Update returned error: %v", err)
	}
}

func TestUsersService_Delete(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users/5", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "DELETE")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ok"}`)
	})

	if _, err := client.Users.Delete(context.Background(), 5); err != nil {
		t.Errorf("Users.Delete returned error: %v", err)
	}
}

func TestUsersService_Permissions(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users/2/permissions", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "GET")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"status": "ok",
			"data": {"permissions": "110", "counters": {"SERVER_CREATION": 2, "USER_CONFIG": 0, "ROLES_CONFIG": 0}}
		}`)
	})

	perms, _, err := client.Users.Permissions(context.Background(), 2)
	if err != nil {
		t.Fatalf("Users.Permissions returned error: %v", err)
	}
	if perms.Permissions != "110" {
		t.Errorf("Permissions.Permissions = %q, want %q", perms.Permissions, "110")
	}
	if perms.Counters["SERVER_CREATION"] != 2 {
		t.Errorf("Permissions.Counters = %v, want SERVER_CREATION: 2", perms.Counters)
	}
}

func TestUsersService_ProfilePicture(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users/2/pfp", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "GET")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ok", "data": "https://cdn.example.com/pfp/2.png"}`)
	})

	link, _, err := client.Users.ProfilePicture(context.Background(), 2)
	if err != nil {
		t.Fatalf("Users.ProfilePicture returned error: %v", err)
	}
	if want := "https://cdn.example.com/pfp/2.png"; link != want {
		t.Errorf("Users.ProfilePicture returned %q, want %q", link, want)
	}
}

func TestUsersService_PublicData(t *testing.T) {
	client, mux, _, teardown := setup()
	defer teardown()

	mux.HandleFunc("/api/v2/users/2/public", func(w http.ResponseWriter, r *http.Request) {
		testMethod(t, r, "GET")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status": "ok", "data": {"user_id": 2, "username": "steve"}}`)
	})

	user, _, err := client.Users.PublicData(context.Background(), 2)
	if err != nil {
		t.Fatalf("Users.PublicData returned error: %v", err)
	}
	if user.Username != "steve" {
		t.Errorf("Users.PublicData username = %q, want steve", user.Username)
	}
}
