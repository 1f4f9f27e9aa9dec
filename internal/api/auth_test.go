package api

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/db"
	"github.com/ayursutra/panchakarma-portal/internal/models"
	"github.com/ayursutra/panchakarma-portal/internal/store"
)

// setupStore opens an isolated seeded in-memory store for one test.
func setupStore(t *testing.T) *store.Store {
	t.Helper()
	conn, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(conn); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store.New(conn)
}

func TestLoginSeededUsers(t *testing.T) {
	a := NewAuthAPI(setupStore(t), Delays{}, zerolog.Nop())

	for _, username := range []string{"patient1", "practitioner1"} {
		resp, err := a.Login(Credentials{Username: username, Password: DemoPassword})
		if err != nil {
			t.Fatalf("login %s: %v", username, err)
		}
		if !resp.Success {
			t.Fatalf("login %s: expected success, got error %q", username, resp.Error)
		}
		if resp.Data.User.Username != username {
			t.Fatalf("login %s: got user %q", username, resp.Data.User.Username)
		}
		if want := "mock-jwt-token-" + resp.Data.User.ID; resp.Data.Token != want {
			t.Fatalf("token = %q, want %q", resp.Data.Token, want)
		}
		if resp.Data.ExpiresIn != 3600 {
			t.Fatalf("expiresIn = %d, want 3600", resp.Data.ExpiresIn)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := NewAuthAPI(setupStore(t), Delays{}, zerolog.Nop())

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "patient1", "nope"},
		{"unknown user", "nobody", DemoPassword},
		{"both wrong", "nobody", "nope"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := a.Login(Credentials{Username: tc.username, Password: tc.password})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Success {
				t.Fatal("expected failure envelope")
			}
			if resp.Error != "Invalid credentials" {
				t.Fatalf("error = %q, want %q", resp.Error, "Invalid credentials")
			}
		})
	}
}

func TestLogoutNeverFails(t *testing.T) {
	a := NewAuthAPI(setupStore(t), Delays{}, zerolog.Nop())
	resp, err := a.Logout()
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !resp.Success || resp.Data != nil {
		t.Fatalf("logout envelope = %+v, want success with null data", resp)
	}
}

func TestVerify(t *testing.T) {
	st := setupStore(t)
	a := NewAuthAPI(st, Delays{}, zerolog.Nop())

	u := models.User{ID: "1"}
	if !a.Verify(u, TokenFor("1")) {
		t.Fatal("expected seeded user with matching token to verify")
	}
	if a.Verify(u, TokenFor("2")) {
		t.Fatal("expected mismatched token to fail")
	}
	if a.Verify(models.User{ID: "999"}, TokenFor("999")) {
		t.Fatal("expected unknown user to fail")
	}
}
