package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const testJWT = "header.payload.signature"

func loginPayload() LoginResponse {
	return LoginResponse{
		User:         UserProfile{ID: "m1", Email: "admin@promobandhu.com", Role: "Admin"},
		AccessToken:  testJWT,
		RefreshToken: "refresh-1",
	}
}

// newLoggedInClient returns a client with a stored session pointing at
// the given server.
func newLoggedInClient(t *testing.T, server *httptest.Server, onExpired func()) *Client {
	t.Helper()

	c := NewClient(Config{BaseURL: server.URL, OnSessionExpired: onExpired})
	resp := loginPayload()
	c.session.save(&resp)
	return c
}

func TestLogin(t *testing.T) {
	t.Run("successful login stores the session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/admin/login" {
				t.Errorf("expected /admin/login, got %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(loginPayload())
		}))
		defer server.Close()

		c := NewClient(Config{BaseURL: server.URL})
		profile, err := c.Login("admin@promobandhu.com", "secret123")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if profile.Email != "admin@promobandhu.com" {
			t.Errorf("unexpected profile email %q", profile.Email)
		}
		if !c.IsAuthenticated() {
			t.Error("expected authenticated session")
		}
	})

	t.Run("blank credentials fail without a network call", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		c := NewClient(Config{BaseURL: server.URL})
		_, err := c.Login("", "secret123")

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Errorf("expected no HTTP call, got %d", calls)
		}
	})

	t.Run("401 maps to a friendly message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Unauthorized","detail":"bad credentials"}`))
		}))
		defer server.Close()

		c := NewClient(Config{BaseURL: server.URL})
		_, err := c.Login("admin@promobandhu.com", "wrong")

		var aerr *AuthError
		if !errors.As(err, &aerr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if aerr.Message != "Invalid email or password" {
			t.Errorf("unexpected message %q", aerr.Message)
		}
	})
}

func TestErrorEnvelopes(t *testing.T) {
	t.Run("flattens RFC 7807 field errors with a pipe", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"title": "Validation Error",
				"detail": "One or more fields failed validation",
				"errors": [
					{"field": "name", "message": "name is too short"},
					{"field": "email", "message": "email is invalid"}
				]
			}`))
		}))
		defer server.Close()

		c := newLoggedInClient(t, server, nil)
		_, err := c.CreateGroup(CreateGroupRequest{Name: "Ops"})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		want := "name is too short | email is invalid"
		if verr.Message != want {
			t.Errorf("expected %q, got %q", want, verr.Message)
		}
	})

	t.Run("flattens legacy fieldErrors envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"error": {
					"message": "Validation failed",
					"details": {"fieldErrors": {"name": ["name is required"]}}
				}
			}`))
		}))
		defer server.Close()

		c := newLoggedInClient(t, server, nil)
		_, err := c.CreateGroup(CreateGroupRequest{Name: "Ops"})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Message != "name is required" {
			t.Errorf("expected %q, got %q", "name is required", verr.Message)
		}
	})

	t.Run("legacy envelope without field errors uses the message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error": {"message": "Duplicate key"}}`))
		}))
		defer server.Close()

		c := newLoggedInClient(t, server, nil)
		_, err := c.CreatePermission(CreatePermissionRequest{Key: "TEAM_VIEW"})

		var cerr *ConflictError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if cerr.Message != "Duplicate key" {
			t.Errorf("expected %q, got %q", "Duplicate key", cerr.Message)
		}
	})

	t.Run("transport failure yields NetworkError", func(t *testing.T) {
		c := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
		resp := loginPayload()
		c.session.save(&resp)

		_, err := c.GetGroups()

		var nerr *NetworkError
		if !errors.As(err, &nerr) {
			t.Fatalf("expected NetworkError, got %v", err)
		}
	})
}

func TestPreflightValidation(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c := newLoggedInClient(t, server, nil)

	t.Run("short permission key is rejected locally", func(t *testing.T) {
		if _, err := c.CreatePermission(CreatePermissionRequest{Key: "AB"}); err == nil {
			t.Error("expected error, got success")
		}
	})

	t.Run("short group name is rejected locally", func(t *testing.T) {
		if _, err := c.CreateGroup(CreateGroupRequest{Name: "A"}); err == nil {
			t.Error("expected error, got success")
		}
	})

	t.Run("mismatched subscription dates are rejected locally", func(t *testing.T) {
		start := time.Now()
		_, err := c.CreateSubscription(CreateSubscriptionRequest{
			BusinessID: "b1",
			Plan:       "basic",
			Status:     "active",
			StartDate:  &start,
		})
		if err == nil {
			t.Error("expected error, got success")
		}
	})

	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no HTTP calls, got %d", calls)
	}
}

func TestCancelSubscription(t *testing.T) {
	t.Run("cancelling a cancelled subscription skips the network", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		c := newLoggedInClient(t, server, nil)
		sub := &Subscription{ID: "s1", Status: "cancelled"}

		resp, err := c.CancelSubscription(sub)
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if resp.Warning == "" {
			t.Error("expected a warning for the repeated cancel")
		}
		if resp.Subscription.Status != "cancelled" {
			t.Errorf("expected record unchanged, got status %q", resp.Subscription.Status)
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Errorf("expected no HTTP call, got %d", calls)
		}
	})

	t.Run("active subscription goes through the cancel endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/admin/subscriptions/s1/cancel" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(CancelSubscriptionResponse{
				Subscription: Subscription{ID: "s1", Status: "cancelled"},
			})
		}))
		defer server.Close()

		c := newLoggedInClient(t, server, nil)
		resp, err := c.CancelSubscription(&Subscription{ID: "s1", Status: "active"})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if resp.Subscription.Status != "cancelled" {
			t.Errorf("expected cancelled, got %q", resp.Subscription.Status)
		}
	})
}

func TestPartialUpdatesUsePatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH on %s, got %s", r.URL.Path, r.Method)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newLoggedInClient(t, server, nil)

	if _, err := c.UpdateGroup(1, "Operations"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if _, err := c.UpdateTeamMember("m1", UpdateTeamMemberRequest{}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	t.Run("expiry callback fires once under concurrent 401s", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		var fired int32
		c := newLoggedInClient(t, server, func() {
			atomic.AddInt32(&fired, 1)
		})

		var wg sync.WaitGroup
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = c.GetGroups()
			}()
		}
		wg.Wait()

		if got := atomic.LoadInt32(&fired); got != 1 {
			t.Errorf("expected callback to fire once, got %d", got)
		}
		if c.IsAuthenticated() {
			t.Error("expected session cleared after expiry")
		}
		if c.session.accessToken() != "" {
			t.Error("expected token removed from storage")
		}
	})

	t.Run("forbidden response also trips the guard", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		var fired int32
		c := newLoggedInClient(t, server, func() {
			atomic.AddInt32(&fired, 1)
		})

		_, _ = c.GetGroups()
		_, _ = c.GetGroups()

		if got := atomic.LoadInt32(&fired); got != 1 {
			t.Errorf("expected callback to fire once on 403, got %d", got)
		}
		if c.IsAuthenticated() {
			t.Error("expected session cleared after 403")
		}
	})

	t.Run("mid-session 401 reads as an expired session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		c := newLoggedInClient(t, server, nil)
		_, err := c.GetGroups()

		var aerr *AuthError
		if !errors.As(err, &aerr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if aerr.Message != "Session expired" {
			t.Errorf("expected %q, got %q", "Session expired", aerr.Message)
		}
	})

	t.Run("a new login re-arms the expiry latch", func(t *testing.T) {
		var status int32 = http.StatusUnauthorized
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/admin/login" {
				_ = json.NewEncoder(w).Encode(loginPayload())
				return
			}
			w.WriteHeader(int(atomic.LoadInt32(&status)))
		}))
		defer server.Close()

		var fired int32
		c := newLoggedInClient(t, server, func() {
			atomic.AddInt32(&fired, 1)
		})

		_, _ = c.GetGroups()
		if _, err := c.Login("admin@promobandhu.com", "secret123"); err != nil {
			t.Fatalf("re-login failed: %v", err)
		}
		_, _ = c.GetGroups()

		if got := atomic.LoadInt32(&fired); got != 2 {
			t.Errorf("expected callback twice across two sessions, got %d", got)
		}
	})

	t.Run("unauthenticated client fails without a network call", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		c := NewClient(Config{BaseURL: server.URL})
		_, err := c.GetGroups()

		var aerr *AuthError
		if !errors.As(err, &aerr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Errorf("expected no HTTP call, got %d", calls)
		}
	})
}
