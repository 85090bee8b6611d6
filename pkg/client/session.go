package client

import (
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
)

// Storage keys used for the persisted session.
const (
	accessTokenKey  = "pb_admin_access_token"
	refreshTokenKey = "pb_admin_refresh_token"
	userProfileKey  = "pb_admin_user"
)

// Storage persists the session across client restarts. Implementations
// must be safe for concurrent use.
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

// MemoryStorage is an in-memory Storage, suitable for tests and
// short-lived tools.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// session tracks the authenticated state of a Client.
type session struct {
	storage Storage
	// expired latches the first session expiry so concurrent 401/403
	// responses trigger the expiry callback exactly once
	expired atomic.Bool
}

func newSession(storage Storage) *session {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &session{storage: storage}
}

func (s *session) save(resp *LoginResponse) {
	profile, _ := json.Marshal(resp.User)
	s.storage.Set(accessTokenKey, resp.AccessToken)
	s.storage.Set(refreshTokenKey, resp.RefreshToken)
	s.storage.Set(userProfileKey, string(profile))
	s.expired.Store(false)
}

func (s *session) clear() {
	s.storage.Delete(accessTokenKey)
	s.storage.Delete(refreshTokenKey)
	s.storage.Delete(userProfileKey)
}

func (s *session) accessToken() string {
	return s.storage.Get(accessTokenKey)
}

func (s *session) refreshToken() string {
	return s.storage.Get(refreshTokenKey)
}

func (s *session) profile() *UserProfile {
	raw := s.storage.Get(userProfileKey)
	if raw == "" {
		return nil
	}
	var profile UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil
	}
	return &profile
}

// expireOnce reports true for the first expiry after a login; later
// calls return false until the next successful login.
func (s *session) expireOnce() bool {
	return s.expired.CompareAndSwap(false, true)
}

// IsAuthenticated reports whether a session is stored. It does not
// verify the token with the server.
func (c *Client) IsAuthenticated() bool {
	return c.session.accessToken() != "" && c.session.profile() != nil
}

// CurrentUser returns the cached profile of the signed-in admin, or nil.
func (c *Client) CurrentUser() *UserProfile {
	return c.session.profile()
}

// ValidateSession is a cheap local sanity check: a token and profile
// are present and the token has the three-segment shape of a JWT. It
// deliberately does not verify the signature or expiry — the server
// remains the authority and will answer 401 to a stale token.
func (c *Client) ValidateSession() bool {
	token := c.session.accessToken()
	if token == "" || c.session.profile() == nil {
		return false
	}
	return len(strings.Split(token, ".")) == 3
}
