package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"ridelite/internal/domain"
	"ridelite/internal/store"
)

const defaultAddress = "House 123, Road 12, Block B, Banani, Dhaka 1213"

// SessionService owns the mock user roster and the authenticated session.
// Roster mutations are always rewritten to the store in full.
type SessionService struct {
	store      store.Store
	loginDelay time.Duration
	sim        Sim

	mu      sync.Mutex
	current *domain.User
	roster  []domain.StoredUser
	loading bool
}

// NewSessionService creates a SessionService and rehydrates it from the
// store: the roster from the mockUsers key (falling back to the seed
// accounts) and the session from the user key (absence means logged out).
func NewSessionService(ctx context.Context, st store.Store, loginDelay time.Duration, sim Sim) (*SessionService, error) {
	s := &SessionService{
		store:      st,
		loginDelay: loginDelay,
		sim:        sim,
	}

	var roster []domain.StoredUser
	ok, err := store.GetJSON(ctx, st, store.KeyMockUsers, &roster)
	if err != nil {
		return nil, err
	}
	if !ok {
		roster = domain.SeedUsers()
	}
	s.roster = roster

	var user domain.User
	ok, err = store.GetJSON(ctx, st, store.KeyUser, &user)
	if err != nil {
		return nil, err
	}
	if ok {
		s.current = &user
	}

	return s, nil
}

// Login authenticates against the roster with a case-sensitive exact match
// on email and password. On success the password is stripped and the session
// user is persisted; on failure the session is left untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	// Simulated network latency; the lock is not held while sleeping.
	s.sim.Sleep(s.loginDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.roster {
		if entry.Email == email && entry.Password == password {
			user := entry.Public()
			if err := store.SetJSON(ctx, s.store, store.KeyUser, user); err != nil {
				return nil, err
			}
			s.current = &user
			return &user, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Register appends a new roster entry and logs the new user in. The email
// must not already exist in the roster (case-sensitive).
func (s *SessionService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.sim.Sleep(s.loginDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.roster {
		if entry.Email == email {
			return nil, ErrEmailTaken
		}
	}

	entry := domain.StoredUser{
		User: domain.User{
			ID:         "user_" + strconv.FormatInt(s.sim.Now().UnixMilli(), 10),
			Name:       name,
			Email:      email,
			Phone:      fmt.Sprintf("+880 17%08d", s.sim.Rand.Intn(100000000)),
			Address:    defaultAddress,
			ProfilePic: "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random",
		},
		Password: password,
	}

	roster := append(append([]domain.StoredUser(nil), s.roster...), entry)
	if err := store.SetJSON(ctx, s.store, store.KeyMockUsers, roster); err != nil {
		return nil, err
	}

	user := entry.Public()
	if err := store.SetJSON(ctx, s.store, store.KeyUser, user); err != nil {
		return nil, err
	}

	s.roster = roster
	s.current = &user
	return &user, nil
}

// Logout clears the session and the persisted user key. The roster is never
// touched.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, store.KeyUser); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// UpdateProfile updates the session user's editable fields and the matching
// roster entry, persisting both. Empty fields are left unchanged.
func (s *SessionService) UpdateProfile(ctx context.Context, name, phone, address string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNotAuthenticated
	}

	user := *s.current
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if address != "" {
		user.Address = address
	}

	roster := append([]domain.StoredUser(nil), s.roster...)
	for i := range roster {
		if roster[i].ID == user.ID {
			roster[i].User = user
		}
	}

	if err := store.SetJSON(ctx, s.store, store.KeyMockUsers, roster); err != nil {
		return nil, err
	}
	if err := store.SetJSON(ctx, s.store, store.KeyUser, user); err != nil {
		return nil, err
	}

	s.roster = roster
	s.current = &user
	return &user, nil
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *SessionService) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsAuthenticated reports whether a session user is set.
func (s *SessionService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// IsLoading reports whether a login or registration is in flight.
func (s *SessionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Roster returns a copy of the stored user roster (for test assertions and
// the admin listing).
func (s *SessionService) Roster() []domain.StoredUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StoredUser(nil), s.roster...)
}

func (s *SessionService) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
