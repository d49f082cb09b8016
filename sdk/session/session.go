package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/imdario/mergo"

	"github.com/hearthhq/hearth/sdk"
)

// State identifies where a Session is in its lifecycle.
type State string

const (
	// StateUninitialized is the state of a freshly constructed Session on
	// which Hydrate has not yet been invoked.
	StateUninitialized State = "UNINITIALIZED"
	// StateHydrating is the state of a Session reconstructing itself from a
	// persisted token.
	StateHydrating State = "HYDRATING"
	// StateAuthenticated is the state of a Session with a confirmed user and
	// token.
	StateAuthenticated State = "AUTHENTICATED"
	// StateAnonymous is the state of a Session with no usable credentials.
	StateAnonymous State = "ANONYMOUS"
)

// AuthAPI is the slice of the Hearth API surface the Session drives. The
// api package's SessionsClient + UsersClient provide all of these operations;
// the adapter in the CLI glues them together.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (sdk.AuthResponse, error)
	Register(
		ctx context.Context,
		req sdk.RegisterRequest,
	) (sdk.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (sdk.User, error)
}

// Snapshot is a point-in-time, immutable view of a Session.
type Snapshot struct {
	State   State
	Token   string
	User    *sdk.User
	Loading bool
}

// Authenticated indicates whether the snapshot represents a signed-in user.
// Both the token and a confirmed profile must be present; a token that has
// not (yet) resolved to a user is treated as unauthenticated.
func (s Snapshot) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Session owns the client's in-memory authentication state and is the single
// writer of the TokenStore. The in-memory token and the stored token only ever
// change together, inside one critical section, so no other component can
// observe them diverged.
type Session struct {
	mu      sync.RWMutex
	store   TokenStore
	api     AuthAPI
	state   State
	token   string
	user    *sdk.User
	loading bool

	watcherMu     sync.Mutex
	watchers      map[int]chan Snapshot
	nextWatcherID int
}

// New returns an empty Session. Per the lifecycle contract it begins loading;
// callers are expected to invoke Hydrate exactly once before consulting
// authentication state.
func New(store TokenStore, api AuthAPI) *Session {
	return &Session{
		store:    store,
		api:      api,
		state:    StateUninitialized,
		loading:  true,
		watchers: map[int]chan Snapshot{},
	}
}

// Snapshot returns a point-in-time view of the Session.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		State:   s.state,
		Token:   s.token,
		Loading: s.loading,
	}
	if s.user != nil {
		user := *s.user
		snapshot.User = &user
	}
	return snapshot
}

// Hydrate attempts to reconstruct the Session from a persisted token. With no
// stored token it settles to ANONYMOUS without any network call. With a stored
// token it confirms the identity via the profile endpoint; ANY failure there
// (transport error, 401, malformed payload) removes the token from both the
// store and memory and settles to ANONYMOUS. Hydrate never propagates an
// error: degraded startup is anonymous startup.
func (s *Session) Hydrate(ctx context.Context) {
	s.mu.Lock()
	s.state = StateHydrating
	s.loading = true
	s.mu.Unlock()
	s.notify()

	token, err := s.store.Get()
	if err != nil {
		glog.Warningf("error reading token store during hydration: %s", err)
	}
	if token == "" {
		s.mu.Lock()
		s.state = StateAnonymous
		s.loading = false
		s.mu.Unlock()
		s.notify()
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := s.api.CurrentUser(ctx)

	s.mu.Lock()
	defer s.notify()
	defer s.mu.Unlock()
	if err != nil {
		glog.Warningf("discarding stored token; profile fetch failed: %s", err)
		if err := s.store.Remove(); err != nil {
			glog.Warningf("error removing stored token: %s", err)
		}
		s.token = ""
		s.user = nil
		s.state = StateAnonymous
		s.loading = false
		return
	}
	s.user = &user
	s.state = StateAuthenticated
	s.loading = false
}

// Login authenticates with email/password credentials. On success the
// in-memory token and user and the persisted token are all updated within one
// critical section, and the server's payload is returned to the caller. On
// failure the Session is left exactly as it was and the error is returned for
// the caller to display.
func (s *Session) Login(
	ctx context.Context,
	email string,
	password string,
) (*sdk.AuthResponse, error) {
	return s.establish(func() (sdk.AuthResponse, error) {
		return s.api.Login(ctx, email, password)
	})
}

// Register creates a new account. Its contract is identical to Login's: on
// success the session becomes authenticated as the new user; on failure state
// is untouched and the error is the caller's to handle. Validating the input
// (required fields, password confirmation) is the caller's concern.
func (s *Session) Register(
	ctx context.Context,
	req sdk.RegisterRequest,
) (*sdk.AuthResponse, error) {
	return s.establish(func() (sdk.AuthResponse, error) {
		return s.api.Register(ctx, req)
	})
}

func (s *Session) establish(
	authenticate func() (sdk.AuthResponse, error),
) (*sdk.AuthResponse, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	authResponse, err := authenticate()

	s.mu.Lock()
	defer s.notify()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return nil, err
	}
	s.token = authResponse.Token
	user := authResponse.User
	s.user = &user
	s.state = StateAuthenticated
	if err := s.store.Set(authResponse.Token); err != nil {
		// The in-memory session is still good; it just won't survive a
		// restart. Surfacing this as a login failure would be worse.
		glog.Warningf("error persisting token: %s", err)
	}
	return &authResponse, nil
}

// Logout clears the Session immediately and unconditionally. The server-side
// session teardown is fired as a best-effort notification that neither blocks
// the caller nor surfaces its failure. Calling Logout on an already-anonymous
// Session is a no-op.
func (s *Session) Logout(ctx context.Context) {
	s.clear()

	go func() {
		// Detached from the caller's context: the caller has already moved
		// on, and an unmount/cancel must not abort the courtesy ping.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.api.Logout(ctx); err != nil {
			glog.Warningf("best-effort server-side logout failed: %s", err)
		}
	}()
}

// ForceLogout is the entry point for the global 401 side channel: when any
// API call comes back unauthorized, the HTTP machinery funnels the teardown
// through here so there is exactly one authority over the transition to
// ANONYMOUS. No server notification is sent; the server already considers the
// token dead.
func (s *Session) ForceLogout(reason string) {
	glog.Warningf("session forcibly ended: %s", reason)
	s.clear()
}

func (s *Session) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
	s.loading = false
	if err := s.store.Remove(); err != nil {
		glog.Warningf("error removing stored token: %s", err)
	}
	s.mu.Unlock()
	s.notify()
}

// UpdateUser shallow-merges the non-zero fields of the given patch into the
// in-memory profile, if one is present. It involves no network call and no
// persistence: a rehydration (or restart) reverts to whatever the server
// holds, unless the caller separately pushed the change via the API.
func (s *Session) UpdateUser(patch sdk.User) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	if err := mergo.Merge(s.user, patch, mergo.WithOverride); err != nil {
		glog.Warningf("error merging user patch: %s", err)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notify()
}

// Watch returns a channel on which snapshots are delivered whenever the
// Session's state changes, along with a function to cancel the watch.
// Deliveries are best-effort: a watcher that falls far enough behind misses
// intermediate snapshots, never the terminal one it can always re-read via
// Snapshot().
func (s *Session) Watch() (<-chan Snapshot, func()) {
	s.watcherMu.Lock()
	defer s.watcherMu.Unlock()
	id := s.nextWatcherID
	s.nextWatcherID++
	ch := make(chan Snapshot, 16)
	s.watchers[id] = ch
	return ch, func() {
		s.watcherMu.Lock()
		defer s.watcherMu.Unlock()
		if _, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(ch)
		}
	}
}

func (s *Session) notify() {
	snapshot := s.Snapshot()
	s.watcherMu.Lock()
	defer s.watcherMu.Unlock()
	for _, ch := range s.watchers {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
