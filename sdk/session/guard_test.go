package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth/sdk"
)

func newAnonymousSession(t *testing.T) *Session {
	sess := New(
		NewMemoryTokenStore(),
		&mockAuthAPI{
			LoginFn: func(
				context.Context,
				string,
				string,
			) (sdk.AuthResponse, error) {
				return testAuthResponse, nil
			},
			CurrentUserFn: func(context.Context) (sdk.User, error) {
				return sdk.User{}, nil
			},
		},
	)
	sess.Hydrate(context.Background())
	require.Equal(t, StateAnonymous, sess.Snapshot().State)
	return sess
}

func TestGuardWaitsWhileLoading(t *testing.T) {
	sess := New(NewMemoryTokenStore(), &mockAuthAPI{})
	navigations := 0
	guard := NewGuard(
		sess,
		true,
		"login",
		NavigatorFunc(func(string) {
			navigations++
		}),
	)
	require.Equal(t, DecisionWait, guard.Evaluate())
	// No redirect decision may be made while the session is unresolved.
	require.Zero(t, navigations)
}

func TestGuardAllowsWhenAuthNotRequired(t *testing.T) {
	sess := newAnonymousSession(t)
	guard := NewGuard(sess, false, "login", nil)
	require.Equal(t, DecisionAllow, guard.Evaluate())
}

func TestGuardAllowsAuthenticated(t *testing.T) {
	sess := newAnonymousSession(t)
	_, err := sess.Login(context.Background(), "jamie@example.com", "letmein12")
	require.NoError(t, err)
	guard := NewGuard(sess, true, "login", nil)
	require.Equal(t, DecisionAllow, guard.Evaluate())
}

func TestGuardRedirectsExactlyOnce(t *testing.T) {
	sess := newAnonymousSession(t)
	var targets []string
	guard := NewGuard(
		sess,
		true,
		"login",
		NavigatorFunc(func(target string) {
			targets = append(targets, target)
		}),
	)
	require.Equal(t, DecisionDeny, guard.Evaluate())
	require.Equal(t, DecisionDeny, guard.Evaluate())
	require.Equal(t, DecisionDeny, guard.Evaluate())
	require.Equal(t, []string{"login"}, targets)
}

func TestGuardRedirectsAgainAfterNewDenial(t *testing.T) {
	sess := newAnonymousSession(t)
	navigations := 0
	guard := NewGuard(
		sess,
		true,
		"login",
		NavigatorFunc(func(string) {
			navigations++
		}),
	)

	require.Equal(t, DecisionDeny, guard.Evaluate())
	require.Equal(t, 1, navigations)

	_, err := sess.Login(context.Background(), "jamie@example.com", "letmein12")
	require.NoError(t, err)
	require.Equal(t, DecisionAllow, guard.Evaluate())

	// A fresh fall to anonymous is a new denial with its own single redirect.
	sess.ForceLogout("token rejected")
	require.Equal(t, DecisionDeny, guard.Evaluate())
	require.Equal(t, DecisionDeny, guard.Evaluate())
	require.Equal(t, 2, navigations)
}

func TestGuardResolveWaitsOutHydration(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("opensesame"))
	hydrationStarted := make(chan struct{})
	releaseHydration := make(chan struct{})
	sess := New(
		store,
		&mockAuthAPI{
			CurrentUserFn: func(context.Context) (sdk.User, error) {
				close(hydrationStarted)
				<-releaseHydration
				return testUser, nil
			},
		},
	)
	guard := NewGuard(sess, true, "login", nil)

	go sess.Hydrate(context.Background())
	<-hydrationStarted
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(releaseHydration)
	}()

	decision, err := guard.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, DecisionAllow, decision)
}

func TestGuardResolveAlreadySettled(t *testing.T) {
	sess := newAnonymousSession(t)
	guard := NewGuard(sess, true, "login", nil)
	decision, err := guard.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, DecisionDeny, decision)
}

func TestGuardResolveCanceled(t *testing.T) {
	sess := New(NewMemoryTokenStore(), &mockAuthAPI{})
	guard := NewGuard(sess, true, "login", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := guard.Resolve(ctx)
	require.Error(t, err)
	require.Equal(t, context.DeadlineExceeded, err)
}

func TestGuardRun(t *testing.T) {
	sess := newAnonymousSession(t)
	decisions := make(chan Decision, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go guardRun(ctx, sess, decisions)

	requireNextDecision(t, decisions, DecisionDeny)

	_, err := sess.Login(context.Background(), "jamie@example.com", "letmein12")
	require.NoError(t, err)
	requireNextDecision(t, decisions, DecisionAllow)

	sess.ForceLogout("token rejected")
	requireNextDecision(t, decisions, DecisionDeny)
}

func guardRun(ctx context.Context, sess *Session, decisions chan Decision) {
	guard := NewGuard(sess, true, "login", nil)
	guard.Run(ctx, func(decision Decision) {
		decisions <- decision
	})
}

func requireNextDecision(
	t *testing.T,
	decisions chan Decision,
	expected Decision,
) {
	timeout := time.After(5 * time.Second)
	for {
		select {
		case decision := <-decisions:
			// Loading-phase WAITs and repeats of the prior decision may
			// precede the one we're waiting on.
			if decision == expected {
				return
			}
		case <-timeout:
			require.Failf(
				t,
				"timed out",
				"never observed decision %s",
				expected,
			)
		}
	}
}
