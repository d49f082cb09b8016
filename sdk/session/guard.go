package session

import (
	"context"
	"sync"
)

// Navigator performs the "go somewhere else" side of a guard decision. In a
// browser this would be a route change; in the CLI it surfaces the login hint.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts an ordinary function to the Navigator interface.
type NavigatorFunc func(target string)

// Navigate implements Navigator.
func (n NavigatorFunc) Navigate(target string) {
	n(target)
}

// Decision is the outcome of evaluating a Guard against the current session
// state.
type Decision string

const (
	// DecisionWait means the session is still resolving; render nothing and
	// make no redirect decision yet. Redirecting now would bounce a user who
	// is merely mid-hydration.
	DecisionWait Decision = "WAIT"
	// DecisionAllow means the protected content may be shown.
	DecisionAllow Decision = "ALLOW"
	// DecisionDeny means authentication was required and absent; the Guard
	// has navigated (at most once) to its redirect target.
	DecisionDeny Decision = "DENY"
)

// Guard gates access to protected views based on Session state. It waits out
// loading, then either admits the caller or performs a one-time navigation to
// the configured target.
type Guard struct {
	session     *Session
	requireAuth bool
	redirectTo  string
	navigator   Navigator

	mu         sync.Mutex
	redirected bool
}

// NewGuard returns a Guard over the given session. If requireAuth is false
// the Guard admits everyone once loading has settled, which mirrors wrapping
// an unprotected view.
func NewGuard(
	session *Session,
	requireAuth bool,
	redirectTo string,
	navigator Navigator,
) *Guard {
	return &Guard{
		session:     session,
		requireAuth: requireAuth,
		redirectTo:  redirectTo,
		navigator:   navigator,
	}
}

// Evaluate inspects the current session snapshot and returns a decision,
// navigating as a side effect of the first DENY.
func (g *Guard) Evaluate() Decision {
	return g.evaluate(g.session.Snapshot())
}

func (g *Guard) evaluate(snapshot Snapshot) Decision {
	if snapshot.Loading {
		return DecisionWait
	}
	if !g.requireAuth || snapshot.Authenticated() {
		// A fresh transition to unauthenticated later on gets its own
		// (single) redirect.
		g.mu.Lock()
		g.redirected = false
		g.mu.Unlock()
		return DecisionAllow
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.redirected {
		g.redirected = true
		if g.navigator != nil {
			g.navigator.Navigate(g.redirectTo)
		}
	}
	return DecisionDeny
}

// Resolve blocks until the session has left its loading state (or ctx ends),
// then evaluates. This is the entry point for callers that need a definitive
// admit/deny before proceeding, like CLI commands.
func (g *Guard) Resolve(ctx context.Context) (Decision, error) {
	snapshots, cancel := g.session.Watch()
	defer cancel()
	// The session may already be settled; the watch above only covers changes
	// that happen after this point.
	snapshot := g.session.Snapshot()
	for snapshot.Loading {
		select {
		case next, ok := <-snapshots:
			if !ok {
				snapshot = g.session.Snapshot()
			} else {
				snapshot = next
			}
		case <-ctx.Done():
			return DecisionWait, ctx.Err()
		}
	}
	return g.evaluate(snapshot), nil
}

// Run re-evaluates the Guard every time the session changes, invoking the
// callback with each decision, until ctx ends. A logout elsewhere in the
// program therefore re-triggers the redirect decision, exactly as a mounted
// route guard would.
func (g *Guard) Run(ctx context.Context, decisions func(Decision)) {
	snapshots, cancel := g.session.Watch()
	defer cancel()
	decisions(g.Evaluate())
	for {
		select {
		case snapshot, ok := <-snapshots:
			if !ok {
				return
			}
			decisions(g.evaluate(snapshot))
		case <-ctx.Done():
			return
		}
	}
}
