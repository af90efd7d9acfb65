package middleware

import (
	"sync"
	"time"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

type lockoutEntry struct {
	failures    int
	lockedUntil time.Time
}

var (
	lockoutMu sync.Mutex
	lockouts  = make(map[string]*lockoutEntry)
)

// IsAccountLocked reports whether the email is temporarily locked out.
func IsAccountLocked(email string) (bool, time.Duration) {
	lockoutMu.Lock()
	defer lockoutMu.Unlock()
	e, ok := lockouts[email]
	if !ok {
		return false, 0
	}
	if time.Now().Before(e.lockedUntil) {
		return true, time.Until(e.lockedUntil)
	}
	if !e.lockedUntil.IsZero() {
		delete(lockouts, email)
	}
	return false, 0
}

// RecordFailedLogin counts a failed attempt, locking the account after
// maxFailedLogins consecutive failures.
func RecordFailedLogin(email string) {
	lockoutMu.Lock()
	defer lockoutMu.Unlock()
	e, ok := lockouts[email]
	if !ok {
		e = &lockoutEntry{}
		lockouts[email] = e
	}
	e.failures++
	if e.failures >= maxFailedLogins {
		e.lockedUntil = time.Now().Add(lockoutDuration)
		e.failures = 0
	}
}

// ResetFailedLogin clears the failure counter after a successful login.
func ResetFailedLogin(email string) {
	lockoutMu.Lock()
	defer lockoutMu.Unlock()
	delete(lockouts, email)
}
