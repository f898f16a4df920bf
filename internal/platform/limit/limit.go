// Package limit counts concurrent connections per remote address.
package limit

import (
	"net"
	"sync"
)

// Limiter caps the number of concurrent connections per key, usually a remote IP.
type Limiter struct {
	max int

	mu     sync.Mutex
	counts map[string]int
}

// New creates a limiter allowing max connections per key.
// A max of zero or less disables the limit.
func New(max int) *Limiter {
	return &Limiter{
		max:    max,
		counts: make(map[string]int),
	}
}

// Max returns the configured limit.
func (l *Limiter) Max() int {
	return l.max
}

// Acquire reserves a slot for key. It returns the count including the new
// connection and whether the slot was granted.
func (l *Limiter) Acquire(key string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.counts[key] >= l.max {
		return l.counts[key] + 1, false
	}
	l.counts[key]++
	return l.counts[key], true
}

// Release frees a slot taken by Acquire.
func (l *Limiter) Release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[key]--
	if l.counts[key] <= 0 {
		delete(l.counts, key)
	}
}

// Count returns the active connections for key.
func (l *Limiter) Count(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[key]
}

// RemoteIP strips the port from a network address.
func RemoteIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	return HostOnly(addr.String())
}

// HostOnly strips the port from a host:port string.
func HostOnly(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	return hostport
}
