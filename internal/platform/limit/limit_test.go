package limit

import (
	"net"
	"sync"
	"testing"
)

func TestLimiter(t *testing.T) {
	l := New(2)

	if n, ok := l.Acquire("10.0.0.1"); !ok || n != 1 {
		t.Fatalf("first Acquire = %d, %v; expected 1, true", n, ok)
	}
	if n, ok := l.Acquire("10.0.0.1"); !ok || n != 2 {
		t.Fatalf("second Acquire = %d, %v; expected 2, true", n, ok)
	}
	if n, ok := l.Acquire("10.0.0.1"); ok || n != 3 {
		t.Errorf("third Acquire = %d, %v; expected 3, false", n, ok)
	}

	// Other addresses have their own budget
	if _, ok := l.Acquire("10.0.0.2"); !ok {
		t.Error("Acquire for a different IP should succeed")
	}

	l.Release("10.0.0.1")
	if l.Count("10.0.0.1") != 1 {
		t.Errorf("Count = %d after release, expected 1", l.Count("10.0.0.1"))
	}
	if _, ok := l.Acquire("10.0.0.1"); !ok {
		t.Error("Acquire after release should succeed")
	}

	l.Release("10.0.0.2")
	if l.Count("10.0.0.2") != 0 {
		t.Errorf("Count = %d, expected 0", l.Count("10.0.0.2"))
	}
}

func TestLimiterUnlimited(t *testing.T) {
	l := New(0)
	for i := 0; i < 10; i++ {
		if _, ok := l.Acquire("::1"); !ok {
			t.Fatalf("Acquire %d denied with limit disabled", i)
		}
	}
}

func TestLimiterConcurrent(t *testing.T) {
	l := New(5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := l.Acquire("1.2.3.4"); ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if granted != 5 {
		t.Errorf("granted %d slots, expected 5", granted)
	}
}

func TestRemoteIP(t *testing.T) {
	tests := []struct {
		addr     net.Addr
		expected string
	}{
		{&net.TCPAddr{IP: net.ParseIP("192.168.1.5"), Port: 5555}, "192.168.1.5"},
		{&net.UDPAddr{IP: net.ParseIP("10.1.1.1"), Port: 22}, "10.1.1.1"},
	}
	for _, tc := range tests {
		if got := RemoteIP(tc.addr); got != tc.expected {
			t.Errorf("RemoteIP(%v) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}

	if got := HostOnly("[::1]:8080"); got != "::1" {
		t.Errorf("HostOnly([::1]:8080) = %q, expected ::1", got)
	}
	if got := HostOnly("no-port"); got != "no-port" {
		t.Errorf("HostOnly(no-port) = %q, expected no-port", got)
	}
}
