package tui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/tui-snake/internal/platform/limit"
)

// connLimitMiddleware rejects sessions over the per-IP limit with a message and closes them.
func connLimitMiddleware(l *limit.Limiter, logger *log.Logger) func(ssh.Handler) ssh.Handler {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ip := limit.RemoteIP(s.RemoteAddr())

			count, ok := l.Acquire(ip)
			if !ok {
				logger.Warn("connection denied: IP limit exceeded", "ip", ip, "attempted", count, "limit", l.Max())
				fmt.Fprintf(s, "Too many active connections from your IP (%d/%d). Please try again later.\r\n", count, l.Max())
				s.Close()
				return
			}
			defer l.Release(ip)

			logger.Debug("connection accepted", "ip", ip, "count", count, "limit", l.Max())
			next(s)
		}
	}
}
