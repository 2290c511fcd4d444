package deps

import (
	"time"

	"github.com/MrSnakeDoc/alumnet/internal/directory"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	AllowedHosts  []string           // Host headers allowed to access the server
	AllowedCIDRS  []string           // IPs allowed to access the ops endpoints
	TrustProxy    bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Store         *store.Store       // Collection store (readiness, infra)
	Directory     *directory.Service // Student, alumni, booking and bookmark operations
	StaticDir     string             // Client root served for non-API paths (empty = disabled)
	ReloadTrigger chan struct{}      // Channel to trigger a seed import (nil if no seed file)
}

// Now returns the current time using TimeNow when set.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
