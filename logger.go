package lvlgrid

import (
	"log/slog"

	"github.com/katalvlaran/lvlgrid/internal/logging"
)

// SetLogger configures the logger for lvlgrid and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Only debug-level records are emitted, one per operation (grid construction,
// flood exhaustion, BSP build, gridgraph analysis). Safe for concurrent use.
//
//	lvlgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger currently used by lvlgrid.
func Logger() *slog.Logger {
	return logging.Get()
}
