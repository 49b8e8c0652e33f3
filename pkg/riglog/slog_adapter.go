package riglog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes rig events to an slog.Logger.
// Useful for development when you want to see rig traffic in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("rig_id", event.RigID),
		slog.Int("model", event.Model),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Call != nil:
		attrs = append(attrs,
			slog.String("op", event.Call.Op),
			slog.Duration("latency", event.Call.Latency),
		)
		if event.Call.Error != "" {
			attrs = append(attrs, slog.String("error", event.Call.Error))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "rig event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
