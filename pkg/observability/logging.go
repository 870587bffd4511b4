package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log run boundaries at debug level.
// Runs that did not halt on their own are logged as warnings.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			logger.DebugContext(ctx, "run_start",
				"run_id", e.RunID,
				"mode", e.Mode,
				"input", e.Input,
			)
		},
		OnRunEnd: func(ctx context.Context, e *domain.RunEvent) {
			if e.Result == nil {
				return
			}
			attrs := []any{
				"run_id", e.RunID,
				"mode", e.Mode,
				"steps", e.Result.Steps,
				"halt", e.Result.Halt,
				"duration", e.Duration,
			}
			if e.Result.Err != nil {
				logger.WarnContext(ctx, "run_end", append(attrs, "error", e.Result.Err)...)
				return
			}
			logger.DebugContext(ctx, "run_end", attrs...)
		},
	}
}
