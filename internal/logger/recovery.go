package logger

import (
	"context"
)

// Recover traps panics and displays them via the fatal path.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		// Suppress further panics during recovery
		defer func() {
			_ = recover()
		}()

		// Already a FatalError (intentional panic), let main handle it
		if _, ok := r.(FatalError); ok {
			panic(r)
		}

		// Skip 2 frames: Recover + runtime.gopanic
		FatalWithStackSkip(ctx, 2, "panic: %v", r)
	}
}
