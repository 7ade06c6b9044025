package generator

import (
	"context"
	"time"
)

// Run drives b to completion, waiting pace between steps and calling onStep
// after each one. Pacing never touches the random stream, so a paced run
// produces the same maze as an immediate one. Cancelling ctx stops the run
// between two steps and returns ctx.Err(); b is left half built and can be
// resumed by another Run or discarded.
func Run(ctx context.Context, b *Builder, pace time.Duration, onStep func(*Builder)) error {
	var tick <-chan time.Time
	if pace > 0 {
		ticker := time.NewTicker(pace)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !b.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		b.Step()
		if onStep != nil {
			onStep(b)
		}
	}
	return nil
}
