package todo

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// Await runs effects concurrently and settles every outcome on the calling
// goroutine once all of them have finished. Outcomes carry no ordering
// guarantee relative to each other.
func (c *Coordinator) Await(ctx context.Context, effects ...Effect) {
	p := pool.NewWithResults[Outcome]()
	for _, effect := range effects {
		if effect == nil {
			continue
		}
		p.Go(func() Outcome {
			return effect(ctx)
		})
	}

	for _, o := range p.Wait() {
		c.Settle(o)
	}
}
