// Package workers runs the server's background jobs.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] runs a
// set of them side by side.
package workers

import "context"

// Worker is a background job bound to ctx.
//
// Example implementation:
//
//	type tickWorker struct{}
//
//	func (w *tickWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
