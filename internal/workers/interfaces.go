// Package workers provides a bounded pool for running independent jobs
// concurrently, used to upload several files at once.
package workers

import "context"

// Job is one unit of work. i is the job's position in the submitted batch.
//
// Example implementation:
//
//	func(ctx context.Context, i int) {
//	    results[i] = analyze(ctx, paths[i])
//	}
type Job func(ctx context.Context, i int)
