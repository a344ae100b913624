// Package parallel runs independent jobs on a fixed set of goroutines.
//
// [WorkerPool] gives every worker its own queue and lets idle workers steal
// from busy ones, which keeps all cores busy when job costs vary widely (a
// 5-point star next to a finely flattened 10k-radius circle).
package parallel
