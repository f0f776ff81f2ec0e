// Package engine contains the hit consolidation core: scaffold grouping,
// pairwise consolidation and the N-way fold across batches. It never imports
// app, writers, cli, output or pipeline; keep it domain-only.
//
// The engine is pure and synchronous. Scaffolds inside one pairwise step are
// processed concurrently; the fold across batches is strictly sequential
// because the merge history of every hit depends on fold order.
//
// Comparators are scanned in input order and the first matching relation
// wins, so when several comparators relate to the same candidate in
// different ways the outcome depends on that order. Only the covered
// coordinate ranges are independent of batch order.
package engine
