// Package pipeline loads hit batches, runs them through a Consolidator and
// streams the ordered result to a visit callback.
//
// The only contract to implement is Consolidator (ConsolidateBatches).
package pipeline
