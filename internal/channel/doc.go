// Package channel defines the channel dataset model and its loader.
//
// The dataset is a JSON array produced by an external clustering service.
// Field presence is never guaranteed: statistics arrive as numbers, numeric
// strings, or null depending on which crawler produced the record, and list
// fields may be missing entirely. The types here absorb that looseness so
// the rest of the tool works with plain values.
package channel
