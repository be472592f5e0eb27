// Package textutil provides text helpers for matching and file naming.
//
// Cluster and category labels in the dataset are mostly Ukrainian, so
// case-insensitive comparison goes through Fold, which NFC-normalizes
// before lowercasing to keep combining-mark spellings comparable.
package textutil
