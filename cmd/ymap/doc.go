// Package main hosts the ymap CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the snapshot lifecycle: fetching the
// remote channel dataset with change detection (update), flattening it to
// CSV (export), slicing it with composable predicates (filter), and the
// single-cluster extracts (cluster, cluster-csv). It centralizes
// configuration resolution and logging setup so subcommands can focus on
// their I/O.
//
// Keep this package lean: dataset semantics live in the internal packages
// and are only surfaced through flags and output formatting here.
package main
