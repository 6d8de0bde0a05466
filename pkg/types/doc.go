// Package types defines the core types and interfaces used throughout gen-remix.
// This includes the per-package export sets produced by the scanner, the
// ordered override specification read from configuration, and the statement
// model the aggregator hands to the renderer.
package types
