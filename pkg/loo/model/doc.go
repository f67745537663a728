// Package model provides the data structures for the loo package.
// It defines the item set, the leave-one-out partitions, the resolved job
// invocations and the per-run report.
package model
