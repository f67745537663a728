// Package loo orchestrates a two-phase leave-one-out analysis over a fixed
// item set.
//
// For every item, a search job runs with the remaining items as background
// and the item as target, producing a per-item tabular artifact. Once every
// search job has terminated (a full-phase barrier), the identifiers found in
// each item's artifact are extracted and a plot job is dispatched per item,
// parametrized with that item's identifiers and the same background/target
// split.
//
// Jobs are external processes: the package builds structured JobSpec values
// instead of shell strings, dispatches them concurrently and only
// synchronizes on the phase barrier. A failing job never cancels or skips
// its siblings; failures are aggregated into a run report.
package loo
