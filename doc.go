// Package wealth implements a multi-currency portfolio valuation and
// rebalancing engine. It normalizes holdings to a single reporting
// currency and computes allocation drift against target weights.
//
// The core functionalities include:
//   - Quote Resolution: best-effort batch price lookup over a trailing
//     calendar window, with an adjusted-close/close fallback chain and
//     forward-fill across market holidays. Provider trouble degrades to
//     partial or empty results, never to a hard failure.
//   - Valuation: converting each position to the reporting currency,
//     branching on an explicit asset classification (domestic, foreign,
//     fixed-value) computed once at position creation.
//   - Allocation Analysis: total value, per-position weight, and signed
//     deviation from the target weight over the included positions.
//   - Contribution Planning: distributing a new cash amount across
//     under-target positions proportionally to their deficit.
//   - Performance: absolute and percentage gain against a declared cost
//     basis, with a guarded "not available" state for a zero basis.
//
// The portfolio itself is owned by the caller: the engine operates on an
// immutable snapshot of it taken at the start of each valuation cycle.
// This package serves as the foundational logic for the `wcc` command-line
// tool.
package wealth
