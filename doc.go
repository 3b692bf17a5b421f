// Package folio models a personal investment portfolio as a tree of named
// nodes and renders it as a textual hierarchy. It is designed to be
// local-first and auditable: the whole portfolio lives in one
// human-readable JSON document the user fully controls.
//
// The core functionalities include:
//   - Hierarchy Modeling: leaf lines (single holdings), folders aggregating
//     their children's amounts, and shared folders dynamically funded from a
//     pooled bucket at processing time.
//   - Aggregation: recursive computation of amounts, target-driven ideal
//     amounts, and weighted expected performance across the tree, with
//     attribute defaults propagating from folders down to children.
//   - Targets: per-node investment objectives (minimum, maximum, range,
//     ratio of the parent) checked against current amounts.
//   - Rendering: format-template based rows assembled into a console tree,
//     with optional sidecars (aligned auxiliary columns such as deltas).
//   - Reconciliation: matching investment records fetched from a provider
//     export against the tree, inserting newly discovered lines.
//   - Data Persistence: encoding and decoding of the whole hierarchy,
//     bucket and envelope registries included, to a canonical JSON form.
//
// This package serves as the foundational logic for the `fol` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package folio
