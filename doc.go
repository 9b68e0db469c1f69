// Package ascent provides the functions and types for tracking personal
// goals with a compounding progress score. It is designed to be local-first,
// auditable, and human-readable, ensuring users have full control over their
// tracking data.
//
// The core functionalities include:
//   - Goal Registry: Creating goals with a due date and cadence, assigning
//     stable sequential identifiers, and seeding their progress history.
//   - Scoring Engine: A pure compounding formula that rewards full or partial
//     completion and penalizes skipped periods, plus a streak counter over
//     the chronological history of updates.
//   - Ledger Store: Recording every progress update in an immutable,
//     append-only history, persisted alongside the goals table as two flat
//     CSV files that are fully rewritten after every mutation.
//   - Reports: Derived read-only views (goals added this ISO week, per-goal
//     climb history with milestones) consumed by the rendering layer.
//
// This package serves as the foundational logic for the `asc` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package ascent
