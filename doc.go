// Package invtrack provides the functions and types for valuing a personal
// investment portfolio once a day and tracking its evolution over time. It is
// designed to be local-first and auditable: everything lives in two plain
// files the user can read and version.
//
// The core functionalities include:
//   - Asset Registry: Reading the hand-maintained CSV sheet listing every
//     asset (stocks, crypto, currency positions, funds, time deposits and
//     manually valued holdings).
//   - Valuation Engine: Computing each asset's current value and total cost
//     in the reporting currency, mixing live market quotes, published fund
//     prices, simple interest accrual and manual overrides.
//   - Performance: Comparing today's values against the recorded history over
//     trailing 1-day, 7-day and 30-day windows.
//   - Data Persistence: Recording one value per asset per day in a JSONL
//     history file, replacing the day wholesale on same-day re-runs.
//
// This package serves as the foundational logic for the `ivt` command-line
// tool.
package invtrack
