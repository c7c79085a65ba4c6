// Package farm provides the types and functions for tracking the
// profitability of a Path of Exile 2 farming session. It is designed to be
// local-first and forgiving: price data comes from a JSON catalog scraped
// from a third-party economy site, and every degraded input collapses to a
// zero value instead of an error.
//
// The core functionalities include:
//   - Price Normalization: Turning heterogeneous raw price lines (amount +
//     unit, optionally a pre-computed value) into a single value expressed in
//     the reference currency (Exalted Orb).
//   - Conversion Rates: Deriving the exalted rate of the secondary currencies
//     (Divine Orb, Chaos Orb) from their own catalog entries.
//   - Session Ledger: Recording an investment (maps bought) and the loot
//     lines of a run, and computing total invested, total looted and net gain
//     as pure functions of the session and the catalog.
//   - Data Persistence: Encoding and decoding the catalog (JSON document) and
//     the session (JSONL command stream) in human-readable formats.
//
// This package serves as the foundational logic for the `pfc` command-line
// tool.
package farm
