// Package cashflow provides the core logic for a local-first daily cash
// flow tracker. It is designed to be auditable and simple, ensuring users
// have full control and transparency over their daily takings and expenses.
//
// The core functionalities include:
//   - Ledger Management: Recording cash-in and cash-out entries against a
//     user-set opening balance in an append-only, chronological log.
//   - Totals Derivation: A stateless calculation of the six summary figures
//     (cash sales, online sales, total sales, total cash out, net cash flow,
//     closing balance) from the ledger.
//   - Backup Codecs: Encoding and decoding the full ledger to and from two
//     textual backup formats (a sectioned CSV report and a JSON document),
//     each of which round-trips back into an equivalent ledger.
//   - Data Persistence: A durable key-value store (see the store package)
//     that persists the transaction log and the opening balance after every
//     mutation and restores them at startup.
//
// This package serves as the foundational logic for the `dcf` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package cashflow
