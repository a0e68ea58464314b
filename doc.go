// Package stock tracks the daily stock of co-branded garments.
//
// It is designed to be local-first and auditable: all state lives in three
// human readable JSON files in a data directory.
//
// The core functionalities include:
//   - Catalog: the fixed list of shirt variants and sizes.
//   - Normalization: resolving free text found in spreadsheet exports (file
//     names, size labels, header dates) to catalog keys.
//   - Sheet parsing: reading the stock counts of a matrix export, one
//     variant per file, one column per day.
//   - Records: the day indexed history of inventory snapshots, with
//     field-level merge of imported observations.
//   - Tag ledger: the running balance of garment tags and its history.
//   - Persistence: loading, saving, backup and restore of the whole state.
//
// This package serves as the foundational logic for the `tsk` command-line
// tool.
package stock
