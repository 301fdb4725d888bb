// Package ingest turns instrument log files into rows of string fields.
//
// A row reader performs no type conversion and no validation: it yields one
// row per input line with the fields split on a delimiter, exactly as the
// device models expect to receive them. Parsing numbers is left to the caller.
//
// Besides plain delimited text, FileReader accepts:
//
//   - compressed logs, chosen by extension (".zst", ".s2", ".lz4")
//   - Excel workbooks (".xlsx", ".xlsm"), read from the first sheet, which
//     may themselves be compressed ("run.xlsx.zst")
//
// Every read also produces an xxHash64 checksum of the decoded content, so a
// measurement can be identified independently of how it was archived.
package ingest
