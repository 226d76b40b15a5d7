// Package roster reads membership rows from XLSX workbooks and applies the
// defaulting rules for missing or unparseable fields. It is the boundary where
// the untyped spreadsheet source becomes typed records.
package roster
