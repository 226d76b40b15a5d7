// Package identifier canonicalizes membership card identifiers.
//
// Raw identifiers arrive in loosely formatted shapes ("STE 12345 690 7890",
// "al001-GLD-1234567", "ABC123"). The package classifies each identifier into
// one of three families and produces a fixed-shape display string:
//
//   - Scheme identifiers (AL001 prefix) and carrier identifiers (STE code)
//     normalize to the slash-delimited long form AL001/CCC-NNNNNNN/SSSS.
//   - Everything else normalizes to the grouped short form CCC-NNNN NNNN NNN.
//
// Normalization is total: every input, including the empty string, yields a
// well-formed output of one of the two shapes.
package identifier
