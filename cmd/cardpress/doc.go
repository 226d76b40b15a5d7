// Command cardpress renders membership cards from spreadsheet rosters. It
// can run one-off batches from the command line or serve the upload surface
// over HTTP.
package main
