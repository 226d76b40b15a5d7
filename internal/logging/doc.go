// Package logging builds the application slog logger. Console output renders
// as "ts LEVEL component: msg k=v"; JSON output is machine-oriented. The
// "auto" format picks console on a terminal and json otherwise.
package logging
