// Package server exposes the card generator over HTTP: an upload form that
// turns a workbook into a zip of rendered cards, a sample workbook download,
// and a JSON endpoint for single-card rendering. The server holds a file
// lock on its workspace so two instances never share the upload and output
// directories.
package server
