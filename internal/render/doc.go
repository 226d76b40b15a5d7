// Package render composites membership card images. It selects a template by
// tier, overlays the identifier, validity, and name fields at fixed layout
// positions, and writes one PNG artifact per row under a sanitized filename.
package render
