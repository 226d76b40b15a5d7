// Package pipeline runs a batch of membership rows through the card renderer
// and the notification sink. Rows are processed strictly in order; a failing
// row is logged and skipped, never aborting the batch. Only an unusable
// destination directory fails the batch as a whole.
package pipeline
