// Package mailer delivers rendered cards by email. The Sink contract is
// best-effort from the pipeline's point of view: the pipeline logs failures
// and continues, it never aborts a batch over delivery.
//
// Two delivery modes exist. The default sends inline over SMTP; the optional
// outbox mode enqueues messages into SQLite and a background worker drains
// them with retry and backoff.
package mailer
