// Package notify defines the caregiver notification boundary. The core
// treats notification dispatch as best-effort: a selection is durably
// recorded before any dispatch attempt, and dispatch failures are reported
// as outcomes rather than errors.
package notify
