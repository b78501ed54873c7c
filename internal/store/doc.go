// Package store defines the persistence interfaces consumed by the
// services: the card catalog, the user directory, and the append-only
// selection event log. Implementations live under internal/platform.
package store
