// Package domain defines the core business entities of the communication
// board: users, the card catalog, and the append-only selection event log.
package domain
