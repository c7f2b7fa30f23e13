// Package domain contains the core entities of the vocabulary trainer:
// cards, their retention state, study items, and per-deck statistics.
// It has no dependencies on storage or transport and performs its own
// validation.
package domain
