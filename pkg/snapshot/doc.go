// Package snapshot defines contracts for staging and restoring whole lookup
// registries between Init calls, plus a small in-memory store used by tests
// and examples.
//
// Responsibilities:
//   - Store only loads/saves a single named registry snapshot.
//   - Meta carries provenance (snapshot ID, etag, timestamp); the store mints
//     IDs when callers do not supply one.
//   - The core lookup package stays storage-agnostic; all staging logic sits
//     behind Store implementations supplied by consumers.
package snapshot
