// Package memory provides in-process implementations of the persistence
// interfaces in internal/store. It backs the server when no database URL is
// configured and gives service tests a real, transactional store.
package memory
