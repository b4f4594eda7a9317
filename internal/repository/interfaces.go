package repository

import "context"

// Names of the logical collections held by the store.
const (
	CollectionDecks       = "decks"
	CollectionFlashcards  = "flashcards"
	CollectionCurrentUser = "currentUser"
)

// Store is a flat string-keyed document store. Each collection is read and
// written as one JSON payload; Set fully overwrites the previous payload.
//
// All mutations are read-modify-write on the whole collection from the
// caller's side. The store provides no transaction or locking guarantee:
// two concurrent processes can race on the same collection and silently
// overwrite each other's snapshot. Single-process, single-user usage is
// assumed; this is a documented hazard, not something the store fixes.
type Store interface {
	// Get returns the stored payload for name, or nil if the collection
	// has never been written.
	Get(ctx context.Context, name string) ([]byte, error)

	// Set overwrites the payload for name.
	Set(ctx context.Context, name string, payload []byte) error
}
