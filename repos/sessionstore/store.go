// Package sessionstore persists the two identity blobs of the console
// session across restarts.
package sessionstore

import (
	"context"
	"errors"
)

// Keys of the persisted identity blobs.
const (
	KeyUser = "currentUser"
	KeyTeam = "currentTeam"
)

// ErrCorrupt is returned by Load when the backing document cannot be
// decoded at all. Callers treat it as an empty store.
var ErrCorrupt = errors.New("session store is corrupt")

// Snapshot holds the raw JSON of the stored administrator and team. An
// empty string means the key is absent.
type Snapshot struct {
	CurrentUser string `json:"currentUser,omitempty" firestore:"currentUser"`
	CurrentTeam string `json:"currentTeam,omitempty" firestore:"currentTeam"`
}

// Empty reports whether neither identity is stored.
func (s Snapshot) Empty() bool {
	return s.CurrentUser == "" && s.CurrentTeam == ""
}

// Store loads and saves a whole snapshot. Save replaces what was stored.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
}
