package sessionstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SessionsCollection holds one document per console profile.
const SessionsCollection = "Sessions"

// FirestoreStore keeps the snapshot in the Sessions/{profile} document.
type FirestoreStore struct {
	client  *firestore.Client
	profile string
}

func NewFirestoreStore(client *firestore.Client, profile string) *FirestoreStore {
	if profile == "" {
		profile = "default"
	}
	return &FirestoreStore{client: client, profile: profile}
}

func (s *FirestoreStore) doc() *firestore.DocumentRef {
	return s.client.Collection(SessionsCollection).Doc(s.profile)
}

func (s *FirestoreStore) Load(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot

	doc, err := s.doc().Get(ctx)
	if status.Code(err) == codes.NotFound {
		return snapshot, nil
	}
	if err != nil {
		return snapshot, fmt.Errorf("failed to get session document: %w", err)
	}

	if err := doc.DataTo(&snapshot); err != nil {
		log.Warn().Err(err).Str("profile", s.profile).Msg("Could not parse session document")
		return Snapshot{}, xerrors.Errorf(
			"consistency error. Converting %s to snapshot failed (%v): %w",
			doc.Ref.Path,
			err,
			ErrCorrupt,
		)
	}
	return snapshot, nil
}

// Save overwrites the profile document. An empty snapshot deletes it.
func (s *FirestoreStore) Save(ctx context.Context, snapshot Snapshot) error {
	if snapshot.Empty() {
		if _, err := s.doc().Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to delete session document: %w", err)
		}
		return nil
	}
	if _, err := s.doc().Set(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to write session document: %w", err)
	}
	return nil
}
