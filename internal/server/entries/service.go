// Package entries implements the ownership-gated entry operations. Every
// read or mutation is scoped to the caller identity before it touches
// storage; update, delete and attachment requests additionally pass the
// OwnershipGuard first.
package entries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpavlovs/taskvault/internal/common"
	"github.com/mpavlovs/taskvault/internal/logging"
	"github.com/mpavlovs/taskvault/internal/server/blob"
	"github.com/mpavlovs/taskvault/internal/server/models"
	"github.com/mpavlovs/taskvault/internal/server/repositories/entries"
)

// Seams for deterministic ids and timestamps in tests.
var (
	newEntryID = func() string { return uuid.NewString() }
	newBlobID  = func() string { return uuid.NewString() }
	timeNow    = time.Now
)

// Service executes the entry operations against injected storage and blob
// capabilities. It holds no mutable state; distinct requests may run fully
// in parallel.
type Service struct {
	repo   entries.Repository
	guard  *OwnershipGuard
	blobs  blob.Store
	urlTTL time.Duration
	logger logging.Logger
}

func NewService(repo entries.Repository, guard *OwnershipGuard, blobs blob.Store, urlTTL time.Duration, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		guard:  guard,
		blobs:  blobs,
		urlTTL: urlTTL,
		logger: logger.With("component", "entries"),
	}
}

// List returns every entry owned by callerID. The query itself is scoped by
// identity, so no separate guard is needed.
func (s *Service) List(ctx context.Context, callerID string) ([]*models.Entry, error) {
	result, err := s.repo.QueryByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return result, nil
}

// Create persists a new entry for callerID and returns the full record.
func (s *Service) Create(ctx context.Context, callerID, text string) (*models.Entry, error) {
	if text == "" {
		return nil, common.ErrInvalidInput
	}

	entry := &models.Entry{
		OwnerID:       callerID,
		EntryID:       newEntryID(),
		CreatedAt:     timeNow().UTC().Format(time.RFC3339),
		Text:          text,
		Done:          false,
		AttachmentURL: "",
	}

	if err := s.repo.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	s.logger.Info(ctx, "entry created", "entryId", entry.EntryID)
	return entry, nil
}

// Update replaces the done field of an owned entry. Any other field is
// immutable under this operation.
func (s *Service) Update(ctx context.Context, callerID, entryID string, done bool) error {
	if err := s.requireOwnership(ctx, callerID, entryID); err != nil {
		return err
	}

	if err := s.repo.UpdateDone(ctx, callerID, entryID, done); err != nil {
		// The entry can vanish between the guard and the mutation;
		// that race still discloses nothing.
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrForbidden
		}
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// Delete removes an owned entry entirely. Deleting an already-absent entry
// fails the guard with the same error as a foreign one.
func (s *Service) Delete(ctx context.Context, callerID, entryID string) error {
	if err := s.requireOwnership(ctx, callerID, entryID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, callerID, entryID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrForbidden
		}
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	s.logger.Info(ctx, "entry deleted", "entryId", entryID)
	return nil
}

// RequestAttachmentUpload allocates a fresh blob id, persists the derived
// public-read URL on the entry, and returns a short-lived write URL scoped
// to that blob. Only the public URL is persisted; the write URL goes to the
// caller and nowhere else. Each call issues a new blob id and overwrites the
// stored attachment URL.
func (s *Service) RequestAttachmentUpload(ctx context.Context, callerID, entryID string) (string, error) {
	if err := s.requireOwnership(ctx, callerID, entryID); err != nil {
		return "", err
	}

	blobID := newBlobID()

	if err := s.repo.UpdateAttachmentURL(ctx, callerID, entryID, s.blobs.PublicURL(blobID)); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrForbidden
		}
		return "", fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	writeURL, err := s.blobs.IssueWriteURL(ctx, blobID, s.urlTTL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	s.logger.Info(ctx, "upload url issued", "entryId", entryID)
	return writeURL, nil
}

// requireOwnership runs the guard and collapses a negative answer into the
// uniform ErrForbidden.
func (s *Service) requireOwnership(ctx context.Context, callerID, entryID string) error {
	owns, err := s.guard.Owns(ctx, callerID, entryID)
	if err != nil {
		return err
	}
	if !owns {
		return common.ErrForbidden
	}
	return nil
}
