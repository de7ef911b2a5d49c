package entries

import (
	"context"

	"github.com/mpavlovs/taskvault/internal/server/models"
)

// Repository is the storage capability consumed by the entry service. Every
// lookup and mutation is keyed by the (ownerID, entryID) pair; nothing is
// addressable by entryID alone.
type Repository interface {
	QueryByOwner(ctx context.Context, ownerID string) ([]*models.Entry, error)
	Get(ctx context.Context, ownerID, entryID string) (*models.Entry, error)
	Put(ctx context.Context, entry *models.Entry) error
	UpdateDone(ctx context.Context, ownerID, entryID string, done bool) error
	UpdateAttachmentURL(ctx context.Context, ownerID, entryID, url string) error
	Delete(ctx context.Context, ownerID, entryID string) error
}
