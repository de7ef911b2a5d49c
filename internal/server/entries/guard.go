package entries

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpavlovs/taskvault/internal/common"
	"github.com/mpavlovs/taskvault/internal/server/repositories/entries"
)

// OwnershipGuard decides whether a caller owns an entry. The lookup is keyed
// by the (callerID, entryID) pair, so "does not exist" and "exists under
// another owner" are indistinguishable by construction.
type OwnershipGuard struct {
	repo entries.Repository
}

func NewOwnershipGuard(repo entries.Repository) *OwnershipGuard {
	return &OwnershipGuard{repo: repo}
}

// Owns reports whether callerID owns entryID. A storage failure is surfaced
// as an error; the mutation it was guarding must not proceed.
func (g *OwnershipGuard) Owns(ctx context.Context, callerID, entryID string) (bool, error) {
	_, err := g.repo.Get(ctx, callerID, entryID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return true, nil
}
