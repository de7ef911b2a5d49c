// Package entries provides the PostgreSQL-backed repository for task entry
// persistence.
package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mpavlovs/taskvault/internal/common"
	"github.com/mpavlovs/taskvault/internal/dbx"
	"github.com/mpavlovs/taskvault/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// QueryByOwner returns all entries belonging to ownerID, oldest first.
func (r *PostgresRepository) QueryByOwner(ctx context.Context, ownerID string) ([]*models.Entry, error) {
	query := `
		SELECT owner_id, entry_id, created_at, entry_text, done, attachment_url
		FROM entries
		WHERE owner_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		var item models.Entry
		if err := rows.Scan(
			&item.OwnerID, &item.EntryID, &item.CreatedAt,
			&item.Text, &item.Done, &item.AttachmentURL,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get fetches one entry by its full storage key. A miss returns
// common.ErrorNotFound regardless of whether the entry id exists under
// another owner.
func (r *PostgresRepository) Get(ctx context.Context, ownerID, entryID string) (*models.Entry, error) {
	query := `
		SELECT owner_id, entry_id, created_at, entry_text, done, attachment_url
		FROM entries
		WHERE owner_id = $1 AND entry_id = $2
	`
	entry := &models.Entry{}
	err := r.db.QueryRowContext(ctx, query, ownerID, entryID).Scan(
		&entry.OwnerID, &entry.EntryID, &entry.CreatedAt,
		&entry.Text, &entry.Done, &entry.AttachmentURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// Put inserts a new entry.
func (r *PostgresRepository) Put(ctx context.Context, entry *models.Entry) error {
	query := `
		INSERT INTO entries (owner_id, entry_id, created_at, entry_text, done, attachment_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.OwnerID, entry.EntryID, entry.CreatedAt, entry.Text, entry.Done, entry.AttachmentURL)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateDone replaces only the done field of one entry.
func (r *PostgresRepository) UpdateDone(ctx context.Context, ownerID, entryID string, done bool) error {
	query := `
		UPDATE entries SET done = $3
		WHERE owner_id = $1 AND entry_id = $2
	`
	return r.execOne(ctx, query, ownerID, entryID, done)
}

// UpdateAttachmentURL replaces only the attachment_url field of one entry.
func (r *PostgresRepository) UpdateAttachmentURL(ctx context.Context, ownerID, entryID, url string) error {
	query := `
		UPDATE entries SET attachment_url = $3
		WHERE owner_id = $1 AND entry_id = $2
	`
	return r.execOne(ctx, query, ownerID, entryID, url)
}

// Delete removes one entry by its full storage key.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, entryID string) error {
	query := `
		DELETE FROM entries
		WHERE owner_id = $1 AND entry_id = $2
	`
	return r.execOne(ctx, query, ownerID, entryID)
}

// execOne runs a statement that must affect exactly one row; zero rows means
// the keyed entry was gone by the time the statement ran.
func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
