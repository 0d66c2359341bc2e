package lists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// UpdateFields carries the subset of columns a partial update touches.
// A nil Name leaves the name alone; nil Codes/ImageURLs leave both alone
// (the service only ever sets them together).
type UpdateFields struct {
	Name      *string
	Codes     []string
	ImageURLs []string
}

// Repository defines persistence operations for owned lists. Every read and
// write is scoped to the owner id.
type Repository interface {
	Insert(ctx context.Context, list *List) error
	ListByOwner(ctx context.Context, ownerID string) ([]List, error)
	Delete(ctx context.Context, ownerID, id string) error
	Update(ctx context.Context, ownerID, id string, fields UpdateFields) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert persists a new list. The (owner_id, name) unique constraint upholds
// per-owner name uniqueness under concurrent saves.
func (r *PGRepository) Insert(ctx context.Context, list *List) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO lists (owner_id, name, codes, image_urls)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		list.OwnerID, list.Name, list.Codes, list.ImageURLs,
	).Scan(&list.ID, &list.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return shared.ErrDuplicateName
		}
		return fmt.Errorf("lists: insert: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's lists, most recent first.
func (r *PGRepository) ListByOwner(ctx context.Context, ownerID string) ([]List, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, codes, image_urls, owner_id, created_at
		 FROM lists
		 WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("lists: query: %w", err)
	}
	defer rows.Close()

	var result []List
	for rows.Next() {
		var list List
		if err := rows.Scan(&list.ID, &list.Name, &list.Codes, &list.ImageURLs, &list.OwnerID, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("lists: scan: %w", err)
		}
		result = append(result, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lists: rows: %w", err)
	}
	return result, nil
}

// Delete removes the list only when it belongs to ownerID. A missing list and
// someone else's list report the same error.
func (r *PGRepository) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM lists WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("lists: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Update applies the supplied fields to the list scoped to (id, ownerID).
// Zero matched rows report the merged not-found error, same as Delete.
func (r *PGRepository) Update(ctx context.Context, ownerID, id string, fields UpdateFields) error {
	set := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if fields.Name != nil {
		args = append(args, *fields.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if fields.Codes != nil {
		args = append(args, fields.Codes)
		set = append(set, fmt.Sprintf("codes = $%d", len(args)))
		args = append(args, fields.ImageURLs)
		set = append(set, fmt.Sprintf("image_urls = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`UPDATE lists SET %s WHERE id = $%d AND owner_id = $%d`,
		strings.Join(set, ", "), len(args)-1, len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return shared.ErrDuplicateName
		}
		return fmt.Errorf("lists: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ Repository = (*PGRepository)(nil)
