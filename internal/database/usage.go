package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TemirB/address-lookup/internal/domain"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func (r *Repo) InsertUsage(ctx context.Context, rec domain.UsageRecord) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, user_id, endpoint, status, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, r.qt(r.tables.Usage)), rec.ID, rec.IdentityID, rec.Endpoint, string(rec.Status), rec.Timestamp)
	if isUniqueViolation(err) {
		return fmt.Errorf("usage %s: %w", rec.ID, domain.ErrConflict)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
