package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/TemirB/address-lookup/internal/domain"
)

func (r *Repo) FindByAPIKey(ctx context.Context, key string) (*domain.Identity, error) {
	id := domain.Identity{Kind: domain.KindAPIKey}
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT u.id, u.allowed_domains, COALESCE(rl.requests_per_window, 0)
		FROM %s u
		LEFT JOIN %s rl ON rl.user_id = u.id
		WHERE u.api_key = $1
	`, r.qt(r.tables.Users), r.qt(r.tables.RateLimits)), key).Scan(&id.ID, &id.AllowedDomains, &id.RateLimit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// UpsertAPIKey creates the user or rotates its key. An existing rate limit
// is kept; a new user gets defaultRateLimit.
func (r *Repo) UpsertAPIKey(ctx context.Context, u domain.UserKey, defaultRateLimit int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %[1]s (id, name, email, api_key)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET
		  api_key=EXCLUDED.api_key,
		  name=COALESCE(NULLIF(EXCLUDED.name, ''), %[1]s.name),
		  email=COALESCE(NULLIF(EXCLUDED.email, ''), %[1]s.email)
	`, r.qt(r.tables.Users)), u.UserID, u.Name, u.Email, u.APIKey)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (user_id, requests_per_window)
		VALUES ($1,$2)
		ON CONFLICT (user_id) DO NOTHING
	`, r.qt(r.tables.RateLimits)), u.UserID, defaultRateLimit)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, r.userQuery("")+` ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanUser)
}

func (r *Repo) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET
		  name=COALESCE($2, name),
		  email=COALESCE($3, email),
		  allowed_domains=COALESCE($4, allowed_domains)
		WHERE id=$1
	`, r.qt(r.tables.Users)), id, upd.Name, upd.Email, upd.AllowedDomains)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	if upd.RateLimit != nil {
		_, err = tx.Exec(ctx, fmt.Sprintf(`
			INSERT INTO %s (user_id, requests_per_window)
			VALUES ($1,$2)
			ON CONFLICT (user_id) DO UPDATE SET requests_per_window=EXCLUDED.requests_per_window
		`, r.qt(r.tables.RateLimits)), id, *upd.RateLimit)
		if err != nil {
			return nil, err
		}
	}

	rows, err := tx.Query(ctx, r.userQuery("WHERE u.id = $1"), id)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes the user with its rate limit and usage history.
func (r *Repo) DeleteUser(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id=$1`, r.qt(r.tables.Usage)), id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id=$1`, r.qt(r.tables.RateLimits)), id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.qt(r.tables.Users)), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *Repo) userQuery(where string) string {
	return fmt.Sprintf(`
		SELECT u.id, u.name, u.email, u.allowed_domains,
		       COALESCE(rl.requests_per_window, 0),
		       (SELECT count(*) FROM %s us WHERE us.user_id = u.id),
		       u.created_at
		FROM %s u
		LEFT JOIN %s rl ON rl.user_id = u.id
		%s`, r.qt(r.tables.Usage), r.qt(r.tables.Users), r.qt(r.tables.RateLimits), where)
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.AllowedDomains, &u.RateLimit, &u.UsageCount, &u.CreatedAt)
	return u, err
}
