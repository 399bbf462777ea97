package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/TemirB/address-lookup/internal/domain"
)

const residentialColumns = `id, postcode, building_number, street_address, town, full_address, submitted_by, created_at`

// FindByPostcode matches the normalized form of the stored postcode exactly.
func (r *Repo) FindByPostcode(ctx context.Context, normalized string, limit int) ([]domain.ResidentialAddress, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE upper(replace(postcode, ' ', '')) = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, residentialColumns, r.qt(r.tables.Residential)), normalized, limit)
	if err != nil {
		return nil, err
	}
	return collectResidential(rows)
}

// FindByPostcodePrefix matches stored postcodes starting with the normalized prefix.
func (r *Repo) FindByPostcodePrefix(ctx context.Context, normalizedPrefix string, limit int) ([]domain.ResidentialAddress, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE upper(replace(postcode, ' ', '')) LIKE $1 ESCAPE '\'
		ORDER BY created_at DESC
		LIMIT $2
	`, residentialColumns, r.qt(r.tables.Residential)), escapeLike(normalizedPrefix)+"%", limit)
	if err != nil {
		return nil, err
	}
	return collectResidential(rows)
}

func (r *Repo) Insert(ctx context.Context, a *domain.ResidentialAddress) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, r.qt(r.tables.Residential), residentialColumns),
		a.ID, a.Postcode, a.BuildingNumber, a.StreetAddress, a.Town, a.FullAddress, a.SubmittedBy, a.CreatedAt,
	)
	return err
}

func collectResidential(rows pgx.Rows) ([]domain.ResidentialAddress, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ResidentialAddress, error) {
		var a domain.ResidentialAddress
		err := row.Scan(&a.ID, &a.Postcode, &a.BuildingNumber, &a.StreetAddress, &a.Town,
			&a.FullAddress, &a.SubmittedBy, &a.CreatedAt)
		return a, err
	})
}
