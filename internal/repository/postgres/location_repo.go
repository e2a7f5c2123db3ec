package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventsapi/internal/domain"
)

type locationRepository struct {
	DB DBTX
}

// NewLocationRepository returns a domain.LocationRepository implemented with Postgres.
func NewLocationRepository(db DBTX) domain.LocationRepository {
	return &locationRepository{DB: db}
}

const locationColumns = `id, place_id, name, full_address, address_1, address_2, city, state, zip, created_at`

// Lookups take the oldest row so duplicates left over from before deduplication resolve stably.
func (r *locationRepository) GetByPlaceID(ctx context.Context, placeID string) (*domain.Location, error) {
	return r.getOne(ctx, `SELECT `+locationColumns+` FROM locations WHERE place_id = $1 ORDER BY id LIMIT 1`, placeID)
}

func (r *locationRepository) GetByAddress1(ctx context.Context, address1 string) (*domain.Location, error) {
	return r.getOne(ctx, `SELECT `+locationColumns+` FROM locations WHERE address_1 = $1 ORDER BY id LIMIT 1`, address1)
}

func (r *locationRepository) Create(ctx context.Context, l *domain.Location) error {
	query := `
		INSERT INTO locations (place_id, name, full_address, address_1, address_2, city, state, zip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		l.PlaceID, l.Name, l.FullAddress, l.Address1, l.Address2, l.City, l.State, l.Zip, l.CreatedAt,
	).Scan(&l.ID)
	return mapTooLong(err)
}

func (r *locationRepository) getOne(ctx context.Context, query string, arg any) (*domain.Location, error) {
	l := &domain.Location{}
	var placeID, address2 sql.NullString
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&l.ID, &placeID, &l.Name, &l.FullAddress, &l.Address1, &address2, &l.City, &l.State, &l.Zip, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	l.PlaceID = stringPtr(placeID)
	l.Address2 = stringPtr(address2)
	return l, nil
}
