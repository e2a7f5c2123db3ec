package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsapi/internal/domain"
)

type eventRepository struct {
	DB DBTX
}

func NewEventRepository(db DBTX) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventDetailColumns = `
	e.id, e.title, e.host_name, e.description, e.start_date_time, e.end_date_time,
	e.location_id, e.allow_qa, e.image_url, e.slug, e.created_at, e.updated_at,
	l.id, l.place_id, l.name, l.full_address, l.address_1, l.address_2, l.city, l.state, l.zip, l.created_at
`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, host_name, description, start_date_time, end_date_time, location_id, allow_qa, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.Title, e.HostName, e.Description, e.StartDateTime, e.EndDateTime, e.LocationID, e.AllowQA, e.ImageURL, e.CreatedAt,
	).Scan(&e.ID)
	return mapTooLong(err)
}

func (r *eventRepository) SetSlug(ctx context.Context, id int64, slug string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE events SET slug = $1 WHERE id = $2`, slug, id)
	if err != nil {
		if hasPQCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: slug %q already taken", domain.ErrConflict, slug)
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListSlugs relies on slugs holding only [a-z0-9-], so base needs no LIKE escaping.
func (r *eventRepository) ListSlugs(ctx context.Context, base string, excludeID int64) ([]string, error) {
	query := `
		SELECT slug
		FROM events
		WHERE id <> $1 AND (slug = $2 OR slug LIKE $3)
	`
	rows, err := r.DB.QueryContext(ctx, query, excludeID, base, base+"-%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	slugs := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

func (r *eventRepository) GetWithLocation(ctx context.Context, id int64) (*domain.EventDetail, error) {
	query := `SELECT ` + eventDetailColumns + `
		FROM events e
		LEFT JOIN locations l ON l.id = e.location_id
		WHERE e.id = $1
	`
	d, err := scanEventDetail(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *eventRepository) ListWithLocations(ctx context.Context, params domain.PaginationParams) ([]*domain.EventDetail, error) {
	query := `SELECT ` + eventDetailColumns + `
		FROM events e
		LEFT JOIN locations l ON l.id = e.location_id
		ORDER BY e.id
		OFFSET $1 LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.EventDetail, 0)
	for rows.Next() {
		d, err := scanEventDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepository) Update(ctx context.Context, id int64, u domain.EventUpdate) error {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	setNull := func(column string) {
		setClauses = append(setClauses, column+" = NULL")
	}
	if u.Title != nil {
		add("title", strings.TrimSpace(*u.Title))
	}
	if u.HostName != nil {
		add("host_name", *u.HostName)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.StartDateTime != nil {
		add("start_date_time", *u.StartDateTime)
	}
	if u.EndDateTime != nil {
		add("end_date_time", *u.EndDateTime)
	}
	if u.AllowQA != nil {
		add("allow_qa", *u.AllowQA)
	}
	if u.ImageURL != nil {
		add("image_url", *u.ImageURL)
	}
	if u.LocationID != nil {
		add("location_id", *u.LocationID)
	}
	if u.ClearHostName {
		setNull("host_name")
	}
	if u.ClearDescription {
		setNull("description")
	}
	if u.ClearEndDateTime {
		setNull("end_date_time")
	}
	if u.ClearImageURL {
		setNull("image_url")
	}
	if u.ClearLocation {
		setNull("location_id")
	}
	if len(setClauses) == 1 {
		// Nothing to change; the caller re-reads the row.
		return nil
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE events SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), n)
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if hasPQCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("%w: location does not exist", domain.ErrNotFound)
		}
		return mapTooLong(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM events WHERE COALESCE(end_date_time, start_date_time) < $1`
	result, err := r.DB.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanEventDetail(row scanner) (*domain.EventDetail, error) {
	e := &domain.Event{}
	var hostName, description, imageURL, slug sql.NullString
	var endDate, updatedAt sql.NullTime
	var locationID sql.NullInt64

	var locID sql.NullInt64
	var placeID, locName, fullAddress, address1, address2, city, state, zip sql.NullString
	var locCreatedAt sql.NullTime

	err := row.Scan(
		&e.ID, &e.Title, &hostName, &description, &e.StartDateTime, &endDate,
		&locationID, &e.AllowQA, &imageURL, &slug, &e.CreatedAt, &updatedAt,
		&locID, &placeID, &locName, &fullAddress, &address1, &address2, &city, &state, &zip, &locCreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.HostName = stringPtr(hostName)
	e.Description = stringPtr(description)
	e.EndDateTime = timePtr(endDate)
	e.LocationID = int64Ptr(locationID)
	e.ImageURL = stringPtr(imageURL)
	e.Slug = slug.String
	e.UpdatedAt = timePtr(updatedAt)

	d := &domain.EventDetail{Event: e}
	if locID.Valid {
		d.Location = &domain.Location{
			ID:          locID.Int64,
			PlaceID:     stringPtr(placeID),
			Name:        locName.String,
			FullAddress: fullAddress.String,
			Address1:    address1.String,
			Address2:    stringPtr(address2),
			City:        city.String,
			State:       state.String,
			Zip:         zip.String,
			CreatedAt:   locCreatedAt.Time,
		}
	}
	return d, nil
}
