package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsapi/internal/domain"
)

// resolveLocation returns the stored location matching in, creating it when none matches.
// The place id is tried first, then address_1.
func resolveLocation(ctx context.Context, locations domain.LocationRepository, in domain.LocationInput, now time.Time) (*domain.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.HasPlaceID() {
		loc, err := locations.GetByPlaceID(ctx, strings.TrimSpace(*in.PlaceID))
		if err == nil {
			return loc, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("find location by place id: %w", err)
		}
	}
	loc, err := locations.GetByAddress1(ctx, strings.TrimSpace(in.Address1))
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find location by address: %w", err)
	}

	loc = domain.NewLocation(in, now)
	if err := locations.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return loc, nil
}
