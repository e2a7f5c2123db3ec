package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Placeholder values stored for address parts a client did not supply.
const (
	UnknownAddressPart = "Unknown"
	UnknownZip         = "00000"
)

// Location is a physical place shared by any number of events.
// swagger:model Location
type Location struct {
	ID          int64     `json:"id"`
	PlaceID     *string   `json:"place_id"`
	Name        string    `json:"name"`
	FullAddress string    `json:"full_address"`
	Address1    string    `json:"address_1"`
	Address2    *string   `json:"address_2"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	CreatedAt   time.Time `json:"created_at"`
}

// LocationInput describes a location supplied with an event.
type LocationInput struct {
	PlaceID     *string
	Name        *string
	FullAddress *string
	Address1    string
	Address2    *string
	City        *string
	State       *string
	Zip         *string
}

// Validate requires address_1 and checks every part fits its column.
func (in LocationInput) Validate() error {
	if strings.TrimSpace(in.Address1) == "" {
		return fmt.Errorf("%w: location.address_1 is required", ErrInvalidInput)
	}
	return checkLengths(in.FieldLimits())
}

// FieldLimits measures the parts as NewLocation stores them.
func (in LocationInput) FieldLimits() []FieldLimit {
	address1 := strings.TrimSpace(in.Address1)
	return []FieldLimit{
		{Field: "location.place_id", Value: trimmed(in.PlaceID), Max: MaxLocationFieldLen},
		{Field: "location.name", Value: trimmed(in.Name), Max: MaxLocationFieldLen},
		{Field: "location.full_address", Value: trimmed(in.FullAddress), Max: MaxFullAddressLen},
		{Field: "location.address_1", Value: &address1, Max: MaxLocationFieldLen},
		{Field: "location.address_2", Value: in.Address2, Max: MaxLocationFieldLen},
		{Field: "location.city", Value: trimmed(in.City), Max: MaxLocationFieldLen},
		{Field: "location.state", Value: trimmed(in.State), Max: MaxLocationFieldLen},
		{Field: "location.zip", Value: trimmed(in.Zip), Max: MaxZipLen},
	}
}

// HasPlaceID reports whether an external place identifier was supplied.
func (in LocationInput) HasPlaceID() bool {
	return in.PlaceID != nil && strings.TrimSpace(*in.PlaceID) != ""
}

// NewLocation builds a Location from input, filling the placeholders for missing parts.
func NewLocation(in LocationInput, createdAt time.Time) *Location {
	address1 := strings.TrimSpace(in.Address1)
	loc := &Location{
		Name:        orDefault(in.Name, address1),
		FullAddress: orDefault(in.FullAddress, UnknownAddressPart),
		Address1:    address1,
		Address2:    in.Address2,
		City:        orDefault(in.City, UnknownAddressPart),
		State:       orDefault(in.State, UnknownAddressPart),
		Zip:         orDefault(in.Zip, UnknownZip),
		CreatedAt:   createdAt,
	}
	if in.HasPlaceID() {
		p := strings.TrimSpace(*in.PlaceID)
		loc.PlaceID = &p
	}
	return loc
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func orDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	if v := strings.TrimSpace(*s); v != "" {
		return v
	}
	return def
}

// LocationRepository defines storage for locations. Locations are never deleted.
type LocationRepository interface {
	GetByPlaceID(ctx context.Context, placeID string) (*Location, error)
	GetByAddress1(ctx context.Context, address1 string) (*Location, error)
	Create(ctx context.Context, location *Location) error
}
