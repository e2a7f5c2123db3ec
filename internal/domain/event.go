package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Event represents a scheduled event.
// swagger:model Event
type Event struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	HostName      *string    `json:"host_name"`
	Description   *string    `json:"description"`
	StartDateTime time.Time  `json:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time"`
	LocationID    *int64     `json:"location_id"`
	AllowQA       bool       `json:"allow_qa"`
	ImageURL      *string    `json:"image_url"`
	// Slug is empty only between the insert and the slug assignment of a create.
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// EventInput holds the fields accepted when creating an event.
type EventInput struct {
	Title         string
	HostName      *string
	Description   *string
	StartDateTime time.Time
	EndDateTime   *time.Time
	AllowQA       *bool
	ImageURL      *string
	Location      *LocationInput
}

// Validate reports the first rule the input breaks, wrapped in ErrInvalidInput.
func (in EventInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.StartDateTime.IsZero() {
		return fmt.Errorf("%w: start_date_time is required", ErrInvalidInput)
	}
	if in.EndDateTime != nil && !in.EndDateTime.After(in.StartDateTime) {
		return fmt.Errorf("%w: end_date_time must be after start_date_time", ErrInvalidInput)
	}
	if in.Location != nil {
		if err := in.Location.Validate(); err != nil {
			return err
		}
	}
	return checkLengths(in.FieldLimits())
}

// FieldLimits lists the string fields of the input with their column widths.
func (in EventInput) FieldLimits() []FieldLimit {
	title := strings.TrimSpace(in.Title)
	limits := []FieldLimit{
		{Field: "title", Value: &title, Max: MaxTitleLen},
		{Field: "host_name", Value: in.HostName, Max: MaxHostNameLen},
		{Field: "description", Value: in.Description, Max: MaxDescriptionLen},
		{Field: "image_url", Value: in.ImageURL, Max: MaxImageURLLen},
	}
	if in.Location != nil {
		limits = append(limits, in.Location.FieldLimits()...)
	}
	return limits
}

// NewEvent builds the Event row for an input. AllowQA defaults to true.
func NewEvent(in EventInput, createdAt time.Time) *Event {
	allowQA := true
	if in.AllowQA != nil {
		allowQA = *in.AllowQA
	}
	return &Event{
		Title:         strings.TrimSpace(in.Title),
		HostName:      in.HostName,
		Description:   in.Description,
		StartDateTime: in.StartDateTime,
		EndDateTime:   in.EndDateTime,
		AllowQA:       allowQA,
		ImageURL:      in.ImageURL,
		CreatedAt:     createdAt,
	}
}

// EventUpdate is a partial update. Nil fields are left untouched.
type EventUpdate struct {
	Title         *string
	HostName      *string
	Description   *string
	StartDateTime *time.Time
	EndDateTime   *time.Time
	AllowQA       *bool
	ImageURL      *string
	Location      *LocationInput
	// LocationID is filled by the service once Location has been resolved.
	LocationID *int64

	// The Clear flags set the matching nullable column to NULL.
	ClearHostName    bool
	ClearDescription bool
	ClearEndDateTime bool
	ClearImageURL    bool
	ClearLocation    bool
}

// IsEmpty reports whether the update changes no column.
func (u EventUpdate) IsEmpty() bool {
	return u.Title == nil && u.HostName == nil && u.Description == nil &&
		u.StartDateTime == nil && u.EndDateTime == nil && u.AllowQA == nil &&
		u.ImageURL == nil && u.Location == nil && u.LocationID == nil &&
		!u.ClearHostName && !u.ClearDescription && !u.ClearEndDateTime &&
		!u.ClearImageURL && !u.ClearLocation
}

// Validate checks the fields present in the update.
func (u EventUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if u.StartDateTime != nil && u.StartDateTime.IsZero() {
		return fmt.Errorf("%w: start_date_time must not be empty", ErrInvalidInput)
	}
	conflicts := []struct {
		field string
		set   bool
		clear bool
	}{
		{"host_name", u.HostName != nil, u.ClearHostName},
		{"description", u.Description != nil, u.ClearDescription},
		{"end_date_time", u.EndDateTime != nil, u.ClearEndDateTime},
		{"image_url", u.ImageURL != nil, u.ClearImageURL},
		{"location", u.Location != nil || u.LocationID != nil, u.ClearLocation},
	}
	for _, c := range conflicts {
		if c.set && c.clear {
			return fmt.Errorf("%w: %s cannot be set and cleared at once", ErrInvalidInput, c.field)
		}
	}
	if u.Location != nil {
		if err := u.Location.Validate(); err != nil {
			return err
		}
	}
	return checkLengths(u.FieldLimits())
}

// FieldLimits lists the string fields present in the update with their column widths.
func (u EventUpdate) FieldLimits() []FieldLimit {
	var title *string
	if u.Title != nil {
		t := strings.TrimSpace(*u.Title)
		title = &t
	}
	limits := []FieldLimit{
		{Field: "title", Value: title, Max: MaxTitleLen},
		{Field: "host_name", Value: u.HostName, Max: MaxHostNameLen},
		{Field: "description", Value: u.Description, Max: MaxDescriptionLen},
		{Field: "image_url", Value: u.ImageURL, Max: MaxImageURLLen},
	}
	if u.Location != nil {
		limits = append(limits, u.Location.FieldLimits()...)
	}
	return limits
}

// EventDetail is an event with the related rows a read loaded for it.
// Questions is nil unless the read fetched the Q&A subtree.
type EventDetail struct {
	Event     *Event
	Location  *Location
	Questions []*QuestionWithAnswers
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// Create inserts the event with a NULL slug and sets ID and CreatedAt.
	Create(ctx context.Context, event *Event) error
	// SetSlug stores the slug of an existing event.
	SetSlug(ctx context.Context, id int64, slug string) error
	// ListSlugs returns the slugs equal to base or of the form base-N, ignoring event excludeID.
	ListSlugs(ctx context.Context, base string, excludeID int64) ([]string, error)
	// GetWithLocation fetches one event and its location (nil when the event has none).
	GetWithLocation(ctx context.Context, id int64) (*EventDetail, error)
	// ListWithLocations fetches a page of events ordered by id, each with its location.
	ListWithLocations(ctx context.Context, params PaginationParams) ([]*EventDetail, error)
	Update(ctx context.Context, id int64, update EventUpdate) error
	Delete(ctx context.Context, id int64) error
	// DeleteExpired removes events whose end (or start, without an end) is before cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventService defines the business logic for events and their Q&A.
type EventService interface {
	CreateEvent(ctx context.Context, in EventInput) (*EventResponse, error)
	GetEvent(ctx context.Context, id int64) (*EventResponse, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*EventResponse, error)
	UpdateEvent(ctx context.Context, id int64, update EventUpdate) (*EventResponse, error)
	DeleteEvent(ctx context.Context, id int64) (*EventResponse, error)
	CreateQA(ctx context.Context, eventID int64, in QACreate) (*QAResult, error)
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
