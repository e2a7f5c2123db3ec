package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsapi/internal/domain"
)

// maxSlugAttempts bounds how often a write is retried after losing a slug race to a concurrent create.
const maxSlugAttempts = 3

type eventService struct {
	store          domain.Store
	contextTimeout time.Duration
	slugMaxSuffix  int
	now            func() time.Time
}

func NewEventService(store domain.Store, timeout time.Duration, slugMaxSuffix int) domain.EventService {
	return &eventService{
		store:          store,
		contextTimeout: timeout,
		slugMaxSuffix:  slugMaxSuffix,
		now:            time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.EventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	var detail *domain.EventDetail
	err := s.withSlugRetry(ctx, func(tx domain.Store) error {
		now := s.now()
		event := domain.NewEvent(in, now)
		var loc *domain.Location
		if in.Location != nil {
			var err error
			loc, err = resolveLocation(ctx, tx.Locations(), *in.Location, now)
			if err != nil {
				return err
			}
			event.LocationID = &loc.ID
		}
		if err := tx.Events().Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		slug, err := assignSlug(ctx, tx.Events(), event.ID, event.Title, s.slugMaxSuffix)
		if err != nil {
			return err
		}
		event.Slug = slug

		detail = &domain.EventDetail{Event: event, Location: loc}
		if event.AllowQA {
			detail.Questions = []*domain.QuestionWithAnswers{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return AssembleEventResponse(detail), nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.EventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateID(id); err != nil {
		return nil, err
	}
	detail, err := s.loadDetail(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	return AssembleEventResponse(detail), nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.EventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if params.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidInput)
	}
	if params.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	if params.Limit == 0 {
		params.Limit = domain.DefaultListLimit
	}
	if params.Limit > domain.MaxListLimit {
		params.Limit = domain.MaxListLimit
	}

	details, err := s.store.Events().ListWithLocations(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return AssembleEventResponses(details), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int64, update domain.EventUpdate) (*domain.EventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var detail *domain.EventDetail
	err := s.withSlugRetry(ctx, func(tx domain.Store) error {
		current, err := tx.Events().GetWithLocation(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("get event: %w", err)
		}

		start := current.Event.StartDateTime
		if update.StartDateTime != nil {
			start = *update.StartDateTime
		}
		end := current.Event.EndDateTime
		if update.EndDateTime != nil {
			end = update.EndDateTime
		}
		if update.ClearEndDateTime {
			end = nil
		}
		if end != nil && !end.After(start) {
			return fmt.Errorf("%w: end_date_time must be after start_date_time", domain.ErrInvalidInput)
		}

		changes := update
		if changes.Location != nil {
			loc, err := resolveLocation(ctx, tx.Locations(), *changes.Location, s.now())
			if err != nil {
				return err
			}
			changes.LocationID = &loc.ID
		}
		if err := tx.Events().Update(ctx, id, changes); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("update event: %w", err)
		}
		if changes.Title != nil && Slugify(*changes.Title) != Slugify(current.Event.Title) {
			if _, err := assignSlug(ctx, tx.Events(), id, strings.TrimSpace(*changes.Title), s.slugMaxSuffix); err != nil {
				return err
			}
		}

		detail, err = s.loadDetail(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return AssembleEventResponse(detail), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) (*domain.EventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateID(id); err != nil {
		return nil, err
	}

	var detail *domain.EventDetail
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		var err error
		detail, err = s.loadDetail(ctx, tx, id)
		if err != nil {
			return err
		}
		// questions and answers go with the event through ON DELETE CASCADE
		if err := tx.Events().Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return AssembleEventResponse(detail), nil
}

func (s *eventService) CreateQA(ctx context.Context, eventID int64, in domain.QACreate) (*domain.QAResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateID(eventID); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &domain.QAResult{}
	err := s.store.WithinTx(ctx, func(tx domain.Store) error {
		event, err := tx.Events().GetWithLocation(ctx, eventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("get event: %w", err)
		}
		if !event.Event.AllowQA {
			return fmt.Errorf("%w: questions are disabled for this event", domain.ErrInvalidInput)
		}

		if !in.IsAnswer() {
			q := &domain.Question{
				EventID:      eventID,
				QuestionText: strings.TrimSpace(*in.QuestionText),
				CreatedAt:    s.now(),
			}
			if err := tx.Questions().CreateQuestion(ctx, q); err != nil {
				return fmt.Errorf("create question: %w", err)
			}
			result.Question = q
			return nil
		}

		question, err := tx.Questions().GetQuestion(ctx, *in.QuestionID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: question %d", domain.ErrNotFound, *in.QuestionID)
			}
			return fmt.Errorf("get question: %w", err)
		}
		if question.EventID != eventID {
			return fmt.Errorf("%w: question %d does not belong to event %d", domain.ErrNotFound, question.ID, eventID)
		}
		a := &domain.Answer{
			QuestionID: question.ID,
			AnswerText: strings.TrimSpace(*in.AnswerText),
			CreatedAt:  s.now(),
		}
		if err := tx.Questions().CreateAnswer(ctx, a); err != nil {
			return fmt.Errorf("create answer: %w", err)
		}
		result.Answer = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *eventService) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.store.Events().DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge expired events: %w", err)
	}
	return n, nil
}

// loadDetail fetches the event with its location and, when Q&A is allowed, its questions and answers.
func (s *eventService) loadDetail(ctx context.Context, st domain.Store, id int64) (*domain.EventDetail, error) {
	detail, err := st.Events().GetWithLocation(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !detail.Event.AllowQA {
		return detail, nil
	}
	questions, err := st.Questions().ListByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	detail.Questions = questions
	return detail, nil
}

// withSlugRetry runs fn in a transaction, repeating it when a concurrent writer took the chosen slug first.
func (s *eventService) withSlugRetry(ctx context.Context, fn func(tx domain.Store) error) error {
	var err error
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		err = s.store.WithinTx(ctx, fn)
		if !isSlugRace(err) {
			return err
		}
	}
	return err
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", domain.ErrInvalidInput)
	}
	return nil
}
