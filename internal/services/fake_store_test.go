package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"eventsapi/internal/domain"
)

// fakeDB is the in-memory state behind fakeStore. It mirrors the Postgres schema rules the
// service depends on: unique slugs, cascading deletes and NULL slugs right after insert.
type fakeDB struct {
	events    map[int64]*domain.Event
	locations map[int64]*domain.Location
	questions map[int64]*domain.Question
	answers   map[int64]*domain.Answer
	nextID    int64

	// slugRaces makes the next SetSlug calls fail as if another writer took the slug first.
	slugRaces int
	// err, if set, is returned by every repository call.
	err error
	// txCount counts WithinTx calls that started a transaction.
	txCount int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		events:    make(map[int64]*domain.Event),
		locations: make(map[int64]*domain.Location),
		questions: make(map[int64]*domain.Question),
		answers:   make(map[int64]*domain.Answer),
		nextID:    1,
	}
}

func (db *fakeDB) id() int64 {
	id := db.nextID
	db.nextID++
	return id
}

func (db *fakeDB) snapshot() *fakeDB {
	cp := newFakeDB()
	cp.nextID = db.nextID
	for k, v := range db.events {
		e := *v
		cp.events[k] = &e
	}
	for k, v := range db.locations {
		l := *v
		cp.locations[k] = &l
	}
	for k, v := range db.questions {
		q := *v
		cp.questions[k] = &q
	}
	for k, v := range db.answers {
		a := *v
		cp.answers[k] = &a
	}
	return cp
}

func (db *fakeDB) restore(s *fakeDB) {
	db.events = s.events
	db.locations = s.locations
	db.questions = s.questions
	db.answers = s.answers
	db.nextID = s.nextID
}

type fakeStore struct {
	db   *fakeDB
	inTx bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{db: newFakeDB()}
}

func (s *fakeStore) Events() domain.EventRepository       { return &fakeEventRepo{db: s.db} }
func (s *fakeStore) Locations() domain.LocationRepository { return &fakeLocationRepo{db: s.db} }
func (s *fakeStore) Questions() domain.QuestionRepository { return &fakeQuestionRepo{db: s.db} }

func (s *fakeStore) WithinTx(ctx context.Context, fn func(tx domain.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.db.txCount++
	saved := s.db.snapshot()
	if err := fn(&fakeStore{db: s.db, inTx: true}); err != nil {
		s.db.restore(saved)
		return err
	}
	return nil
}

// seedEvent inserts an event directly, bypassing the service.
func (s *fakeStore) seedEvent(e domain.Event) *domain.Event {
	if e.ID == 0 {
		e.ID = s.db.id()
	}
	s.db.events[e.ID] = &e
	return &e
}

func (s *fakeStore) seedQuestion(eventID int64, text string, at time.Time) *domain.Question {
	q := &domain.Question{ID: s.db.id(), EventID: eventID, QuestionText: text, CreatedAt: at}
	s.db.questions[q.ID] = q
	return q
}

func (s *fakeStore) seedAnswer(questionID int64, text string, at time.Time) *domain.Answer {
	a := &domain.Answer{ID: s.db.id(), QuestionID: questionID, AnswerText: text, CreatedAt: at}
	s.db.answers[a.ID] = a
	return a
}

type fakeEventRepo struct {
	db *fakeDB
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.db.err != nil {
		return f.db.err
	}
	if e.LocationID != nil {
		if _, ok := f.db.locations[*e.LocationID]; !ok {
			return fmt.Errorf("%w: location does not exist", domain.ErrNotFound)
		}
	}
	e.ID = f.db.id()
	row := *e
	row.Slug = ""
	f.db.events[e.ID] = &row
	return nil
}

func (f *fakeEventRepo) SetSlug(ctx context.Context, id int64, slug string) error {
	if f.db.err != nil {
		return f.db.err
	}
	if f.db.slugRaces > 0 {
		f.db.slugRaces--
		return fmt.Errorf("%w: slug %q already taken", domain.ErrConflict, slug)
	}
	for otherID, e := range f.db.events {
		if otherID != id && e.Slug == slug {
			return fmt.Errorf("%w: slug %q already taken", domain.ErrConflict, slug)
		}
	}
	e, ok := f.db.events[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Slug = slug
	return nil
}

func (f *fakeEventRepo) ListSlugs(ctx context.Context, base string, excludeID int64) ([]string, error) {
	if f.db.err != nil {
		return nil, f.db.err
	}
	out := make([]string, 0)
	for id, e := range f.db.events {
		if id == excludeID || e.Slug == "" {
			continue
		}
		if e.Slug == base || strings.HasPrefix(e.Slug, base+"-") {
			out = append(out, e.Slug)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) detail(e *domain.Event) *domain.EventDetail {
	ev := *e
	d := &domain.EventDetail{Event: &ev}
	if e.LocationID != nil {
		if l, ok := f.db.locations[*e.LocationID]; ok {
			loc := *l
			d.Location = &loc
		}
	}
	return d
}

func (f *fakeEventRepo) GetWithLocation(ctx context.Context, id int64) (*domain.EventDetail, error) {
	if f.db.err != nil {
		return nil, f.db.err
	}
	e, ok := f.db.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return f.detail(e), nil
}

func (f *fakeEventRepo) ListWithLocations(ctx context.Context, params domain.PaginationParams) ([]*domain.EventDetail, error) {
	if f.db.err != nil {
		return nil, f.db.err
	}
	ids := make([]int64, 0, len(f.db.events))
	for id := range f.db.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*domain.EventDetail, 0)
	for i, id := range ids {
		if i < params.Offset {
			continue
		}
		if len(out) == params.Limit {
			break
		}
		out = append(out, f.detail(f.db.events[id]))
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id int64, u domain.EventUpdate) error {
	if f.db.err != nil {
		return f.db.err
	}
	e, ok := f.db.events[id]
	if !ok {
		return domain.ErrNotFound
	}
	if u.Title != nil {
		e.Title = strings.TrimSpace(*u.Title)
	}
	if u.HostName != nil {
		e.HostName = u.HostName
	}
	if u.Description != nil {
		e.Description = u.Description
	}
	if u.StartDateTime != nil {
		e.StartDateTime = *u.StartDateTime
	}
	if u.EndDateTime != nil {
		e.EndDateTime = u.EndDateTime
	}
	if u.AllowQA != nil {
		e.AllowQA = *u.AllowQA
	}
	if u.ImageURL != nil {
		e.ImageURL = u.ImageURL
	}
	if u.LocationID != nil {
		e.LocationID = u.LocationID
	}
	if u.ClearHostName {
		e.HostName = nil
	}
	if u.ClearDescription {
		e.Description = nil
	}
	if u.ClearEndDateTime {
		e.EndDateTime = nil
	}
	if u.ClearImageURL {
		e.ImageURL = nil
	}
	if u.ClearLocation {
		e.LocationID = nil
	}
	now := time.Now()
	e.UpdatedAt = &now
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if f.db.err != nil {
		return f.db.err
	}
	if _, ok := f.db.events[id]; !ok {
		return domain.ErrNotFound
	}
	f.cascade(id)
	return nil
}

func (f *fakeEventRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if f.db.err != nil {
		return 0, f.db.err
	}
	var n int64
	for id, e := range f.db.events {
		end := e.StartDateTime
		if e.EndDateTime != nil {
			end = *e.EndDateTime
		}
		if end.Before(cutoff) {
			f.cascade(id)
			n++
		}
	}
	return n, nil
}

func (f *fakeEventRepo) cascade(eventID int64) {
	delete(f.db.events, eventID)
	for qid, q := range f.db.questions {
		if q.EventID != eventID {
			continue
		}
		for aid, a := range f.db.answers {
			if a.QuestionID == qid {
				delete(f.db.answers, aid)
			}
		}
		delete(f.db.questions, qid)
	}
}

type fakeLocationRepo struct {
	db *fakeDB
}

func (f *fakeLocationRepo) first(match func(*domain.Location) bool) (*domain.Location, error) {
	var found *domain.Location
	for _, l := range f.db.locations {
		if match(l) && (found == nil || l.ID < found.ID) {
			found = l
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func (f *fakeLocationRepo) GetByPlaceID(ctx context.Context, placeID string) (*domain.Location, error) {
	if f.db.err != nil {
		return nil, f.db.err
	}
	return f.first(func(l *domain.Location) bool { return l.PlaceID != nil && *l.PlaceID == placeID })
}

func (f *fakeLocationRepo) GetByAddress1(ctx context.Context, address1 string) (*domain.Location, error) {
	if f.db.err != nil {
		return nil, f.db.err
	}
	return f.first(func(l *domain.Location) bool { return l.Address1 == address1 })
}

func (f *fakeLocationRepo) Create(ctx context.Context, l *domain.Location) error {
	if f.db.err != nil {
		return f.db.err
	}
	l.ID = f.db.id()
	row := *l
	f.db.locations[l.ID] = &row
	return nil
}

type fakeQuestionRepo struct {
	db *fakeDB
}

func (f *fakeQuestionRepo) CreateQuestion(ctx context.Context, q *domain.Question) error {
	if f.db.err != nil {
		return f.db.err
	}
	if _, ok := f.db.events[q.EventID]; !ok {
		return domain.ErrNotFound
	}
	q.ID = f.db.id()
	row := *q
	f.db.questions[q.ID] = &row
	return nil
}

func (f *fakeQuestionRepo) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	if f.db.err != nil {
		return nil, f.db.err
	}
	q, ok := f.db.questions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestionRepo) CreateAnswer(ctx context.Context, a *domain.Answer) error {
	if f.db.err != nil {
		return f.db.err
	}
	if _, ok := f.db.questions[a.QuestionID]; !ok {
		return domain.ErrNotFound
	}
	a.ID = f.db.id()
	row := *a
	f.db.answers[a.ID] = &row
	return nil
}

// ListByEventID returns rows in map order so the service's own ordering is what tests observe.
func (f *fakeQuestionRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.QuestionWithAnswers, error) {
	if f.db.err != nil {
		return nil, f.db.err
	}
	out := make([]*domain.QuestionWithAnswers, 0)
	for _, q := range f.db.questions {
		if q.EventID != eventID {
			continue
		}
		qa := &domain.QuestionWithAnswers{Question: *q, Answers: make([]*domain.Answer, 0)}
		for _, a := range f.db.answers {
			if a.QuestionID == q.ID {
				cp := *a
				qa.Answers = append(qa.Answers, &cp)
			}
		}
		out = append(out, qa)
	}
	return out, nil
}
