package services

import (
	"testing"
	"time"

	"eventsapi/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleEventResponse(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	q := func(id int64, at time.Time, answers ...*domain.Answer) *domain.QuestionWithAnswers {
		return &domain.QuestionWithAnswers{Question: domain.Question{ID: id, CreatedAt: at}, Answers: answers}
	}
	a := func(id int64, at time.Time) *domain.Answer {
		return &domain.Answer{ID: id, CreatedAt: at}
	}

	t.Run("qa disabled hides loaded questions", func(t *testing.T) {
		d := &domain.EventDetail{
			Event:     &domain.Event{ID: 1, AllowQA: false},
			Questions: []*domain.QuestionWithAnswers{q(1, base)},
		}
		assert.Nil(t, AssembleEventResponse(d).Questions)
	})

	t.Run("unloaded questions stay null", func(t *testing.T) {
		d := &domain.EventDetail{Event: &domain.Event{ID: 1, AllowQA: true}}
		assert.Nil(t, AssembleEventResponse(d).Questions)
	})

	t.Run("sorts newest first with id tiebreak", func(t *testing.T) {
		d := &domain.EventDetail{
			Event:    &domain.Event{ID: 1, AllowQA: true},
			Location: &domain.Location{ID: 3},
			Questions: []*domain.QuestionWithAnswers{
				q(1, base),
				q(2, base.Add(time.Minute), a(10, base), a(11, base.Add(time.Hour)), a(12, base.Add(time.Hour))),
				q(3, base),
			},
		}
		got := AssembleEventResponse(d)
		assert.Equal(t, int64(3), got.Location.ID)
		require.Len(t, got.Questions, 3)
		assert.Equal(t, []int64{2, 3, 1}, []int64{got.Questions[0].ID, got.Questions[1].ID, got.Questions[2].ID})
		ans := got.Questions[0].Answers
		require.Len(t, ans, 3)
		assert.Equal(t, []int64{12, 11, 10}, []int64{ans[0].ID, ans[1].ID, ans[2].ID})
		assert.NotNil(t, got.Questions[1].Answers)
		assert.Empty(t, got.Questions[1].Answers)

		// input order is untouched
		assert.Equal(t, int64(1), d.Questions[0].ID)
		assert.Equal(t, int64(10), d.Questions[1].Answers[0].ID)
	})

	t.Run("responses keep input order", func(t *testing.T) {
		got := AssembleEventResponses([]*domain.EventDetail{
			{Event: &domain.Event{ID: 2}},
			{Event: &domain.Event{ID: 1}},
		})
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].Event.ID)
		assert.Equal(t, int64(1), got[1].Event.ID)
		assert.NotNil(t, AssembleEventResponses(nil))
	})
}
