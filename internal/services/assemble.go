package services

import (
	"sort"

	"eventsapi/internal/domain"
)

// AssembleEventResponse shapes an event and its loaded relations for clients.
// Questions stay null unless Q&A is allowed and were loaded; questions and answers are ordered
// newest first and every question carries a non-nil answers list.
func AssembleEventResponse(d *domain.EventDetail) *domain.EventResponse {
	resp := &domain.EventResponse{
		Event:    d.Event,
		Location: d.Location,
	}
	if !d.Event.AllowQA || d.Questions == nil {
		return resp
	}

	questions := make([]*domain.QuestionWithAnswers, 0, len(d.Questions))
	for _, q := range d.Questions {
		answers := make([]*domain.Answer, len(q.Answers))
		copy(answers, q.Answers)
		sort.SliceStable(answers, func(i, j int) bool {
			return newerFirst(answers[i].CreatedAt.UnixNano(), answers[i].ID, answers[j].CreatedAt.UnixNano(), answers[j].ID)
		})
		questions = append(questions, &domain.QuestionWithAnswers{Question: q.Question, Answers: answers})
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return newerFirst(questions[i].CreatedAt.UnixNano(), questions[i].ID, questions[j].CreatedAt.UnixNano(), questions[j].ID)
	})
	resp.Questions = questions
	return resp
}

// AssembleEventResponses shapes a page of events.
func AssembleEventResponses(details []*domain.EventDetail) []*domain.EventResponse {
	out := make([]*domain.EventResponse, 0, len(details))
	for _, d := range details {
		out = append(out, AssembleEventResponse(d))
	}
	return out
}

func newerFirst(tsA, idA, tsB, idB int64) bool {
	if tsA != tsB {
		return tsA > tsB
	}
	return idA > idB
}
