package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Question is a question asked on an event.
// swagger:model Question
type Question struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	QuestionText string    `json:"question_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// Answer is a reply to a question. Its event is the question's event.
// swagger:model Answer
type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	AnswerText string    `json:"answer_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuestionWithAnswers bundles a question with its answers.
type QuestionWithAnswers struct {
	Question
	Answers []*Answer `json:"answers"`
}

// QACreate is the payload for posting either a question or an answer.
type QACreate struct {
	QuestionText *string
	AnswerText   *string
	QuestionID   *int64
}

// IsAnswer reports whether the payload carries an answer rather than a question.
func (in QACreate) IsAnswer() bool {
	return in.AnswerText != nil
}

// Validate enforces that exactly one of a question or an answer is present.
func (in QACreate) Validate() error {
	hasQuestion := in.QuestionText != nil
	hasAnswer := in.AnswerText != nil || in.QuestionID != nil
	switch {
	case hasQuestion && hasAnswer:
		return fmt.Errorf("%w: provide either question_text or answer_text with question_id, not both", ErrInvalidInput)
	case !hasQuestion && !hasAnswer:
		return fmt.Errorf("%w: provide question_text or answer_text with question_id", ErrInvalidInput)
	case hasQuestion:
		if strings.TrimSpace(*in.QuestionText) == "" {
			return fmt.Errorf("%w: question_text must not be empty", ErrInvalidInput)
		}
	default:
		if in.AnswerText == nil || strings.TrimSpace(*in.AnswerText) == "" {
			return fmt.Errorf("%w: answer_text is required with question_id", ErrInvalidInput)
		}
		if in.QuestionID == nil {
			return fmt.Errorf("%w: question_id is required with answer_text", ErrInvalidInput)
		}
		if *in.QuestionID <= 0 {
			return fmt.Errorf("%w: question_id must be positive", ErrInvalidInput)
		}
	}
	return nil
}

// QAResult holds whichever record a QACreate produced.
// swagger:model QAResult
type QAResult struct {
	Question *Question `json:"question,omitempty"`
	Answer   *Answer   `json:"answer,omitempty"`
}

// QuestionRepository defines storage for questions and answers.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question *Question) error
	GetQuestion(ctx context.Context, id int64) (*Question, error)
	CreateAnswer(ctx context.Context, answer *Answer) error
	// ListByEventID returns the event's questions newest first, each with its answers newest first.
	ListByEventID(ctx context.Context, eventID int64) ([]*QuestionWithAnswers, error)
}
