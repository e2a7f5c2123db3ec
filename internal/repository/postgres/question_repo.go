package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventsapi/internal/domain"
)

type questionRepository struct {
	DB DBTX
}

// NewQuestionRepository returns a domain.QuestionRepository implemented with Postgres.
func NewQuestionRepository(db DBTX) domain.QuestionRepository {
	return &questionRepository{DB: db}
}

func (r *questionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO questions (event_id, question_text, created_at) VALUES ($1, $2, $3) RETURNING id`,
		q.EventID, q.QuestionText, q.CreatedAt,
	).Scan(&q.ID)
	if err != nil && hasPQCode(err, pgForeignKeyViolation) {
		return fmt.Errorf("%w: event %d", domain.ErrNotFound, q.EventID)
	}
	return err
}

func (r *questionRepository) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	var q domain.Question
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, event_id, question_text, created_at FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.EventID, &q.QuestionText, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) CreateAnswer(ctx context.Context, a *domain.Answer) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO answers (question_id, answer_text, created_at) VALUES ($1, $2, $3) RETURNING id`,
		a.QuestionID, a.AnswerText, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil && hasPQCode(err, pgForeignKeyViolation) {
		return fmt.Errorf("%w: question %d", domain.ErrNotFound, a.QuestionID)
	}
	return err
}

// ListByEventID loads questions and answers with one query each and groups answers in memory.
func (r *questionRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.QuestionWithAnswers, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, event_id, question_text, created_at
		 FROM questions
		 WHERE event_id = $1
		 ORDER BY created_at DESC, id DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]*domain.QuestionWithAnswers, 0)
	byID := make(map[int64]*domain.QuestionWithAnswers)
	for rows.Next() {
		q := &domain.QuestionWithAnswers{Answers: []*domain.Answer{}}
		if err := rows.Scan(&q.ID, &q.EventID, &q.QuestionText, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
		byID[q.ID] = q
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	answerRows, err := r.DB.QueryContext(ctx,
		`SELECT a.id, a.question_id, a.answer_text, a.created_at
		 FROM answers a
		 JOIN questions q ON q.id = a.question_id
		 WHERE q.event_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer answerRows.Close()
	for answerRows.Next() {
		var a domain.Answer
		if err := answerRows.Scan(&a.ID, &a.QuestionID, &a.AnswerText, &a.CreatedAt); err != nil {
			return nil, err
		}
		if q, ok := byID[a.QuestionID]; ok {
			q.Answers = append(q.Answers, &a)
		}
	}
	if err := answerRows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
