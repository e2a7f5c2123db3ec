package domain

// EventResponse is the nested shape returned to clients for an event.
// Questions is null when Q&A is disabled or was not requested.
// swagger:model EventResponse
type EventResponse struct {
	Event     *Event                 `json:"event"`
	Location  *Location              `json:"location"`
	Questions []*QuestionWithAnswers `json:"questions"`
}
