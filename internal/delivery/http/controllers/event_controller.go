package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eventsapi/internal/delivery/http/helpers"
	"eventsapi/internal/domain"
)

// LocationRequest is the location object accepted inside event bodies.
type LocationRequest struct {
	PlaceID     *string `json:"place_id" maxLength:"255"`
	Name        *string `json:"name" maxLength:"255"`
	FullAddress *string `json:"full_address" maxLength:"500"`
	Address1    string  `json:"address_1" maxLength:"255"`
	Address2    *string `json:"address_2" maxLength:"255"`
	City        *string `json:"city" maxLength:"255"`
	State       *string `json:"state" maxLength:"255"`
	Zip         *string `json:"zip" maxLength:"20"`
}

func (l *LocationRequest) validate() []string {
	if l == nil {
		return nil
	}
	if strings.TrimSpace(l.Address1) == "" {
		return []string{"location.address_1 is required"}
	}
	return domain.LengthViolations(l.toDomain().FieldLimits()...)
}

func (l *LocationRequest) toDomain() *domain.LocationInput {
	if l == nil {
		return nil
	}
	return &domain.LocationInput{
		PlaceID:     l.PlaceID,
		Name:        l.Name,
		FullAddress: l.FullAddress,
		Address1:    l.Address1,
		Address2:    l.Address2,
		City:        l.City,
		State:       l.State,
		Zip:         l.Zip,
	}
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title         string             `json:"title" maxLength:"255"`
	HostName      *string            `json:"host_name" maxLength:"255"`
	Description   *string            `json:"description" maxLength:"500"`
	StartDateTime *helpers.Timestamp `json:"start_date_time"`
	EndDateTime   *helpers.Timestamp `json:"end_date_time"`
	AllowQA       *bool              `json:"allow_qa"`
	ImageURL      *string            `json:"image_url" maxLength:"255"`
	Location      *LocationRequest   `json:"location"`
}

// Validate implements Validator. Returns error messages for required, ordering and length rules.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.StartDateTime == nil || c.StartDateTime.IsZero() {
		errs = append(errs, "start_date_time is required")
	} else if c.EndDateTime != nil && !c.EndDateTime.After(c.StartDateTime.Time) {
		errs = append(errs, "end_date_time must be after start_date_time")
	}
	errs = append(errs, c.Location.validate()...)
	in := c.toDomain()
	in.Location = nil
	return append(errs, domain.LengthViolations(in.FieldLimits()...)...)
}

func (c CreateEventRequest) toDomain() domain.EventInput {
	in := domain.EventInput{
		Title:       c.Title,
		HostName:    c.HostName,
		Description: c.Description,
		EndDateTime: c.EndDateTime.Ptr(),
		AllowQA:     c.AllowQA,
		ImageURL:    c.ImageURL,
		Location:    c.Location.toDomain(),
	}
	if c.StartDateTime != nil {
		in.StartDateTime = c.StartDateTime.Time
	}
	return in
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. All fields optional; omitted fields are unchanged.
// Sending null for host_name, description, end_date_time, image_url or location clears it.
type UpdateEventRequest struct {
	Title         *string                             `json:"title" maxLength:"255"`
	HostName      helpers.Nullable[string]            `json:"host_name" swaggertype:"string" maxLength:"255" extensions:"x-nullable"`
	Description   helpers.Nullable[string]            `json:"description" swaggertype:"string" maxLength:"500" extensions:"x-nullable"`
	StartDateTime *helpers.Timestamp                  `json:"start_date_time"`
	EndDateTime   helpers.Nullable[helpers.Timestamp] `json:"end_date_time" swaggertype:"string" format:"date-time" extensions:"x-nullable"`
	AllowQA       *bool                               `json:"allow_qa"`
	ImageURL      helpers.Nullable[string]            `json:"image_url" swaggertype:"string" maxLength:"255" extensions:"x-nullable"`
	Location      helpers.Nullable[LocationRequest]   `json:"location" extensions:"x-nullable"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title must not be empty")
	}
	if end := u.EndDateTime.Ptr(); u.StartDateTime != nil && end != nil && !end.After(u.StartDateTime.Time) {
		errs = append(errs, "end_date_time must be after start_date_time")
	}
	errs = append(errs, u.Location.Ptr().validate()...)
	update := u.toDomain()
	update.Location = nil
	return append(errs, domain.LengthViolations(update.FieldLimits()...)...)
}

func (u UpdateEventRequest) toDomain() domain.EventUpdate {
	var end *time.Time
	if ts := u.EndDateTime.Ptr(); ts != nil {
		end = ts.Ptr()
	}
	return domain.EventUpdate{
		Title:            u.Title,
		HostName:         u.HostName.Ptr(),
		Description:      u.Description.Ptr(),
		StartDateTime:    u.StartDateTime.Ptr(),
		EndDateTime:      end,
		AllowQA:          u.AllowQA,
		ImageURL:         u.ImageURL.Ptr(),
		Location:         u.Location.Ptr().toDomain(),
		ClearHostName:    u.HostName.Cleared(),
		ClearDescription: u.Description.Cleared(),
		ClearEndDateTime: u.EndDateTime.Cleared(),
		ClearImageURL:    u.ImageURL.Cleared(),
		ClearLocation:    u.Location.Cleared(),
	}
}

// CreateQARequest is the request body for POST /events/{eventID}/qa.
// Send question_text to ask, or answer_text with question_id to answer.
type CreateQARequest struct {
	QuestionText *string `json:"question_text"`
	AnswerText   *string `json:"answer_text"`
	QuestionID   *int64  `json:"question_id"`
}

// Validate implements Validator.
func (q CreateQARequest) Validate() []string {
	hasQuestion := q.QuestionText != nil
	hasAnswer := q.AnswerText != nil || q.QuestionID != nil
	switch {
	case hasQuestion && hasAnswer:
		return []string{"provide either question_text or answer_text with question_id, not both"}
	case !hasQuestion && !hasAnswer:
		return []string{"provide question_text or answer_text with question_id"}
	case hasAnswer && (q.AnswerText == nil || q.QuestionID == nil):
		return []string{"answer_text and question_id must be sent together"}
	}
	return nil
}

// EventSuccessResponse is the success envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.EventResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// EventListSuccessResponse is the success envelope for GET /events.
type EventListSuccessResponse struct {
	Data  []*domain.EventResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// QASuccessResponse is the success envelope for POST /events/{eventID}/qa.
type QASuccessResponse struct {
	Data  *domain.QAResult  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *EventController) eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := helpers.ParseID(r, "eventID")
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be a positive integer")
	}
	return id, ok
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event, resolving or reusing its location and assigning a unique slug.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.Service.CreateEvent(r.Context(), req.toDomain())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, resp)
}

// ListEvents godoc
// @Summary List events
// @Description Returns a page of events ordered by id, each with its location. Questions are not included.
// @Tags events
// @Produce json
// @Param skip query int false "Number of events to skip" default(0)
// @Param limit query int false "Maximum number of events (1-100)" default(100)
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event, its location, and its questions with answers when Q&A is allowed.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.eventID(w, r)
	if !ok {
		return
	}
	resp, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// GetEventBySlug godoc
// @Summary Get an event by ID and slug
// @Description Same as GET /events/{eventID}. A stale or wrong slug redirects to the canonical path.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventSuccessResponse
// @Success 301 "redirect to /events/{eventID}/{canonical slug}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	id, ok := c.eventID(w, r)
	if !ok {
		return
	}
	resp, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if slug := r.PathValue("slug"); slug != resp.Event.Slug {
		target := fmt.Sprintf("/events/%d/%s", id, url.PathEscape(resp.Event.Slug))
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// UpdateEvent godoc
// @Summary Update event details
// @Description Partially updates an event. Omitted fields are unchanged and null clears host_name, description, end_date_time, image_url or location. A new title re-assigns the slug and a location is resolved or reused.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.eventID(w, r)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.Service.UpdateEvent(r.Context(), id, req.toDomain())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event with its questions and answers and returns it as it was. The location is kept.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the deleted event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.eventID(w, r)
	if !ok {
		return
	}
	resp, err := c.Service.DeleteEvent(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// CreateQA godoc
// @Summary Post a question or an answer
// @Description Send question_text to ask a question, or answer_text with question_id to answer one. The event must allow Q&A.
// @Tags qa
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body CreateQARequest true "Question or answer"
// @Success 201 {object} controllers.QASuccessResponse "data contains the created question or answer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/qa [post]
func (c *EventController) CreateQA(w http.ResponseWriter, r *http.Request) {
	id, ok := c.eventID(w, r)
	if !ok {
		return
	}
	var req CreateQARequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.CreateQA(r.Context(), id, domain.QACreate{
		QuestionText: req.QuestionText,
		AnswerText:   req.AnswerText,
		QuestionID:   req.QuestionID,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}
