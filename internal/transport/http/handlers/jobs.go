package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openhire/jobboard-service/internal/application/jobs"
	"github.com/openhire/jobboard-service/internal/logger"
	"github.com/openhire/jobboard-service/internal/transport/http/dto"
	"github.com/openhire/jobboard-service/internal/transport/http/response"
)

type JobsHandler struct {
	svc *jobs.Service
}

func NewJobsHandler(svc *jobs.Service) *JobsHandler {
	return &JobsHandler{svc: svc}
}

// List handles GET /jobs?page=&pageSize=&name= for recruiters.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := h.svc.FindAll(r.Context(), jobs.FindAllParams{
		Page:     queryInt(q.Get("page")),
		PageSize: queryInt(q.Get("pageSize")),
		Name:     q.Get("name"),
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.JobListData{
		Count:    res.Count,
		PageSize: res.PageSize,
		Data:     dto.NewJobViews(res.Data),
	})
}

// Get handles GET /jobs/{externalId}. The endpoint is public; the
// applicant set is never included here.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalId")

	j, err := h.svc.FindOne(r.Context(), externalID, false)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewJobView(j))
}

// Applicants handles GET /jobs/view-applications/{externalId} for
// interviewers.
func (h *JobsHandler) Applicants(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalId")
	q := r.URL.Query()

	page := queryInt(q.Get("page"))
	pageSize := queryInt(q.Get("pageSize"))
	if pageSize < 1 {
		pageSize = jobs.DefaultPageSize
	}

	users, err := h.svc.FindApplicants(r.Context(), externalID, page, pageSize)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ApplicantListData{
		PageSize: pageSize,
		Data:     dto.NewUserViews(users),
	})
}

// Create handles POST /jobs for recruiters. New jobs start UNPUBLISHED.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	j, err := h.svc.Create(r.Context(), jobs.CreateJobInput{Name: req.Name})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("job_external_id", j.ExternalID).
		Msg("job_created")

	response.Created(w, dto.NewJobView(j))
}

// Publish handles PATCH /jobs/publish-job/{externalId} for recruiters.
func (h *JobsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalId")

	j, err := h.svc.Publish(r.Context(), externalID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("job_external_id", j.ExternalID).
		Msg("job_published")

	response.OK(w, dto.NewJobView(j))
}

// Apply handles POST /jobs/apply/{externalId} for candidates.
func (h *JobsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	externalID := chi.URLParam(r, "externalId")

	var req dto.ApplyToJobRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.Apply(r.Context(), externalID, req.UserExternalID); err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("job_external_id", externalID).
		Str("user_external_id", req.UserExternalID).
		Msg("candidate_applied")

	response.OK(w, map[string]string{"status": "applied"})
}

// queryInt parses a positive integer query value; anything else is 0 and
// lets the service apply its defaults.
func queryInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
