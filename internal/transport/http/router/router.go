package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AccountsHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	CreateAccount(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type JobsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Applicants(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health   HealthHandler
	Accounts AccountsHandler
	Jobs     JobsHandler

	RequestIDMW func(http.Handler) http.Handler
	AuthMW      func(http.Handler) http.Handler

	// Per-role guards. Each route declares the exact role set that may
	// call it.
	CandidateMW   func(http.Handler) http.Handler
	RecruiterMW   func(http.Handler) http.Handler
	InterviewerMW func(http.Handler) http.Handler

	// Optional throttles for anonymous account endpoints; nil disables.
	SignInLimitMW   func(http.Handler) http.Handler
	RegisterLimitMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Accounts == nil {
		return nil, fmt.Errorf("nil Accounts handler")
	}
	if deps.Jobs == nil {
		return nil, fmt.Errorf("nil Jobs handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.CandidateMW == nil || deps.RecruiterMW == nil || deps.InterviewerMW == nil {
		return nil, fmt.Errorf("nil role middleware")
	}

	r := chi.NewRouter()
	if deps.RequestIDMW != nil {
		r.Use(deps.RequestIDMW)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/accounts", func(r chi.Router) {
		signin := r.With()
		if deps.SignInLimitMW != nil {
			signin = r.With(deps.SignInLimitMW)
		}
		signin.Post("/signin", deps.Accounts.SignIn)

		register := r.With()
		if deps.RegisterLimitMW != nil {
			register = r.With(deps.RegisterLimitMW)
		}
		register.Post("/create-account", deps.Accounts.CreateAccount)

		r.With(deps.AuthMW).Get("/me", deps.Accounts.Me)
	})

	r.Route("/jobs", func(r chi.Router) {
		r.With(deps.AuthMW, deps.RecruiterMW).Get("/", deps.Jobs.List)
		r.With(deps.AuthMW, deps.RecruiterMW).Post("/", deps.Jobs.Create)
		r.With(deps.AuthMW, deps.RecruiterMW).Patch("/publish-job/{externalId}", deps.Jobs.Publish)
		r.With(deps.AuthMW, deps.InterviewerMW).Get("/view-applications/{externalId}", deps.Jobs.Applicants)
		r.With(deps.AuthMW, deps.CandidateMW).Post("/apply/{externalId}", deps.Jobs.Apply)

		// Public job detail; keep last so the fixed prefixes above win.
		r.Get("/{externalId}", deps.Jobs.Get)
	})

	return r, nil
}
