package http_handlers

import (
	"net/http"

	"github.com/openhire/jobboard-service/internal/application/auth"
	"github.com/openhire/jobboard-service/internal/domain"
	"github.com/openhire/jobboard-service/internal/logger"
	"github.com/openhire/jobboard-service/internal/transport/http/dto"
	"github.com/openhire/jobboard-service/internal/transport/http/middleware"
	"github.com/openhire/jobboard-service/internal/transport/http/response"
)

type AccountsHandler struct {
	svc *auth.Service
}

func NewAccountsHandler(svc *auth.Service) *AccountsHandler {
	return &AccountsHandler{svc: svc}
}

// SignIn handles POST /accounts/signin.
func (h *AccountsHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("email", req.Email).
		Msg("user_signed_in")

	response.OK(w, dto.TokenData{Token: res.Token})
}

// CreateAccount handles POST /accounts/create-account. Self-service
// signup always creates a CANDIDATE account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.RegisterCandidate(r.Context(), auth.RegisterCandidateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("user_external_id", u.ExternalID).
		Str("email", u.Email).
		Msg("account_created")

	response.Created(w, dto.NewUserView(u))
}

// Me handles GET /accounts/me for any authenticated role.
func (h *AccountsHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	u, err := h.svc.UserByExternalID(r.Context(), id.ExternalID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewUserView(u))
}
