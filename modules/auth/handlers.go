package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/coursekit/pkg/binder"
	"github.com/dmitrymomot/coursekit/pkg/logger"
	"github.com/dmitrymomot/coursekit/pkg/response"
)

// Handler exposes the auth service over the JSON API.
type Handler struct {
	svc     *Service
	session *SessionCookies
	logger  *slog.Logger
}

// HandlerOption configures the HTTP handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets a custom logger for the handler.
func WithHandlerLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.logger = log
		}
	}
}

// NewHandler creates the HTTP handler.
func NewHandler(svc *Service, session *SessionCookies, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:     svc,
		session: session,
		logger:  logger.NewDiscard(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// accountPayload is the public account representation. The password hash
// never appears here.
type accountPayload struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar"`
	Bio          string    `json:"bio,omitempty"`
	Verified     bool      `json:"verified"`
	IsGoogleUser bool      `json:"isGoogleUser"`
	LastLogin    time.Time `json:"lastLogin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func accountResponse(a *Account) accountPayload {
	return accountPayload{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		Avatar:       a.Avatar,
		Bio:          a.Bio,
		Verified:     a.Verified,
		IsGoogleUser: a.IsGoogleUser(),
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := binder.JSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	account, token, err := h.svc.Register(r.Context(), RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     Role(req.Role),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.session.Attach(w, token)
	response.OKWithToken(w, http.StatusCreated, accountResponse(account), token)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := binder.JSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	account, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.session.Attach(w, token)
	response.OKWithToken(w, http.StatusOK, accountResponse(account), token)
}

type googleRequest struct {
	Token string `json:"token"`
}

func (h *Handler) google(w http.ResponseWriter, r *http.Request) {
	var req googleRequest
	if err := binder.JSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	account, token, err := h.svc.GoogleLogin(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.session.Attach(w, token)
	response.OKWithToken(w, http.StatusOK, accountResponse(account), token)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, ErrUnauthenticated)
		return
	}

	// Re-read so the response reflects concurrent profile changes rather
	// than the snapshot resolved by the middleware.
	fresh, err := h.svc.Me(r.Context(), account.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.OK(w, http.StatusOK, accountResponse(fresh))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	account, _ := AccountFromContext(r.Context())

	h.session.Clear(w)

	if account != nil {
		h.logger.InfoContext(r.Context(), "account logged out",
			logger.AccountID(account.ID),
			logger.Email(account.Email),
			logger.Component(componentAuthName),
		)
	}

	response.Message(w, http.StatusOK, "User logged out successfully")
}

type updateProfileRequest struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, ErrUnauthenticated)
		return
	}

	var req updateProfileRequest
	if err := binder.JSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	updated, err := h.svc.UpdateProfile(r.Context(), account.ID, UpdateProfileParams{
		Name: req.Name,
		Bio:  req.Bio,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.OK(w, http.StatusOK, accountResponse(updated))
}
