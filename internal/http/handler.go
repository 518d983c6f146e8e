package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"activities-service/internal/model"
	"activities-service/internal/service"
)

// AuthService описывает операции аутентификации, нужные обработчикам.
type AuthService interface {
	Login(ctx context.Context, username, password string) (service.LoginResult, error)
	Identify(ctx context.Context, token string) string
	Verify(ctx context.Context, subject string) (model.Teacher, error)
	RequireTeacher(ctx context.Context, subject string) (string, error)
}

// ActivityService описывает операции над реестром кружков.
type ActivityService interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	Signup(ctx context.Context, name, email, actor string) (string, error)
	Unregister(ctx context.Context, name, email, actor string) (string, error)
}

type Handler struct {
	Auth       AuthService
	Activities ActivityService
	Log        *slog.Logger

	// StaticDir — каталог статики веб-клиента; пустая строка отключает раздачу.
	StaticDir string
	// AllowedOrigins — список origin для CORS.
	AllowedOrigins []string
}

func NewHandler(auth AuthService, activities ActivityService, log *slog.Logger) *Handler {
	return &Handler{
		Auth:           auth,
		Activities:     activities,
		Log:            log,
		AllowedOrigins: []string{"*"},
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(h.identify)

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)

	if h.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(h.StaticDir)))
		r.Handle("/static/*", fs)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Get("/verify", h.handleVerify)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{activityName}/signup", h.handleSignup)
		r.Delete("/{activityName}/unregister", h.handleUnregister)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = &service.AppError{
			Code:    service.CodeInternal,
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	if appErr.Code == service.CodeUnauthenticated {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	resp := errorResponse{Detail: appErr.Message}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
