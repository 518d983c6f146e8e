package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	ctx := r.Context()
	list, err := h.Activities.ListActivities(ctx)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, newActivitiesResponse(list))
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	ctx := r.Context()
	actor, err := h.Auth.RequireTeacher(ctx, identityFrom(ctx))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	req := enrollmentFromRequest(r)
	if err := req.Validate(); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	msg, err := h.Activities.Signup(ctx, req.Activity, req.Email, actor)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.Log.Info("participant signed up",
		"activity", req.Activity,
		"email", req.Email,
		"teacher", actor,
	)
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	ctx := r.Context()
	actor, err := h.Auth.RequireTeacher(ctx, identityFrom(ctx))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	req := enrollmentFromRequest(r)
	if err := req.Validate(); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	msg, err := h.Activities.Unregister(ctx, req.Activity, req.Email, actor)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.Log.Info("participant unregistered",
		"activity", req.Activity,
		"email", req.Email,
		"teacher", actor,
	)
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func enrollmentFromRequest(r *http.Request) enrollmentRequest {
	name := chi.URLParam(r, "activityName")
	// chi маршрутизирует по RawPath, только если в пути был закодированный символ
	// (например %2F); иначе параметр уже раскодирован и второй раз его трогать нельзя
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	return enrollmentRequest{
		Activity: name,
		Email:    r.URL.Query().Get("email"),
	}
}
