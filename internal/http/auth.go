package http

import (
	"net/http"
	"net/url"

	"activities-service/internal/service"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_login"

	// веб-клиент шлёт форму в теле, API-клиенты — query-параметры; r.Form содержит оба
	if err := r.ParseForm(); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("malformed form body"))
		return
	}
	req := loginRequest{
		Username: formField(r.Form, "username"),
		Password: formField(r.Form, "password"),
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	res, err := h.Auth.Login(ctx, *req.Username, *req.Password)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.Log.Info("teacher logged in", "username", *req.Username)

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		TeacherName: res.TeacherName,
	})
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	const handlerName = "auth_verify"

	ctx := r.Context()
	teacher, err := h.Auth.Verify(ctx, identityFrom(ctx))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		Username:      teacher.Username,
		TeacherName:   teacher.Name,
		Authenticated: true,
	})
}

// formField возвращает nil, если ключ не передан, и указатель на значение иначе.
func formField(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	v := form.Get(key)
	return &v
}
