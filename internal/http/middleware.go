package http

import (
	"context"
	"net/http"
	"strings"
)

type identityKey struct{}

// identify кладёт в контекст логин учителя из bearer-токена.
// Нет заголовка, чужая схема, битый или просроченный токен — всё это аноним (пустая строка),
// запрос при этом не отклоняется: решение принимают обработчики.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject := ""
		if token := bearerToken(r); token != "" {
			subject = h.Auth.Identify(r.Context(), token)
		}
		ctx := context.WithValue(r.Context(), identityKey{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(ctx context.Context) string {
	subject, _ := ctx.Value(identityKey{}).(string)
	return subject
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
