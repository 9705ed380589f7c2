package auth

import (
	"context"
	"net/http"
	"strings"

	"parcelnet/internal/entities"
)

type ctxKey struct{}

// Middleware проверяет bearer-токен и кладет контекст актора в request context.
// Ручки за этим middleware берут актора только через FromContext, полям запроса
// про роль или район никто не верит.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor, err := parser.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := NewContext(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewContext кладет актора в request context в обход разбора токена.
func NewContext(ctx context.Context, actor entities.AuthContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func FromContext(ctx context.Context) (entities.AuthContext, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entities.AuthContext)
	return actor, ok
}
