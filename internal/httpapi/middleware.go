package httpapi

import (
	"context"
	"net/http"

	"github.com/vastra/commerce-core/internal/service"
	"github.com/vastra/commerce-core/internal/session"
)

// SessionHeader carries the conversation id. The gateway mints one when the
// caller doesn't supply it and always echoes the effective id back, so the
// conversational layer can pin all of a dialogue's tool calls to one cart.
const SessionHeader = "X-Session-ID"

type contextKey int

const commerceKey contextKey = iota

// SessionMiddleware resolves the request's session to a commerce context
// and stores it on the request context.
func SessionMiddleware(reg *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				id = reg.NewID()
			}
			w.Header().Set(SessionHeader, id)

			ctx := context.WithValue(r.Context(), commerceKey, reg.Get(id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func commerceFrom(ctx context.Context) *service.Commerce {
	c, _ := ctx.Value(commerceKey).(*service.Commerce)
	return c
}
