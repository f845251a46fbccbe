package middleware

import (
	"net/http"

	"github.com/mugiliam/contentcatalog/internal/db"
)

// LoadScopedDB holds one pooled connection for the duration of the request.
// Without a configured database the request passes through unchanged.
func LoadScopedDB(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !db.Configured() {
			next.ServeHTTP(w, r)
			return
		}
		ctx := db.ConnCtx(r.Context())
		if db.InContext(ctx) {
			defer db.DB(ctx).Close(ctx)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
