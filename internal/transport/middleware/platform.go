package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/contentflow-backend/pkg/ctxutil"
)

// RequireActor rejects anonymous requests with 401.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ActorFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePlatform lets only platform operators through. Anonymous callers
// get 401, consumers get 403.
func RequirePlatform(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ctxutil.ActorFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			return
		}
		if !actor.IsPlatform() {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "operator access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeError writes the same {code, message} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"code": code, "message": message})
}
