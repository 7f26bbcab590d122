package http

import (
	"net/http"

	"github.com/google/uuid"
)

// requestID tags every request with an id for log correlation, honoring
// one supplied by the caller.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
