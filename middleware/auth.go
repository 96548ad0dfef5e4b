package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/CherDalov/Accountability-2.0/sessions"
)

// ContextKey is a custom type to avoid context key collisions.
type ContextKey string

// UserIDKey is the key under which the authenticated user's id is stored in
// the request context.
const UserIDKey ContextKey = "userId"

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session"

// Auth gates a route behind a valid session. The token comes from the
// session cookie and is resolved server-side; API requests get a 401 JSON
// envelope, page requests are redirected to the login page.
func Auth(store *sessions.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				deny(w, r)
				return
			}

			userID, ok := store.UserID(cookie.Value)
			if !ok {
				deny(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Authentication required",
		})
		return
	}
	http.Redirect(w, r, "/login.html", http.StatusFound)
}

// UserID extracts the authenticated user id placed in the context by Auth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}
