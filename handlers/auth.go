package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/CherDalov/Accountability-2.0/database"
	"github.com/CherDalov/Accountability-2.0/middleware"
	"github.com/CherDalov/Accountability-2.0/models"
)

// Register handles a new user registration.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warn("bad register payload", "error", err)
		respondFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		respondFailure(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, err := h.Store.CreateUser(r.Context(), req.Username, req.Password)
	if errors.Is(err, database.ErrUsernameTaken) {
		respondFailure(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		h.Logger.Error("registration failed", "error", err)
		respondFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondSuccess(w, "Registration successful")
}

// Login authenticates the user and issues a session cookie. Unknown
// usernames and wrong passwords get the same response.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warn("bad login payload", "error", err)
		respondFailure(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.Store.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, database.ErrInvalidCredentials) {
		respondFailure(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.Logger.Error("login failed", "error", err)
		respondFailure(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token := h.Sessions.Create(user.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondSuccess(w, "Login successful")
}

// Logout destroys the session unconditionally and sends the user back to
// the login page. Logging out twice is not an error.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		h.Sessions.Destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login.html", http.StatusSeeOther)
}
