package handlers

import (
	"context"
	"net/http"

	"coffee-wifi-server/db"
	"coffee-wifi-server/model"
)

const sessionCookieName = "session"

type contextKey string

const userContextKey contextKey = "user"

// CurrentUser returns the user resolved from the request session, or nil
// for an anonymous request. The identity travels in the request context,
// never in package state.
func CurrentUser(r *http.Request) *model.User {
	if user, ok := r.Context().Value(userContextKey).(*model.User); ok {
		return user
	}
	return nil
}

// resolveUser loads the user bound to the session cookie, if any.
func resolveUser(r *http.Request) *model.User {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	sessionDAO := db.NewSessionDAO(db.GetDB())
	session, err := sessionDAO.GetSession(cookie.Value)
	if err != nil {
		return nil
	}

	userDAO := db.NewUserDAO(db.GetDB())
	user, err := userDAO.GetUserById(session.UserID)
	if err != nil {
		return nil
	}

	return &user
}

// WithUser resolves the session identity, when present, without requiring
// one. Used for pages that render differently for logged-in users.
func WithUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := resolveUser(r); user != nil {
			ctx := context.WithValue(r.Context(), userContextKey, user)
			r = r.WithContext(ctx)
		}
		next(w, r)
	}
}

// RequireLogin requires a valid session. Redirects to /login otherwise.
func RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := resolveUser(r)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin requires a valid session whose user has the admin role.
// The response never reveals whether the requested resource exists.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return RequireLogin(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil || !user.IsAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	})
}
