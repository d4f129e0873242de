package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	applog "merchdesk/internal/log"
	"merchdesk/internal/views/components"
	"merchdesk/internal/views/pages"
)

const loginFailedMessage = "We were unable to sign you in. Please try again."

// Login renders the sign-in view and, on success, sends the merchandiser straight to
// the product editor.
func Login(w http.ResponseWriter, r *http.Request) {
	ctx := applog.WithAttrs(r.Context(), "handler", "login", "htmx", isHTMX(r))
	r = r.WithContext(ctx)
	applog.Debug(ctx, "handling login request", "method", r.Method)

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			applog.Debug(ctx, "session already active, opening editor", "editor", components.EditorPath)
			redirectToEditor(w, r)
			return
		}
		message := ""
		if sessionManager != nil {
			message = sessionManager.PopString(ctx, sessionLoginMessageKey)
		}
		renderLogin(w, r, message, "")
	case http.MethodPost:
		if sessionManager == nil || database == nil {
			applog.Warn(ctx, "login unavailable", "hasSession", sessionManager != nil, "hasDatabase", database != nil)
			http.Error(w, "authentication not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(ctx, "failed to parse login form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.PostFormValue("email"))
		password := r.PostFormValue("password")
		if email == "" || password == "" {
			renderLogin(w, r, "Email and password are required.", email)
			return
		}

		ctx = applog.WithAttrs(ctx, "email", strings.ToLower(email))
		r = r.WithContext(ctx)
		if !authenticate(w, r, email, password) {
			message := sessionManager.PopString(ctx, sessionLoginMessageKey)
			if message == "" {
				message = loginFailedMessage
			}
			applog.Info(ctx, "sign-in rejected")
			renderLogin(w, r, message, email)
			return
		}

		applog.Info(ctx, "sign-in accepted, opening editor", "editor", components.EditorPath, "user", currentUserName(r))
		redirectToEditor(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderLogin(w http.ResponseWriter, r *http.Request, message, email string) {
	var component templ.Component = pages.Login(message, email)
	if isHTMX(r) {
		component = pages.LoginPartial(message, email)
	}
	applog.Debug(r.Context(), "rendering login form", "partial", isHTMX(r), "messagePresent", message != "")
	renderHTML(w, r, component)
}
