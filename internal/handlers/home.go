package handlers

import (
	"net/http"
)

// Home routes visitors to the product editor or the login screen.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if ActiveSession(r) {
		redirectToEditor(w, r)
		return
	}
	redirectToLogin(w, r)
}
