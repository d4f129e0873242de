package handlers

import (
	"net/http"

	"merchdesk/internal/views/components"
)

// Dashboard sends authenticated users to the product editor.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	redirect(w, r, components.EditorPath)
}
