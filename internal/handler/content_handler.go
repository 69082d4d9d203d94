package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"albumstore/internal/content"
)

// GetContent re-reads the slug directory on every request; content items are
// derived values, not database rows.
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := mux.Vars(r)["slug"]
	if slug == "" {
		WriteError(w, "Не указан slug", http.StatusBadRequest)
		return
	}

	items, skips, err := content.ParseSlugContent(h.Cfg.ContentDir, slug)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			WriteError(w, "Контент не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"items":   items,
		"skipped": skips,
	}, http.StatusOK)
}
