package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type DownloadResponse struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

// GetDownload issues a short-lived presigned URL for a purchased album archive
func (h *Handlers) GetDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := bearerToken(r)
	if token == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	user, err := h.AuthService.GetUserFromToken(token)
	if err != nil {
		WriteError(w, "Недействительный токен", http.StatusUnauthorized)
		return
	}

	slug := mux.Vars(r)["productSlug"]

	product, err := h.ProductRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Продукт не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// доступ к файлу дает только запись о покупке
	_, err = h.PurchaseRepo.GetByUserAndProduct(r.Context(), user.UserID, product.ProductID)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Покупка не найдена", http.StatusForbidden)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	file, err := h.FileRepo.GetByProductAndFormat(r.Context(), product.ProductID, "flac")
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Файл не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	url, err := h.Storage.PresignDownloadURL(r.Context(), file.FileURL)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, DownloadResponse{URL: url, Format: file.Format}, http.StatusOK)
}
