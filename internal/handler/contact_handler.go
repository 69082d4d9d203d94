package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxMessageLength = 5000

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, "Сообщение обязательно", http.StatusBadRequest)
		return
	}

	// защита от злоупотреблений
	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		WriteError(w, "Сообщение слишком длинное (максимум 5000 символов)", http.StatusBadRequest)
		return
	}

	if err := h.Mailer.SendContact(r.Context(), req.Name, req.Email, req.Message); err != nil {
		WriteError(w, "Не удалось отправить письмо", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
