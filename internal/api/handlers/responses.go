package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// Пути шагов флоу. Используются guard-редиректами: страница, предусловие
// которой не выполнено, отправляет клиента на более ранний шаг.
const (
	PathCenters      = "/api/v1/flow/centers"
	PathServices     = "/api/v1/flow/services"
	PathDates        = "/api/v1/flow/dates"
	PathRegistration = "/api/v1/flow/registration"
	PathReceipt      = "/api/v1/flow/receipt"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RedirectResponse тело ответа guard-редиректа
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// StepPath возвращает путь страницы для шага флоу
func StepPath(step domain.Step) string {
	switch step {
	case domain.StepCenters:
		return PathCenters
	case domain.StepServices:
		return PathServices
	case domain.StepDateTime:
		return PathDates
	case domain.StepProfile:
		return PathRegistration
	case domain.StepReceipt:
		return PathReceipt
	default:
		return PathCenters
	}
}

// RespondJSON отправляет ответ с указанным статусом и JSON телом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondRedirect отправляет guard-редирект на более ранний шаг флоу
func RespondRedirect(w http.ResponseWriter, step domain.Step) {
	path := StepPath(step)
	w.Header().Set("Location", path)
	RespondJSON(w, http.StatusSeeOther, RedirectResponse{Redirect: path})
}

// RespondBadRequest отправляет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondNotFound отправляет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// RespondBadGateway отправляет 502 с сообщением
func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadGateway, ErrorResponse{Error: message})
}

// RespondInternalError отправляет 500 со стандартным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "внутрішня помилка сервера"})
}
