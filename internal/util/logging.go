package util

import (
	"encoding/json"
	"fmt"
	"log"
	"medical-document-server/internal/apperrors"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// HandleServiceError : преобразует типизированную ошибку сервиса в HTTP-ответ
// по таблице apperrors; всё неизвестное уходит как 500
func HandleServiceError(w http.ResponseWriter, err error) {
	log.Println(err)

	if code, ok := apperrors.HTTPStatus(err); ok {
		HandleError(w, apperrors.UserMessage(err), code)
		return
	}

	HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
}

// WriteJSON : сериализует ответ с указанным статусом
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ошибка сериализации ответа: %v", err)
	}
}
