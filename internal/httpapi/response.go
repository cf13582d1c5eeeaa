package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"todo-service/internal/service"
)

const msgNotFound = "Todo item not found"

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[error] encode response: %v", err)
	}
}

// writeError maps service errors onto status codes and bodies:
// validation 400 {message}, not found 404 {message}, anything else 500 {error}.
func writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	var serr *service.StorageError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, messageBody{Message: verr.Message})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageBody{Message: msgNotFound})
	case errors.As(err, &serr):
		log.Printf("[error] %s: %v", serr.Op, serr.Err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: serr.Error()})
	default:
		log.Printf("[error] %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}
