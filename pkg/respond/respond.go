package respond

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Status is the body of every save response.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, Status{Status: StatusSuccess})
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, Status{Status: StatusError, Message: message})
}

// Empty пишет только статус, без тела
func Empty(w http.ResponseWriter, r *http.Request, code int) {
	w.WriteHeader(code)
}
