package helpers

import (
	"encoding/json"
	"net/http"
)

// Response — конверт JSON API: либо data, либо error.
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Response{Data: data})
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, Response{Error: errMsg})
}

func write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// заголовок уже ушёл, ошибку кодирования сообщить некуда
	_ = json.NewEncoder(w).Encode(resp)
}
