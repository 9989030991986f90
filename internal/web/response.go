package web

import (
	"net/http"

	"github.com/bytedance/sonic"
)

const (
	msgInternalError  = "Internal Server Error"
	msgBadRequest     = "Bad Request"
	msgPlayerNotFound = "Player not found"
	msgPlayerUpdated  = "Player Details Updated"
	msgPlayerRemoved  = "Player Removed"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		writeText(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeText writes msg verbatim. http.Error is avoided because it appends
// a newline to the body.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
