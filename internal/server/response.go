package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeInternalError(context.Background(), w, "failed to marshal response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, message string) {
	logrus.WithContext(ctx).Error(message)

	writeError(w, http.StatusInternalServerError, "internal error")
}
