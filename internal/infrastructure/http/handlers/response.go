package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is empty, a default is used from code.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnsupportedMediaType:
		return ErrCodeUnsupportedMedia
	case http.StatusInternalServerError:
		return ErrCodeInternal
	default:
		return ErrCodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainErr maps the domain error taxonomy onto HTTP statuses.
// Unknown errors are reported as opaque 500s.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrNotFound), errors.Is(err, domerrors.ErrFileNotFound):
		writeErr(w, http.StatusNotFound, "", err.Error())
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, domerrors.ErrEmailExists):
		writeErr(w, http.StatusConflict, "", err.Error())
	case errors.Is(err, domerrors.ErrForbidden):
		writeErr(w, http.StatusForbidden, "", err.Error())
	case errors.Is(err, domerrors.ErrUnsupportedMedia):
		writeErr(w, http.StatusUnsupportedMediaType, "", err.Error())
	case errors.Is(err, domerrors.ErrBadMonth):
		writeErr(w, http.StatusBadRequest, "", err.Error())
	case errors.Is(err, domerrors.ErrTokenExpired), errors.Is(err, domerrors.ErrInvalidToken):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidToken, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}
