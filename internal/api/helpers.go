package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/httpclients/apiclient"
	"github.com/samandr77/microservices/dashboard/internal/service"
	"github.com/samandr77/microservices/dashboard/pkg/transport"
)

const errInternalText = "내부 오류가 발생했습니다"

type ResponseError struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	sendErr(ctx, w, code, err, msg, nil)
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string, fields map[string]string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error(), Fields: fields})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps a service error to its status code.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var formErrs service.FormErrors
	if errors.As(err, &formErrs) {
		sendErr(ctx, w, http.StatusUnprocessableEntity, err, "입력값을 확인해주세요", formErrs)
		return
	}

	code := statusCode(err)
	if code == http.StatusInternalServerError {
		msg = errInternalText
	}

	SendErr(ctx, w, code, err, msg)
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, transport.ErrCircuitOpen):
		return http.StatusServiceUnavailable
	case apiclient.StatusCode(err) != 0:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type renderer interface {
	Render(w io.Writer) error
}

// SendHTML renders the component fully before writing, so a template failure still yields a
// clean error response.
func SendHTML(ctx context.Context, w http.ResponseWriter, code int, c renderer) {
	var buf bytes.Buffer

	err := c.Render(&buf)
	if err != nil {
		slog.ErrorContext(ctx, "render html", "error", err)
		http.Error(w, errInternalText, http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	_, err = buf.WriteTo(w)
	if err != nil {
		slog.ErrorContext(ctx, "write html", "error", err)
	}
}

func parseClientID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("clientId")
	if raw == "" {
		return 0, fmt.Errorf("%w: clientId is required", entity.ErrBadRequest)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: clientId must be a positive integer", entity.ErrBadRequest)
	}

	return id, nil
}

func parseUint(raw string, def uint64) (uint64, error) {
	if raw == "" {
		return def, nil
	}

	return strconv.ParseUint(raw, 10, 64)
}
