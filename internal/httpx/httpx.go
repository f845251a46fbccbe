// Package httpx holds the JSON response helpers shared by the handlers.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mugiliam/contentcatalog/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

// Response is what a RequestHandler returns on success. Response is
// encoded as JSON; a nil Response sends no body.
type Response struct {
	StatusCode int
	Location   string
	Response   any
}

type RequestHandler func(r *http.Request) (*Response, error)

// Error is an error with an HTTP status. It is sent as
// {"error": Description, "status": StatusCode}.
type Error struct {
	StatusCode  int    `json:"status"`
	Description string `json:"error"`
}

func (e *Error) Error() string {
	return e.Description
}

func (e *Error) Send(w http.ResponseWriter) {
	SendJsonRsp(context.Background(), w, e.StatusCode, e)
}

func newError(status int, def string, msg ...string) *Error {
	d := def
	if len(msg) > 0 && msg[0] != "" {
		d = msg[0]
	}
	return &Error{StatusCode: status, Description: d}
}

func ErrInvalidRequest(msg ...string) *Error {
	return newError(http.StatusBadRequest, "invalid request", msg...)
}

func ErrUnableToReadRequest(msg ...string) *Error {
	return newError(http.StatusBadRequest, "unable to read request", msg...)
}

func ErrNotFound(msg ...string) *Error {
	return newError(http.StatusNotFound, "not found", msg...)
}

func ErrInternal(msg ...string) *Error {
	return newError(http.StatusInternalServerError, "internal server error", msg...)
}

// ToHttpxError maps err to an Error. Application errors carry their own
// status; anything else is an internal error.
func ToHttpxError(err error) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}
	var appErr apperrors.Error
	if errors.As(err, &appErr) {
		status := appErr.StatusCode()
		if status == 0 {
			status = http.StatusInternalServerError
		}
		desc := appErr.ErrorAll()
		if status >= http.StatusInternalServerError {
			desc = appErr.Error()
		}
		return &Error{StatusCode: status, Description: desc}
	}
	return ErrInternal()
}

// WrapHttpRsp adapts a RequestHandler to http.HandlerFunc.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rsp, err := handler(r)
		if err != nil {
			he := ToHttpxError(err)
			if he.StatusCode >= http.StatusInternalServerError {
				log.Ctx(ctx).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
			} else {
				log.Ctx(ctx).Debug().Err(err).Int("status", he.StatusCode).Msg("request rejected")
			}
			SendJsonRsp(ctx, w, he.StatusCode, he)
			return
		}
		if rsp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if rsp.Location != "" {
			w.Header().Set("Location", rsp.Location)
		}
		status := rsp.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		if rsp.Response == nil {
			w.WriteHeader(status)
			return
		}
		SendJsonRsp(ctx, w, status, rsp.Response)
	}
}

func SendJsonRsp(ctx context.Context, w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to marshal response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error","status":500}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
