package httptransport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit"
)

func contextDeadline() error {
	return context.DeadlineExceeded
}

func TestFromServiceError(t *testing.T) {
	tests := []struct {
		err    error
		code   errcode.Code
		status int
	}{
		{fmt.Errorf("wrap: %w", domain.ErrUnknownCurrency), errcode.UnknownCurrency, http.StatusBadRequest},
		{domain.ErrInvalidAmount, errcode.InvalidAmount, http.StatusBadRequest},
		{domain.ErrRateUnavailable, errcode.RateUnavailable, http.StatusUnprocessableEntity},
		{submit.ErrBusy, errcode.ConversionInProgress, http.StatusConflict},
		{submit.ErrTaskNotFound, errcode.TaskNotFound, http.StatusNotFound},
		{context.DeadlineExceeded, errcode.Timeout, http.StatusGatewayTimeout},
		{errors.New("boom"), errcode.Internal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		code := FromServiceError(tc.err)
		if code != tc.code {
			t.Fatalf("FromServiceError(%v) = %s, want %s", tc.err, code, tc.code)
		}
		if got := HTTPStatus(code); got != tc.status {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", code, got, tc.status)
		}
	}
}

func TestErrorKey(t *testing.T) {
	if got := ErrorKey(errcode.ConversionInProgress); got != "conversion_in_progress" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := ErrorKey(errcode.Internal); got != "internal_server_error" {
		t.Fatalf("unexpected key %q", got)
	}
}
