package httptransport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/history"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, domain.ErrUnknownCurrency):
		return errcode.UnknownCurrency
	case errors.Is(err, domain.ErrInvalidAmount):
		return errcode.InvalidAmount
	case errors.Is(err, domain.ErrRateUnavailable):
		return errcode.RateUnavailable
	case errors.Is(err, submit.ErrBusy):
		return errcode.ConversionInProgress
	case errors.Is(err, submit.ErrTaskNotFound):
		return errcode.TaskNotFound
	case errors.Is(err, history.ErrNotFound):
		return errcode.ConversionNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return errcode.Timeout
	case errors.Is(err, context.Canceled):
		return errcode.Canceled
	default:
		return errcode.Internal
	}
}

// HTTPStatus - статус ответа для кода ошибки.
func HTTPStatus(code errcode.Code) int {
	switch code {
	case errcode.UnknownCurrency, errcode.InvalidAmount, errcode.BadRequest:
		return http.StatusBadRequest
	case errcode.RateUnavailable:
		return http.StatusUnprocessableEntity
	case errcode.ConversionInProgress:
		return http.StatusConflict
	case errcode.TaskNotFound, errcode.ConversionNotFound:
		return http.StatusNotFound
	case errcode.Timeout:
		return http.StatusGatewayTimeout
	case errcode.Canceled:
		// клиент закрыл соединение, nginx-совместимый код
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKey - значение поля "error" в JSON: conversion_in_progress, unknown_currency...
func ErrorKey(code errcode.Code) string {
	if code == errcode.Internal {
		return "internal_server_error"
	}
	return strings.ToLower(string(code))
}
