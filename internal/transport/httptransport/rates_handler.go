package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/displayfmt"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/conversion"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/snapshot"
	"github.com/labstack/echo/v4"
)

// RatesService - абстракция для работы с реестром и курсами.
type RatesService interface {
	Currencies(ctx context.Context) ([]domain.Currency, error)
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
	Resolve(ctx context.Context, from, to string) (rates.Quote, error)
}

// SnapshotService - перезагрузка снапшота по кнопке Refresh Rates.
type SnapshotService interface {
	Reload(ctx context.Context) (snapshot.Result, error)
}

// RatesHandler - HTTP‑handler для курсов и калькулятора.
type RatesHandler struct {
	logger   *slog.Logger
	svc      RatesService
	snapshot SnapshotService
	timeout  time.Duration
}

func NewRatesHandler(logger *slog.Logger, svc RatesService, snap SnapshotService, timeout time.Duration) *RatesHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &RatesHandler{
		logger:   logger,
		svc:      svc,
		snapshot: snap,
		timeout:  timeout,
	}
}

func (h *RatesHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/currencies", h.GetCurrencies)
	r.GET("/rates", h.GetRates)
	r.GET("/rates/:from/:to", h.GetRate)
	r.GET("/convert", h.Convert)
	if h.snapshot != nil {
		r.POST("/rates/refresh", h.Refresh)
	}
}

func (h *RatesHandler) GetCurrencies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.Currencies(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetCurrencies", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *RatesHandler) GetRates(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.ListRates(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetRates", err)
	}

	out := make([]Rate, 0, len(items))
	for _, item := range items {
		out = append(out, makeRate(item))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RatesHandler) GetRate(c echo.Context) error {
	from := domain.NormalizeCode(c.Param("from"))
	to := domain.NormalizeCode(c.Param("to"))
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "pair_required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	q, err := h.svc.Resolve(ctx, from, to)
	if err != nil {
		return writeError(c, h.logger, "GetRate", err)
	}
	return c.JSON(http.StatusOK, makeQuote(q))
}

// Convert - калькулятор: пустая или нечисловая сумма даёт "0.00", а не ошибку
func (h *RatesHandler) Convert(c echo.Context) error {
	amount := c.QueryParam("amount")
	from := domain.NormalizeCode(c.QueryParam("from"))
	to := domain.NormalizeCode(c.QueryParam("to"))
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "pair_required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	q, err := h.svc.Resolve(ctx, from, to)
	if err != nil {
		return writeError(c, h.logger, "Convert", err)
	}
	return c.JSON(http.StatusOK, Conversion{
		Amount:    amount,
		From:      q.From,
		To:        q.To,
		Rate:      q.Rate,
		Converted: conversion.Convert(amount, q.Rate),
		Exchange:  displayfmt.ExchangeLine(q.From, q.To, q.Rate),
	})
}

func (h *RatesHandler) Refresh(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.snapshot.Reload(ctx)
	if err != nil {
		return writeError(c, h.logger, "Refresh", err)
	}
	return c.JSON(http.StatusOK, res)
}

// writeError - JSON {"error": "..."} со статусом по коду ошибки
func writeError(c echo.Context, logger *slog.Logger, op string, err error) error {
	code := FromServiceError(err)
	status := HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		logger.Error(op+" failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	} else {
		logger.Debug(op+" rejected",
			slog.String("op", op),
			slog.String("code", string(code)),
			slog.String("error", err.Error()),
		)
	}
	return c.JSON(status, echo.Map{
		"error": ErrorKey(code),
	})
}
