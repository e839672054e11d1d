package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/displayfmt"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/history"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/stats"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit"
	"github.com/labstack/echo/v4"
)

// SessionHeader - ключ сессии для API-клиентов без cookie
const SessionHeader = "X-Session-ID"

type Submitter interface {
	Submit(ctx context.Context, req submit.Request) (*submit.Task, error)
	Task(id string) (*submit.Task, error)
	Cancel(id string) (*submit.Task, error)
	Busy(ctx context.Context, key string) bool
}

type HistoryService interface {
	List(ctx context.Context, f history.Filter) ([]domain.ConversionRecord, error)
	Get(ctx context.Context, id string) (domain.ConversionRecord, error)
	TotalCompleted(ctx context.Context) (float64, error)
}

type StatsService interface {
	Summary(ctx context.Context) (stats.Summary, error)
}

// ConversionsHandler - отправка конвертаций, история, статистика.
type ConversionsHandler struct {
	logger        *slog.Logger
	submitter     Submitter
	history       HistoryService
	stats         StatsService
	sessionCookie string
	timeout       time.Duration
}

func NewConversionsHandler(
	logger *slog.Logger,
	submitter Submitter,
	historySvc HistoryService,
	statsSvc StatsService,
	sessionCookie string,
	timeout time.Duration,
) *ConversionsHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if submitter == nil || historySvc == nil || statsSvc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &ConversionsHandler{
		logger:        logger,
		submitter:     submitter,
		history:       historySvc,
		stats:         statsSvc,
		sessionCookie: sessionCookie,
		timeout:       timeout,
	}
}

func (h *ConversionsHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.POST("/conversions", h.Submit)
	r.GET("/conversions/history", h.GetHistory)
	r.GET("/conversions/history/:id", h.GetRecord)
	r.GET("/conversions/:id", h.GetTask)
	r.DELETE("/conversions/:id", h.CancelTask)
	r.GET("/stats", h.GetStats)
}

// sessionKey - заголовок, затем cookie, затем IP клиента
func (h *ConversionsHandler) sessionKey(c echo.Context) string {
	if v := c.Request().Header.Get(SessionHeader); v != "" {
		return v
	}
	if h.sessionCookie != "" {
		if ck, err := c.Cookie(h.sessionCookie); err == nil && ck.Value != "" {
			return ck.Value
		}
	}
	return "ip:" + c.RealIP()
}

func (h *ConversionsHandler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "bad_request",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	task, err := h.submitter.Submit(ctx, submit.Request{
		SessionKey: h.sessionKey(c),
		From:       req.From,
		To:         req.To,
		Amount:     string(req.Amount),
	})
	if err != nil {
		return writeError(c, h.logger, "Submit", err)
	}
	return c.JSON(http.StatusAccepted, task.Info())
}

func (h *ConversionsHandler) GetTask(c echo.Context) error {
	task, err := h.submitter.Task(c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, "GetTask", err)
	}
	return c.JSON(http.StatusOK, task.Info())
}

func (h *ConversionsHandler) CancelTask(c echo.Context) error {
	task, err := h.submitter.Cancel(c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, "CancelTask", err)
	}
	return c.JSON(http.StatusOK, task.Info())
}

func (h *ConversionsHandler) GetHistory(c echo.Context) error {
	f := history.Filter{Status: domain.Status(c.QueryParam("status"))}
	if f.Status != "" && !f.Status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "unknown_status",
			"status": string(f.Status),
		})
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid_limit",
			})
		}
		f.Limit = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.history.List(ctx, f)
	if err != nil {
		return writeError(c, h.logger, "GetHistory", err)
	}
	total, err := h.history.TotalCompleted(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetHistory", err)
	}

	out := History{Items: make([]Record, 0, len(items)), TotalCompleted: total}
	for _, it := range items {
		out.Items = append(out.Items, makeRecord(it))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ConversionsHandler) GetRecord(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.history.Get(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, "GetRecord", err)
	}
	return c.JSON(http.StatusOK, makeRecord(rec))
}

func (h *ConversionsHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sum, err := h.stats.Summary(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetStats", err)
	}
	return c.JSON(http.StatusOK, Stats{
		Summary:      sum,
		TotalDisplay: displayfmt.Money(sum.TotalConverted),
	})
}
