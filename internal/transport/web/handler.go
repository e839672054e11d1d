package web

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/displayfmt"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/conversion"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/history"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/snapshot"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/stats"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit"
	"github.com/labstack/echo/v4"
)

// Страница конвертаций: статистика, калькулятор, курсы, история

type RatesService interface {
	Currencies(ctx context.Context) ([]domain.Currency, error)
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
}

type HistoryService interface {
	List(ctx context.Context, f history.Filter) ([]domain.ConversionRecord, error)
}

type StatsService interface {
	Summary(ctx context.Context) (stats.Summary, error)
}

type Submitter interface {
	Submit(ctx context.Context, req submit.Request) (*submit.Task, error)
	Busy(ctx context.Context, key string) bool
}

type SnapshotService interface {
	Reload(ctx context.Context) (snapshot.Result, error)
}

type Sessions interface {
	GetOrCreate(id string) (*conversion.Session, bool)
}

const (
	noticeSubmitted = "submitted"
	noticeBusy      = "busy"
	noticeAmount    = "amount"
	noticeFailed    = "failed"
	noticeRefreshed = "refreshed"
)

var notices = map[string]string{
	noticeSubmitted: "Conversion submitted",
	noticeBusy:      "A conversion is already in progress",
	noticeAmount:    "Enter an amount to convert",
	noticeFailed:    "Conversion could not be started",
	noticeRefreshed: "Rates refreshed",
}

type Handler struct {
	logger       *slog.Logger
	rates        RatesService
	history      HistoryService
	stats        StatsService
	submitter    Submitter
	snapshot     SnapshotService
	sessions     Sessions
	cookieName   string
	historyLimit int
	timeout      time.Duration
}

type Options struct {
	CookieName   string
	HistoryLimit int
	Timeout      time.Duration
}

func NewHandler(
	logger *slog.Logger,
	ratesSvc RatesService,
	historySvc HistoryService,
	statsSvc StatsService,
	submitter Submitter,
	snap SnapshotService,
	sessions Sessions,
	opts Options,
) *Handler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if ratesSvc == nil || historySvc == nil || statsSvc == nil || submitter == nil || sessions == nil {
		log.Fatal("nil service")
	}
	if opts.CookieName == "" {
		opts.CookieName = "conv_session"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second * 3
	}
	return &Handler{
		logger:       logger,
		rates:        ratesSvc,
		history:      historySvc,
		stats:        statsSvc,
		submitter:    submitter,
		snapshot:     snap,
		sessions:     sessions,
		cookieName:   opts.CookieName,
		historyLimit: opts.HistoryLimit,
		timeout:      opts.Timeout,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Page)
	e.POST("/calculator", h.Calculator)
	if h.snapshot != nil {
		e.POST("/refresh", h.Refresh)
	}
}

// session - сессия калькулятора по cookie; новая сессия получает cookie
func (h *Handler) session(c echo.Context) *conversion.Session {
	var id string
	if ck, err := c.Cookie(h.cookieName); err == nil {
		id = ck.Value
	}
	sess, created := h.sessions.GetOrCreate(id)
	if created {
		c.SetCookie(&http.Cookie{
			Name:     h.cookieName,
			Value:    sess.ID(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

type card struct {
	Title     string
	Value     string
	HasChange bool
	Change    float64
}

type pageData struct {
	Currencies []domain.Currency
	Calc       conversion.View
	Exchange   string
	Busy       bool
	Notice     string
	Cards      []card
	Rates      []domain.RateEntry
	History    []domain.ConversionRecord
	CanRefresh bool
}

func (h *Handler) Page(c echo.Context) error {
	sess := h.session(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	currencies, err := h.rates.Currencies(ctx)
	if err != nil {
		return h.fail(c, "Page", err)
	}
	entries, err := h.rates.ListRates(ctx)
	if err != nil {
		return h.fail(c, "Page", err)
	}
	records, err := h.history.List(ctx, history.Filter{Limit: h.historyLimit})
	if err != nil {
		return h.fail(c, "Page", err)
	}
	sum, err := h.stats.Summary(ctx)
	if err != nil {
		return h.fail(c, "Page", err)
	}

	view := sess.View(rates.NewTable(entries))
	data := pageData{
		Currencies: currencies,
		Calc:       view,
		Exchange:   displayfmt.ExchangeLine(view.From, view.To, view.Rate),
		Busy:       h.submitter.Busy(ctx, sess.ID()),
		Notice:     notices[c.QueryParam("notice")],
		Rates:      entries,
		History:    records,
		CanRefresh: h.snapshot != nil,
	}
	data.Cards = append(data.Cards, card{Title: "Total Converted", Value: displayfmt.Money(sum.TotalConverted)})
	for _, rc := range sum.Cards {
		data.Cards = append(data.Cards, card{
			Title:     rc.From + "/" + rc.To + " Rate",
			Value:     displayfmt.Money(rc.Rate),
			HasChange: rc.HasChange,
			Change:    rc.Change24h,
		})
	}

	return c.Render(http.StatusOK, "conversions.html", data)
}

// Calculator - отправка формы: action=update|swap|convert
func (h *Handler) Calculator(c echo.Context) error {
	sess := h.session(c)

	action := c.FormValue("action")
	// ввод формы и обмен валют - одно изменение, View не видит промежуточного состояния
	sess.Update(func(st *conversion.State) {
		st.Amount = c.FormValue("amount")
		if v := domain.NormalizeCode(c.FormValue("from")); v != "" {
			st.From = v
		}
		if v := domain.NormalizeCode(c.FormValue("to")); v != "" {
			st.To = v
		}
		if action == "swap" {
			st.Swap()
		}
	})

	if action == "convert" {
		return h.convert(c, sess)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) convert(c echo.Context, sess *conversion.Session) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	st := sess.State()
	_, err := h.submitter.Submit(ctx, submit.Request{
		SessionKey: sess.ID(),
		From:       st.From,
		To:         st.To,
		Amount:     st.Amount,
	})
	switch {
	case err == nil:
		return redirectNotice(c, noticeSubmitted)
	case errors.Is(err, submit.ErrBusy):
		return redirectNotice(c, noticeBusy)
	case errors.Is(err, domain.ErrInvalidAmount):
		return redirectNotice(c, noticeAmount)
	default:
		h.logger.Error("submit conversion failed", slog.String("session", sess.ID()), slog.String("error", err.Error()))
		return redirectNotice(c, noticeFailed)
	}
}

func (h *Handler) Refresh(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if _, err := h.snapshot.Reload(ctx); err != nil {
		return h.fail(c, "Refresh", err)
	}
	return redirectNotice(c, noticeRefreshed)
}

func redirectNotice(c echo.Context, notice string) error {
	return c.Redirect(http.StatusSeeOther, "/?notice="+url.QueryEscape(notice))
}

func (h *Handler) fail(c echo.Context, op string, err error) error {
	h.logger.Error(op+" failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return c.String(http.StatusInternalServerError, "internal server error")
}
