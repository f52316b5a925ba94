// Package api exposes the change engine over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/govalues/resto"
)

// API serves the conversion and change endpoints.
// It holds no state besides its logger and the default currencies.
type API struct {
	logger   *zap.Logger
	defaults resto.Input
}

// New creates an API.
// Currencies missing from a change request are taken from defaults.
func New(logger *zap.Logger, defaults resto.Input) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{logger: logger, defaults: defaults}
}

// Routes returns the router with request ID, recovery and logging
// middleware installed.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(a.logger))
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rate", a.rate)
		r.Get("/convert", a.convert)
		r.Get("/change", a.change)
	})
	return r
}

type rateResponse struct {
	Base  resto.Currency `json:"base"`
	Quote resto.Currency `json:"quote"`
	Rate  string         `json:"rate"`
}

type pairResponse struct {
	EUR string `json:"eur"`
	BGN string `json:"bgn"`
}

type changeResponse struct {
	Outcome string        `json:"outcome"`
	Change  *pairResponse `json:"change,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) rate(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, rateResponse{
		Base:  resto.Peg.Base(),
		Quote: resto.Peg.Quote(),
		Rate:  resto.Peg.Decimal().String(),
	})
}

func (a *API) convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	curr, err := currencyParam(q.Get("currency"), resto.EUR)
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	amount, err := resto.ParseInput(curr, q.Get("amount"))
	if err != nil {
		a.respond(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	other, err := amount.Conv(curr.Other())
	if err != nil {
		a.logger.Warn("convert", zap.Stringer("amount", amount), zap.Error(err))
		a.respond(w, r, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	a.respond(w, r, http.StatusOK, pair(amount, other))
}

func (a *API) change(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := a.defaults
	in.Price = q.Get("price")
	in.Paid = q.Get("paid")

	var err error
	if in.PriceCurr, err = currencyParam(q.Get("price_currency"), in.PriceCurr); err != nil {
		a.respond(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if in.PaidCurr, err = currencyParam(q.Get("paid_currency"), in.PaidCurr); err != nil {
		a.respond(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	d := in.Derive()
	resp := changeResponse{Outcome: d.Outcome().String()}
	switch d.Outcome() {
	case resto.Exact, resto.ChangeDue:
		p := pair(d.Change.EUR, d.Change.BGN)
		resp.Change = &p
	}
	a.respond(w, r, http.StatusOK, resp)
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Error("encode response",
			zap.String("req.id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}
}

func currencyParam(s string, def resto.Currency) (resto.Currency, error) {
	if s == "" {
		return def, nil
	}
	return resto.ParseCurr(s)
}

func pair(a, b resto.Amount) pairResponse {
	var p pairResponse
	for _, x := range []resto.Amount{a, b} {
		switch x.Curr() {
		case resto.EUR:
			p.EUR = x.Decimal().String()
		case resto.BGN:
			p.BGN = x.Decimal().String()
		}
	}
	return p
}
