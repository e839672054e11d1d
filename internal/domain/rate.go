package domain

import (
	"strings"
	"time"
)

// Kind - тип валюты, влияет только на отображение
type Kind string

const (
	KindCrypto Kind = "crypto"
	KindFiat   Kind = "fiat"
)

// Currency - поддерживаемая валюта реестра
type Currency struct {
	Code string `json:"code"` // BTC, ETH, USDT, USD
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Pair - направленная пара from -> to
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func NewPair(from, to string) Pair {
	return Pair{From: NormalizeCode(from), To: NormalizeCode(to)}
}

// Reversed - пара в обратном направлении
func (p Pair) Reversed() Pair {
	return Pair{From: p.To, To: p.From}
}

func (p Pair) String() string {
	return p.From + "/" + p.To
}

// RateEntry - курс для направленной пары. Rate всегда > 0.
type RateEntry struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	Rate        float64   `json:"rate"`
	Change24h   float64   `json:"change_24h"` // в процентах, со знаком
	LastUpdated time.Time `json:"last_updated"`
}

func (r RateEntry) Pair() Pair {
	return Pair{From: r.From, To: r.To}
}

// NormalizeCode приводит код валюты к виду реестра
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
