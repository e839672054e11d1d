package conversion

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// ZeroResult - вывод калькулятора для пустой или нечисловой суммы
const ZeroResult = "0.00"

// Resolver - разрешение курса пары, 0 если пары нет
type Resolver interface {
	Resolve(from, to string) float64
}

// ParseAmount разбирает сумму как parseFloat в браузере: пробелы в начале
// пропускаются, берётся самый длинный числовой префикс ("12abc" -> 12).
// ok == false для пустой строки, строки без числа и бесконечности.
func ParseAmount(text string) (float64, bool) {
	i := 0
	runes := []rune(text)
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	s := string(runes[i:])

	n := numericPrefix(s)
	if n == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// numericPrefix - длина самого длинного префикса вида [+-]digits[.digits][e[+-]digits]
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	// экспонента учитывается только если после e есть цифры
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Convert - amount * rate с 8 знаками после точки; ZeroResult для пустой или нечисловой суммы
func Convert(amountText string, rate float64) string {
	amount, ok := ParseAmount(amountText)
	if !ok {
		return ZeroResult
	}
	v := amount * rate
	if v == 0 || math.IsNaN(v) {
		// -0 печатается как 0
		v = 0
	}
	return toFixed(v, 8)
}

// toFixed - как Number.prototype.toFixed: считает по точному двоичному значению,
// при ровно половине округляет от нуля (FormatFloat округлял бы к чётному)
func toFixed(v float64, digits int) string {
	x := new(big.Rat).SetFloat64(math.Abs(v))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	x.Mul(x, new(big.Rat).SetInt(scale))
	x.Add(x, big.NewRat(1, 2))
	n := new(big.Int).Quo(x.Num(), x.Denom())

	s := n.String()
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	if v < 0 {
		s = "-" + s
	}
	return s
}

// Calculator - калькулятор поверх таблицы курсов
type Calculator struct {
	resolver Resolver
}

func NewCalculator(resolver Resolver) *Calculator {
	return &Calculator{resolver: resolver}
}

// Convert - сумма в валюте to; пара без курса даёт нулевой результат
func (c *Calculator) Convert(amountText, from, to string) string {
	return Convert(amountText, c.resolver.Resolve(from, to))
}

// Rate - курс, использованный для пары
func (c *Calculator) Rate(from, to string) float64 {
	return c.resolver.Resolve(from, to)
}

// View - производные поля калькулятора для состояния
func (c *Calculator) View(state State) View {
	rate := c.Rate(state.From, state.To)
	return View{
		State:         state,
		Rate:          rate,
		RateAvailable: rate > 0,
		Converted:     Convert(state.Amount, rate),
		CanSubmit:     strings.TrimSpace(state.Amount) != "",
	}
}
