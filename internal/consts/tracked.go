package consts

import "strings"

// FeaturedPairs - пары для карточек статистики
var FeaturedPairs = [][2]string{
	{"BTC", "USD"},
	{"ETH", "USD"},
}

// IsFeatured - пара показывается в карточках
func IsFeatured(from, to string) bool {
	f, t := strings.ToUpper(from), strings.ToUpper(to)
	for _, p := range FeaturedPairs {
		if p[0] == f && p[1] == t {
			return true
		}
	}
	return false
}
