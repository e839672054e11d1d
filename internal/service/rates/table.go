package rates

import "github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"

// Source - откуда взят курс
type Source string

const (
	SourceDirect   Source = "direct"
	SourceInverse  Source = "inverse"
	SourceIdentity Source = "identity"
	SourceNone     Source = "none"
)

// Quote - результат разрешения курса для пары
type Quote struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
	Source Source  `json:"source"`
}

// Available - false для нулевого курса (пары нет в таблице)
func (q Quote) Available() bool {
	return q.Rate > 0
}

// Table - неизменяемый индекс направленных курсов.
// Таблица строится заново при каждой загрузке снапшота.
type Table struct {
	entries map[domain.Pair]float64
}

func NewTable(items []domain.RateEntry) *Table {
	t := &Table{entries: make(map[domain.Pair]float64, len(items))}
	for _, e := range items {
		// первая запись для пары выигрывает
		if _, ok := t.entries[e.Pair()]; ok {
			continue
		}
		t.entries[e.Pair()] = e.Rate
	}
	return t
}

// Quote - прямой курс, затем обратный (1/rate), затем 1 для одинаковых кодов.
// Если ничего не подошло, курс равен 0.
func (t *Table) Quote(from, to string) Quote {
	from, to = domain.NormalizeCode(from), domain.NormalizeCode(to)
	q := Quote{From: from, To: to, Source: SourceNone}

	if r, ok := t.entries[domain.Pair{From: from, To: to}]; ok {
		q.Rate, q.Source = r, SourceDirect
		return q
	}
	if r, ok := t.entries[domain.Pair{From: to, To: from}]; ok && r != 0 {
		q.Rate, q.Source = 1/r, SourceInverse
		return q
	}
	if from == to && from != "" {
		q.Rate, q.Source = 1, SourceIdentity
		return q
	}
	return q
}

// Resolve - только числовой курс, 0 если пары нет
func (t *Table) Resolve(from, to string) float64 {
	return t.Quote(from, to).Rate
}

func (t *Table) Len() int {
	return len(t.entries)
}
