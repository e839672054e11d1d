package conversion

import (
	"sync"
	"time"
)

// State - ввод калькулятора
type State struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// View - производное состояние, пересчитывается на каждое изменение
type View struct {
	State
	Rate          float64 `json:"rate"`
	RateAvailable bool    `json:"rate_available"`
	Converted     string  `json:"converted"`
	CanSubmit     bool    `json:"can_submit"`
}

// Swap меняет направление; для использования внутри Session.Update
func (st *State) Swap() {
	st.From, st.To = st.To, st.From
}

// Derive - чистая функция состояния и таблицы курсов
func Derive(state State, resolver Resolver) View {
	return NewCalculator(resolver).View(state)
}

// Session - состояние калькулятора одного клиента
type Session struct {
	id string

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

func newSession(id string, state State, now time.Time) *Session {
	return &Session{id: id, state: state, lastSeen: now}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) SetAmount(amount string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Amount = amount
}

func (s *Session) SetFrom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.From = code
}

func (s *Session) SetTo(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.To = code
}

// Swap - меняет from и to местами под одной блокировкой
func (s *Session) Swap() {
	s.Update((*State).Swap)
}

// Update - несколько изменений атомарно
func (s *Session) Update(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View - снимок состояния с пересчитанным результатом
func (s *Session) View(resolver Resolver) View {
	return Derive(s.State(), resolver)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
