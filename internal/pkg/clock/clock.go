package clock

import "time"

// Clock - абстракция времени, чтобы тесты были детерминированны
type Clock interface {
	Now() time.Time
}

// realClock - prod реализация: текущее время в UTC
type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// NewRealClock - фабрика для prod-кода
func NewRealClock() Clock {
	return realClock{}
}

// Fixed - часы, которые всегда возвращают одно и то же время
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
