package engine

import "math/rand"

// Rand - источник случайных индексов. *rand.Rand удовлетворяет интерфейсу
type Rand interface {
	Intn(n int) int
}

// globalRand использует потокобезопасный источник пакета math/rand
type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

// Engine - движок спина. Не хранит состояния между вызовами
type Engine struct {
	rnd Rand
}

type Option func(*Engine)

// WithRand задаёт источник случайности (например, с фиксированным seed для тестов)
func WithRand(rnd Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// New создаёт движок. По умолчанию используется глобальный источник math/rand,
// поэтому один Engine можно вызывать из нескольких горутин
func New(opts ...Option) *Engine {
	e := &Engine{rnd: globalRand{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
