package ratelimit

import (
	"context"
	"time"
)

// Limiter pausa entre chamadas externas
type Limiter interface {
	Wait(ctx context.Context) error
}

// Fixed espera sempre o mesmo intervalo
type Fixed struct {
	delay time.Duration
}

// NewFixed cria um limiter que espera delay a cada chamada
func NewFixed(delay time.Duration) *Fixed {
	return &Fixed{delay: delay}
}

// Delay retorna o intervalo configurado
func (f *Fixed) Delay() time.Duration {
	return f.delay
}

// Wait bloqueia pelo intervalo configurado ou até o contexto ser cancelado
func (f *Fixed) Wait(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
