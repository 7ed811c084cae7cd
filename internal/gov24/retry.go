package gov24

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// StatusError indica uma resposta HTTP fora da faixa 2xx
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gov24 %s: status %d", e.Endpoint, e.Code)
}

// IsRetryable decide se vale a pena repetir a chamada: respostas 5xx,
// timeouts e falhas de rede são transitórios; 4xx nunca é repetido.
func IsRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// RetryPolicy controla as novas tentativas das chamadas externas.
// O atraso cresce linearmente: BaseDelay, 2*BaseDelay, ...
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Classify    func(error) bool
}

// Do executa op até ter sucesso, esgotar as tentativas ou encontrar um
// erro não repetível. Respeita o cancelamento do contexto entre tentativas.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	classify := p.Classify
	if classify == nil {
		classify = IsRetryable
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt == attempts || !classify(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.BaseDelay * time.Duration(attempt)):
		}
	}
	return lastErr
}
