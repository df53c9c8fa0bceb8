// Package service implementa os casos de uso da cantina sobre o gateway de
// persistência. Toda operação que lê e grava roda dentro de Gateway.Exclusive.
package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// Option configura os serviços
type Option func(*options)

type options struct {
	now    func() time.Time
	newID  func() string
	logger logger.Logger
}

// WithClock define o relógio dos serviços
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator define o gerador de IDs das entidades criadas
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

// WithLogger define o logger dos serviços
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// ClockIn retorna um relógio no fuso informado; o dia do limite de gastos é
// calculado nesse fuso
func ClockIn(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func newOptions(opts []Option) options {
	o := options{
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
