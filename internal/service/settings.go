package service

import (
	"context"

	"github.com/hugohenrick/tuckshop/internal/domain"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
)

// SettingsService lê e altera as configurações da cantina
type SettingsService struct {
	gw store.Gateway
	options
}

// NewSettingsService cria o serviço de configurações
func NewSettingsService(gw store.Gateway, opts ...Option) *SettingsService {
	return &SettingsService{gw: gw, options: newOptions(opts)}
}

// Get retorna as configurações atuais
func (s *SettingsService) Get(ctx context.Context) (settings.Settings, error) {
	return s.gw.Settings().Get(ctx)
}

// Update valida e grava as configurações
func (s *SettingsService) Update(ctx context.Context, cfg settings.Settings) (settings.Settings, error) {
	if err := cfg.Validate(); err != nil {
		return settings.Settings{}, domain.Wrap("settings.Update", domain.KindInvalidRequest, string(cfg.Currency), err)
	}
	err := s.gw.Exclusive(ctx, func(ctx context.Context) error {
		return s.gw.Settings().Save(ctx, cfg)
	})
	if err != nil {
		return settings.Settings{}, err
	}

	s.logger.Info("configurações atualizadas", "currency", cfg.Currency)
	return cfg, nil
}
