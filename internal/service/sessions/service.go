// Package sessions управление жизненным циклом сессий диалога
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
)

// Service сервис для работы с сессиями диалога
type Service struct {
	store    SessionStore
	registry IndexRegistry
	logger   Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(store SessionStore, registry IndexRegistry, logger Logger) *Service {
	return &Service{
		store:    store,
		registry: registry,
		logger:   logger,
	}
}

// Create создает новую пустую сессию
func (s *Service) Create(ctx context.Context) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Create: failed to save session: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: session %s created", session.ID)
	return session, nil
}

// Get возвращает сессию по ID
// Для истекшей сессии удаляет ее поисковый индекс из реестра, иначе
// индексы переживали бы TTL сессий и копились в памяти
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			s.registry.Delete(id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: store error for session %s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}
	return session, nil
}

// History возвращает историю сообщений сессии
func (s *Service) History(ctx context.Context, id string) ([]domain.ChatMessage, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Messages, nil
}

// ClearHistory очищает историю сообщений, сохраняя саму сессию
// Поисковый индекс сессии тоже сбрасывается
func (s *Service) ClearHistory(ctx context.Context, id string) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	session.Messages = nil
	s.registry.Delete(id)

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("ClearHistory: failed to save session %s: %v", id, err)
		return fmt.Errorf("%w: ClearHistory - store error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearHistory: history cleared for session %s", id)
	return nil
}
