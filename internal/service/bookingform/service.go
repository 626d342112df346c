// Package bookingform заполнение формы бронирования по полям (slot filling)
// Сама машина состояний живет в domain.BookingState; сервис только
// применяет внешние мутации и пересчитывает полноту после каждой из них
package bookingform

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
)

// Service сервис формы бронирования
type Service struct {
	store  SessionStore
	logger Logger
}

// NewService создает новый экземпляр сервиса формы бронирования
func NewService(store SessionStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get возвращает текущее состояние формы бронирования сессии
func (s *Service) Get(ctx context.Context, sessionID string) (*FormResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: store error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}

	return formResponse(session.Booking), nil
}

// Update применяет частичное обновление полей формы
// Обновление формы включает режим бронирования сессии -
// пользователь явно редактирует форму
func (s *Service) Update(ctx context.Context, sessionID string, req *UpdateRequest) (*FormResponse, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Update: store error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	applyPatch(&session.Booking, req)
	session.BookingMode = true

	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Update: failed to save session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	resp := formResponse(session.Booking)
	s.logger.Info("Update: session %s booking form updated, complete=%t", sessionID, resp.Complete)
	return resp, nil
}

func applyPatch(state *domain.BookingState, req *UpdateRequest) {
	if req.Name != nil {
		state.Name = *req.Name
	}
	if req.Email != nil {
		state.Email = *req.Email
	}
	if req.Phone != nil {
		state.Phone = *req.Phone
	}
	if req.BookingType != nil {
		state.BookingType = *req.BookingType
	}
	if req.Date != nil {
		state.Date = *req.Date
	}
	if req.Time != nil {
		state.Time = *req.Time
	}
}
