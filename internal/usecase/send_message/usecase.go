// Package send_message обработка сообщения пользователя в диалоге
// Маршрутизирует сообщение: намерение бронирования включает форму,
// вопрос при загруженных документах идет через поиск по ним,
// остальное - свободный диалог с моделью
package send_message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
	"github.com/m04kA/SMC-AssistantService/internal/integrations/gemini"
)

// BookingIntentMessage ответ на обнаруженное намерение бронирования
const BookingIntentMessage = "I can help you with a booking. Please fill in the booking form below."

// UseCase use case обработки сообщения
type UseCase struct {
	store        SessionStore
	llm          LanguageModel
	answerer     Answerer
	registry     IndexRegistry
	metrics      Metrics
	historyLimit int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// llm может быть nil, если API-ключ модели не задан - тогда сообщения,
// требующие модель, завершаются ErrLLMNotConfigured
func NewUseCase(
	store SessionStore,
	llm LanguageModel,
	answerer Answerer,
	registry IndexRegistry,
	metrics Metrics,
	historyLimit int,
	logger Logger,
) *UseCase {
	if historyLimit <= 0 {
		historyLimit = domain.DefaultHistoryLimit
	}
	return &UseCase{
		store:        store,
		llm:          llm,
		answerer:     answerer,
		registry:     registry,
		metrics:      metrics,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Execute обрабатывает сообщение пользователя и возвращает ответ ассистента
// Сообщение и ответ добавляются в историю сессии, история обрезается
// до последних historyLimit сообщений
func (uc *UseCase) Execute(ctx context.Context, sessionID, message string) (*Response, error) {
	session, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("SendMessage: session %s not found", sessionID)
			uc.registry.Delete(sessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SendMessage: store error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	reply, route, err := uc.route(ctx, session, message)
	if err != nil {
		return nil, err
	}

	session.AppendMessage(domain.RoleUser, message, uc.historyLimit)
	session.AppendMessage(domain.RoleAssistant, reply, uc.historyLimit)

	if err := uc.store.Save(ctx, session); err != nil {
		uc.logger.Error("SendMessage: failed to save session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordChatTurn(route)
	}
	uc.logger.Info("SendMessage: session %s handled via route=%s", sessionID, route)

	return &Response{
		Reply:       reply,
		Route:       route,
		BookingMode: session.BookingMode,
		History:     session.Messages,
	}, nil
}

func (uc *UseCase) route(ctx context.Context, session *domain.Session, message string) (reply, route string, err error) {
	if hasBookingIntent(message) {
		session.BookingMode = true
		return BookingIntentMessage, RouteBookingIntent, nil
	}

	if uc.llm == nil {
		uc.logger.Warn("SendMessage: language model is not configured")
		return "", "", ErrLLMNotConfigured
	}

	if uc.registry.Get(session.ID) != nil {
		reply, err = uc.answerer.Execute(ctx, session.ID, message)
		route = RouteDocuments
	} else {
		reply, err = uc.llm.Invoke(ctx, message)
		route = RouteChat
	}

	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return "", "", ErrLLMNotConfigured
		}
		uc.logger.Error("SendMessage: route=%s failed for session %s: %v", route, session.ID, err)
		return "", "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return reply, route, nil
}

// hasBookingIntent определяет намерение бронирования по ключевым словам
func hasBookingIntent(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range domain.BookingIntentKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
