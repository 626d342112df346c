package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// MemoryStore хранилище сессий в памяти процесса
// Используется в тестах и при локальной разработке без Redis
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore создает хранилище сессий в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
	}
}

// Get возвращает копию сессии по ID
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Копия, чтобы вызывающий код не мутировал хранилище напрямую
	copied := session
	copied.Messages = append([]domain.ChatMessage(nil), session.Messages...)
	return &copied, nil
}

// Save сохраняет сессию
func (s *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.UpdatedAt = time.Now()

	copied := *session
	copied.Messages = append([]domain.ChatMessage(nil), session.Messages...)
	s.sessions[session.ID] = copied
	return nil
}

// Delete удаляет сессию
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
