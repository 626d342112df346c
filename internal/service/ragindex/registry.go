package ragindex

import "sync"

// Registry реестр индексов по ID сессии
// Эмбеддинги не сериализуются в хранилище сессий - индекс живет в процессе
// и привязан к сессии ключом
type Registry struct {
	mu      sync.RWMutex
	indexes map[string]*Index
}

// NewRegistry создает пустой реестр индексов
func NewRegistry() *Registry {
	return &Registry{
		indexes: make(map[string]*Index),
	}
}

// Get возвращает индекс сессии или nil, если документы не загружались
func (r *Registry) Get(sessionID string) *Index {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexes[sessionID]
}

// Put заменяет индекс сессии
func (r *Registry) Put(sessionID string, index *Index) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexes[sessionID] = index
}

// Delete удаляет индекс сессии
func (r *Registry) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.indexes, sessionID)
}
