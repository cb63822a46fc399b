package bot

import "sync"

const (
	stateNone      = ""
	stateAwaitCode = "await_code"
)

// stateManager tracks the per-user conversation step. telebot dispatches one
// update at a time per chat, but broadcasts touch the map from the handler
// goroutine too, so guard it.
type stateManager struct {
	mu    sync.RWMutex
	users map[int64]string
}

func newStateManager() *stateManager {
	return &stateManager{users: make(map[int64]string)}
}

func (m *stateManager) get(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[userID]
}

func (m *stateManager) set(userID int64, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID] = state
}

func (m *stateManager) clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
}
