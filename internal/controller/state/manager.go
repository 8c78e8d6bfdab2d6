package state

import (
	"sync"
)

// Manager tracks per-chat dialog state. Updates for different chats
// run on different goroutines, so access goes through the RWMutex.
type Manager struct {
	mu    sync.RWMutex
	chats map[int64]*ChatData
}

func NewManager() *Manager {
	return &Manager{
		chats: make(map[int64]*ChatData),
	}
}

func (sm *Manager) GetState(chatID int64) DialogState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if chat, exists := sm.chats[chatID]; exists {
		return chat.State
	}
	return StateNone
}

func (sm *Manager) SetState(chatID int64, st DialogState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.chats[chatID]; !exists {
		if st == StateNone {
			return
		}
		sm.chats[chatID] = &ChatData{
			State: st,
			Data:  make(map[string]interface{}),
		}
		return
	}
	// Keep the data bag even when the dialog ends: the active booking
	// form and cached venue lists outlive a single dialog step.
	sm.chats[chatID].State = st
}

func (sm *Manager) GetData(chatID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if chat, exists := sm.chats[chatID]; exists {
		value, ok := chat.Data[key]
		return value, ok
	}
	return nil, false
}

func (sm *Manager) SetData(chatID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.chats[chatID]; !exists {
		sm.chats[chatID] = &ChatData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
	}
	sm.chats[chatID].Data[key] = value
}

func (sm *Manager) DeleteData(chatID int64, key string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if chat, exists := sm.chats[chatID]; exists {
		delete(chat.Data, key)
	}
}

// Clear drops the chat's state and all its scratch data.
func (sm *Manager) Clear(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.chats, chatID)
}
