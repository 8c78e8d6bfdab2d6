package payment

import "sync"

// ResultFunc is invoked by the return listener once a navigation event
// completed or failed the flow. The controller installs it to message
// the chat; Ignored events never reach it.
type ResultFunc func(outcome Outcome, err error)

type entry struct {
	orch     *Orchestrator
	onResult ResultFunc
}

// Registry tracks at most one in-flight payment per chat and routes
// return redirects to the right flow by provider order token. Putting
// a new flow for a chat replaces the old one, so a re-rendered payment
// screen can never leave two cancellation guards armed.
type Registry struct {
	mu      sync.RWMutex
	byChat  map[int64]*entry
	byOrder map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{
		byChat:  make(map[int64]*entry),
		byOrder: make(map[string]int64),
	}
}

// Put registers the chat's active flow, replacing any previous one.
func (r *Registry) Put(chatID int64, orch *Orchestrator, onResult ResultFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.byChat[chatID]; exists {
		if id := old.orch.OrderID(); id != "" {
			delete(r.byOrder, id)
		}
	}
	r.byChat[chatID] = &entry{orch: orch, onResult: onResult}
}

// BindOrder routes the given provider order token to the chat's flow.
// Called after Pay once the order token is known.
func (r *Registry) BindOrder(chatID int64, orderID string) {
	if orderID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byChat[chatID]; exists {
		r.byOrder[orderID] = chatID
	}
}

// ByChat returns the chat's active flow, or nil.
func (r *Registry) ByChat(chatID int64) *Orchestrator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, exists := r.byChat[chatID]; exists {
		return e.orch
	}
	return nil
}

// ByOrder resolves a provider order token to the flow awaiting it.
func (r *Registry) ByOrder(orderID string) (*Orchestrator, ResultFunc) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chatID, exists := r.byOrder[orderID]
	if !exists {
		return nil, nil
	}
	e, exists := r.byChat[chatID]
	if !exists {
		return nil, nil
	}
	return e.orch, e.onResult
}

// Remove drops the chat's flow once it finished or was canceled.
func (r *Registry) Remove(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, exists := r.byChat[chatID]; exists {
		if id := e.orch.OrderID(); id != "" {
			delete(r.byOrder, id)
		}
		delete(r.byChat, chatID)
	}
}
