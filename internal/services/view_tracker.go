package services

import "sync"

// ViewTracker lembra quais pares sessão/benefício já contaram visualização.
// O conjunto vive em memória e zera a cada restart do processo, o que é
// aceitável para deduplicação de contador best-effort.
type ViewTracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewViewTracker() *ViewTracker {
	return &ViewTracker{seen: make(map[string]struct{})}
}

// MarkSeen registra o par e retorna true apenas na primeira vez. A checagem
// e a gravação acontecem sob o mesmo lock para não contar duas vezes sob
// requisições concorrentes.
func (t *ViewTracker) MarkSeen(sessionHash, benefitID string) bool {
	key := sessionHash + ":" + benefitID

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.seen[key]; ok {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}
