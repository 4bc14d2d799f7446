package services

import (
	"sync"
)

// DraftService keeps one wizard per logged-in customer. Drafts are session
// state only; abandoning or cancelling a draft leaves nothing behind.
type DraftService struct {
	mu       sync.Mutex
	sessions map[uint]*OrderWizard
}

func NewDraftService() *DraftService {
	return &DraftService{sessions: make(map[uint]*OrderWizard)}
}

// DraftView is the wizard state returned to the client.
type DraftView struct {
	Step  WizardStep `json:"step"`
	Draft OrderDraft `json:"draft"`
}

// Start begins a fresh draft for the given meal type, discarding any
// previous one.
func (s *DraftService) Start(userID uint, mealType string) DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := NewOrderWizard(mealType)
	s.sessions[userID] = w
	return view(w)
}

// Get returns the current draft, or ok=false when no wizard is active.
func (s *DraftService) Get(userID uint) (DraftView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return DraftView{}, false
	}
	return view(w), true
}

// Mutate applies fn to the user's wizard under the lock. It reports whether
// a wizard existed and whether fn accepted the change.
func (s *DraftService) Mutate(userID uint, fn func(*OrderWizard) bool) (DraftView, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return DraftView{}, false, false
	}
	accepted := fn(w)
	return view(w), true, accepted
}

// Cancel discards the draft entirely.
func (s *DraftService) Cancel(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

func view(w *OrderWizard) DraftView {
	v := DraftView{Step: w.Step, Draft: w.Draft}
	// copy the slice so callers never alias session state
	v.Draft.Sabjis = append([]SabjiSelection(nil), w.Draft.Sabjis...)
	return v
}
