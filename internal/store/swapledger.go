package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/skillswaphq/skillswap/internal/model"
)

// SwapLedger owns swap request records. Requests are append-only: once
// written, the only permitted mutation is a single status transition from
// pending to a terminal state, performed by the recipient.
type SwapLedger struct {
	mu       sync.RWMutex
	identity *Identity
	requests []*model.SwapRequest
	byID     map[model.SwapRequestID]*model.SwapRequest
}

func NewSwapLedger(identity *Identity) *SwapLedger {
	return &SwapLedger{
		identity: identity,
		byID:     map[model.SwapRequestID]*model.SwapRequest{},
	}
}

// Create writes a new pending request. Both user ids must resolve in the
// identity store; their records are copied into the request as display
// snapshots and never refreshed afterwards. Whether skillOffered actually
// appears in the sender's offered list is left to the caller.
func (s *SwapLedger) Create(fromID, toID model.UserID, skillOffered, skillWanted, message string) (*model.SwapRequest, error) {
	fromUser, err := s.identity.FindByID(fromID)
	if err != nil {
		return nil, fmt.Errorf("resolving sender %s: %w", fromID, model.ErrUnknownUser)
	}
	toUser, err := s.identity.FindByID(toID)
	if err != nil {
		return nil, fmt.Errorf("resolving recipient %s: %w", toID, model.ErrUnknownUser)
	}

	request := &model.SwapRequest{
		ID:           model.SwapRequestID(model.CreateID()),
		FromUserID:   fromID,
		ToUserID:     toID,
		FromUser:     *fromUser,
		ToUser:       *toUser,
		SkillOffered: skillOffered,
		SkillWanted:  skillWanted,
		Message:      message,
		Status:       model.SwapStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.requests = append(s.requests, request)
	s.byID[request.ID] = request
	s.mu.Unlock()

	return cloneRequest(request), nil
}

// Transition moves a pending request to accepted or rejected. Only the
// recipient may act, and a terminal request never transitions again. The
// check-and-set runs under the write lock so two concurrent decisions
// cannot both succeed.
func (s *SwapLedger) Transition(id model.SwapRequestID, newStatus model.SwapStatus, actingUserID model.UserID) (*model.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.byID[id]
	if !ok {
		return nil, model.ErrRequestNotFound
	}
	if request.ToUserID != actingUserID {
		return nil, model.ErrForbidden
	}
	if request.Status != model.SwapStatusPending || !newStatus.Terminal() {
		return nil, fmt.Errorf("%s -> %s: %w", request.Status, newStatus, model.ErrInvalidTransition)
	}

	request.Status = newStatus
	return cloneRequest(request), nil
}

// ListForUser returns every request the user sent or received, in the
// order they were written. Callers filter and sort further.
func (s *SwapLedger) ListForUser(userID model.UserID) []model.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := []model.SwapRequest{}
	for _, request := range s.requests {
		if request.FromUserID == userID || request.ToUserID == userID {
			requests = append(requests, *cloneRequest(request))
		}
	}
	return requests
}

func cloneRequest(r *model.SwapRequest) *model.SwapRequest {
	clone := *r
	clone.FromUser = *cloneUser(&r.FromUser)
	clone.ToUser = *cloneUser(&r.ToUser)
	return &clone
}
