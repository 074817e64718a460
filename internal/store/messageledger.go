package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skillswaphq/skillswap/internal/model"
)

// MessageLedger owns direct messages. Messages are append-only; the single
// permitted mutation flips the read flag from false to true.
type MessageLedger struct {
	mu       sync.RWMutex
	identity *Identity
	messages []*model.Message
	byID     map[model.MessageID]*model.Message
}

func NewMessageLedger(identity *Identity) *MessageLedger {
	return &MessageLedger{
		identity: identity,
		byID:     map[model.MessageID]*model.Message{},
	}
}

// Send writes a new unread message. Content must be non-blank after
// trimming, and both participants must resolve in the identity store.
func (s *MessageLedger) Send(fromID, toID model.UserID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyContent
	}
	if _, err := s.identity.FindByID(fromID); err != nil {
		return nil, fmt.Errorf("resolving sender %s: %w", fromID, model.ErrUnknownUser)
	}
	if _, err := s.identity.FindByID(toID); err != nil {
		return nil, fmt.Errorf("resolving recipient %s: %w", toID, model.ErrUnknownUser)
	}

	message := &model.Message{
		ID:         model.MessageID(model.CreateID()),
		FromUserID: fromID,
		ToUserID:   toID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		Read:       false,
	}

	s.mu.Lock()
	s.messages = append(s.messages, message)
	s.byID[message.ID] = message
	s.mu.Unlock()

	return cloneMessage(message), nil
}

// MarkRead flips the read flag. Only the recipient may mark a message, and
// marking an already-read message is a no-op success.
func (s *MessageLedger) MarkRead(id model.MessageID, actingUserID model.UserID) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.byID[id]
	if !ok {
		return nil, model.ErrMessageNotFound
	}
	if message.ToUserID != actingUserID {
		return nil, model.ErrForbidden
	}

	message.Read = true
	return cloneMessage(message), nil
}

// ConversationBetween returns every message exchanged between the two
// members, oldest first. Messages with equal timestamps keep their
// insertion order, since the clock may not resolve two sends in one tick.
func (s *MessageLedger) ConversationBetween(a, b model.UserID) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread := []model.Message{}
	for _, message := range s.messages {
		if (message.FromUserID == a && message.ToUserID == b) ||
			(message.FromUserID == b && message.ToUserID == a) {
			thread = append(thread, *cloneMessage(message))
		}
	}

	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].Timestamp.Before(thread[j].Timestamp)
	})
	return thread
}

// Messages returns a copy of the whole ledger in insertion order, for the
// derivation layer to group and count.
func (s *MessageLedger) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]model.Message, 0, len(s.messages))
	for _, message := range s.messages {
		messages = append(messages, *cloneMessage(message))
	}
	return messages
}

func cloneMessage(m *model.Message) *model.Message {
	clone := *m
	return &clone
}
