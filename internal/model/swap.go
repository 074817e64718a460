package model

import "time"

type SwapRequestID string

type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "pending"
	SwapStatusAccepted SwapStatus = "accepted"
	SwapStatusRejected SwapStatus = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s SwapStatus) Terminal() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected
}

// SwapRequest is a proposal to exchange one skill for another. FromUser and
// ToUser are copies captured when the request was created; they are not kept
// in sync with later profile edits.
type SwapRequest struct {
	ID           SwapRequestID `json:"id"`
	FromUserID   UserID        `json:"fromUserId"`
	ToUserID     UserID        `json:"toUserId"`
	FromUser     User          `json:"fromUser"`
	ToUser       User          `json:"toUser"`
	SkillOffered string        `json:"skillOffered"`
	SkillWanted  string        `json:"skillWanted"`
	Message      string        `json:"message"`
	Status       SwapStatus    `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}
