package model

import "time"

type MessageID string

type Message struct {
	ID         MessageID `json:"id"`
	FromUserID UserID    `json:"fromUserId"`
	ToUserID   UserID    `json:"toUserId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Conversation is derived, never stored: the most recent message exchanged
// with one other member plus the count of their messages still unread.
type Conversation struct {
	User        User    `json:"user"`
	LastMessage Message `json:"lastMessage"`
	UnreadCount int     `json:"unreadCount"`
}
