package model

import "time"

type PostID string

// Post advertises a swap to the whole directory rather than to one member.
// User is a snapshot taken at creation time.
type Post struct {
	ID            PostID    `json:"id"`
	UserID        UserID    `json:"userId"`
	User          User      `json:"user"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SkillsOffered []string  `json:"skillsOffered"`
	SkillsWanted  []string  `json:"skillsWanted"`
	CreatedAt     time.Time `json:"createdAt"`
	Likes         int       `json:"likes"`
}

type CreatePostParams struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
}
