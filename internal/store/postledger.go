package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/skillswaphq/skillswap/internal/model"
)

// PostLedger owns skill-swap posts published to the whole directory.
type PostLedger struct {
	mu       sync.RWMutex
	identity *Identity
	posts    []*model.Post
	byID     map[model.PostID]*model.Post
}

func NewPostLedger(identity *Identity) *PostLedger {
	return &PostLedger{
		identity: identity,
		byID:     map[model.PostID]*model.Post{},
	}
}

// Create publishes a post under the author's current profile snapshot.
func (s *PostLedger) Create(authorID model.UserID, params *model.CreatePostParams) (*model.Post, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, model.ErrEmptyContent
	}

	author, err := s.identity.FindByID(authorID)
	if err != nil {
		return nil, fmt.Errorf("resolving author %s: %w", authorID, model.ErrUnknownUser)
	}

	post := &model.Post{
		ID:            model.PostID(model.CreateID()),
		UserID:        authorID,
		User:          *author,
		Title:         strings.TrimSpace(params.Title),
		Description:   strings.TrimSpace(params.Description),
		SkillsOffered: append([]string{}, params.SkillsOffered...),
		SkillsWanted:  append([]string{}, params.SkillsWanted...),
		CreatedAt:     time.Now().UTC(),
		Likes:         0,
	}

	s.mu.Lock()
	s.posts = append(s.posts, post)
	s.byID[post.ID] = post
	s.mu.Unlock()

	return clonePost(post), nil
}

// Like increments the post's like counter.
func (s *PostLedger) Like(id model.PostID) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.byID[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}

	post.Likes++
	return clonePost(post), nil
}

// List returns all posts, newest first.
func (s *PostLedger) List() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]model.Post, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		posts = append(posts, *clonePost(s.posts[i]))
	}
	return posts
}

func clonePost(p *model.Post) *model.Post {
	clone := *p
	clone.User = *cloneUser(&p.User)
	clone.SkillsOffered = append([]string{}, p.SkillsOffered...)
	clone.SkillsWanted = append([]string{}, p.SkillsWanted...)
	return &clone
}
