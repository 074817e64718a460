// Package query derives view-ready projections from ledger snapshots.
// Everything here is a pure function: inputs are copies handed out by the
// stores, and nothing mutates shared state.
package query

import (
	"sort"
	"strings"

	"github.com/skillswaphq/skillswap/internal/model"
)

// ListConversations groups every message touching the current user by the
// other participant. Each group carries the most recent message (on equal
// timestamps the later-sent one wins) and the count of that member's
// messages still unread. Groups come back most-recent-first. Messages whose
// other participant no longer resolves in users are skipped.
func ListConversations(messages []model.Message, users []model.User, currentUserID model.UserID) []model.Conversation {
	byID := make(map[model.UserID]model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	last := map[model.UserID]model.Message{}
	unread := map[model.UserID]int{}
	order := []model.UserID{}

	for _, message := range messages {
		if message.FromUserID != currentUserID && message.ToUserID != currentUserID {
			continue
		}
		otherID := message.FromUserID
		if message.FromUserID == currentUserID {
			otherID = message.ToUserID
		}
		if _, known := byID[otherID]; !known {
			continue
		}

		existing, seen := last[otherID]
		if !seen {
			order = append(order, otherID)
		}
		if !seen || !message.Timestamp.Before(existing.Timestamp) {
			last[otherID] = message
		}
		if message.FromUserID == otherID && message.ToUserID == currentUserID && !message.Read {
			unread[otherID]++
		}
	}

	conversations := make([]model.Conversation, 0, len(order))
	for _, otherID := range order {
		conversations = append(conversations, model.Conversation{
			User:        byID[otherID],
			LastMessage: last[otherID],
			UnreadCount: unread[otherID],
		})
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Timestamp.After(conversations[j].LastMessage.Timestamp)
	})
	return conversations
}

// FilterConversations keeps conversations whose partner's name contains
// searchTerm, case-insensitively. An empty term keeps everything.
func FilterConversations(conversations []model.Conversation, searchTerm string) []model.Conversation {
	term := strings.ToLower(searchTerm)
	filtered := []model.Conversation{}
	for _, conversation := range conversations {
		if strings.Contains(strings.ToLower(conversation.User.Name), term) {
			filtered = append(filtered, conversation)
		}
	}
	return filtered
}

// FilterUsers narrows the directory for browsing. The current user is
// always excluded. searchTerm matches the member's name or any offered or
// wanted skill as a case-insensitive substring; an empty term matches all.
// availability empty matches all, otherwise it must match exactly.
func FilterUsers(users []model.User, searchTerm string, availability model.Availability, excludeID model.UserID) []model.User {
	term := strings.ToLower(searchTerm)
	filtered := []model.User{}
	for _, user := range users {
		if user.ID == excludeID {
			continue
		}
		if availability != "" && user.Availability != availability {
			continue
		}
		if term != "" && !matchesTerm(user, term) {
			continue
		}
		filtered = append(filtered, user)
	}
	return filtered
}

func matchesTerm(user model.User, term string) bool {
	if strings.Contains(strings.ToLower(user.Name), term) {
		return true
	}
	for _, skill := range user.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	for _, skill := range user.SkillsWanted {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

// FilterRequests keeps requests in the given status. "all" or an empty
// filter keeps everything.
func FilterRequests(requests []model.SwapRequest, status string) []model.SwapRequest {
	if status == "" || status == "all" {
		return requests
	}
	filtered := []model.SwapRequest{}
	for _, request := range requests {
		if string(request.Status) == status {
			filtered = append(filtered, request)
		}
	}
	return filtered
}

// Paginate slices out a 1-indexed page. Pages past the end come back empty
// rather than erroring; page and size being positive is the caller's
// precondition.
func Paginate[T any](seq []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(seq) {
		return []T{}
	}
	end := start + size
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}

// Stats summarizes a browsable slice of the directory.
type Stats struct {
	Members       int `json:"members"`
	SkillsOffered int `json:"skillsOffered"`
	SkillsWanted  int `json:"skillsWanted"`
}

// DirectoryStats counts members and distinct skills across them.
func DirectoryStats(users []model.User) Stats {
	offered := map[string]struct{}{}
	wanted := map[string]struct{}{}
	for _, user := range users {
		for _, skill := range user.SkillsOffered {
			offered[skill] = struct{}{}
		}
		for _, skill := range user.SkillsWanted {
			wanted[skill] = struct{}{}
		}
	}
	return Stats{
		Members:       len(users),
		SkillsOffered: len(offered),
		SkillsWanted:  len(wanted),
	}
}
