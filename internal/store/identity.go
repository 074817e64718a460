package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/skillswaphq/skillswap/internal/model"
)

// DefaultProfilePhoto is used for members who never uploaded an avatar.
// Avatar handling is opaque to the store: the value is just a string.
const DefaultProfilePhoto = "/static/avatars/default.jpg"

// Identity owns the set of member records. All other collections reference
// members by id and resolve them here at write time.
type Identity struct {
	mu      sync.RWMutex
	order   []model.UserID
	byID    map[model.UserID]*model.User
	byEmail map[string]model.UserID
}

func NewIdentity() *Identity {
	return &Identity{
		byID:    map[model.UserID]*model.User{},
		byEmail: map[string]model.UserID{},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail returns the member registered under email, or ErrUserNotFound.
func (s *Identity) FindByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return cloneUser(s.byID[id]), nil
}

func (s *Identity) FindByID(id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// Create registers a new member. The email must not already be on file.
// Optional fields default to an empty public profile with a zero rating.
func (s *Identity) Create(params *model.CreateUserParams) (*model.User, error) {
	email := normalizeEmail(params.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, model.ErrDuplicateEmail
	}

	availability := params.Availability
	if availability == "" {
		availability = model.AvailabilityFlexible
	}
	photo := params.ProfilePhoto
	if photo == "" {
		photo = DefaultProfilePhoto
	}

	user := &model.User{
		ID:            model.UserID(model.CreateID()),
		Name:          params.Name,
		Email:         email,
		Location:      params.Location,
		ProfilePhoto:  photo,
		SkillsOffered: append([]string{}, params.SkillsOffered...),
		SkillsWanted:  append([]string{}, params.SkillsWanted...),
		Availability:  availability,
		Visibility:    model.VisibilityPublic,
		Rating:        0,
		Bio:           params.Bio,
	}

	s.byID[user.ID] = user
	s.byEmail[email] = user.ID
	s.order = append(s.order, user.ID)

	return cloneUser(user), nil
}

// Update merges the provided fields into an existing record. ID and Email
// are immutable after creation; there is deliberately no way to change them.
func (s *Identity) Update(id model.UserID, params *model.UpdateUserParams) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Location != nil {
		user.Location = *params.Location
	}
	if params.ProfilePhoto != nil {
		user.ProfilePhoto = *params.ProfilePhoto
	}
	if params.SkillsOffered != nil {
		user.SkillsOffered = append([]string{}, (*params.SkillsOffered)...)
	}
	if params.SkillsWanted != nil {
		user.SkillsWanted = append([]string{}, (*params.SkillsWanted)...)
	}
	if params.Availability != nil {
		user.Availability = *params.Availability
	}
	if params.Visibility != nil {
		user.Visibility = *params.Visibility
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}

	return cloneUser(user), nil
}

// AuthenticateOrProvision looks a member up by email and, if the email has
// never been seen, registers a fresh account named after the email's local
// part. The password is accepted as an opaque credential and never verified;
// this mirrors the demo-mode open login policy and is not a real
// authentication scheme.
func (s *Identity) AuthenticateOrProvision(email, password string) (*model.User, error) {
	_ = password

	if user, err := s.FindByEmail(email); err == nil {
		return user, nil
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	user, err := s.Create(&model.CreateUserParams{
		Name:     name,
		Email:    email,
		Location: "Unknown Location",
	})
	if errors.Is(err, model.ErrDuplicateEmail) {
		// lost a race with a concurrent first login for the same email
		return s.FindByEmail(email)
	}
	return user, err
}

// Users returns every member in registration order. The result is a copy;
// mutating it does not touch the store.
func (s *Identity) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, *cloneUser(s.byID[id]))
	}
	return users
}

func cloneUser(u *model.User) *model.User {
	clone := *u
	clone.SkillsOffered = append([]string{}, u.SkillsOffered...)
	clone.SkillsWanted = append([]string{}, u.SkillsWanted...)
	return &clone
}
