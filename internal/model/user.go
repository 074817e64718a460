package model

type UserID string

// Availability describes when a member is free to swap.
type Availability string

const (
	AvailabilityFlexible Availability = "flexible"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityEvenings Availability = "evenings"
	AvailabilityWeekdays Availability = "weekdays"
)

// Visibility controls whether a profile appears in the directory.
type Visibility string

const (
	VisibilityPublic  Visibility = "Public"
	VisibilityPrivate Visibility = "Private"
)

type CreateUserParams struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Password      string       `json:"password"`
	Location      string       `json:"location"`
	ProfilePhoto  string       `json:"profilePhoto"`
	SkillsOffered []string     `json:"skillsOffered"`
	SkillsWanted  []string     `json:"skillsWanted"`
	Availability  Availability `json:"availability"`
	Bio           string       `json:"bio"`
}

// UpdateUserParams carries a partial profile edit. Nil fields are left
// untouched. ID and Email are immutable and have no counterpart here.
type UpdateUserParams struct {
	Name          *string       `json:"name"`
	Location      *string       `json:"location"`
	ProfilePhoto  *string       `json:"profilePhoto"`
	SkillsOffered *[]string     `json:"skillsOffered"`
	SkillsWanted  *[]string     `json:"skillsWanted"`
	Availability  *Availability `json:"availability"`
	Visibility    *Visibility   `json:"visibility"`
	Bio           *string       `json:"bio"`
}

type User struct {
	ID            UserID       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Location      string       `json:"location"`
	ProfilePhoto  string       `json:"profilePhoto"`
	SkillsOffered []string     `json:"skillsOffered"`
	SkillsWanted  []string     `json:"skillsWanted"`
	Availability  Availability `json:"availability"`
	Visibility    Visibility   `json:"profile"`
	Rating        float64      `json:"rating"`
	Bio           string       `json:"bio,omitempty"`
}
