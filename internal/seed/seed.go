// Package seed loads the demo roster so a fresh process has something to
// browse. Everything goes through the identity store's public API.
package seed

import (
	"errors"
	"fmt"

	"github.com/skillswaphq/skillswap/internal/model"
	"github.com/skillswaphq/skillswap/internal/store"
)

var demoMembers = []model.CreateUserParams{
	{
		Name:          "Marc Demo",
		Email:         "marc@example.com",
		Location:      "San Francisco, CA",
		ProfilePhoto:  "/static/avatars/marc.jpg",
		SkillsOffered: []string{"JavaScript", "React", "Node.js"},
		SkillsWanted:  []string{"Python", "Data Science"},
		Availability:  model.AvailabilityWeekends,
		Bio:           "Full-stack developer passionate about learning new technologies",
	},
	{
		Name:          "Sarah Johnson",
		Email:         "sarah@example.com",
		Location:      "New York, NY",
		ProfilePhoto:  "/static/avatars/sarah.jpg",
		SkillsOffered: []string{"Python", "Machine Learning"},
		SkillsWanted:  []string{"React", "UI/UX"},
		Availability:  model.AvailabilityEvenings,
	},
	{
		Name:          "Mike Chen",
		Email:         "mike@example.com",
		Location:      "Seattle, WA",
		ProfilePhoto:  "/static/avatars/mike.jpg",
		SkillsOffered: []string{"UI/UX", "Figma"},
		SkillsWanted:  []string{"Backend", "DevOps"},
		Availability:  model.AvailabilityFlexible,
	},
}

// Demo registers the demo members. Already-registered emails are skipped so
// Demo can run against a store that was seeded before.
func Demo(identity *store.Identity) error {
	for i := range demoMembers {
		_, err := identity.Create(&demoMembers[i])
		if errors.Is(err, model.ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seeding %s: %w", demoMembers[i].Email, err)
		}
	}
	return nil
}
