package stories

import (
	"sort"

	"github.com/soapboxsocial/stories/pkg/users/types"
)

// CurrentUserDisplayName replaces the display name of the requesting user in a roster.
const CurrentUserDisplayName = "You"

// Roster groups active stories by owner for viewer.
//
// Owners in muted and owners without a profile are left out. Each remaining owner is represented
// by their latest story, ties going to the larger ID. The viewer comes first, then the most
// recent groups, then lower owner IDs.
func Roster(viewer int, active []*Story, muted []int, profiles map[int]*types.User) []*Group {
	skip := make(map[int]bool, len(muted))
	for _, id := range muted {
		skip[id] = true
	}

	latest := make(map[int]*Story)
	for _, story := range active {
		if skip[story.UserID] {
			continue
		}

		current, ok := latest[story.UserID]
		if !ok || newer(story, current) {
			latest[story.UserID] = story
		}
	}

	result := make([]*Group, 0, len(latest))
	for owner, story := range latest {
		profile, ok := profiles[owner]
		if !ok || profile == nil {
			continue
		}

		group := &Group{
			ID:            story.ID,
			UserID:        owner,
			MediaURL:      story.MediaURL,
			CreatedAt:     story.CreatedAt,
			DisplayName:   profile.DisplayName,
			Username:      profile.Username,
			Image:         profile.Image,
			IsCurrentUser: owner == viewer,
		}

		if group.IsCurrentUser {
			group.DisplayName = CurrentUserDisplayName
		}

		result = append(result, group)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.IsCurrentUser != b.IsCurrentUser {
			return a.IsCurrentUser
		}

		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return a.UserID < b.UserID
	})

	return result
}

// Owners returns the distinct owners of stories, in order of first appearance.
func Owners(stories []*Story) []int {
	seen := make(map[int]bool)
	result := make([]int, 0)
	for _, story := range stories {
		if seen[story.UserID] {
			continue
		}

		seen[story.UserID] = true
		result = append(result, story.UserID)
	}

	return result
}

func newer(a, b *Story) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}

	return a.CreatedAt.After(b.CreatedAt)
}
