package models

// Community is the fixed set of boards a post can belong to.
type Community string

const (
	CommunityHistory  Community = "History"
	CommunityFood     Community = "Food"
	CommunityPets     Community = "Pets"
	CommunityHealth   Community = "Health"
	CommunityFashion  Community = "Fashion"
	CommunityExercise Community = "Exercise"
	CommunityOthers   Community = "Others"
)

// Communities lists every valid community, in display order.
var Communities = []Community{
	CommunityHistory,
	CommunityFood,
	CommunityPets,
	CommunityHealth,
	CommunityFashion,
	CommunityExercise,
	CommunityOthers,
}

// Valid reports whether c is a member of the closed community set.
func (c Community) Valid() bool {
	for _, known := range Communities {
		if c == known {
			return true
		}
	}
	return false
}
