package service

import "github.com/veldrin/ironlog/pkg/entity"

// SeedSets builds the blank sets shown when an exercise joins a fresh
// session. Aerobic exercises always start with a single zero set. Strength
// exercises mirror the set count of the last completed session, so the user
// doesn't have to re-add the sets they usually do; without history one blank
// set is enough.
func SeedSets(categoryType entity.CategoryType, last *entity.ExerciseSession) []entity.SetDraft {
	count := 1
	if categoryType == entity.CategoryStrength && last != nil && len(last.Sets) > 1 {
		count = len(last.Sets)
	}
	sets := make([]entity.SetDraft, count)
	return sets
}

// PadSets appends blank sets until the draft reaches target length. Sets the
// user already entered are never dropped, even when target is smaller.
func PadSets(sets []entity.SetDraft, target int) []entity.SetDraft {
	for len(sets) < target {
		sets = append(sets, entity.SetDraft{})
	}
	return sets
}
