package internals

import (
	"strings"

	"coffee-wifi-server/model"
)

const MinScore = 1
const MaxScore = 5

// CanComment reports whether the user may still comment on a cafe: a user
// gets at most one comment per cafe.
func CanComment(userID int, comments []model.Comment) bool {
	for _, comment := range comments {
		if comment.AuthorID == userID {
			return false
		}
	}
	return true
}

// RecomputeRating computes the aggregate values of a cafe after a new score
// is submitted, given the comments already stored for it. The mean is
// recomputed from scratch on every submission instead of keeping a running
// value, so rounding drift cannot accumulate.
func RecomputeRating(comments []model.Comment, newScore int) (float64, int, string) {
	totalOpinions := len(comments) + 1

	sum := newScore
	for _, comment := range comments {
		sum += comment.Score
	}
	qualification := float64(sum) / float64(totalOpinions)

	return qualification, totalOpinions, RenderStars(qualification)
}

// RenderStars renders a qualification as a fixed five glyph string,
// e.g. 3.33 becomes "★★★☆☆".
func RenderStars(qualification float64) string {
	filled := int(qualification)
	if filled < 0 {
		filled = 0
	}
	if filled > MaxScore {
		filled = MaxScore
	}

	return strings.Repeat("★", filled) + strings.Repeat("☆", MaxScore-filled)
}
