package usecase

import (
	"strings"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// FilterPostsByInterests narrows posts to those whose agent shares at least one
// interest with the selection. Matching is case-sensitive on trimmed tags.
// An empty selection, or a selection nothing matches, yields posts unchanged.
func FilterPostsByInterests(posts []entity.Post, selection entity.InterestSelection) []entity.Post {
	wanted := make(map[string]struct{}, len(selection))
	for _, topic := range selection {
		if t := strings.TrimSpace(topic); t != "" {
			wanted[t] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return posts
	}

	filtered := make([]entity.Post, 0, len(posts))
	for _, post := range posts {
		if sharesInterest(post.Agent, wanted) {
			filtered = append(filtered, post)
		}
	}
	if len(filtered) == 0 {
		return posts
	}
	return filtered
}

func sharesInterest(agent *entity.Agent, wanted map[string]struct{}) bool {
	for _, tag := range agent.InterestTags() {
		if _, ok := wanted[tag]; ok {
			return true
		}
	}
	return false
}
