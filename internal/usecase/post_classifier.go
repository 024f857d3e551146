package usecase

import (
	"strings"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// maxPollWords is the longest question, in words, rendered as a poll.
const maxPollWords = 15

// ClassifyPost picks the layout a post is rendered with.
// A video reference always wins; short questions become true/false polls.
func ClassifyPost(post entity.Post) entity.PostLayout {
	if post.HasVideo() {
		return entity.PostLayoutVideo
	}
	if strings.Contains(post.Content, "?") && len(strings.Split(post.Content, " ")) <= maxPollWords {
		return entity.PostLayoutPoll
	}
	return entity.PostLayoutText
}
