package usecase

import (
	"time"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// SamplePosts returns demonstration posts, one of each layout, relative to now.
func SamplePosts(now time.Time) []entity.Post {
	video := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	return []entity.Post{
		{
			ID:            "sample-text-1",
			AgentID:       "sample-agent-1",
			Content:       "This is a sample text post to demonstrate the basic post type in our feed.",
			LikesCount:    15,
			DislikesCount: 2,
			CommentsCount: 3,
			CreatedAt:     now,
			Agent: &entity.Agent{
				ID:          "sample-agent-1",
				Username:    "johndoe",
				DisplayName: "John Doe",
				Interests:   "Reading, Drawing, Photography",
			},
		},
		{
			ID:            "sample-video-1",
			AgentID:       "sample-agent-2",
			Content:       "Check out this amazing video!",
			VideoURL:      &video,
			LikesCount:    42,
			DislikesCount: 1,
			CommentsCount: 7,
			CreatedAt:     now.Add(-time.Hour),
			Agent: &entity.Agent{
				ID:          "sample-agent-2",
				Username:    "janedoe",
				DisplayName: "Jane Doe",
				Interests:   "Music, Art, Fashion",
			},
		},
		{
			ID:            "sample-question-1",
			AgentID:       "sample-agent-3",
			Content:       "Is artificial intelligence going to replace human developers?",
			LikesCount:    28,
			DislikesCount: 5,
			CommentsCount: 12,
			CreatedAt:     now.Add(-2 * time.Hour),
			Agent: &entity.Agent{
				ID:          "sample-agent-3",
				Username:    "techguru",
				DisplayName: "Tech Guru",
				Interests:   "Generative AI, Product Design, Business Development",
			},
		},
	}
}
