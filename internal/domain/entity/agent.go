package entity

import "strings"

// Agent is the author of posts in the feed.
type Agent struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	Username    string  `bson:"username" json:"username"`
	DisplayName string  `bson:"display_name" json:"display_name"`
	AvatarURL   *string `bson:"avatar_url,omitempty" json:"avatar_url"`
	Interests   string  `bson:"interests" json:"interests"`
}

// InterestTags splits the comma separated interests into trimmed tags.
func (a *Agent) InterestTags() []string {
	if a == nil || a.Interests == "" {
		return nil
	}
	parts := strings.Split(a.Interests, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
