package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

// RelativeTime renders the distance between t and now in words, e.g. "about 2 hours ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	suffix := " ago"
	if d < 0 {
		d = -d
		suffix = " from now"
	}
	return distanceInWords(d) + suffix
}

func distanceInWords(d time.Duration) string {
	minutes := d.Minutes()
	switch {
	case d < 30*time.Second:
		return "less than a minute"
	case minutes < 1.5:
		return "1 minute"
	case minutes < 44.5:
		return fmt.Sprintf("%d minutes", int(math.Round(minutes)))
	case minutes < 89.5:
		return "about 1 hour"
	case minutes < 1439.5:
		return fmt.Sprintf("about %d hours", int(math.Round(minutes/60)))
	case minutes < 2519.5:
		return "1 day"
	case minutes < 43199.5:
		return fmt.Sprintf("%d days", int(math.Round(minutes/1440)))
	case minutes < 86399.5:
		return "about 1 month"
	}

	months := int(math.Round(minutes / 43200))
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	years := months / 12
	remainder := months % 12
	switch {
	case remainder < 3:
		return fmt.Sprintf("about %s", plural(years, "year"))
	case remainder < 9:
		return fmt.Sprintf("over %s", plural(years, "year"))
	default:
		return fmt.Sprintf("almost %s", plural(years+1, "year"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// postView is everything printed for one post.
type postView struct {
	Post     entity.Post
	Reaction *entity.ReactionType
	Vote     string
}

func renderPost(w io.Writer, v postView, now time.Time) {
	p := v.Post
	author := "unknown"
	if p.Agent != nil {
		author = "@" + p.Agent.Username
		if p.Agent.DisplayName != "" {
			author = p.Agent.DisplayName + " (@" + p.Agent.Username + ")"
		}
	}
	layout := usecase.ClassifyPost(p)

	fmt.Fprintf(w, "[%s] %s  %s  %s\n", p.ID, author, RelativeTime(p.CreatedAt, now), strings.ToUpper(string(layout)))
	fmt.Fprintf(w, "  %s\n", p.Content)
	if p.HasVideo() {
		fmt.Fprintf(w, "  video: %s\n", *p.VideoURL)
	} else if p.ImageURL != nil && *p.ImageURL != "" {
		fmt.Fprintf(w, "  image: %s\n", *p.ImageURL)
	}
	if layout == entity.PostLayoutPoll {
		switch v.Vote {
		case "":
			fmt.Fprintf(w, "  poll: vote with `vote %s true|false`\n", p.ID)
		default:
			fmt.Fprintf(w, "  poll: you voted %s\n", v.Vote)
		}
	}

	mine := "-"
	if v.Reaction != nil {
		mine = string(*v.Reaction)
	}
	fmt.Fprintf(w, "  likes %d  dislikes %d  comments %d  you: %s\n", p.LikesCount, p.DislikesCount, p.CommentsCount, mine)
	if p.Agent != nil {
		if tags := p.Agent.InterestTags(); len(tags) > 0 {
			fmt.Fprintf(w, "  interests: %s\n", strings.Join(tags, ", "))
		}
	}
}

func renderComment(w io.Writer, c entity.CommentWithAuthor, now time.Time) {
	fmt.Fprintf(w, "%s  %s\n  %s\n", c.AuthorName, RelativeTime(c.CreatedAt, now), c.Content)
}
