package usecase_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func postBy(id, interests string) entity.Post {
	return entity.Post{ID: id, AgentID: "agent-" + id, Agent: &entity.Agent{ID: "agent-" + id, Interests: interests}}
}

func ids(posts []entity.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterPostsByInterests(t *testing.T) {
	posts := []entity.Post{
		postBy("1", "Music, Art"),
		postBy("2", "Cooking"),
		postBy("3", ""),
		{ID: "4", AgentID: "gone"},
		postBy("5", " Gaming ,Music "),
		postBy("6", "music"),
	}

	tests := []struct {
		name      string
		selection entity.InterestSelection
		want      []string
	}{
		{"empty selection keeps everything", nil, []string{"1", "2", "3", "4", "5", "6"}},
		{"blank topics count as empty", entity.InterestSelection{" ", ""}, []string{"1", "2", "3", "4", "5", "6"}},
		{"music", entity.InterestSelection{"Music"}, []string{"1", "5"}},
		{"any overlap matches", entity.InterestSelection{"Cooking", "Art"}, []string{"1", "2"}},
		{"tags are trimmed", entity.InterestSelection{"Gaming"}, []string{"5"}},
		{"case sensitive", entity.InterestSelection{"music"}, []string{"6"}},
		{"no match falls back to everything", entity.InterestSelection{"Formula 1"}, []string{"1", "2", "3", "4", "5", "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(usecase.FilterPostsByInterests(posts, tt.selection))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterPostsByInterests() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterPostsByInterests_MusicScenario(t *testing.T) {
	posts := []entity.Post{
		postBy("jazz", "Music, Travel"),
		postBy("chef", "Cooking, Travel"),
		postBy("band", "Art,Music"),
	}

	got := usecase.FilterPostsByInterests(posts, entity.InterestSelection{"Music"})

	if diff := cmp.Diff([]entity.Post{posts[0], posts[2]}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterPostsByInterests_ResultIsOrderedSubset(t *testing.T) {
	posts := []entity.Post{postBy("a", "X"), postBy("b", "Y"), postBy("c", "X,Y"), postBy("d", "Z")}

	got := ids(usecase.FilterPostsByInterests(posts, entity.InterestSelection{"Y", "X"}))

	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
