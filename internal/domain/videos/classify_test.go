package videos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"shorts english", "[Shorts] Best moments ep.3", TypeShorts},
		{"shorts hashtag", "crazy game #shorts", TypeShorts},
		{"shorts korean", "쇼츠 모음", TypeShorts},
		{"shorts beats making", "Shorts + Making film", TypeShorts},
		{"full episode marker", "EP.1 Full Version", TypeFull},
		{"full korean replay", "1회 다시보기", TypeFull},
		{"teaser", "Official Teaser", TypeTeaser},
		{"trailer counts as teaser", "Season 2 Trailer", TypeTeaser},
		{"teaser korean", "티저 공개", TypeTeaser},
		{"live", "LIVE with the cast", TypeLive},
		{"making", "Making Film", TypeMaking},
		{"behind", "Behind the scenes", TypeMaking},
		{"interview", "Cast Interview", TypeInterview},
		{"fancam", "Fancam compilation", TypeFancam},
		{"fancam korean", "직캠 모음", TypeFancam},
		{"no keyword defaults to highlight", "Week 5 best bits", TypeHighlight},
		{"case insensitive", "OFFICIAL TEASER", TypeTeaser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTitle(tt.title))
		})
	}
}

func TestIsValidType(t *testing.T) {
	for _, valid := range []string{TypeHighlight, TypeFull, TypeTeaser, TypeLive, TypeShorts, TypeFancam, TypeMaking, TypeInterview} {
		assert.True(t, IsValidType(valid), valid)
	}
	assert.False(t, IsValidType("documentary"))
	assert.False(t, IsValidType(""))
}
