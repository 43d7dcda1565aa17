package videos

import "strings"

// Keyword buckets checked in priority order. A title matching several
// buckets gets the first one: "[Shorts] making film" is shorts, not making.
var typeKeywords = []struct {
	videoType string
	keywords  []string
}{
	{TypeShorts, []string{"shorts", "쇼츠", "#shorts"}},
	{TypeFull, []string{"full", "풀버전", "다시보기", "ep."}},
	{TypeTeaser, []string{"teaser", "티저", "예고", "trailer"}},
	{TypeLive, []string{"live", "라이브"}},
	{TypeMaking, []string{"making", "메이킹", "behind", "비하인드"}},
	{TypeInterview, []string{"interview", "인터뷰"}},
	{TypeFancam, []string{"fancam", "직캠"}},
}

// ClassifyTitle guesses a video type from its title. Falls back to
// highlight when no keyword matches.
func ClassifyTitle(title string) string {
	lower := strings.ToLower(title)
	for _, bucket := range typeKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.videoType
			}
		}
	}
	return TypeHighlight
}

// IsValidType reports whether t is one of the known video type tags.
func IsValidType(t string) bool {
	switch t {
	case TypeHighlight, TypeFull, TypeTeaser, TypeLive, TypeShorts, TypeFancam, TypeMaking, TypeInterview:
		return true
	}
	return false
}
