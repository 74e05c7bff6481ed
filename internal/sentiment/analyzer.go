package sentiment

import (
	"strings"

	"postsched/internal/common"
)

// Classify assigns an advisory sentiment to post text by scoring it against
// small positive/negative lexicons. It informs display only and never gates
// scheduling.
func Classify(text string) common.Sentiment {
	score := 0
	for _, word := range tokenize(text) {
		if _, ok := positiveWords[word]; ok {
			score++
		}
		if _, ok := negativeWords[word]; ok {
			score--
		}
	}

	switch {
	case score > 0:
		return common.SentimentPositive
	case score < 0:
		return common.SentimentNegative
	default:
		return common.SentimentUnknown
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	})
}

var positiveWords = wordSet(
	"good", "great", "happy", "love", "awesome", "excellent", "best",
	"amazing", "wonderful", "nice", "excited", "fantastic", "win", "thanks",
	"thank", "glad", "beautiful", "fun", "cool", "perfect",
)

var negativeWords = wordSet(
	"bad", "sad", "hate", "terrible", "awful", "worst", "angry", "horrible",
	"annoying", "broken", "fail", "failed", "lost", "ugly", "boring", "sucks",
	"disappointed", "wrong", "never", "problem",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
