// Package assistant answers presale questions from the landing FAQ,
// optionally phrased by an OpenAI chat model.
package assistant

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/models"
)

// ErrNoAnswer is returned when nothing in the FAQ relates to the question.
var ErrNoAnswer = errors.New("assistant: no matching answer")

type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// FAQAnswerer picks the FAQ item sharing the most keywords with the question.
type FAQAnswerer struct {
	items []faqEntry
}

type faqEntry struct {
	item     models.FAQItem
	keywords map[string]struct{}
}

func NewFAQAnswerer(faq []models.FAQItem) *FAQAnswerer {
	entries := make([]faqEntry, 0, len(faq))
	for _, item := range faq {
		kw := map[string]struct{}{}
		for _, w := range keywords(item.Question + " " + item.Answer) {
			kw[w] = struct{}{}
		}
		entries = append(entries, faqEntry{item: item, keywords: kw})
	}
	return &FAQAnswerer{items: entries}
}

func (f *FAQAnswerer) Answer(_ context.Context, question string) (string, error) {
	best, bestScore := -1, 0
	for i, e := range f.items {
		score := 0
		for _, w := range keywords(question) {
			if _, ok := e.keywords[w]; ok {
				score++
			}
		}
		// ties keep the earlier FAQ item
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", ErrNoAnswer
	}
	return f.items[best].item.Answer, nil
}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "can": {}, "how": {}, "what": {},
	"when": {}, "which": {}, "does": {}, "with": {}, "you": {}, "your": {}, "this": {},
	"that": {}, "there": {}, "from": {}, "have": {}, "any": {}, "will": {},
}

// keywords lowercases text, splits on anything but letters and digits and
// drops short words and stopwords. A trailing plural "s" is trimmed.
func keywords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, w := range fields {
		if len(w) < 3 {
			continue
		}
		if _, skip := stopwords[w]; skip {
			continue
		}
		if len(w) > 3 && strings.HasSuffix(w, "s") {
			w = strings.TrimSuffix(w, "s")
		}
		out = append(out, w)
	}
	return out
}
