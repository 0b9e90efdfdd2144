package words

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/tsiemens/embedviz/util"
)

// Document is one source text and the category it came from (a chunk's
// metadata category, or a prompt file's stem).
type Document struct {
	Category string
	Text     string
}

// Context records where and how often a word was seen.
type Context struct {
	Count      int
	Categories *util.Set[string]
	Examples   []string
}

const (
	maxExamples   = 3
	maxExampleLen = 100
)

var (
	wordPattern     = regexp.MustCompile(`\b[a-z]{3,}\b`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

var stopWords = util.NewSet(
	"the", "and", "for", "with", "this", "that", "from", "have", "has",
	"are", "was", "were", "been", "will", "can", "should", "would",
	"could", "may", "might", "must", "shall", "your", "you", "our",
)

// Extractor accumulates word contexts across documents.
type Extractor struct {
	contexts *util.DefaultMap[string, *Context]
}

func NewExtractor() *Extractor {
	return &Extractor{
		contexts: util.NewDefaultMap(func(string) *Context {
			return &Context{Categories: util.NewSet[string]()}
		}),
	}
}

// AddDocument tokenizes doc and folds its words into the accumulated
// contexts. Categories are stored lower-cased for easier matching.
func (e *Extractor) AddDocument(doc Document) {
	lowered := strings.ToLower(doc.Text)
	tokens := wordPattern.FindAllString(lowered, -1)
	tokens = lo.Filter(tokens, func(w string, _ int) bool {
		return !stopWords.Has(w)
	})
	if len(tokens) == 0 {
		return
	}

	category := strings.ToLower(doc.Category)
	for _, w := range tokens {
		ctx := e.contexts.Get(w)
		ctx.Count++
		ctx.Categories.Add(category)
	}

	// Examples keep the source casing; matching is case-insensitive. The
	// splits align because lowering never touches the delimiters.
	sentences := sentencePattern.Split(doc.Text, -1)
	loweredSentences := sentencePattern.Split(lowered, -1)
	for _, w := range lo.Uniq(tokens) {
		ctx := e.contexts.Get(w)
		for i, s := range sentences {
			if len(ctx.Examples) >= maxExamples {
				break
			}
			if !strings.Contains(loweredSentences[i], w) {
				continue
			}
			s = strings.TrimSpace(s)
			if runes := []rune(s); len(runes) > maxExampleLen {
				s = string(runes[:maxExampleLen])
			}
			ctx.Examples = append(ctx.Examples, s)
		}
	}
}

// WordCount returns the number of distinct words seen so far.
func (e *Extractor) WordCount() int {
	return e.contexts.Len()
}

// Context returns the accumulated context for word, or nil if it was never
// seen.
func (e *Extractor) Context(word string) *Context {
	ctx, ok := e.contexts.Peek(word)
	if !ok {
		return nil
	}
	return ctx
}

// CategoriesOf returns word's categories, sorted for deterministic output.
func (e *Extractor) CategoriesOf(word string) []string {
	ctx := e.Context(word)
	if ctx == nil {
		return nil
	}
	cats := ctx.Categories.Values()
	sort.Strings(cats)
	return cats
}

// TopWords returns up to max words ranked by descending frequency. Ties are
// broken alphabetically so repeated runs produce the same ranking.
func (e *Extractor) TopWords(max int) []string {
	all := make([]string, 0, e.contexts.Len())
	e.contexts.ForEach(func(w string, _ *Context) bool {
		all = append(all, w)
		return true
	})
	sort.Slice(all, func(i, j int) bool {
		ci := e.Context(all[i]).Count
		cj := e.Context(all[j]).Count
		if ci != cj {
			return ci > cj
		}
		return all[i] < all[j]
	})
	if len(all) > max {
		all = all[:max]
	}
	return all
}
