package tweetfinder

import (
	"fmt"
	"strings"

	"github.com/lueurxax/tweet-keeper/internal/common"
)

const (
	excludeRetweets = "exclude:retweets"
	filterMedia     = "filter:media"
	opBuildQuery    = "build query"
)

// Keywords is either a single keyword or a conjunction of keywords.
// The zero value is invalid.
type Keywords struct {
	terms []string
	list  bool
}

// Keyword matches k as a hashtag or as plain text.
func Keyword(k string) Keywords {
	return Keywords{terms: []string{k}}
}

// AllOf requires every keyword to match, each as a hashtag or as plain text.
func AllOf(keywords ...string) Keywords {
	return Keywords{terms: keywords, list: true}
}

// String renders the keyword clause of the query, without validation.
func (k Keywords) String() string {
	clauses := make([]string, len(k.terms))

	for i, term := range k.terms {
		clauses[i] = keywordClause(term, k.list)
	}

	return strings.Join(clauses, " AND ")
}

func keywordClause(term string, list bool) string {
	clause := fmt.Sprintf("#%s OR %s", term, term)
	if list {
		clause = "(" + clause + ")"
	}

	return clause
}

type SearchParams struct {
	MinFaves        int
	MinRetweets     int
	ExcludeRetweets bool
	FilterMedia     bool
	Count           int
}

// BuildQuery renders the search operator string for keywords and params.
func BuildQuery(keywords Keywords, params SearchParams) (string, error) {
	if len(keywords.terms) == 0 {
		return "", common.NewError(common.KindQuery, opBuildQuery, ErrInvalidKeyword)
	}

	clauses := make([]string, len(keywords.terms))

	for i, term := range keywords.terms {
		if strings.TrimSpace(term) == "" {
			return "", common.NewError(common.KindQuery, opBuildQuery, fmt.Errorf("%w: %q", ErrInvalidKeyword, term))
		}

		clauses[i] = keywordClause(term, keywords.list)
	}

	tokens := []string{strings.Join(clauses, " AND ")}

	if params.ExcludeRetweets {
		tokens = append(tokens, excludeRetweets)
	}

	if params.FilterMedia {
		tokens = append(tokens, filterMedia)
	}

	tokens = append(tokens,
		fmt.Sprintf("min_faves:%d", params.MinFaves),
		fmt.Sprintf("min_retweets:%d", params.MinRetweets),
	)

	return strings.Join(tokens, " "), nil
}
