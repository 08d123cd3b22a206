package dataprocessing

import (
	"strings"

	"newswire/pkg/contracts/domain"
)

// tickerRefPrefix marks subject codes that reference an equity ticker,
// e.g. "R:MSFT.O".
const tickerRefPrefix = "R:"

// Universe is a fixed set of ticker symbols. Membership defines whether
// an (article, ticker) pair is in scope.
type Universe map[string]struct{}

// NewUniverse builds a Universe from a symbol list.
func NewUniverse(symbols []string) Universe {
	u := make(Universe, len(symbols))
	for _, s := range symbols {
		u[s] = struct{}{}
	}
	return u
}

// Contains reports whether the symbol is a universe member.
func (u Universe) Contains(symbol string) bool {
	_, ok := u[symbol]
	return ok
}

// ExtractTickers pulls ticker symbols out of subject codes. A code
// counts only if it begins with the reference-marker prefix; the symbol
// is the leading run of uppercase letters after the prefix, stopping at
// the first non-letter (exchange suffixes like ".O" are dropped).
func ExtractTickers(subjects []string) []string {
	var tickers []string
	for _, subj := range subjects {
		if !strings.HasPrefix(subj, tickerRefPrefix) {
			continue
		}
		raw := subj[len(tickerRefPrefix):]
		end := 0
		for end < len(raw) && raw[end] >= 'A' && raw[end] <= 'Z' {
			end++
		}
		if end > 0 {
			tickers = append(tickers, raw[:end])
		}
	}
	return tickers
}

// SelectTickers returns the article's extracted tickers restricted to
// universe membership. Duplicates are preserved; aggregator-level text
// dedup absorbs any double processing they cause.
func SelectTickers(article *domain.RawArticle, universe Universe) []string {
	var selected []string
	for _, ticker := range ExtractTickers(article.Data.Subjects) {
		if universe.Contains(ticker) {
			selected = append(selected, ticker)
		}
	}
	return selected
}

// InScope reports whether an article qualifies for processing: the
// configured language (case-insensitive), a non-empty body, at least
// one universe ticker, and a first timestamp record with a non-empty
// instant.
func InScope(article *domain.RawArticle, language string, universe Universe) bool {
	if !strings.EqualFold(article.Data.Language, language) {
		return false
	}
	if strings.TrimSpace(article.Data.Body) == "" {
		return false
	}
	if len(SelectTickers(article, universe)) == 0 {
		return false
	}
	return article.FirstInstant() != ""
}
