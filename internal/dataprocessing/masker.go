package dataprocessing

import (
	"fmt"
	"regexp"

	"newswire/internal/config"
)

// Placeholder tokens inserted by the masker.
const (
	DateMask    = "[DATE]"
	TimeMask    = "[TIME]"
	MonthMask   = "[MONTH]"
	YearMask    = "[YEAR]"
	CompanyMask = "[COMPANY]"
)

const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|` +
	`Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const ordinalWords = `(?:first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|` +
	`eleventh|twelfth|thirteenth|fourteenth|fifteenth|sixteenth|seventeenth|` +
	`eighteenth|nineteenth|twentieth|twenty[-\s]first|twenty[-\s]second|` +
	`twenty[-\s]third|twenty[-\s]fourth)`

var (
	numericDateRe = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`)
	clockTimeRe   = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)
	fullDateNumRe = regexp.MustCompile(`(?i)\b` + monthPattern + `\s+\d{1,2}(?:st|nd|rd|th)?\b`)
	fullDateOrdRe = regexp.MustCompile(`(?i)\b` + monthPattern + `\s+` + ordinalWords + `\b`)
	monthNameRe   = regexp.MustCompile(`(?i)\b` + monthPattern + `\b`)
	yearRe        = regexp.MustCompile(`\b(?:19\d{2}|20\d{2})\b`)
)

// MaskNumericDates rewrites numeric date forms such as 12/31/2020,
// 3-1-24 and 2020-12-31 to the date placeholder.
func MaskNumericDates(text string) string {
	return numericDateRe.ReplaceAllString(text, DateMask)
}

// MaskTimes rewrites clock times such as 13:40 and 1:30:45 to the time
// placeholder.
func MaskTimes(text string) string {
	return clockTimeRe.ReplaceAllString(text, TimeMask)
}

// MaskFullDates rewrites month-name dates ("March 3rd", "March third")
// to the date placeholder. It must run before MaskMonths so these are
// not reduced to bare month placeholders.
func MaskFullDates(text string) string {
	text = fullDateNumRe.ReplaceAllString(text, DateMask)
	return fullDateOrdRe.ReplaceAllString(text, DateMask)
}

// MaskMonths rewrites remaining standalone month names to the month
// placeholder.
func MaskMonths(text string) string {
	return monthNameRe.ReplaceAllString(text, MonthMask)
}

// MaskYears rewrites bare four-digit years in [1900,2099] to the year
// placeholder.
func MaskYears(text string) string {
	return yearRe.ReplaceAllString(text, YearMask)
}

// dateStages is the fixed calendar-masking pipeline. Order is a
// contract: each stage's output feeds the next, and the full-date pass
// has to consume month names before the standalone month pass runs.
var dateStages = []func(string) string{
	MaskNumericDates,
	MaskTimes,
	MaskFullDates,
	MaskMonths,
	MaskYears,
}

// MaskDates applies all calendar-related stages in order.
func MaskDates(text string) string {
	for _, stage := range dateStages {
		text = stage(text)
	}
	return text
}

// productMatcher is one compiled product rule.
type productMatcher struct {
	re    *regexp.Regexp
	token string
}

// Masker anonymizes article text using per-ticker rule tables. It is
// built once at startup and is read-only afterwards.
type Masker struct {
	company  map[string]*regexp.Regexp
	products map[string][]productMatcher
}

// NewMasker compiles the given rule tables. All matching is
// case-insensitive. A ticker may omit the company pattern (the literal
// symbol is matched as a whole word instead) and may carry an empty
// product rule list.
func NewMasker(rules map[string]config.TickerRules) (*Masker, error) {
	m := &Masker{
		company:  make(map[string]*regexp.Regexp),
		products: make(map[string][]productMatcher),
	}

	for ticker, tr := range rules {
		if tr.Company != "" {
			re, err := regexp.Compile(`(?i)` + tr.Company)
			if err != nil {
				return nil, fmt.Errorf("company pattern for %s: %w", ticker, err)
			}
			m.company[ticker] = re
		}
		for _, pr := range tr.Products {
			re, err := regexp.Compile(`(?i)` + pr.Pattern)
			if err != nil {
				return nil, fmt.Errorf("product pattern %q for %s: %w", pr.Pattern, ticker, err)
			}
			m.products[ticker] = append(m.products[ticker], productMatcher{re: re, token: pr.Token})
		}
	}

	return m, nil
}

// MaskCompany replaces every match of the ticker's company pattern with
// the company placeholder. Tickers without a configured pattern fall
// back to the literal symbol as a whole word.
func (m *Masker) MaskCompany(text, ticker string) string {
	re, ok := m.company[ticker]
	if !ok {
		re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(ticker) + `\b`)
	}
	return re.ReplaceAllString(text, CompanyMask)
}

// MaskProducts applies the ticker's product rules in declared order.
// Tickers with no product rules pass through unchanged.
func (m *Masker) MaskProducts(text, ticker string) string {
	for _, pm := range m.products[ticker] {
		text = pm.re.ReplaceAllString(text, pm.token)
	}
	return text
}

// Mask runs the complete substitution chain for one ticker: calendar
// stages first, then company, then products.
func (m *Masker) Mask(text, ticker string) string {
	text = MaskDates(text)
	text = m.MaskCompany(text, ticker)
	return m.MaskProducts(text, ticker)
}
