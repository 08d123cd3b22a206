package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newswire/pkg/contracts/domain"
)

func TestExtractTickers(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		want     []string
	}{
		{
			name:     "exchange suffix stripped",
			subjects: []string{"R:AAPL.O", "R:XYZ"},
			want:     []string{"AAPL", "XYZ"},
		},
		{
			name:     "non reference codes ignored",
			subjects: []string{"N2:US", "M:1QD", "R:MSFT.O"},
			want:     []string{"MSFT"},
		},
		{
			name:     "duplicates preserved",
			subjects: []string{"R:AAPL.O", "R:AAPL.N"},
			want:     []string{"AAPL", "AAPL"},
		},
		{
			name:     "no leading uppercase run yields nothing",
			subjects: []string{"R:123", "R:.O"},
			want:     nil,
		},
		{
			name:     "empty subjects",
			subjects: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTickers(tt.subjects))
		})
	}
}

func TestSelectTickers(t *testing.T) {
	universe := NewUniverse([]string{"AAPL", "MSFT"})

	article := &domain.RawArticle{
		Data: domain.ArticleData{
			Subjects: []string{"R:AAPL.O", "R:XYZ", "R:MSFT.O", "R:AAPL.N"},
		},
	}

	assert.Equal(t, []string{"AAPL", "MSFT", "AAPL"}, SelectTickers(article, universe))
}

func qualifyingArticle() domain.RawArticle {
	return domain.RawArticle{
		Data: domain.ArticleData{
			Language: "en",
			Body:     "Apple shares rose today.",
			Headline: "Apple rises",
			Subjects: []string{"R:AAPL.O"},
		},
		Timestamps: []domain.TimestampRecord{{Timestamp: "2024-03-01T21:05:00Z"}},
	}
}

func TestInScope(t *testing.T) {
	universe := NewUniverse([]string{"AAPL"})

	tests := []struct {
		name   string
		mutate func(a *domain.RawArticle)
		want   bool
	}{
		{"qualifying article", func(a *domain.RawArticle) {}, true},
		{"language compared case-insensitively", func(a *domain.RawArticle) { a.Data.Language = "EN" }, true},
		{"wrong language", func(a *domain.RawArticle) { a.Data.Language = "de" }, false},
		{"empty body", func(a *domain.RawArticle) { a.Data.Body = "" }, false},
		{"whitespace body", func(a *domain.RawArticle) { a.Data.Body = "   \n\t" }, false},
		{"no universe ticker", func(a *domain.RawArticle) { a.Data.Subjects = []string{"R:XYZ"} }, false},
		{"no subjects", func(a *domain.RawArticle) { a.Data.Subjects = nil }, false},
		{"no timestamps", func(a *domain.RawArticle) { a.Timestamps = nil }, false},
		{"empty instant", func(a *domain.RawArticle) { a.Timestamps = []domain.TimestampRecord{{Timestamp: ""}} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := qualifyingArticle()
			tt.mutate(&article)
			assert.Equal(t, tt.want, InScope(&article, "en", universe))
		})
	}
}
