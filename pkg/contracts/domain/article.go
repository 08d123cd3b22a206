package domain

// NewsDocument represents one archived news-wire JSON file.
// Files carry a single top-level list of story items.
type NewsDocument struct {
	Items []RawArticle `json:"Items"`
}

// RawArticle represents a single story record as delivered by the
// news archive. It is immutable input; the pipeline never mutates it.
type RawArticle struct {
	Data       ArticleData       `json:"data"`
	Timestamps []TimestampRecord `json:"timestamps"`
}

// ArticleData holds the nested payload of a story record.
type ArticleData struct {
	Language string   `json:"language"`
	Body     string   `json:"body"`
	Headline string   `json:"headline"`
	Subjects []string `json:"subjects"`
}

// TimestampRecord holds one publication instant for a story.
// The instant is an ISO-8601-like string, optionally suffixed
// with a literal "Z" UTC marker.
type TimestampRecord struct {
	Timestamp string `json:"timestamp"`
}

// FirstInstant returns the instant of the first timestamp record,
// or "" when none is present. Only the first record is meaningful
// for trading-day resolution.
func (a *RawArticle) FirstInstant() string {
	if len(a.Timestamps) == 0 {
		return ""
	}
	return a.Timestamps[0].Timestamp
}
