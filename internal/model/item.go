package model

import (
	"encoding/json"
	"strings"

	"github.com/buger/jsonparser"
)

// NoTitle is used when a result item carries no usable title.
const NoTitle = "No title"

// TitleDisplayLimit is the number of characters of a title shown in the grid and in logs.
const TitleDisplayLimit = 50

// titleEllipsis is appended when a title is cut to TitleDisplayLimit.
const titleEllipsis = "..."

// ResultItem is one raw element of the search response's collection.items array.
// The payload is kept as received; the API does not guarantee its shape.
type ResultItem struct {
	Raw json.RawMessage
}

// Entry is the validated view of a ResultItem.
type Entry struct {
	Title    string
	ImageURL string
}

// DisplayTitle returns the title cut for display
func (e Entry) DisplayTitle() string {
	return TruncateTitle(e.Title)
}

// SkipReason explains why a ResultItem cannot be rendered
type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipNoLinksOrData SkipReason = "no_links_or_data"
	SkipNoImageLink   SkipReason = "no_image_link"
)

// Skipped reports whether the reason denotes a skip.
func (sr SkipReason) Skipped() bool {
	return sr != SkipNone
}

// Message returns the log line for the skip.
func (sr SkipReason) Message() string {
	switch sr {
	case SkipNoLinksOrData:
		return "Skipped item: no links or data."
	case SkipNoImageLink:
		return "Skipped item: no image link."
	default:
		return ""
	}
}

// ValidateItem extracts the first link's href and the first data block's title.
// It never fails: anything that cannot be rendered comes back as a SkipReason.
func ValidateItem(item ResultItem) (Entry, SkipReason) {
	if !hasElements(item.Raw, "links") || !hasElements(item.Raw, "data") {
		return Entry{}, SkipNoLinksOrData
	}

	href, err := jsonparser.GetString(item.Raw, "links", "[0]", "href")
	if err != nil || href == "" {
		return Entry{}, SkipNoImageLink
	}

	title, err := jsonparser.GetString(item.Raw, "data", "[0]", "title")
	if err != nil || title == "" {
		title = NoTitle
	}

	return Entry{Title: title, ImageURL: href}, SkipNone
}

// hasElements reports whether key holds a non-empty JSON array.
func hasElements(raw []byte, key string) bool {
	if len(raw) == 0 {
		return false
	}
	_, dataType, _, err := jsonparser.Get(raw, key)
	if err != nil || dataType != jsonparser.Array {
		return false
	}
	_, _, _, err = jsonparser.Get(raw, key, "[0]")
	return err == nil
}

// TruncateTitle cuts s to TitleDisplayLimit characters, marking the cut with an ellipsis.
// Invalid UTF-8 sequences become U+FFFD whether or not the title is cut.
func TruncateTitle(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	runes := []rune(s)
	if len(runes) <= TitleDisplayLimit {
		return s
	}
	return string(runes[:TitleDisplayLimit]) + titleEllipsis
}
