package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantEntry Entry
		wantSkip  SkipReason
	}{
		{
			name:      "well formed",
			raw:       `{"links":[{"href":"https://images-assets.nasa.gov/a.jpg"}],"data":[{"title":"Sun"}]}`,
			wantEntry: Entry{Title: "Sun", ImageURL: "https://images-assets.nasa.gov/a.jpg"},
		},
		{
			name:     "no links",
			raw:      `{"data":[{"title":"Sun"}]}`,
			wantSkip: SkipNoLinksOrData,
		},
		{
			name:     "empty links",
			raw:      `{"links":[],"data":[{"title":"Sun"}]}`,
			wantSkip: SkipNoLinksOrData,
		},
		{
			name:     "no data",
			raw:      `{"links":[{"href":"https://x/a.jpg"}]}`,
			wantSkip: SkipNoLinksOrData,
		},
		{
			name:     "links is not an array",
			raw:      `{"links":"https://x/a.jpg","data":[{"title":"Sun"}]}`,
			wantSkip: SkipNoLinksOrData,
		},
		{
			name:     "missing href",
			raw:      `{"links":[{"rel":"preview"}],"data":[{"title":"Sun"}]}`,
			wantSkip: SkipNoImageLink,
		},
		{
			name:     "empty href",
			raw:      `{"links":[{"href":""}],"data":[{"title":"Sun"}]}`,
			wantSkip: SkipNoImageLink,
		},
		{
			name:     "href of wrong type",
			raw:      `{"links":[{"href":42}],"data":[{"title":"Sun"}]}`,
			wantSkip: SkipNoImageLink,
		},
		{
			name:      "missing title",
			raw:       `{"links":[{"href":"https://x/a.jpg"}],"data":[{"nasa_id":"1"}]}`,
			wantEntry: Entry{Title: NoTitle, ImageURL: "https://x/a.jpg"},
		},
		{
			name:     "not an object",
			raw:      `[1,2,3]`,
			wantSkip: SkipNoLinksOrData,
		},
		{
			name:     "garbage",
			raw:      `{"links":[{"href"`,
			wantSkip: SkipNoLinksOrData,
		},
		{
			name:     "empty payload",
			raw:      ``,
			wantSkip: SkipNoLinksOrData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, skip := ValidateItem(ResultItem{Raw: []byte(tt.raw)})
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantEntry, entry)
		})
	}
}

func TestSkipReason_Message(t *testing.T) {
	assert.False(t, SkipNone.Skipped())
	assert.Empty(t, SkipNone.Message())

	assert.True(t, SkipNoLinksOrData.Skipped())
	assert.Contains(t, SkipNoLinksOrData.Message(), "no links or data")

	assert.True(t, SkipNoImageLink.Skipped())
	assert.Contains(t, SkipNoImageLink.Message(), "no image link")
}

func TestTruncateTitle(t *testing.T) {
	exact := strings.Repeat("a", TitleDisplayLimit)
	long := strings.Repeat("b", TitleDisplayLimit+7)
	polish := strings.Repeat("ł", TitleDisplayLimit+1)

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Apollo 11", "Apollo 11"},
		{exact, exact},
		{long, strings.Repeat("b", TitleDisplayLimit) + "..."},
		{polish, strings.Repeat("ł", TitleDisplayLimit) + "..."},
		{"Mars\xffrover", "Mars\uFFFDrover"},
		{"Mars\xff" + long, "Mars\uFFFD" + strings.Repeat("b", TitleDisplayLimit-5) + "..."},
	}

	for _, test := range tests {
		result := TruncateTitle(test.input)
		if result != test.expected {
			t.Errorf("TruncateTitle(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestEntry_DisplayTitle(t *testing.T) {
	entry := Entry{Title: strings.Repeat("x", 60)}
	assert.Equal(t, strings.Repeat("x", 50)+"...", entry.DisplayTitle())
}
