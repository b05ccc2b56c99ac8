package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/nasa-images/internal/failure"
	"github.com/ytget/nasa-images/internal/model"
)

type stubSearcher struct {
	items []model.ResultItem
	err   error
}

func (s *stubSearcher) Search(context.Context, string) ([]model.ResultItem, error) {
	return s.items, s.err
}

func rawItem(raw string) model.ResultItem {
	return model.ResultItem{Raw: []byte(raw)}
}

func TestRunSearch_PrintsBlocks(t *testing.T) {
	client := &stubSearcher{items: []model.ResultItem{
		rawItem(`{"data":[{"title":"Sun"}],"links":[{"href":"https://a/sun.jpg"}]}`),
		rawItem(`{"data":[{}],"links":[{}]}`),
		rawItem(`{"links":[{"href":"https://a/only-link.jpg"}]}`),
	}}

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), client, "sun", 5, false, &out))

	rule := strings.Repeat("-", 40)
	want := strings.Join([]string{
		"Title: Sun",
		"Link: https://a/sun.jpg",
		rule,
		"Title: No title",
		"Link: No link",
		rule,
		"Link: https://a/only-link.jpg",
		rule,
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRunSearch_Limit(t *testing.T) {
	items := make([]model.ResultItem, 8)
	for i := range items {
		items[i] = rawItem(fmt.Sprintf(`{"data":[{"title":"T%d"}]}`, i))
	}

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &stubSearcher{items: items}, "x", 3, false, &out))

	assert.Equal(t, 3, strings.Count(out.String(), "Title: "))
	assert.NotContains(t, out.String(), "T3")
}

func TestRunSearch_NoResults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &stubSearcher{}, "nothing", 5, false, &out))
	assert.Equal(t, NoResultsText+"\n", out.String())
}

func TestRunSearch_Failure(t *testing.T) {
	client := &stubSearcher{err: failure.MarkRequest(failure.NewStatusError(http.StatusBadRequest, "u"))}

	var out bytes.Buffer
	err := runSearch(context.Background(), client, "sun", 5, false, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSearchFailed))
	assert.Equal(t, "HTTP error while searching: 400 - Bad Request\n", out.String())
}

func TestRunSearch_EmptyQuery(t *testing.T) {
	var out bytes.Buffer
	err := runSearch(context.Background(), &stubSearcher{}, "   ", 5, false, &out)
	assert.True(t, errors.Is(err, ErrSearchFailed))
	assert.Equal(t, "Error: enter a search query.\n", out.String())
}

func TestRunSearch_JSON(t *testing.T) {
	client := &stubSearcher{items: []model.ResultItem{
		rawItem(`{"data":[{"title":"Moon"}],"links":[{"href":"https://a/moon.jpg"}]}`),
	}}

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), client, "moon", 5, true, &out))
	assert.JSONEq(t, `[{"title":"Moon","link":"https://a/moon.jpg"}]`, out.String())
}

func TestPromptQuery(t *testing.T) {
	var out bytes.Buffer
	query, err := promptQuery(strings.NewReader("  black hole \n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "black hole", query)
	assert.Equal(t, QueryPrompt, out.String())

	query, err = promptQuery(strings.NewReader("no newline"), &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", query)
}

func TestSearchCommand_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "apollo 11", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"collection":{"items":[
			{"data":[{"title":"Apollo 11 Launch"}],"links":[{"href":"https://a/launch.jpg"}]},
			{"data":[{"title":"Moon Walk"}],"links":[{"href":"https://a/walk.jpg"}]}
		]}}`))
	}))
	defer server.Close()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"search", "--api-url", server.URL, "--limit", "1", "apollo", "11"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Title: Apollo 11 Launch")
	assert.NotContains(t, out.String(), "Moon Walk")
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "nasa-search "+Version)
}
