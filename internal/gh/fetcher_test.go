package gh

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestServers runs a fake listing endpoint and a fake raw-content host.
// The listing serves two pages of one repository each and advertises the
// last page through the Link header on page 1.
func newTestServers(t *testing.T) (*httptest.Server, *httptest.Server) {
	t.Helper()

	var api *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/starred", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "" {
			page = "1"
		}

		if page == "1" {
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/users/octocat/starred?per_page=1&page=2>; rel="next", <%s/users/octocat/starred?per_page=1&page=2>; rel="last"`,
				api.URL, api.URL))
		}

		w.Header().Set("Content-Type", "application/json")

		switch page {
		case "1":
			fmt.Fprint(w, `[{"starred_at":"2025-04-01T10:00:00Z","repo":{
				"id": 101,
				"name": "hello",
				"owner": {"login": "octocat"},
				"full_name": "octocat/hello",
				"html_url": "https://github.com/octocat/hello",
				"default_branch": "main",
				"description": "a greeting\nwith two lines"
			}}]`)
		case "2":
			fmt.Fprint(w, `[{"starred_at":"2025-03-01T10:00:00Z","repo":{
				"id": 102,
				"name": "noreadme",
				"owner": {"login": "someone"},
				"full_name": "someone/noreadme",
				"html_url": "https://github.com/someone/noreadme",
				"default_branch": "master",
				"description": null
			}}]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	})

	api = httptest.NewServer(mux)
	t.Cleanup(api.Close)

	raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/octocat/hello/main/README.md" {
			fmt.Fprint(w, "# hello\nworld")

			return
		}

		http.NotFound(w, r)
	}))
	t.Cleanup(raw.Close)

	return api, raw
}

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()

	api, raw := newTestServers(t)

	return NewFetcher(1,
		WithAPIBaseURL(api.URL),
		WithRawBaseURL(raw.URL),
	)
}

func TestFetchPageMapsRecords(t *testing.T) {
	f := newTestFetcher(t)

	stars, lastPage, err := f.FetchPage(context.Background(), "octocat", 1)
	require.NoError(t, err)
	require.Equal(t, 2, lastPage)
	require.Len(t, stars, 1)

	star := stars[0]
	require.Equal(t, int64(101), star.ID)
	require.Equal(t, "hello", star.Name)
	require.Equal(t, "octocat", star.Owner)
	require.Equal(t, "octocat/hello", star.FullName)
	require.Equal(t, "https://github.com/octocat/hello", star.HTMLURL)
	require.Equal(t, "main", star.DefaultBranch)
	require.Equal(t, "a greeting\nwith two lines", star.Description)
	require.Equal(t, "# hello\nworld", star.Readme)
}

func TestFetchPageNormalizesMissingFields(t *testing.T) {
	f := newTestFetcher(t)

	stars, lastPage, err := f.FetchPage(context.Background(), "octocat", 2)
	require.NoError(t, err)

	// Later pages carry no rel="last" link and report a single page;
	// callers only derive pagination from page 1.
	require.Equal(t, 1, lastPage)
	require.Len(t, stars, 1)

	star := stars[0]
	require.Equal(t, int64(102), star.ID)

	// null description and missing README both normalize to empty strings
	require.Equal(t, "", star.Description)
	require.Equal(t, "", star.Readme)
}

func TestFetchPageListingErrorIsFatal(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(api.Close)

	f := NewFetcher(1, WithAPIBaseURL(api.URL))

	_, _, err := f.FetchPage(context.Background(), "octocat", 1)
	require.Error(t, err)
}

func TestWithAPIBaseURL(t *testing.T) {
	f := NewFetcher(1, WithAPIBaseURL("http://localhost:9999"))
	require.Equal(t, "http://localhost:9999/", f.client.BaseURL.String())

	// An unparseable URL keeps the default endpoint instead of being
	// silently dropped with a half-configured client
	f = NewFetcher(1, WithAPIBaseURL("://not-a-url"))
	require.Equal(t, "api.github.com", f.client.BaseURL.Host)
}

func TestFetchReadme(t *testing.T) {
	f := newTestFetcher(t)

	require.Equal(t, "# hello\nworld", f.FetchReadme(context.Background(), "octocat/hello", "main"))

	// Any non-success status means "no README", not an error
	require.Equal(t, "", f.FetchReadme(context.Background(), "octocat/hello", "missing-branch"))
	require.Equal(t, "", f.FetchReadme(context.Background(), "someone/noreadme", "master"))
}
