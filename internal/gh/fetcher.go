// Package gh talks to the GitHub listing and raw-content endpoints.
package gh

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/findstar/internal/model"
)

const defaultRawBaseURL = "https://raw.githubusercontent.com"

// Fetcher retrieves pages of starred repositories and resolves each
// repository's README from the raw-content host. Requests are issued
// sequentially; one call completes before the next begins.
type Fetcher struct {
	client     *github.Client
	httpClient *http.Client
	apiBaseURL string
	rawBaseURL string
	perPage    int
	logger     *slog.Logger
}

// Option adjusts a Fetcher, mainly so tests can point it at a local server.
type Option func(*Fetcher)

// WithAPIBaseURL redirects the listing endpoint. A trailing slash is added
// if missing. A URL that fails to parse is reported through the fetcher's
// logger and the default endpoint is kept.
func WithAPIBaseURL(raw string) Option {
	return func(f *Fetcher) {
		f.apiBaseURL = raw
	}
}

// WithRawBaseURL redirects the raw-content host used for READMEs.
func WithRawBaseURL(raw string) Option {
	return func(f *Fetcher) {
		f.rawBaseURL = raw
	}
}

// WithHTTPClient replaces the client used for raw-content requests.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithLogger sets the progress logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher builds a fetcher requesting perPage entries per listing call.
func NewFetcher(perPage int, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:     github.NewClient(nil),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		rawBaseURL: defaultRawBaseURL,
		perPage:    perPage,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.apiBaseURL != "" {
		parsed, err := url.Parse(f.apiBaseURL)
		if err != nil {
			f.logger.Warn("invalid API base URL, keeping default",
				slog.String("url", f.apiBaseURL),
				slog.String("error", err.Error()),
			)

			return f
		}

		if parsed.Path == "" || parsed.Path[len(parsed.Path)-1] != '/' {
			parsed.Path += "/"
		}

		f.client.BaseURL = parsed
	}

	return f
}

// FetchPage retrieves one page of the user's starred repositories and maps
// each entry into a Star, resolving the README per repository. The returned
// last-page index comes from the response's rel="last" link; responses
// without one report 1. Callers derive pagination from page 1 only.
//
// A listing failure is fatal and propagates; a README failure degrades to an
// empty README for that record alone.
func (f *Fetcher) FetchPage(ctx context.Context, user string, page int) ([]model.Star, int, error) {
	opt := &github.ActivityListStarredOptions{
		ListOptions: github.ListOptions{PerPage: f.perPage, Page: page},
	}

	starred, resp, err := f.client.Activity.ListStarred(ctx, user, opt)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list starred repositories for %s (page %d): %w", user, page, err)
	}

	lastPage := resp.LastPage
	if lastPage == 0 {
		lastPage = 1
	}

	stars := make([]model.Star, 0, len(starred))

	for _, sr := range starred {
		repo := sr.GetRepository()

		star := model.Star{
			ID:            repo.GetID(),
			Name:          repo.GetName(),
			Owner:         repo.GetOwner().GetLogin(),
			FullName:      repo.GetFullName(),
			HTMLURL:       repo.GetHTMLURL(),
			DefaultBranch: repo.GetDefaultBranch(),
			Description:   repo.GetDescription(),
		}

		f.logger.Info("fetching README", slog.String("repo", star.FullName))
		star.Readme = f.FetchReadme(ctx, star.FullName, star.DefaultBranch)

		stars = append(stars, star)
	}

	return stars, lastPage, nil
}

// FetchReadme downloads the raw README for a repository. Any failure,
// including a missing README, degrades to an empty string: "no README" is
// not an error.
func (f *Fetcher) FetchReadme(ctx context.Context, fullName, branch string) string {
	endpoint := fmt.Sprintf("%s/%s/%s/README.md", f.rawBaseURL, fullName, branch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return ""
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	return string(body)
}
