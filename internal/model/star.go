package model

// Star is one starred repository as fetched from the listing endpoint.
// A record is identified by its API-assigned ID, never by position.
type Star struct {
	// ID is the numeric identifier assigned by the API
	ID int64 `json:"id"`

	// Name is the repository name without the owner part
	Name string `json:"name"`

	// Owner is the login of the owning user or organization
	Owner string `json:"owner"`

	// FullName is the owner/name path of the repository
	FullName string `json:"full_name"`

	// HTMLURL is the browser-facing repository URL
	HTMLURL string `json:"html_url"`

	// DefaultBranch locates the README on the raw-content host
	DefaultBranch string `json:"default_branch"`

	// Description is the repository description, empty when unset
	Description string `json:"description"`

	// Readme holds the raw README text. An empty string means the README
	// was fetched and not found; a null value is never stored.
	Readme string `json:"readme"`
}

// Match pairs a star with the text lines a keyword search selected.
// The star itself stays untouched by filtering.
type Match struct {
	Star  Star
	Lines []string
}
