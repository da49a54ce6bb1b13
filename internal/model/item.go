package model

import "strings"

// CatalogItem represents a single confectionery entry as returned by the API.
// Every field is optional on the wire; an absent key simply decodes to "".
type CatalogItem struct {
	Name  string `json:"name"`  // display name of the sweet
	URL   string `json:"url"`   // detail page link
	Image string `json:"image"` // thumbnail link
}

// CatalogFeed represents the top-level API response document.
type CatalogFeed struct {
	Items []CatalogItem `json:"item"`
}

// Displayable returns true when the item carries everything the list needs:
// a name, a detail URL, and a thumbnail.
func (ci CatalogItem) Displayable() bool {
	return ci.Name != "" && ci.URL != "" && ci.Image != ""
}

// MatchesSearch reports whether the item's name contains the query as a
// case-insensitive substring. An empty query matches every item.
func (ci CatalogItem) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ci.Name), strings.ToLower(query))
}

// GetDisplayTitle returns the name, falling back to the detail URL so logs
// and placeholder rows never show an empty string.
func (ci CatalogItem) GetDisplayTitle() string {
	if ci.Name != "" {
		return ci.Name
	}
	return ci.URL
}
