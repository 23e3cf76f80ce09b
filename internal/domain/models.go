package domain

// Domain contains core models and interfaces.

// Article is a single news link discovered on a listing page.
type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}
