package entity

// StoryTheme is a themed grouping of photos browsed one after another.
type StoryTheme struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Emoji    string   `json:"emoji"`
	PhotoIDs []string `json:"photoIds"`
	Gradient string   `json:"gradient"`
}

// StoryCandidate is what the theme model sees of a photo.
type StoryCandidate struct {
	ID         string `json:"id"`
	Caption    string `json:"caption,omitempty"`
	UploadedAt string `json:"uploadedAt"`
}

// ThemeGroup is a raw grouping proposed by the theme model, before validation.
type ThemeGroup struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Emoji    string   `json:"emoji"`
	PhotoIDs []string `json:"photoIds"`
}
