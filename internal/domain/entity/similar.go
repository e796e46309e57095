package entity

// SimilarPhoto is a photo annotated with its similarity to a target, 0-100.
type SimilarPhoto struct {
	Photo
	SimilarityScore int `json:"similarityScore"`
}

type SimilarResult struct {
	Similar  []SimilarPhoto `json:"similar"`
	Keywords []string       `json:"keywords"`
	Message  string         `json:"message,omitempty"`
}
