package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/service"
)

var (
	wrappingQuotes = regexp.MustCompile(`^["']|["']$`)
	codeFence      = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
)

// CleanCaption trims the model reply and strips a single wrapping quote at either end.
func CleanCaption(text string) string {
	return strings.TrimSpace(wrappingQuotes.ReplaceAllString(strings.TrimSpace(text), ""))
}

// StripCodeFence removes a Markdown code fence around a JSON reply, if present.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFence.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// ParseKeywords decodes a JSON array of strings, optionally fenced.
func ParseKeywords(text string) ([]string, error) {
	var raw []string
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed keyword reply: %w", service.ErrUnusableReply, err)
	}

	keywords := make([]string, 0, len(raw))
	for _, k := range raw {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords, nil
}

// ParseThemes decodes the story grouping reply. Both a bare array and an object
// with a "stories" array are accepted.
func ParseThemes(text string) ([]entity.ThemeGroup, error) {
	body := []byte(StripCodeFence(text))

	var groups []entity.ThemeGroup
	if err := json.Unmarshal(body, &groups); err == nil {
		return groups, nil
	}

	var wrapped struct {
		Stories []entity.ThemeGroup `json:"stories"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: malformed story reply: %w", service.ErrUnusableReply, err)
	}
	return wrapped.Stories, nil
}
