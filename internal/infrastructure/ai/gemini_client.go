package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/service"
)

const captionPrompt = `You are captioning photos for a baby/toddler photo album app called "Eliavigram".

Look at this photo and generate a SHORT, cute caption (2-5 words max).
The caption should be:
- Sweet and endearing
- Written as if describing a precious moment
- Could be playful, funny, or heartwarming
- NO hashtags, NO emojis, NO punctuation at the end

Examples of good captions:
- "Little explorer at work"
- "Snack time champion"
- "Best nap ever"
- "Future artist"
- "Sandy toes adventure"

Just respond with the caption, nothing else.`

const keywordPrompt = `Describe this photo for similarity search.
Return a JSON array of 5 to 10 short lowercase keywords covering the setting
(indoors, outdoors, beach, park), the activity, the people or animals present,
notable objects, dominant colors and the mood.
Respond with the JSON array only, for example: ["baby","outdoors","grass","happy"]`

const themePrompt = `You curate "stories" for a family photo album. Group the photos below into
2 to 6 themed stories (for example "Outdoor Adventures", "Snack Time", "Bath Time Fun").
Each photo may appear in several stories; a story needs at least 2 photos.
Respond with a JSON array only, each element shaped as
{"title": "...", "subtitle": "...", "emoji": "...", "photoIds": ["..."]}.
Only use ids from this list:
`

var ErrEmptyReply = fmt.Errorf("%w: model returned an empty reply", service.ErrUnusableReply)

type GeminiClient struct {
	client *openai.Client
	model  string
}

// NewGeminiClient talks to Gemini through its OpenAI-compatible endpoint.
func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &GeminiClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

var _ service.VisionService = (*GeminiClient)(nil)

func (g *GeminiClient) Caption(ctx context.Context, image []byte, mimeType string) (string, error) {
	text, err := g.complete(ctx, imageMessage(captionPrompt, image, mimeType))
	if err != nil {
		return "", err
	}

	caption := CleanCaption(text)
	if caption == "" {
		return "", ErrEmptyReply
	}
	return caption, nil
}

func (g *GeminiClient) Keywords(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	text, err := g.complete(ctx, imageMessage(keywordPrompt, image, mimeType))
	if err != nil {
		return nil, err
	}
	return ParseKeywords(text)
}

func (g *GeminiClient) Themes(ctx context.Context, photos []entity.StoryCandidate) ([]entity.ThemeGroup, error) {
	listing, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("failed to encode photo list: %w", err)
	}

	text, err := g.complete(ctx, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: themePrompt + string(listing),
	})
	if err != nil {
		return nil, err
	}
	return ParseThemes(text)
}

func (g *GeminiClient) complete(ctx context.Context, message openai.ChatCompletionMessage) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: []openai.ChatCompletionMessage{message},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func imageMessage(prompt string, image []byte, mimeType string) openai.ChatCompletionMessage {
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)

	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeText,
				Text: prompt,
			},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    dataURL,
					Detail: openai.ImageURLDetailAuto,
				},
			},
		},
	}
}
