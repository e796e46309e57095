package entity

import (
	"fmt"
	"time"
)

// NormalizePhoto converts a raw stored document into a Photo. Documents written
// by older clients may lack mediaType, comments or likes, store rotation as an
// integer, carry native timestamps instead of ISO strings, or hold likes and
// comments as bare strings.
func NormalizePhoto(id string, raw map[string]interface{}) (*Photo, error) {
	if id == "" {
		return nil, fmt.Errorf("photo document has no id")
	}

	photo := &Photo{
		ID:           id,
		Filename:     stringField(raw, "filename"),
		OriginalName: stringField(raw, "originalName"),
		MediaType:    MediaType(stringField(raw, "mediaType")),
		Caption:      stringField(raw, "caption"),
		UploadedAt:   timeField(raw, "uploadedAt"),
		Rotation:     numberField(raw, "rotation"),
		ImageURL:     stringField(raw, "imageUrl"),
		Comments:     []Comment{},
		Likes:        []Like{},
	}

	if photo.MediaType != MediaTypeVideo {
		photo.MediaType = MediaTypeImage
	}

	switch v := raw["comment"].(type) {
	case map[string]interface{}:
		c := commentFrom(v)
		photo.Comment = &c
	case string:
		if v != "" {
			photo.Comment = &Comment{Text: v}
		}
	}

	if list, ok := raw["comments"].([]interface{}); ok {
		for i, item := range list {
			switch v := item.(type) {
			case map[string]interface{}:
				photo.Comments = append(photo.Comments, commentFrom(v))
			case string:
				photo.Comments = append(photo.Comments, Comment{
					ID:   fmt.Sprintf("legacy-%s-%d", id, i),
					Text: v,
				})
			}
		}
	}

	if list, ok := raw["likes"].([]interface{}); ok {
		seen := make(map[string]bool, len(list))
		for _, item := range list {
			var like Like
			switch v := item.(type) {
			case map[string]interface{}:
				like = Like{
					UserName:       stringField(v, "userName"),
					UserProfilePic: stringField(v, "userProfilePic"),
					CreatedAt:      timeField(v, "createdAt"),
				}
			case string:
				like = Like{UserName: v}
			}
			if like.UserName == "" || seen[like.UserName] {
				continue
			}
			seen[like.UserName] = true
			photo.Likes = append(photo.Likes, like)
		}
	}

	return photo, nil
}

func commentFrom(m map[string]interface{}) Comment {
	return Comment{
		ID:               stringField(m, "id"),
		Text:             stringField(m, "text"),
		Author:           stringField(m, "author"),
		AuthorProfilePic: stringField(m, "authorProfilePic"),
		CreatedAt:        timeField(m, "createdAt"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func timeField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case time.Time:
		return Timestamp(v)
	}
	return ""
}

func numberField(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
