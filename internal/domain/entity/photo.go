package entity

import (
	"strings"
	"time"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// TimestampLayout matches JavaScript's Date.toISOString so records written by
// older clients sort together with ours.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts any RFC 3339 value. The zero time is returned for
// anything else.
func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Comment is a single remark left on a photo. Author is a display name, not a user id.
type Comment struct {
	ID               string `json:"id" firestore:"id"`
	Text             string `json:"text" firestore:"text"`
	Author           string `json:"author" firestore:"author"`
	AuthorProfilePic string `json:"authorProfilePic,omitempty" firestore:"authorProfilePic,omitempty"`
	CreatedAt        string `json:"createdAt" firestore:"createdAt"`
}

// Like is keyed by UserName. UserProfilePic is snapshotted at like time.
type Like struct {
	UserName       string `json:"userName" firestore:"userName"`
	UserProfilePic string `json:"userProfilePic,omitempty" firestore:"userProfilePic,omitempty"`
	CreatedAt      string `json:"createdAt" firestore:"createdAt"`
}

type Photo struct {
	ID           string    `json:"id" firestore:"-"`
	Filename     string    `json:"filename" firestore:"filename"`
	OriginalName string    `json:"originalName" firestore:"originalName"`
	MediaType    MediaType `json:"mediaType" firestore:"mediaType"`
	Caption      string    `json:"caption" firestore:"caption"`
	UploadedAt   string    `json:"uploadedAt" firestore:"uploadedAt"`
	Rotation     float64   `json:"rotation" firestore:"rotation"`
	ImageURL     string    `json:"imageUrl" firestore:"imageUrl"`
	// Comment is the pre multi-comment field, kept in sync with the newest comment.
	Comment  *Comment  `json:"comment,omitempty" firestore:"comment,omitempty"`
	Comments []Comment `json:"comments" firestore:"comments"`
	Likes    []Like    `json:"likes" firestore:"likes"`
}

func (p *Photo) IsVideo() bool {
	return p.MediaType == MediaTypeVideo
}

func (p *Photo) UploadedTime() time.Time {
	t, _ := ParseTimestamp(p.UploadedAt)
	return t
}

func (c Comment) CreatedTime() time.Time {
	t, _ := ParseTimestamp(c.CreatedAt)
	return t
}

// LikeIndex returns the position of userName's like, or -1.
func (p *Photo) LikeIndex(userName string) int {
	for i, like := range p.Likes {
		if like.UserName == userName {
			return i
		}
	}
	return -1
}

func (p *Photo) IsLikedBy(userName string) bool {
	return p.LikeIndex(userName) >= 0
}

// AllComments returns the multi-comment list, falling back to the legacy single
// comment for records that predate it.
func (p *Photo) AllComments() []Comment {
	if len(p.Comments) > 0 {
		return p.Comments
	}
	if p.Comment != nil {
		legacy := *p.Comment
		legacy.ID = "legacy-" + p.ID
		return []Comment{legacy}
	}
	return []Comment{}
}

// Clone returns a deep copy so callers can mutate slices without aliasing stored state.
func (p *Photo) Clone() *Photo {
	cp := *p
	if p.Comment != nil {
		c := *p.Comment
		cp.Comment = &c
	}
	cp.Comments = append([]Comment{}, p.Comments...)
	cp.Likes = append([]Like{}, p.Likes...)
	return &cp
}

// Document is the persisted shape of the photo. The id is the document key and is
// not duplicated in the body.
func (p *Photo) Document() map[string]interface{} {
	doc := map[string]interface{}{
		"filename":     p.Filename,
		"originalName": p.OriginalName,
		"mediaType":    string(p.MediaType),
		"caption":      p.Caption,
		"uploadedAt":   p.UploadedAt,
		"rotation":     p.Rotation,
		"imageUrl":     p.ImageURL,
		"comments":     p.Comments,
		"likes":        p.Likes,
	}
	if p.Comment != nil {
		doc["comment"] = p.Comment
	}
	return doc
}

func IsImageMIME(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

func IsVideoMIME(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/")
}
