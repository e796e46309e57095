package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"eliavigram/internal/adapter/api/middleware"
	"eliavigram/internal/domain/entity"
	"eliavigram/internal/usecase"
	"eliavigram/pkg/errors"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/response"
)

const (
	ActionAddComment = "add_comment"
	ActionToggleLike = "toggle_like"

	anonymousAuthor = "Anonymous"
)

type PhotoHandler struct {
	photoUseCase      *usecase.PhotoUseCase
	engagementUseCase *usecase.EngagementUseCase
	similarityUseCase *usecase.SimilarityUseCase
	maxUploadBytes    int64
}

func NewPhotoHandler(
	photoUseCase *usecase.PhotoUseCase,
	engagementUseCase *usecase.EngagementUseCase,
	similarityUseCase *usecase.SimilarityUseCase,
	maxUploadBytes int64,
) *PhotoHandler {
	return &PhotoHandler{
		photoUseCase:      photoUseCase,
		engagementUseCase: engagementUseCase,
		similarityUseCase: similarityUseCase,
		maxUploadBytes:    maxUploadBytes,
	}
}

func (h *PhotoHandler) ListPhotos(c echo.Context) error {
	photos, err := h.photoUseCase.ListPhotos(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list photos: %v", err)
		return response.Success(c, []*entity.Photo{})
	}

	return response.Success(c, photos)
}

type skippedUpload struct {
	Skipped  bool   `json:"skipped"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

func (h *PhotoHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		logger.Debug("Upload without file: %v", err)
		return response.Error(c, errors.BadRequest("No file provided", err))
	}

	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxUploadBytes)
		return response.Error(c, errors.BadRequest(
			fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxUploadBytes/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read file", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read file", err))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, len(data), file.Header.Get("Content-Type"))

	result, err := h.photoUseCase.Upload(c.Request().Context(), usecase.UploadInput{
		OriginalName: file.Filename,
		ContentType:  file.Header.Get("Content-Type"),
		Data:         data,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if result.Skipped {
		return response.Success(c, skippedUpload{
			Skipped:  true,
			Filename: file.Filename,
			Message:  "Duplicate photo skipped",
		})
	}

	return response.Created(c, result.Photo)
}

func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	if err := h.photoUseCase.DeletePhoto(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c)
}

type commentRequest struct {
	ID               string `json:"id"`
	Text             string `json:"text" validate:"required,max=2000"`
	Author           string `json:"author" validate:"max=100"`
	AuthorProfilePic string `json:"authorProfilePic"`
	CreatedAt        string `json:"createdAt"`
}

// patchPhotoRequest covers every PATCH body shape; which fields are present
// decides the operation.
type patchPhotoRequest struct {
	Action         string          `json:"action" validate:"omitempty,oneof=add_comment toggle_like"`
	Comment        *commentRequest `json:"comment"`
	Caption        *string         `json:"caption"`
	UserName       string          `json:"userName" validate:"max=100"`
	UserProfilePic string          `json:"userProfilePic"`
}

type commentResult struct {
	Success bool          `json:"success"`
	Photo   *entity.Photo `json:"photo"`
}

type likeResult struct {
	Success bool          `json:"success"`
	Liked   bool          `json:"liked"`
	Photo   *entity.Photo `json:"photo"`
}

func (h *PhotoHandler) PatchPhoto(c echo.Context) error {
	var req patchPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	session := middleware.SessionFrom(c)

	switch req.Action {
	case ActionAddComment:
		if req.Comment == nil {
			return response.Error(c, errors.BadRequest("comment is required", nil))
		}
		photo, err := h.engagementUseCase.AddComment(ctx, id, toComment(req.Comment, session))
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, commentResult{Success: true, Photo: photo})

	case ActionToggleLike:
		userName := strings.TrimSpace(req.UserName)
		profilePic := req.UserProfilePic
		if userName == "" {
			userName = session.UserName
			profilePic = session.ProfilePicURL
		}
		result, err := h.engagementUseCase.ToggleLike(ctx, id, userName, profilePic)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, likeResult{Success: true, Liked: result.Liked, Photo: result.Photo})
	}

	switch {
	case req.Caption != nil:
		if err := h.photoUseCase.UpdateCaption(ctx, id, *req.Caption); err != nil {
			return response.Error(c, err)
		}
		return response.OK(c)

	case req.Comment != nil:
		if err := h.engagementUseCase.SetComment(ctx, id, toComment(req.Comment, session)); err != nil {
			return response.Error(c, err)
		}
		return response.OK(c)
	}

	return response.Error(c, errors.BadRequest("Unsupported photo update", nil))
}

func toComment(req *commentRequest, session entity.Session) entity.Comment {
	comment := entity.Comment{
		ID:               req.ID,
		Text:             req.Text,
		Author:           strings.TrimSpace(req.Author),
		AuthorProfilePic: req.AuthorProfilePic,
		CreatedAt:        req.CreatedAt,
	}
	if comment.Author == "" {
		comment.Author = session.UserName
		if comment.AuthorProfilePic == "" {
			comment.AuthorProfilePic = session.ProfilePicURL
		}
	}
	if comment.Author == "" {
		comment.Author = anonymousAuthor
	}
	return comment
}

func (h *PhotoHandler) SimilarPhotos(c echo.Context) error {
	result, err := h.similarityUseCase.FindSimilar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *PhotoHandler) BackfillCaptions(c echo.Context) error {
	report, err := h.photoUseCase.BackfillCaptions(c.Request().Context())
	if err != nil {
		logger.Error("Caption backfill failed: %v", err)
		return response.Error(c, errors.Internal("Failed to backfill captions", err))
	}

	return c.JSON(http.StatusOK, report)
}
