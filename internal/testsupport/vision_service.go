package testsupport

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eliavigram/internal/domain/entity"
	"eliavigram/internal/domain/service"
)

// VisionService is a testify mock of service.VisionService.
type VisionService struct {
	mock.Mock
}

var _ service.VisionService = (*VisionService)(nil)

func (m *VisionService) Caption(ctx context.Context, image []byte, mimeType string) (string, error) {
	args := m.Called(ctx, image, mimeType)
	return args.String(0), args.Error(1)
}

func (m *VisionService) Keywords(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	args := m.Called(ctx, image, mimeType)
	keywords, _ := args.Get(0).([]string)
	return keywords, args.Error(1)
}

func (m *VisionService) Themes(ctx context.Context, photos []entity.StoryCandidate) ([]entity.ThemeGroup, error) {
	args := m.Called(ctx, photos)
	groups, _ := args.Get(0).([]entity.ThemeGroup)
	return groups, args.Error(1)
}
