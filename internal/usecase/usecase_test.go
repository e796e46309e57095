package usecase

import (
	"io"
	"os"
	"testing"
	"time"

	"eliavigram/internal/domain/service"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/retry"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func quickRetry() retry.Config {
	return retry.Config{
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		Multiplier:      1,
	}
}

func newTestCaptions(vision service.VisionService) *CaptionGenerator {
	return NewCaptionGenerator(vision, time.Second, quickRetry())
}
