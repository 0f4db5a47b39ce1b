package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

// CorrectionFailedResponse tuzatish xizmati ishlamaganda qaytariladi
const CorrectionFailedResponse = "Failed to correct the code."

var ErrEmptyCode = errors.New("no code provided")

// CodeUseCase kodni tuzatish. Dispatcher orqali emas, to'g'ridan-to'g'ri chaqiriladi.
type CodeUseCase interface {
	CorrectCode(ctx context.Context, code string) (string, error)
}

type codeUseCase struct {
	corrector repository.CodeCorrector
	logger    *zap.Logger
}

// NewCodeUseCase yangi CodeUseCase yaratish
func NewCodeUseCase(corrector repository.CodeCorrector, logger *zap.Logger) CodeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &codeUseCase{corrector: corrector, logger: logger}
}

// CorrectCode kodni tuzatish
func (u *codeUseCase) CorrectCode(ctx context.Context, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	corrected, err := u.corrector.Correct(ctx, code)
	if err != nil {
		u.logger.Warn("code correction failed", zap.Error(err))
		return CorrectionFailedResponse, nil
	}
	return corrected, nil
}
