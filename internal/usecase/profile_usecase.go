package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

var ErrEmptyProfile = errors.New("assistant name or owner name required")

// ProfileUseCase yordamchi profili bilan bog'liq business logic
type ProfileUseCase interface {
	// GetProfile profilni olish, saqlanmagan bo'lsa standart qiymatlar
	GetProfile(ctx context.Context, userID string) (entity.AssistantProfile, error)

	// UpdateProfile bo'sh bo'lmagan maydonlarni yangilash
	UpdateProfile(ctx context.Context, userID, assistantName, ownerName string) (entity.AssistantProfile, error)
}

type profileUseCase struct {
	profileRepo repository.ProfileRepository
}

// NewProfileUseCase yangi ProfileUseCase yaratish
func NewProfileUseCase(profileRepo repository.ProfileRepository) ProfileUseCase {
	return &profileUseCase{profileRepo: profileRepo}
}

// GetProfile profilni olish
func (u *profileUseCase) GetProfile(ctx context.Context, userID string) (entity.AssistantProfile, error) {
	profile, err := u.profileRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return entity.AssistantProfile{UserID: userID}.WithDefaults(), nil
	}
	if err != nil {
		return entity.AssistantProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile.WithDefaults(), nil
}

// UpdateProfile profilni yangilash
func (u *profileUseCase) UpdateProfile(ctx context.Context, userID, assistantName, ownerName string) (entity.AssistantProfile, error) {
	assistantName = strings.TrimSpace(assistantName)
	ownerName = strings.TrimSpace(ownerName)
	if assistantName == "" && ownerName == "" {
		return entity.AssistantProfile{}, ErrEmptyProfile
	}

	current, err := u.GetProfile(ctx, userID)
	if err != nil {
		return entity.AssistantProfile{}, err
	}
	if assistantName != "" {
		current.AssistantName = assistantName
	}
	if ownerName != "" {
		current.OwnerName = ownerName
	}
	current.UpdatedAt = time.Now()

	if err := u.profileRepo.Save(ctx, current); err != nil {
		return entity.AssistantProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return current, nil
}
