package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]entity.AssistantProfile
}

func (f *fakeProfiles) Save(ctx context.Context, profile entity.AssistantProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profiles == nil {
		f.profiles = make(map[string]entity.AssistantProfile)
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfiles) Get(ctx context.Context, userID string) (*entity.AssistantProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return &p, nil
}

func TestProfileUseCase_DefaultsWhenMissing(t *testing.T) {
	uc := NewProfileUseCase(&fakeProfiles{})

	p, err := uc.GetProfile(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, "u", p.UserID)
	assert.Equal(t, entity.DefaultAssistantName, p.AssistantName)
	assert.Equal(t, entity.DefaultOwnerName, p.OwnerName)
}

func TestProfileUseCase_UpdatePartial(t *testing.T) {
	uc := NewProfileUseCase(&fakeProfiles{})
	ctx := context.Background()

	p, err := uc.UpdateProfile(ctx, "u", "Jarvis", "")
	require.NoError(t, err)
	assert.Equal(t, "Jarvis", p.AssistantName)
	assert.Equal(t, entity.DefaultOwnerName, p.OwnerName)

	p, err = uc.UpdateProfile(ctx, "u", "", " Tony ")
	require.NoError(t, err)
	assert.Equal(t, "Jarvis", p.AssistantName)
	assert.Equal(t, "Tony", p.OwnerName)

	got, err := uc.GetProfile(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, p.AssistantName, got.AssistantName)
	assert.Equal(t, p.OwnerName, got.OwnerName)

	_, err = uc.UpdateProfile(ctx, "u", " ", "")
	assert.ErrorIs(t, err, ErrEmptyProfile)
}
