package youtube

import (
	"context"
	"fmt"
	"html"
	"strings"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

// musiqa kategoriyasi
const musicCategoryID = "10"

type videoClient struct {
	service *yt.Service
}

// NewVideoClient YouTube Data API orqali video qidiruvchi client
func NewVideoClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (repository.VideoRepository, error) {
	if apiKey != "" {
		opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	}
	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &videoClient{service: service}, nil
}

// Search so'rov bo'yicha musiqa videolarini qidirish
func (c *videoClient) Search(ctx context.Context, query string, maxResults int) ([]entity.Video, error) {
	if maxResults <= 0 {
		maxResults = 1
	}

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(int64(maxResults)).
		Type("video").
		VideoCategoryId(musicCategoryID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	videos := make([]entity.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || strings.TrimSpace(item.Id.VideoId) == "" {
			continue
		}
		title := ""
		if item.Snippet != nil {
			title = html.UnescapeString(item.Snippet.Title)
		}
		videos = append(videos, entity.Video{ID: item.Id.VideoId, Title: title})
	}
	return videos, nil
}
