package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

const (
	maxInFlight = 3                      // bir vaqtda 3 ta so'rovdan oshirma
	minInterval = 350 * time.Millisecond // minimal interval
)

// Client Gemini bilan ishlovchi yagona client: NLU va kod tuzatish modellari
type Client struct {
	client  *genai.Client
	nlu     *genai.GenerativeModel
	coder   *genai.GenerativeModel
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

// NewClient yangi Gemini AI client yaratish
func NewClient(ctx context.Context, apiKey, modelName string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:  client,
		nlu:     newNLUModel(client, modelName),
		coder:   newCoderModel(client, modelName),
		sem:     semaphore.NewWeighted(maxInFlight),
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}, nil
}

// generate throttling bilan bitta so'rov yuborish
func (c *Client) generate(ctx context.Context, model *genai.GenerativeModel, text string) (string, error) {
	release, err := c.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	resp, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	return extractText(resp), nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

func (c *Client) acquire(ctx context.Context) (func(), error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		c.sem.Release(1)
		return nil, err
	}
	return func() {
		c.sem.Release(1)
	}, nil
}

// Close client ni yopish
func (c *Client) Close() error {
	return c.client.Close()
}
