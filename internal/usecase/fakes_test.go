package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

type fakeNLU struct {
	mu      sync.Mutex
	raw     string
	err     error
	prompts []string
}

func (f *fakeNLU) Infer(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.raw, f.err
}

func (f *fakeNLU) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

type fakeVideos struct {
	block      bool
	videos     []entity.Video
	err        error
	calls      int
	lastQuery  string
	lastMaxRes int
}

func (f *fakeVideos) Search(ctx context.Context, query string, maxResults int) ([]entity.Video, error) {
	f.calls++
	f.lastQuery = query
	f.lastMaxRes = maxResults
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.videos, f.err
}

type fakeHistory struct {
	mu        sync.Mutex
	items     map[string][]entity.Exchange
	appendErr error
	listErr   error
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{items: make(map[string][]entity.Exchange)}
}

func (f *fakeHistory) Append(ctx context.Context, exchange entity.Exchange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.items[exchange.UserID] = append(f.items[exchange.UserID], exchange)
	return nil
}

func (f *fakeHistory) List(ctx context.Context, userID string) ([]entity.Exchange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.Exchange(nil), f.items[userID]...), nil
}

func (f *fakeHistory) Clear(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, userID)
	return nil
}

// fixedRand har doim bir xil indeksni qaytaradi
type fixedRand struct {
	index int
	calls []int
}

func (r *fixedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if r.index >= n {
		return n - 1
	}
	return r.index
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
