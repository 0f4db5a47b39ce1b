package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

// DefaultContextWindowSize kontekstga kiradigan yaroqli yozuvlar soni
const DefaultContextWindowSize = 5

// SelectContextWindow oxirgi n ta yaroqli yozuvni eski->yangi tartibda tanlash.
// Yaroqsiz yozuvlar n ga hisoblanmaydi.
func SelectContextWindow(history []entity.Exchange, n int) []entity.Exchange {
	if n <= 0 {
		return nil
	}

	window := make([]entity.Exchange, 0, n)
	for i := len(history) - 1; i >= 0 && len(window) < n; i-- {
		if history[i].IsValid() {
			window = append(window, history[i])
		}
	}

	// Reverse to ASC to keep eski->yangi tartib
	for i, j := 0, len(window)-1; i < j; i, j = i+1, j-1 {
		window[i], window[j] = window[j], window[i]
	}
	return window
}

// BuildContextWindow kontekst oynasini "Q: ...\nA: ..." qatorlari sifatida chiqarish
func BuildContextWindow(history []entity.Exchange, n int) string {
	window := SelectContextWindow(history, n)
	if len(window) == 0 {
		return ""
	}

	lines := make([]string, 0, len(window))
	for _, ex := range window {
		lines = append(lines, fmt.Sprintf("Q: %s\nA: %s", ex.Question, ex.Answer))
	}
	return strings.Join(lines, "\n")
}
