package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

func qa(q, a string) entity.Exchange {
	return entity.Exchange{Question: q, Answer: a}
}

func TestBuildContextWindow_Empty(t *testing.T) {
	assert.Equal(t, "", BuildContextWindow(nil, 5))
	assert.Equal(t, "", BuildContextWindow([]entity.Exchange{qa("", "a"), qa("q", "")}, 5))
}

func TestBuildContextWindow_Format(t *testing.T) {
	got := BuildContextWindow([]entity.Exchange{qa("hi", "hello"), qa("how are you", "fine")}, 5)
	assert.Equal(t, "Q: hi\nA: hello\nQ: how are you\nA: fine", got)
}

func TestBuildContextWindow_KeepsLastFiveOldestFirst(t *testing.T) {
	var history []entity.Exchange
	for i := 1; i <= 8; i++ {
		history = append(history, qa(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i)))
	}

	window := SelectContextWindow(history, 5)
	assert.Len(t, window, 5)
	assert.Equal(t, "q4", window[0].Question)
	assert.Equal(t, "q8", window[4].Question)

	text := BuildContextWindow(history, 5)
	assert.Equal(t, 5, strings.Count(text, "Q: "))
	assert.True(t, strings.HasPrefix(text, "Q: q4\nA: a4"))
	assert.True(t, strings.HasSuffix(text, "Q: q8\nA: a8"))
}

func TestBuildContextWindow_InvalidDoNotConsumeSlots(t *testing.T) {
	history := []entity.Exchange{
		qa("q1", "a1"),
		qa("q2", "a2"),
		qa("q3", "a3"),
		qa("q4", "a4"),
		qa("", "orphan answer"),
		qa("q5", "a5"),
		qa("lost question", "  "),
		qa("q6", "a6"),
		qa("q7", "a7"),
	}

	window := SelectContextWindow(history, 5)
	assert.Len(t, window, 5)
	questions := make([]string, 0, len(window))
	for _, ex := range window {
		questions = append(questions, ex.Question)
	}
	assert.Equal(t, []string{"q3", "q4", "q5", "q6", "q7"}, questions)

	text := BuildContextWindow(history, 5)
	assert.NotContains(t, text, "orphan")
	assert.NotContains(t, text, "lost question")
}

func TestSelectContextWindow_NonPositiveSize(t *testing.T) {
	assert.Empty(t, SelectContextWindow([]entity.Exchange{qa("q", "a")}, 0))
}
