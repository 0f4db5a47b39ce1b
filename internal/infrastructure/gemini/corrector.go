package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

var _ repository.CodeCorrector = (*Client)(nil)

func newCoderModel(client *genai.Client, modelName string) *genai.GenerativeModel {
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.1)
	model.SetMaxOutputTokens(4096)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(`You are an expert developer. Correct the code you are given and return only the corrected code.
Do not include any explanation, comments, or markdown. Just return plain fixed code.`),
		},
	}
	return model
}

// Correct kodni tuzatish
func (c *Client) Correct(ctx context.Context, code string) (string, error) {
	out, err := c.generate(ctx, c.coder, "Here is the code:\n"+code)
	if err != nil {
		return "", err
	}
	return stripCodeFence(out), nil
}

// stripCodeFence model baribir ``` bilan o'rab yuborsa olib tashlash
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// Birinchi qatordagi til nomini tashlab yuborish
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], " \t{}();=") {
		s = s[nl+1:]
	}
	return strings.TrimSpace(s)
}
