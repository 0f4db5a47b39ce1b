package gemini

import (
	"context"

	"github.com/google/generative-ai-go/genai"

	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

var _ repository.NLURepository = (*Client)(nil)

func newNLUModel(client *genai.Client, modelName string) *genai.GenerativeModel {
	model := client.GenerativeModel(modelName)

	// Buyruqlarni aniqlash uchun past temperatura
	model.SetTemperature(0.3)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(1024)
	return model
}

// Infer prompt ni NLU modeliga yuborish. Qayta urinish yo'q, xatolik chaqiruvchiga qaytadi.
func (c *Client) Infer(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, c.nlu, prompt)
}
