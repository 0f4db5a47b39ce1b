package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

// ComposePrompt NLU xizmatiga yuboriladigan yo'riqnomani yig'ish
func ComposePrompt(contextText, utterance string, profile entity.AssistantProfile) string {
	profile = profile.WithDefaults()

	quoted := make([]string, 0, len(entity.KnownCommandTypes))
	for _, t := range entity.KnownCommandTypes {
		quoted = append(quoted, fmt.Sprintf("%q", string(t)))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`You are a smart voice assistant named %s, created by %s.
Your task is to understand the user's natural language command and return a structured JSON object like this:

{
  "type": %s,
  "userInput": "<original user input, with the assistant name removed if present>",
  "response": "<a short spoken response for the user>",
  "query": "<only for play_youtube or youtube_search: the song or video to search for>"
}

Instructions:
- type:
  - "general": general questions like "What is the capital of India?".
  - "correct_code": the user asks to correct or fix their code.
  - "google_search": the user wants to search something on Google.
  - "play_youtube" or "youtube_search": "play X from YouTube", "play song X", "search X on YouTube".
  - "youtube_close": the user wants to close YouTube.
  - "sing_song": the user asks you to sing.
  - "get_time", "get_date", "get_day", "get_month": basic time and calendar questions.
  - "calculator_open": "open calculator".
  - "whatsapp_message": the user wants to send a message via WhatsApp.
  - "open_whatsapp", "open_instagram", "facebook_open": open the named app.
  - "change_voice": the user wants a different voice.
  - "weather-show": the user asks about the weather.
- For "play_youtube" and "youtube_search" include the "query" field.
- For "correct_code" do not include any code from the command and set "userInput" to "".
- response: short and voice-friendly, like "Okay, opening the calculator."

Important:
- If the user asks who created you or who they are, answer with "%s".
- Only output a single pure JSON object. Do not wrap it in markdown or code fences. No explanation.
`, profile.AssistantName, profile.OwnerName, strings.Join(quoted, " | "), profile.OwnerName))

	if contextText != "" {
		sb.WriteString("\nRecent conversation:\n")
		sb.WriteString(contextText)
		sb.WriteString("\n")
	}

	sb.WriteString("\nNow, here is the user command: ")
	sb.WriteString(utterance)
	return sb.String()
}
