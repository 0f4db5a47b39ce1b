package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

// ```json ... ``` yoki ``` ... ``` bloklari
var fencedBlockRe = regexp.MustCompile("(?s)```[A-Za-z]*[ \t]*\\r?\\n?(.*?)```")

// Eski prompt versiyalaridan qolgan nomlar
var commandAliases = map[string]entity.CommandType{
	"youtube_play":   entity.CommandPlayYouTube,
	"instagram_open": entity.CommandOpenInstagram,
}

type rawCommand struct {
	Type      *string `json:"type"`
	UserInput *string `json:"userInput"`
	Response  *string `json:"response"`
	Query     *string `json:"query"`
}

// ExtractCommand NLU xom matnidan buyruqni ajratib olish. Hech qachon xato qaytarmaydi:
// fenced blok, keyin birinchi "{" dan oxirgi "}" gacha, bo'lmasa general sifatida o'raladi.
func ExtractCommand(raw, utterance string) (entity.Command, bool) {
	candidate, found := findJSONCandidate(raw)
	if found {
		if cmd, ok := decodeCommand(candidate, utterance); ok {
			return cmd, true
		}
	}

	return entity.Command{
		Type:      entity.CommandGeneral,
		UserInput: utterance,
		Response:  raw,
	}, false
}

func findJSONCandidate(raw string) (string, bool) {
	if m := fencedBlockRe.FindStringSubmatch(raw); m != nil {
		inner := strings.TrimSpace(m[1])
		if strings.HasPrefix(inner, "{") {
			return inner, true
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func decodeCommand(candidate, utterance string) (entity.Command, bool) {
	var parsed rawCommand
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return entity.Command{}, false
	}

	cmd := entity.Command{
		Type:      NormalizeCommandType(deref(parsed.Type)),
		UserInput: utterance,
		Response:  deref(parsed.Response),
		Query:     strings.TrimSpace(deref(parsed.Query)),
	}
	if input := deref(parsed.UserInput); input != "" {
		cmd.UserInput = input
	}
	return cmd, true
}

// NormalizeCommandType turini kichik harfga o'tkazish va eski nomlarni almashtirish
func NormalizeCommandType(raw string) entity.CommandType {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return entity.CommandGeneral
	}
	if alias, ok := commandAliases[t]; ok {
		return alias
	}
	return entity.CommandType(t)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
