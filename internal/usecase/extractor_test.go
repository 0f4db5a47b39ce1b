package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

func TestExtractCommand_FencedBlock(t *testing.T) {
	raw := "Sure! ```json\n{\"type\":\"general\",\"userInput\":\"hi\",\"response\":\"Hi there\"}\n```"

	cmd, parsed := ExtractCommand(raw, "hi")
	assert.True(t, parsed)
	assert.Equal(t, entity.CommandGeneral, cmd.Type)
	assert.Equal(t, "Hi there", cmd.Response)
	assert.Equal(t, "hi", cmd.UserInput)
}

func TestExtractCommand_FencedEqualsBare(t *testing.T) {
	object := `{"type":"play_youtube","userInput":"play despacito","response":"Playing","query":"despacito"}`
	variants := []string{
		object,
		"```json\n" + object + "\n```",
		"```\n" + object + "\n```",
		"Here you go:\n```JSON " + object + "```\nEnjoy!",
		"Result: " + object + " -- done",
	}

	want, parsed := ExtractCommand(object, "play despacito")
	assert.True(t, parsed)
	for _, raw := range variants {
		got, ok := ExtractCommand(raw, "play despacito")
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	assert.Equal(t, "despacito", want.Query)
}

func TestExtractCommand_ProseIsWrapped(t *testing.T) {
	raw := "I'm doing well, thanks for asking!"

	cmd, parsed := ExtractCommand(raw, "how are you")
	assert.False(t, parsed)
	assert.Equal(t, entity.Command{
		Type:      entity.CommandGeneral,
		UserInput: "how are you",
		Response:  raw,
	}, cmd)
}

func TestExtractCommand_MalformedJSONIsWrapped(t *testing.T) {
	cases := []string{
		`{"type": "general", "response": }`,
		"```json\n{not json}\n```",
		`{"type": 42, "response": "wrong type"}`,
		`} backwards {`,
		``,
	}
	for _, raw := range cases {
		cmd, parsed := ExtractCommand(raw, "utterance")
		assert.False(t, parsed, raw)
		assert.Equal(t, entity.CommandGeneral, cmd.Type, raw)
		assert.Equal(t, "utterance", cmd.UserInput, raw)
		assert.Equal(t, raw, cmd.Response, raw)
	}
}

func TestExtractCommand_LenientDefaults(t *testing.T) {
	cmd, parsed := ExtractCommand(`{"response":"Hello"}`, "hey")
	assert.True(t, parsed)
	assert.Equal(t, entity.CommandGeneral, cmd.Type)
	assert.Equal(t, "hey", cmd.UserInput)
	assert.Equal(t, "Hello", cmd.Response)

	cmd, parsed = ExtractCommand(`{"type":"sing_song"}`, "sing")
	assert.True(t, parsed)
	assert.Equal(t, entity.CommandSingSong, cmd.Type)
	assert.Empty(t, cmd.Response)
}

func TestExtractCommand_NormalizesType(t *testing.T) {
	cases := map[string]entity.CommandType{
		`{"type":" GET_TIME "}`:       entity.CommandGetTime,
		`{"type":"youtube_play"}`:     entity.CommandPlayYouTube,
		`{"type":"instagram_open"}`:   entity.CommandOpenInstagram,
		`{"type":"weather-show"}`:     entity.CommandWeatherShow,
		`{"type":"teleport_me_home"}`: entity.CommandType("teleport_me_home"),
	}
	for raw, want := range cases {
		cmd, parsed := ExtractCommand(raw, "x")
		assert.True(t, parsed, raw)
		assert.Equal(t, want, cmd.Type, raw)
	}
}

func TestExtractCommand_FencedNonJSONFallsBackToBareObject(t *testing.T) {
	raw := "```python\nprint('x')\n```\n{\"type\":\"correct_code\",\"response\":\"Okay\"}"

	cmd, parsed := ExtractCommand(raw, "fix my code")
	assert.True(t, parsed)
	assert.Equal(t, entity.CommandCorrectCode, cmd.Type)
}
