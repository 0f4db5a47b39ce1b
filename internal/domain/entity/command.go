package entity

// CommandType NLU aniqlagan buyruq turi
type CommandType string

const (
	CommandGeneral         CommandType = "general"
	CommandCorrectCode     CommandType = "correct_code"
	CommandGoogleSearch    CommandType = "google_search"
	CommandPlayYouTube     CommandType = "play_youtube"
	CommandYouTubeSearch   CommandType = "youtube_search"
	CommandYouTubeClose    CommandType = "youtube_close"
	CommandSingSong        CommandType = "sing_song"
	CommandGetTime         CommandType = "get_time"
	CommandGetDate         CommandType = "get_date"
	CommandGetDay          CommandType = "get_day"
	CommandGetMonth        CommandType = "get_month"
	CommandCalculatorOpen  CommandType = "calculator_open"
	CommandWhatsAppMessage CommandType = "whatsapp_message"
	CommandOpenWhatsApp    CommandType = "open_whatsapp"
	CommandChangeVoice     CommandType = "change_voice"
	CommandOpenInstagram   CommandType = "open_instagram"
	CommandFacebookOpen    CommandType = "facebook_open"
	CommandWeatherShow     CommandType = "weather-show"
)

// KnownCommandTypes NLU ga e'lon qilinadigan barcha turlar, prompt dagi tartibda
var KnownCommandTypes = []CommandType{
	CommandGeneral,
	CommandCorrectCode,
	CommandGoogleSearch,
	CommandPlayYouTube,
	CommandYouTubeSearch,
	CommandYouTubeClose,
	CommandSingSong,
	CommandGetTime,
	CommandGetDate,
	CommandGetDay,
	CommandGetMonth,
	CommandCalculatorOpen,
	CommandWhatsAppMessage,
	CommandOpenWhatsApp,
	CommandChangeVoice,
	CommandOpenInstagram,
	CommandFacebookOpen,
	CommandWeatherShow,
}

// Command NLU javobidan ajratib olingan tuzilgan buyruq
type Command struct {
	Type      CommandType
	UserInput string
	Response  string
	Query     string
}

const ActionOpenURL = "open_url"

// DispatchResult chaqiruvchiga qaytariladigan natija
type DispatchResult struct {
	Type      CommandType `json:"type"`
	UserInput string      `json:"userInput"`
	Response  string      `json:"response"`
	Action    string      `json:"action,omitempty"`
	URL       string      `json:"url,omitempty"`
}
