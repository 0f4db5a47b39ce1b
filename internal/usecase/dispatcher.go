package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

const (
	// VideoCandidates provayderdan so'raladigan natijalar soni
	VideoCandidates = 10

	DefaultVideoQuery      = "popular songs"
	DefaultAcknowledgement = "Okay."
	CorrectCodeAck         = "Okay, correcting the code."

	// DefaultVideoTimeout video qidiruvi uchun standart muddat
	DefaultVideoTimeout = 5 * time.Second

	youTubeWatchURL   = "https://www.youtube.com/watch?v=%s&autoplay=1"
	youTubeResultsURL = "https://www.youtube.com/results?search_query=%s"
	instagramURL      = "https://www.instagram.com"
	whatsAppWebURL    = "https://web.whatsapp.com"
)

// sing_song uchun javob bo'sh bo'lganda
var fillerLyrics = []string{
	"La la la, la la la, la la la la la.",
	"Twinkle, twinkle, little star, how I wonder what you are.",
	"Row, row, row your boat, gently down the stream.",
	"Happy birthday to you, happy birthday to you!",
	"Do re mi fa so la ti do!",
}

// RandomSource tasodifiy tanlash manbai. *rand.Rand (math/rand/v2) mos keladi.
type RandomSource interface {
	IntN(n int) int
}

// DispatcherOption Dispatcher sozlamasi
type DispatcherOption func(*Dispatcher)

// WithVideoTimeout video qidiruvi muddatini o'rnatish. 0 yoki manfiy qiymat e'tiborsiz qoldiriladi.
func WithVideoTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.videoTimeout = timeout
		}
	}
}

type handlerFunc func(ctx context.Context, cmd entity.Command) entity.DispatchResult

// Dispatcher buyruq turini handler ga bog'lovchi yagona jadval
type Dispatcher struct {
	videos       repository.VideoRepository
	videoTimeout time.Duration
	now          func() time.Time
	logger       *zap.Logger

	rndMu sync.Mutex
	rnd   RandomSource

	handlers map[entity.CommandType]handlerFunc
}

// NewDispatcher yangi Dispatcher yaratish. videos nil bo'lsa har doim qidiruv URL ishlatiladi.
func NewDispatcher(videos repository.VideoRepository, now func() time.Time, rnd RandomSource, logger *zap.Logger, opts ...DispatcherOption) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dispatcher{
		videos:       videos,
		videoTimeout: DefaultVideoTimeout,
		now:          now,
		rnd:          rnd,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.handlers = map[entity.CommandType]handlerFunc{
		entity.CommandGetDate:  d.clockHandler("Current date is ", "2006-01-02"),
		entity.CommandGetTime:  d.clockHandler("Current time is ", "03:04 PM"),
		entity.CommandGetDay:   d.clockHandler("Today is ", "Monday"),
		entity.CommandGetMonth: d.clockHandler("Current month is ", "January"),

		entity.CommandPlayYouTube:   d.playVideo,
		entity.CommandYouTubeSearch: d.playVideo,

		entity.CommandCorrectCode: d.correctCode,
		entity.CommandSingSong:    d.singSong,

		entity.CommandOpenInstagram: d.openLink(instagramURL),
		entity.CommandOpenWhatsApp:  d.openLink(whatsAppWebURL),

		entity.CommandGeneral:         passThrough,
		entity.CommandGoogleSearch:    passThrough,
		entity.CommandYouTubeClose:    passThrough,
		entity.CommandCalculatorOpen:  passThrough,
		entity.CommandWhatsAppMessage: passThrough,
		entity.CommandChangeVoice:     passThrough,
		entity.CommandFacebookOpen:    passThrough,
		entity.CommandWeatherShow:     passThrough,
	}

	return d
}

// Dispatch buyruqni bajarish. Noma'lum turlar general kabi qaytariladi.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd entity.Command) entity.DispatchResult {
	handler, ok := d.handlers[cmd.Type]
	if !ok {
		d.logger.Info("unknown command type, passing through", zap.String("type", string(cmd.Type)))
		handler = passThrough
	}
	return handler(ctx, cmd)
}

func (d *Dispatcher) handles(t entity.CommandType) bool {
	_, ok := d.handlers[t]
	return ok
}

func passThrough(_ context.Context, cmd entity.Command) entity.DispatchResult {
	response := cmd.Response
	if strings.TrimSpace(response) == "" {
		response = DefaultAcknowledgement
	}
	return entity.DispatchResult{
		Type:      cmd.Type,
		UserInput: cmd.UserInput,
		Response:  response,
	}
}

// clockHandler NLU javobini e'tiborsiz qoldirib, vaqtni soatdan hisoblash
func (d *Dispatcher) clockHandler(prefix, layout string) handlerFunc {
	return func(_ context.Context, cmd entity.Command) entity.DispatchResult {
		return entity.DispatchResult{
			Type:      cmd.Type,
			UserInput: cmd.UserInput,
			Response:  prefix + d.now().Format(layout),
		}
	}
}

func (d *Dispatcher) openLink(link string) handlerFunc {
	return func(ctx context.Context, cmd entity.Command) entity.DispatchResult {
		result := passThrough(ctx, cmd)
		result.Action = entity.ActionOpenURL
		result.URL = link
		return result
	}
}

func (d *Dispatcher) correctCode(_ context.Context, cmd entity.Command) entity.DispatchResult {
	// Kod boshqa kanal orqali keladi, userInput ga hech narsa qo'yilmaydi
	return entity.DispatchResult{
		Type:      cmd.Type,
		UserInput: "",
		Response:  CorrectCodeAck,
	}
}

func (d *Dispatcher) singSong(ctx context.Context, cmd entity.Command) entity.DispatchResult {
	if strings.TrimSpace(cmd.Response) == "" {
		cmd.Response = fillerLyrics[d.intN(len(fillerLyrics))]
	}
	return passThrough(ctx, cmd)
}

// playVideo tasodifiy videoni tanlash, bo'lmasa qidiruv sahifasiga yo'naltirish
func (d *Dispatcher) playVideo(ctx context.Context, cmd entity.Command) entity.DispatchResult {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		query = DefaultVideoQuery
	}

	result := passThrough(ctx, cmd)
	result.Action = entity.ActionOpenURL

	if d.videos != nil {
		videos, err := d.searchVideos(ctx, query)
		switch {
		case err != nil:
			d.logger.Warn("video search failed, using search url", zap.String("query", query), zap.Error(err))
		case len(videos) > 0:
			if len(videos) > VideoCandidates {
				videos = videos[:VideoCandidates]
			}
			picked := videos[d.intN(len(videos))]
			result.Response = "Playing " + picked.Title
			result.URL = fmt.Sprintf(youTubeWatchURL, url.QueryEscape(picked.ID))
			return result
		default:
			d.logger.Info("video search returned no results", zap.String("query", query))
		}
	}

	result.URL = fmt.Sprintf(youTubeResultsURL, url.QueryEscape(query))
	return result
}

// searchVideos provayder osilib qolsa ham muddat tugagach qaytadi
func (d *Dispatcher) searchVideos(ctx context.Context, query string) ([]entity.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, d.videoTimeout)
	defer cancel()
	return d.videos.Search(ctx, query, VideoCandidates)
}

func (d *Dispatcher) intN(n int) int {
	if n <= 1 || d.rnd == nil {
		return 0
	}
	d.rndMu.Lock()
	defer d.rndMu.Unlock()
	return d.rnd.IntN(n)
}
