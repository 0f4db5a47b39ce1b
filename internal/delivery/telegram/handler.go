package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/usecase"
)

const (
	maxUploadSize   = 5 * 1024 * 1024
	historyPreview  = 10
	maxMessageRunes = 3500
	userIDPrefix    = "tg:"
)

// botAPI BotAPI ning handler ishlatadigan qismi
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	GetFileDirectURL(fileID string) (string, error)
}

// BotHandler Telegram bot handler
type BotHandler struct {
	bot        botAPI
	username   string
	httpClient *http.Client
	logger     *zap.Logger

	assistant usecase.AssistantUseCase
	history   usecase.HistoryUseCase
	profiles  usecase.ProfileUseCase
	code      usecase.CodeUseCase
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	assistant usecase.AssistantUseCase,
	history usecase.HistoryUseCase,
	profiles usecase.ProfileUseCase,
	code usecase.CodeUseCase,
	logger *zap.Logger,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	h := newBotHandler(bot, assistant, history, profiles, code, logger)
	h.username = bot.Self.UserName
	return h, nil
}

func newBotHandler(
	bot botAPI,
	assistant usecase.AssistantUseCase,
	history usecase.HistoryUseCase,
	profiles usecase.ProfileUseCase,
	code usecase.CodeUseCase,
	logger *zap.Logger,
) *BotHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BotHandler{
		bot:        bot,
		httpClient: http.DefaultClient,
		logger:     logger,
		assistant:  assistant,
		history:    history,
		profiles:   profiles,
		code:       code,
	}
}

// Start botni ishga tushirish. ctx bekor qilinganda to'xtaydi va
// ishlayotgan handlerlar tugashini kutadi.
func (h *BotHandler) Start(ctx context.Context) error {
	h.logger.Info("telegram bot started", zap.String("username", h.username))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("telegram bot stopping")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			wg.Add(1)
			go func(message *tgbotapi.Message) {
				defer wg.Done()
				h.handleMessage(ctx, message)
			}(update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	// Fayl yuborilgan bo'lsa
	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	if strings.TrimSpace(message.Text) != "" {
		h.handleTextMessage(ctx, message)
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		h.sendMessage(message.Chat.ID, h.getWelcomeMessage(ctx, userKey(message)))
	case "help":
		h.sendMessage(message.Chat.ID, getHelpMessage())
	case "clear":
		h.handleClearCommand(ctx, message)
	case "history":
		h.handleHistoryCommand(ctx, message)
	case "export":
		h.handleExportCommand(ctx, message)
	case "name":
		h.handleProfileCommand(ctx, message, true)
	case "owner":
		h.handleProfileCommand(ctx, message, false)
	case "fix":
		h.handleFixCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Unknown command. See /help.")
	}
}

// handleTextMessage oddiy xabarni yordamchiga yuborish
func (h *BotHandler) handleTextMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := userKey(message)

	// "typing" indikatori
	if _, err := h.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		h.logger.Debug("chat action failed", zap.Error(err))
	}

	profile, err := h.profiles.GetProfile(ctx, userID)
	if err != nil {
		h.logger.Warn("failed to load profile, using defaults", zap.String("user_id", userID), zap.Error(err))
		profile = entity.AssistantProfile{UserID: userID}.WithDefaults()
	}

	result, err := h.assistant.Resolve(ctx, userID, message.Text, profile)
	if err != nil {
		h.logger.Error("resolve failed", zap.String("user_id", userID), zap.Error(err))
		h.sendMessage(chatID, "Sorry, something went wrong. Please try again.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, result.Response)
	if result.Action == entity.ActionOpenURL && result.URL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL(openButtonLabel(result.Type), result.URL),
			),
		)
	}
	h.send(msg)
}

// handleClearCommand tarixni tozalash
func (h *BotHandler) handleClearCommand(ctx context.Context, message *tgbotapi.Message) {
	if err := h.history.ClearHistory(ctx, userKey(message)); err != nil {
		h.logger.Error("clear history failed", zap.Error(err))
		h.sendMessage(message.Chat.ID, "Failed to clear history.")
		return
	}
	h.sendMessage(message.Chat.ID, "✅ History cleared. Let's start fresh!")
}

// handleHistoryCommand oxirgi yozuvlarni ko'rsatish
func (h *BotHandler) handleHistoryCommand(ctx context.Context, message *tgbotapi.Message) {
	history, err := h.history.GetHistory(ctx, userKey(message))
	if err != nil {
		h.logger.Error("get history failed", zap.Error(err))
		h.sendMessage(message.Chat.ID, "Failed to load history.")
		return
	}

	if len(history) == 0 {
		h.sendMessage(message.Chat.ID, "Your history is empty.")
		return
	}

	h.sendMessage(message.Chat.ID, buildHistoryDigest(history, historyPreview, maxMessageRunes))
}

// handleExportCommand tarixni xlsx fayl sifatida yuborish
func (h *BotHandler) handleExportCommand(ctx context.Context, message *tgbotapi.Message) {
	data, err := h.history.ExportHistory(ctx, userKey(message))
	if err != nil {
		h.logger.Error("export history failed", zap.Error(err))
		h.sendMessage(message.Chat.ID, "Failed to export history.")
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{Name: "history.xlsx", Bytes: data})
	doc.Caption = "📄 Your conversation history"
	h.send(doc)
}

// handleProfileCommand /name va /owner
func (h *BotHandler) handleProfileCommand(ctx context.Context, message *tgbotapi.Message, assistantName bool) {
	value := strings.TrimSpace(message.CommandArguments())
	if value == "" {
		h.sendMessage(message.Chat.ID, "Usage: /"+message.Command()+" <name>")
		return
	}

	var (
		profile entity.AssistantProfile
		err     error
	)
	if assistantName {
		profile, err = h.profiles.UpdateProfile(ctx, userKey(message), value, "")
	} else {
		profile, err = h.profiles.UpdateProfile(ctx, userKey(message), "", value)
	}
	if err != nil {
		h.logger.Error("update profile failed", zap.Error(err))
		h.sendMessage(message.Chat.ID, "Failed to update profile.")
		return
	}

	h.sendMessage(message.Chat.ID, fmt.Sprintf("✅ I am %s and you are %s.", profile.AssistantName, profile.OwnerName))
}

// handleFixCommand /fix <code>
func (h *BotHandler) handleFixCommand(ctx context.Context, message *tgbotapi.Message) {
	corrected, err := h.code.CorrectCode(ctx, message.CommandArguments())
	if errors.Is(err, usecase.ErrEmptyCode) {
		h.sendMessage(message.Chat.ID, "Usage: /fix <code>")
		return
	}
	if err != nil {
		h.logger.Error("correct code failed", zap.Error(err))
		h.sendMessage(message.Chat.ID, usecase.CorrectionFailedResponse)
		return
	}
	h.sendMessage(message.Chat.ID, corrected)
}

// handleDocumentMessage xlsx faylni tarixga import qilish
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	doc := message.Document

	if doc.FileSize > maxUploadSize {
		h.sendMessage(message.Chat.ID, "❌ File must be at most 5MB.")
		return
	}
	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") {
		h.sendMessage(message.Chat.ID, "❌ Only .xlsx files can be imported.")
		return
	}

	fileBytes, err := h.downloadFile(ctx, doc.FileID)
	if err != nil {
		h.logger.Error("file download failed", zap.Error(err))
		h.sendMessage(message.Chat.ID, "❌ Failed to download the file.")
		return
	}

	count, err := h.history.ImportHistory(ctx, userKey(message), fileBytes, doc.FileName)
	if err != nil {
		h.logger.Warn("import history failed", zap.Error(err))
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Import failed: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, fmt.Sprintf("✅ Imported %d exchanges from %s.", count, doc.FileName))
}

// downloadFile Telegram dan faylni yuklash
func (h *BotHandler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	fileURL, err := h.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxUploadSize+1))
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *BotHandler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Warn("failed to send message", zap.Error(err))
	}
}

// userKey Telegram foydalanuvchisini tarix kaliti sifatida
func userKey(message *tgbotapi.Message) string {
	return userIDPrefix + strconv.FormatInt(message.From.ID, 10)
}

func openButtonLabel(t entity.CommandType) string {
	switch t {
	case entity.CommandPlayYouTube, entity.CommandYouTubeSearch:
		return "▶️ Open YouTube"
	case entity.CommandOpenInstagram:
		return "Open Instagram"
	case entity.CommandOpenWhatsApp:
		return "Open WhatsApp"
	default:
		return "Open"
	}
}

// buildHistoryDigest oxirgi limit ta yozuvni matnga aylantirish
func buildHistoryDigest(history []entity.Exchange, limit, maxLen int) string {
	if len(history) > limit {
		history = history[len(history)-limit:]
	}

	var sb strings.Builder
	sb.WriteString("📜 Recent history:\n\n")
	for i, ex := range history {
		sb.WriteString(fmt.Sprintf("%d. %s\n↳ %s\n\n", i+1, ex.Question, ex.Answer))
	}
	return truncateString(strings.TrimRight(sb.String(), "\n"), maxLen)
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// getWelcomeMessage salom xabari
func (h *BotHandler) getWelcomeMessage(ctx context.Context, userID string) string {
	name := entity.DefaultAssistantName
	if profile, err := h.profiles.GetProfile(ctx, userID); err == nil {
		name = profile.AssistantName
	}
	return fmt.Sprintf(`Hi! 👋 I'm %s, your personal assistant.

Ask me anything or tell me what to do:
• "What time is it?"
• "Play some lofi beats"
• "Open Instagram"

Type /help to see all commands.`, name)
}

// getHelpMessage yordam xabari
func getHelpMessage() string {
	return `🤖 Commands:

/start - Welcome message
/help - This help
/clear - Clear conversation history
/history - Show recent history
/export - Download history as Excel
/name <name> - Rename the assistant
/owner <name> - Tell the assistant your name
/fix <code> - Correct a code snippet

Send an .xlsx file with Question/Answer columns to import history.
Any other message is treated as a command for the assistant.`
}
