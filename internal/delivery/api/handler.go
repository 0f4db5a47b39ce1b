package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v5"
	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/usecase"
)

const (
	// UserIDHeader foydalanuvchi identifikatori keladigan header
	UserIDHeader = "X-User-ID"

	maxUploadSize = 5 * 1024 * 1024
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type askRequest struct {
	Command string `json:"command"`
}

type correctCodeRequest struct {
	Code string `json:"code"`
}

type correctCodeResponse struct {
	Corrected string `json:"corrected"`
}

type exchangeRequest struct {
	UserInput         string `json:"userInput"`
	AssistantResponse string `json:"assistantResponse"`
}

type exchangeResponse struct {
	ID                string    `json:"id"`
	UserInput         string    `json:"userInput"`
	AssistantResponse string    `json:"assistantResponse"`
	Timestamp         time.Time `json:"timestamp"`
}

type profileRequest struct {
	AssistantName string `json:"assistantName"`
	OwnerName     string `json:"ownerName"`
}

type profileResponse struct {
	AssistantName string    `json:"assistantName"`
	OwnerName     string    `json:"ownerName"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Handler yordamchi uchun JSON API
type Handler struct {
	assistant usecase.AssistantUseCase
	history   usecase.HistoryUseCase
	profiles  usecase.ProfileUseCase
	code      usecase.CodeUseCase
	logger    *zap.Logger
}

// NewHandler yangi API handler yaratish
func NewHandler(
	assistant usecase.AssistantUseCase,
	history usecase.HistoryUseCase,
	profiles usecase.ProfileUseCase,
	code usecase.CodeUseCase,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		assistant: assistant,
		history:   history,
		profiles:  profiles,
		code:      code,
		logger:    logger,
	}
}

// NewServer echo instance yaratib, barcha route larni ro'yxatdan o'tkazish
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.Use(requestLogger(h.logger))
	h.Register(e)
	return e
}

// Register route larni ro'yxatdan o'tkazish
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.health)

	g := e.Group("/api")
	g.POST("/assistant/ask", h.ask)
	g.POST("/assistant/correct-code", h.correctCode)
	g.GET("/history", h.listHistory)
	g.POST("/history", h.addHistory)
	g.DELETE("/history", h.clearHistory)
	g.GET("/history/export", h.exportHistory)
	g.POST("/history/import", h.importHistory)
	g.GET("/profile", h.getProfile)
	g.PUT("/profile", h.updateProfile)
}

func (h *Handler) health(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ask buyruqni hal qilish
func (h *Handler) ask(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req askRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	profile, err := h.profiles.GetProfile(ctx, userID)
	if err != nil {
		return h.toHTTPError(err)
	}

	result, err := h.assistant.Resolve(ctx, userID, req.Command, profile)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) correctCode(c *echo.Context) error {
	if _, err := requireUser(c); err != nil {
		return err
	}

	var req correctCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	corrected, err := h.code.CorrectCode(c.Request().Context(), req.Code)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, correctCodeResponse{Corrected: corrected})
}

func (h *Handler) listHistory(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	history, err := h.history.GetHistory(c.Request().Context(), userID)
	if err != nil {
		return h.toHTTPError(err)
	}

	resp := make([]exchangeResponse, 0, len(history))
	for _, ex := range history {
		resp = append(resp, exchangeResponse{
			ID:                ex.ID,
			UserInput:         ex.Question,
			AssistantResponse: ex.Answer,
			Timestamp:         ex.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) addHistory(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req exchangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.history.AddHistory(c.Request().Context(), userID, req.UserInput, req.AssistantResponse); err != nil {
		return h.toHTTPError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) clearHistory(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	if err := h.history.ClearHistory(c.Request().Context(), userID); err != nil {
		return h.toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) exportHistory(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	data, err := h.history.ExportHistory(c.Request().Context(), userID)
	if err != nil {
		return h.toHTTPError(err)
	}

	c.Response().Header().Set("Content-Disposition", `attachment; filename="history.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, data)
}

// importHistory multipart "file" maydonidagi xlsx ni yuklash
func (h *Handler) importHistory(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	file, header, err := c.Request().FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field required")
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		return echo.NewHTTPError(http.StatusBadRequest, "only .xlsx files are accepted")
	}
	if header.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file must be at most 5MB")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read file")
	}

	count, err := h.history.ImportHistory(c.Request().Context(), userID, data, header.Filename)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": count})
}

func (h *Handler) getProfile(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *Handler) updateProfile(c *echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	profile, err := h.profiles.UpdateProfile(c.Request().Context(), userID, req.AssistantName, req.OwnerName)
	if err != nil {
		return h.toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(p entity.AssistantProfile) profileResponse {
	return profileResponse{
		AssistantName: p.AssistantName,
		OwnerName:     p.OwnerName,
		UpdatedAt:     p.UpdatedAt,
	}
}

// requireUser X-User-ID headerini olish. Autentifikatsiya bu qatlamda yo'q.
func requireUser(c *echo.Context) (string, error) {
	userID := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("%s header required", UserIDHeader))
	}
	return userID, nil
}

// toHTTPError validatsiya xatolari 400, qolganlari 500
func (h *Handler) toHTTPError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyUtterance),
		errors.Is(err, usecase.ErrEmptyCode),
		errors.Is(err, usecase.ErrInvalidExchange),
		errors.Is(err, usecase.ErrEmptyProfile),
		errors.Is(err, usecase.ErrNoExchanges),
		errors.Is(err, usecase.ErrInvalidSheet):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Info("request rejected", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("request served", fields...)
			return nil
		}
	}
}
