package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/PJRenu/LegaLuna/api/http/presenter"
	"github.com/PJRenu/LegaLuna/pkg/assistant"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Query string `json:"query" example:"How do I file an FIR?"`
}

// ChatResponse carries the answer and how long it took in seconds.
type ChatResponse struct {
	Response       string   `json:"response"`
	Language       string   `json:"language" example:"en"`
	Sources        []string `json:"sources"`
	ProcessingTime float64  `json:"processing_time" example:"1.25"`
}

type ChatHandler struct {
	svc assistant.UseCase
	log zerolog.Logger
	now func() time.Time
}

func NewChatHandler(svc assistant.UseCase, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: log, now: time.Now}
}

// Chat answers one legal question.
// @Summary Ask a legal question
// @Description Detects English or Hindi, retrieves relevant Indian legal passages and returns a plain-language answer.
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   body body ChatRequest true "Question"
// @Security ApiKeyAuth
// @Success 200 {object} ChatResponse
// @Failure 400 {object} presenter.ErrorResponse "Invalid body or empty query"
// @Failure 401 {object} presenter.ErrorResponse "Missing or wrong API key"
// @Failure 429 {object} presenter.ErrorResponse "Rate limited"
// @Failure 500 {object} presenter.ErrorResponse "Pipeline failure"
// @Router  /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	start := h.now()
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	ans, err := h.svc.Answer(c.UserContext(), req.Query)
	if errors.Is(err, assistant.ErrEmptyQuery) {
		return presenter.Error(c, http.StatusBadRequest, "Empty query")
	}
	if err != nil {
		h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("error processing query")
		return presenter.Error(c, http.StatusInternalServerError, "An error occurred while processing your request")
	}
	elapsed := h.now().Sub(start).Seconds()
	h.log.Info().
		Str("request_id", requestID(c)).
		Str("language", ans.Language.String()).
		Bool("fallback", ans.UsedFallback).
		Float64("seconds", elapsed).
		Msg("query processed")
	return presenter.JSON(c, http.StatusOK, ChatResponse{
		Response:       ans.Text,
		Language:       ans.Language.String(),
		Sources:        ans.Sources,
		ProcessingTime: math.Round(elapsed*100) / 100,
	})
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
