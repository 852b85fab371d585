package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jawwad-codes/BizTrackr-sub001/internal/adapter/api/dto"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/domain/chat"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/domain/metrics"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/auth"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/completion"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/logger"
)

// ChatbotController relays chat messages to the completion provider
type ChatbotController struct {
	resolver auth.Resolver
	provider completion.Provider
	history  chat.Repository
	logger   logger.Logger
}

// NewChatbotController creates a new chatbot controller. The history
// repository may be nil, which disables persistence.
func NewChatbotController(resolver auth.Resolver, provider completion.Provider, history chat.Repository, log logger.Logger) *ChatbotController {
	return &ChatbotController{
		resolver: resolver,
		provider: provider,
		history:  history,
		logger:   log,
	}
}

// ProcessMessage godoc
// @Summary Send a chat message
// @Description Relays the user's message plus a business-metrics summary to the AI assistant and returns its reply
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message and optional business data"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ChatResponse
// @Failure 401 {object} dto.ChatResponse
// @Failure 500 {object} dto.ChatResponse
// @Security Bearer
// @Router /api/chatbot [post]
func (c *ChatbotController) ProcessMessage(ctx *gin.Context) {
	user, err := c.resolver.Resolve(ctx.Request)
	if err != nil {
		c.logger.Error("Identity resolution failed", "error", err)
	}
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewChatError("Unauthorized"))
		return
	}

	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewChatError("Message is required"))
		return
	}
	if req.Message == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewChatError("Message is required"))
		return
	}

	systemPrompt := metrics.SystemPrompt(req.BusinessData.ToSummary())

	c.logger.Info("Processing chat message",
		"user_id", user.ID,
		"message_length", len(req.Message))

	reply, err := c.provider.Complete(ctx.Request.Context(), systemPrompt, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, completion.ErrMissingAPIKey):
			c.logger.Error("Completion provider key missing", "user_id", user.ID)
			ctx.JSON(http.StatusInternalServerError, dto.NewChatError("OpenAI API key not configured"))
		case errors.Is(err, completion.ErrEmptyCompletion):
			c.logger.Error("Empty completion", "user_id", user.ID)
			ctx.JSON(http.StatusInternalServerError, dto.NewChatError("No response from provider"))
		default:
			// Upstream details stay in the server log
			c.logger.Error("Completion failed", "user_id", user.ID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewChatError("Failed to generate response"))
		}
		return
	}

	reply = strings.TrimSpace(reply)

	c.saveExchange(ctx, user.ID, req.Message, reply)

	ctx.JSON(http.StatusOK, dto.NewChatResponse(reply))
}

// saveExchange persists the user message and reply. Storage failures are
// logged and never alter the response.
func (c *ChatbotController) saveExchange(ctx *gin.Context, userID, message, reply string) {
	if c.history == nil {
		return
	}

	now := time.Now()
	pairs := []chat.Message{
		{UserID: userID, Role: "user", Content: message, Timestamp: now},
		{UserID: userID, Role: "assistant", Content: reply, Timestamp: now},
	}
	for i := range pairs {
		if err := c.history.SaveMessage(ctx.Request.Context(), &pairs[i]); err != nil {
			c.logger.Error("Failed to save chat message",
				"user_id", userID,
				"role", pairs[i].Role,
				"error", err)
			return
		}
	}
}

// GetHistory godoc
// @Summary Get chat history
// @Description Returns the caller's chat history, oldest first
// @Tags Chatbot
// @Produce json
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 401 {object} dto.ChatResponse
// @Security Bearer
// @Router /api/chatbot/history [get]
func (c *ChatbotController) GetHistory(ctx *gin.Context) {
	user, err := c.resolver.Resolve(ctx.Request)
	if err != nil {
		c.logger.Error("Identity resolution failed", "error", err)
	}
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewChatError("Unauthorized"))
		return
	}

	if c.history == nil {
		ctx.JSON(http.StatusOK, dto.ChatHistoryResponse{Success: true, Messages: []chat.Message{}})
		return
	}

	history, err := c.history.GetUserHistory(ctx.Request.Context(), user.ID, 50, 0)
	if err != nil {
		c.logger.Error("Failed to load chat history", "user_id", user.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewChatError("Failed to load history"))
		return
	}

	// The repository returns newest first; the client renders oldest first
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	if history == nil {
		history = []chat.Message{}
	}

	ctx.JSON(http.StatusOK, dto.ChatHistoryResponse{Success: true, Messages: history})
}

// ClearHistory godoc
// @Summary Clear chat history
// @Description Removes all of the caller's chat history
// @Tags Chatbot
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ChatResponse
// @Security Bearer
// @Router /api/chatbot/history [delete]
func (c *ChatbotController) ClearHistory(ctx *gin.Context) {
	user, err := c.resolver.Resolve(ctx.Request)
	if err != nil {
		c.logger.Error("Identity resolution failed", "error", err)
	}
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewChatError("Unauthorized"))
		return
	}

	if c.history != nil {
		if err := c.history.DeleteUserHistory(ctx.Request.Context(), user.ID); err != nil {
			c.logger.Error("Failed to clear chat history", "user_id", user.ID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewChatError("Failed to clear history"))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Chat history cleared", nil))
}
