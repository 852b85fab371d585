package route

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jawwad-codes/BizTrackr-sub001/internal/adapter/api/controller"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/adapter/api/dto"
)

// SetupChatbotRoutes configures the chatbot routes
func SetupChatbotRoutes(router *gin.RouterGroup, chatbotController *controller.ChatbotController) {
	chatbotRouter := router.Group("/chatbot")

	// A panic anywhere in the pipeline becomes the generic error envelope
	chatbotRouter.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewChatError("Failed to generate response"))
	}))

	{
		chatbotRouter.POST("", chatbotController.ProcessMessage)
		chatbotRouter.GET("/history", chatbotController.GetHistory)
		chatbotRouter.DELETE("/history", chatbotController.ClearHistory)
	}
}
