package dto

import (
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/domain/chat"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/domain/metrics"
)

// BusinessData represents the optional metrics snapshot sent with a chat
// message. Absent fields decode to their zero value.
type BusinessData struct {
	TotalSales         float64 `json:"totalSales"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetProfit          float64 `json:"netProfit"`
	ProfitMargin       float64 `json:"profitMargin"`
	TotalProducts      int     `json:"totalProducts"`
	LowStockItems      int     `json:"lowStockItems"`
	TopExpenseCategory string  `json:"topExpenseCategory"`
	TopExpenseAmount   float64 `json:"topExpenseAmount"`
}

// ToSummary converts the wire payload into the domain summary
func (b BusinessData) ToSummary() metrics.Summary {
	return metrics.Summary{
		TotalSales:         b.TotalSales,
		TotalExpenses:      b.TotalExpenses,
		NetProfit:          b.NetProfit,
		ProfitMargin:       b.ProfitMargin,
		TotalProducts:      b.TotalProducts,
		LowStockItems:      b.LowStockItems,
		TopExpenseCategory: b.TopExpenseCategory,
		TopExpenseAmount:   b.TopExpenseAmount,
	}
}

// ChatRequest represents the chatbot request body
type ChatRequest struct {
	Message      string       `json:"message"`
	BusinessData BusinessData `json:"businessData"`
}

// ChatResponse represents the chatbot response body. At most one of
// Response and Error is populated.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewChatResponse creates a successful chat response
func NewChatResponse(response string) ChatResponse {
	return ChatResponse{
		Success:  true,
		Response: response,
	}
}

// NewChatError creates a failed chat response
func NewChatError(message string) ChatResponse {
	return ChatResponse{
		Success: false,
		Error:   message,
	}
}

// ChatHistoryResponse represents the chat history response body
type ChatHistoryResponse struct {
	Success  bool           `json:"success"`
	Messages []chat.Message `json:"messages"`
}
