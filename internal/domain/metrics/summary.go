package metrics

import "fmt"

// Summary holds the business metrics snapshot a caller sends alongside a
// chat message. Every field is optional on the wire; absent numbers read
// as zero and an absent category reads as "N/A".
type Summary struct {
	TotalSales         float64
	TotalExpenses      float64
	NetProfit          float64
	ProfitMargin       float64
	TotalProducts      int
	LowStockItems      int
	TopExpenseCategory string
	TopExpenseAmount   float64
}

// topExpenseCategoryOrDefault returns the category or the display default
func (s Summary) topExpenseCategoryOrDefault() string {
	if s.TopExpenseCategory == "" {
		return "N/A"
	}
	return s.TopExpenseCategory
}

// SystemPrompt composes the fixed-template system prompt the relay
// handler sends to the completion provider
func SystemPrompt(s Summary) string {
	return fmt.Sprintf(`You are BizTrackr's business assistant. You help small business owners understand their numbers and make better decisions.

Current business snapshot:
- Total sales: $%.2f
- Total expenses: $%.2f
- Net profit: $%.2f
- Profit margin: %.1f%%
- Products tracked: %d
- Low stock items: %d
- Top expense category: %s ($%.2f)

Keep replies brief and conversational. Give practical, advisory answers grounded in the numbers above. Use emoji sparingly. If a figure is zero or missing, still answer helpfully instead of saying you have no data.`,
		s.TotalSales,
		s.TotalExpenses,
		s.NetProfit,
		s.ProfitMargin,
		s.TotalProducts,
		s.LowStockItems,
		s.topExpenseCategoryOrDefault(),
		s.TopExpenseAmount,
	)
}
