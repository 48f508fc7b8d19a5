package handlers

import (
	"net/http"

	"networth-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ActionHandler serves the event action catalog.
type ActionHandler struct{}

// NewActionHandler creates a new action handler.
func NewActionHandler() *ActionHandler {
	return &ActionHandler{}
}

// ListActions handles GET /api/v1/actions. It documents the six event kinds
// and the payload each expects, for form-building clients.
func (h *ActionHandler) ListActions(c *gin.Context) {
	actions := []models.ActionInfo{
		{
			Name:        "ADD_INCOME",
			Description: "Add a recurring yearly income starting at the event year.",
			Payload: []models.FieldInfo{
				{Name: "income.name", Type: "string", Description: "Unique name among active incomes"},
				{Name: "income.yearly_amount", Type: "float", Description: "Yearly amount, flat over time"},
			},
		},
		{
			Name:        "REMOVE_INCOME",
			Description: "Remove the active income with the given name. No-op when no income matches.",
			Payload: []models.FieldInfo{
				{Name: "name", Type: "string", Description: "Name of the income to remove"},
			},
		},
		{
			Name:        "ADD_EXPENSE",
			Description: "Add a recurring yearly expense starting at the event year.",
			Payload: []models.FieldInfo{
				{Name: "expense.name", Type: "string", Description: "Unique name among active expenses"},
				{Name: "expense.yearly_amount", Type: "float", Description: "Yearly amount, flat over time"},
			},
		},
		{
			Name:        "REMOVE_EXPENSE",
			Description: "Remove the active expense with the given name. No-op when no expense matches.",
			Payload: []models.FieldInfo{
				{Name: "name", Type: "string", Description: "Name of the expense to remove"},
			},
		},
		{
			Name:        "BUY_PROPERTY",
			Description: "Buy a property at the event year. Cost (gross value + buying taxes) is funded from investments first; any shortfall comes out of cash, which may go negative until the year's sweep.",
			Payload: []models.FieldInfo{
				{Name: "property", Type: "object", Description: "Full property definition, optional loan included"},
			},
		},
		{
			Name:        "SELL_PROPERTY",
			Description: "Sell the owned property with the given name: cash is credited with gross value - debt - 1000 (fixed selling cost). No-op when no property matches.",
			Payload: []models.FieldInfo{
				{Name: "name", Type: "string", Description: "Name of the property to sell"},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"actions": actions})
}
