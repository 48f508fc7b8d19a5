package model

import "fmt"

// Action is the kind of a scheduled event. Keep these values stable; they are
// the wire/CSV representation used by scenario files and the API.
type Action string

const (
	ActionAddIncome     Action = "ADD_INCOME"
	ActionRemoveIncome  Action = "REMOVE_INCOME"
	ActionAddExpense    Action = "ADD_EXPENSE"
	ActionRemoveExpense Action = "REMOVE_EXPENSE"
	ActionBuyProperty   Action = "BUY_PROPERTY"
	ActionSellProperty  Action = "SELL_PROPERTY"
)

// Actions lists every known action kind, in catalog order.
func Actions() []Action {
	return []Action{
		ActionAddIncome,
		ActionRemoveIncome,
		ActionAddExpense,
		ActionRemoveExpense,
		ActionBuyProperty,
		ActionSellProperty,
	}
}

// ParseAction maps a wire value onto an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionAddIncome, ActionRemoveIncome, ActionAddExpense, ActionRemoveExpense, ActionBuyProperty, ActionSellProperty:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}
