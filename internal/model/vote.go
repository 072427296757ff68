package model

import "fmt"

// Action is the outcome of a single vote.
type Action string

// Vote actions.
const (
	ActionSelect Action = "select"
	ActionPass   Action = "pass"
)

// Counter columns incremented by votes.
const (
	CounterSelects = "selects"
	CounterPasses  = "passes"
)

// ParseAction validates a raw action value. Matching is exact.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionSelect, ActionPass:
		return Action(s), nil
	}
	return "", fmt.Errorf("%w: invalid action %q", ErrValidation, s)
}

// Counter returns the name of the counter the action increments.
func (a Action) Counter() string {
	if a == ActionSelect {
		return CounterSelects
	}
	return CounterPasses
}
