package models

type ActionType string

const (
	ActionTypeNone      ActionType = "none"
	ActionTypeEnterLong ActionType = "enter_long"
	ActionTypeExitLong  ActionType = "exit_long"
)

type ExitReason string

const (
	ExitReasonStopLoss    ExitReason = "Stop Loss"
	ExitReasonTakeProfit  ExitReason = "Take Profit"
	ExitReasonBreakout    ExitReason = "Breakout Exit"
	ExitReasonEndOfPeriod ExitReason = "End of Period"
)

// Action is a single strategy decision for one bar. At most one action takes
// effect per bar.
type Action struct {
	Type   ActionType `json:"type"`
	Reason ExitReason `json:"reason,omitempty"`
}

func NewNoAction() Action {
	return Action{Type: ActionTypeNone}
}

func NewEnterLongAction() Action {
	return Action{Type: ActionTypeEnterLong}
}

func NewExitLongAction(reason ExitReason) Action {
	return Action{
		Type:   ActionTypeExitLong,
		Reason: reason,
	}
}
