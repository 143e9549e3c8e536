package models

// MenuState is the tagged conversation state per user. It decides which
// button set the gateway should render next; it never reaches the
// streak/achievement logic.
type MenuState string

const (
	MenuStateMain      MenuState = "main_menu"
	MenuStateHelp      MenuState = "help_menu"
	MenuStateEmergency MenuState = "emergency_help"
)

// Session holds per-user conversation state. Stored in Redis keyed by
// user_id so that chat membership survives process restarts.
type Session struct {
	UserID    int64     `json:"user_id"`
	MenuState MenuState `json:"menu_state"`
	InChat    bool      `json:"in_chat"`
}
