package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionShoot
	ActionCrouch
	ActionPause
	ActionExit
	ActionToggleBounds
	ActionToggleMute
	ActionToggleGodMode
	ActionToggleFlying
	ActionCount // Must be last - used for array sizing
)
