package components

import (
	cfg "github.com/automoto/platformkit/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the full ActionState for an action ID.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	curr := i.Current[id]
	prev := i.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IsShootButtonPressed makes InputData usable as a weapon trigger.
func (i *InputData) IsShootButtonPressed() bool { return i.Current[cfg.ActionShoot] }

func (i *InputData) IsLeftPressed() bool { return i.Current[cfg.ActionMoveLeft] }
func (i *InputData) IsRightPressed() bool { return i.Current[cfg.ActionMoveRight] }
func (i *InputData) IsUpPressed() bool { return i.Current[cfg.ActionMoveUp] }
func (i *InputData) IsDownPressed() bool { return i.Current[cfg.ActionMoveDown] }
func (i *InputData) IsJumpPressed() bool { return i.Current[cfg.ActionJump] }
func (i *InputData) IsCrouchPressed() bool { return i.Current[cfg.ActionCrouch] }
func (i *InputData) IsPausePressed() bool { return i.Action(cfg.ActionPause).JustPressed }
func (i *InputData) IsExitPressed() bool { return i.Action(cfg.ActionExit).JustPressed }
