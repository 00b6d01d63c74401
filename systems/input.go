package systems

import (
	"strings"

	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/config/bindings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer and UpdateWeapons in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range bindings.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	if stick, gpID, ok := readAnalogStick(gamepadIDs); ok {
		for i, pressed := range stick {
			if pressed {
				input.Current[stickActions[i]] = true
			}
		}
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// stickActions maps readAnalogStick's result order to actions.
var stickActions = [4]cfg.ActionID{
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
	cfg.ActionMoveUp,
	cfg.ActionMoveDown,
}

// readAnalogStick reads the left stick of every gamepad past the deadzone.
// The result is ordered left, right, up, down.
func readAnalogStick(gamepads []ebiten.GamepadID) (dirs [4]bool, activeGpID ebiten.GamepadID, ok bool) {
	deadzone := bindings.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		moved := [4]bool{
			horizontal < -deadzone,
			horizontal > deadzone,
			vertical < -deadzone,
			vertical > deadzone,
		}
		for i, m := range moved {
			if m {
				dirs[i] = true
				activeGpID = gpID
				ok = true
			}
		}
	}
	return dirs, activeGpID, ok
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	for _, hint := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, hint) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// InputTrigger reads the shoot button from the ECS's Input component. It
// looks the component up on every call so it can outlive storage moves.
type InputTrigger struct {
	ECS *ecs.ECS
}

func (t InputTrigger) IsShootButtonPressed() bool {
	return getOrCreateInput(t.ECS).IsShootButtonPressed()
}

// ExitRequested reports whether exit was pressed this frame.
func ExitRequested(e *ecs.ECS) bool {
	return getOrCreateInput(e).IsExitPressed()
}
