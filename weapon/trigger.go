package weapon

//go:generate go tool mockgen -destination=./mocks/trigger_mock.go -package=mocks . Trigger

// Trigger reports the state of the fire control. Semi-automatic weapons poll
// it once per Tick.
type Trigger interface {
	IsShootButtonPressed() bool
}
