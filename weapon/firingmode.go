package weapon

// FiringMode decides how a held trigger turns into shots.
type FiringMode int

const (
	// Semi fires once per trigger press.
	Semi FiringMode = iota
	// Automatic fires once per shooting interval for as long as Shoot is called.
	Automatic
)

func (m FiringMode) String() string {
	switch m {
	case Semi:
		return "semi"
	case Automatic:
		return "automatic"
	default:
		return "unknown"
	}
}

// SpreadMode is the number of pellets a shotgun fires per shot.
type SpreadMode int

const (
	Triple      SpreadMode = 3
	FiveSpread  SpreadMode = 5
	SevenSpread SpreadMode = 7
)

func (s SpreadMode) Pellets() int {
	return int(s)
}
