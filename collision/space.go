package collision

import (
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Tags applied to the resolv objects mirrored by Space.
const (
	TagHard = "hard"
	TagSoft = "soft"
	TagDoor = "door"
	TagSand = "sand"
)

// Space mirrors every block into a resolv space for broad-phase lookups and
// debug drawing. Each object carries its category tag and a copy of its
// rectangle in Data. BoundsAt stays the source of truth for resolution.
func (h *Handler) Space(width, height, cellWidth, cellHeight int) *resolv.Space {
	space := resolv.NewSpace(width, height, cellWidth, cellHeight)
	if h == nil {
		return space
	}
	for _, c := range [...]struct {
		tag    string
		blocks []gamemath.Rect
	}{
		{TagHard, h.hard},
		{TagSoft, h.soft},
		{TagDoor, h.door},
		{TagSand, h.sand},
	} {
		for _, r := range c.blocks {
			obj := resolv.NewObject(r.X, r.Y, r.W, r.H, c.tag)
			obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
			obj.Data = r
			space.Add(obj)
		}
	}
	return space
}
