// Package collision answers "which static block, if any, does this rectangle
// overlap" against a level's hard, soft, door and sand blocks.
package collision

import (
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/shared/leveldata"
)

// Handler holds the static blocks of a level in the order they were loaded.
// Queries are linear scans; the first overlapping block wins.
type Handler struct {
	hard []gamemath.Rect
	soft []gamemath.Rect
	door []gamemath.Rect
	sand []gamemath.Rect
}

// NewHandler builds a handler over hard and soft blocks. Either list may be nil.
func NewHandler(hard, soft []gamemath.Rect) *Handler {
	return &Handler{hard: hard, soft: soft}
}

// NewHandlerFromLevel builds a handler over every block category of level.
func NewHandlerFromLevel(level *leveldata.Level) *Handler {
	if level == nil {
		return &Handler{}
	}
	return &Handler{
		hard: level.HardBlocks,
		soft: level.SoftBlocks,
		door: level.DoorBlocks,
		sand: level.SandBlocks,
	}
}

func (h *Handler) HardBlocks() []gamemath.Rect { return h.hard }
func (h *Handler) SoftBlocks() []gamemath.Rect { return h.soft }
func (h *Handler) DoorBlocks() []gamemath.Rect { return h.door }
func (h *Handler) SandBlocks() []gamemath.Rect { return h.sand }

// Setters replace a whole category. Call them while setting up a level,
// not while objects are moving.
func (h *Handler) SetHardBlocks(blocks []gamemath.Rect) { h.hard = blocks }
func (h *Handler) SetSoftBlocks(blocks []gamemath.Rect) { h.soft = blocks }
func (h *Handler) SetDoorBlocks(blocks []gamemath.Rect) { h.door = blocks }
func (h *Handler) SetSandBlocks(blocks []gamemath.Rect) { h.sand = blocks }

// BoundsAt returns the first block overlapping probe. Categories are scanned
// hard, soft, door, sand, skipping those not selected by mask.
func (h *Handler) BoundsAt(probe gamemath.Rect, mask Filter) (gamemath.Rect, bool) {
	if h == nil {
		return gamemath.Rect{}, false
	}
	for _, c := range [...]struct {
		flag   Filter
		blocks []gamemath.Rect
	}{
		{Hard, h.hard},
		{Soft, h.soft},
		{Door, h.door},
		{Sand, h.sand},
	} {
		if !mask.Has(c.flag) {
			continue
		}
		if r, ok := firstOverlap(probe, c.blocks); ok {
			return r, true
		}
	}
	return gamemath.Rect{}, false
}

// IsCollisionWithHardBlock reports whether box overlaps any hard block.
func (h *Handler) IsCollisionWithHardBlock(box gamemath.Rect) bool {
	_, ok := h.BoundsAt(box, Hard)
	return ok
}

func firstOverlap(probe gamemath.Rect, blocks []gamemath.Rect) (gamemath.Rect, bool) {
	for _, b := range blocks {
		if gamemath.Overlaps(probe, b) {
			return b, true
		}
	}
	return gamemath.Rect{}, false
}
