package collision

import (
	"testing"

	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/shared/leveldata"
)

func TestBoundsAt(t *testing.T) {
	hardA := gamemath.NewRect(0, 0, 100, 10)
	hardB := gamemath.NewRect(50, 0, 10, 100)
	soft := gamemath.NewRect(0, 50, 40, 5)
	h := NewHandler([]gamemath.Rect{hardA, hardB}, []gamemath.Rect{soft})

	tests := []struct {
		name   string
		probe  gamemath.Rect
		mask   Filter
		want   gamemath.Rect
		wantOK bool
	}{
		{"first hard in list order", gamemath.NewRect(55, 5, 2, 2), Hard, hardA, true},
		{"second hard", gamemath.NewRect(52, 40, 2, 2), Hard, hardB, true},
		{"soft ignored by hard mask", gamemath.NewRect(10, 51, 2, 2), Hard, gamemath.Rect{}, false},
		{"soft with both", gamemath.NewRect(10, 51, 2, 2), Hard | Soft, soft, true},
		{"hard preferred over soft", gamemath.NewRect(0, 8, 5, 50), Hard | Soft, hardA, true},
		{"touching edge misses", gamemath.NewRect(0, 10, 5, 5), Hard, gamemath.Rect{}, false},
		{"empty mask", gamemath.NewRect(55, 5, 2, 2), None, gamemath.Rect{}, false},
		{"empty space", gamemath.NewRect(200, 200, 5, 5), All, gamemath.Rect{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.BoundsAt(tt.probe, tt.mask)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("BoundsAt = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsAtNilLists(t *testing.T) {
	h := NewHandler(nil, nil)
	if _, ok := h.BoundsAt(gamemath.NewRect(0, 0, 10, 10), All); ok {
		t.Error("nil lists should never match")
	}

	var nilHandler *Handler
	if nilHandler.IsCollisionWithHardBlock(gamemath.NewRect(0, 0, 10, 10)) {
		t.Error("nil handler should never match")
	}
}

func TestDoorAndSand(t *testing.T) {
	door := gamemath.NewRect(0, 0, 10, 10)
	sand := gamemath.NewRect(20, 0, 10, 10)
	h := NewHandler(nil, nil)
	h.SetDoorBlocks([]gamemath.Rect{door})
	h.SetSandBlocks([]gamemath.Rect{sand})

	if h.IsCollisionWithHardBlock(gamemath.NewRect(1, 1, 2, 2)) {
		t.Error("door must not count as hard")
	}
	if got, ok := h.BoundsAt(gamemath.NewRect(1, 1, 2, 2), Door); !ok || got != door {
		t.Errorf("door query = %+v, %v", got, ok)
	}
	if got, ok := h.BoundsAt(gamemath.NewRect(21, 1, 2, 2), All); !ok || got != sand {
		t.Errorf("sand query = %+v, %v", got, ok)
	}
}

func TestNewHandlerFromLevel(t *testing.T) {
	level := &leveldata.Level{
		HardBlocks: []gamemath.Rect{gamemath.NewRect(0, 0, 10, 10)},
		SandBlocks: []gamemath.Rect{gamemath.NewRect(20, 0, 10, 10)},
	}
	h := NewHandlerFromLevel(level)
	if len(h.HardBlocks()) != 1 || len(h.SandBlocks()) != 1 {
		t.Fatalf("hard=%d sand=%d", len(h.HardBlocks()), len(h.SandBlocks()))
	}
	if h.SoftBlocks() != nil || h.DoorBlocks() != nil {
		t.Error("absent categories should be nil")
	}
	if NewHandlerFromLevel(nil).IsCollisionWithHardBlock(gamemath.NewRect(0, 0, 5, 5)) {
		t.Error("nil level should produce an empty handler")
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		f    Filter
		want string
	}{
		{None, "none"},
		{Hard, "hard"},
		{Hard | Soft, "hard|soft"},
		{All, "hard|soft|door|sand"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Filter(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
	if (Hard | Soft).Has(Door) {
		t.Error("Has(Door) on hard|soft")
	}
	if None.Has(None) {
		t.Error("None.Has(None) should be false")
	}
}

func TestSpaceMirrorsBlocks(t *testing.T) {
	h := NewHandler(
		[]gamemath.Rect{gamemath.NewRect(0, 0, 160, 16)},
		[]gamemath.Rect{gamemath.NewRect(32, 48, 32, 8)},
	)
	h.SetSandBlocks([]gamemath.Rect{gamemath.NewRect(96, 16, 32, 8)})

	space := h.Space(160, 80, 16, 16)
	counts := map[string]int{}
	for _, obj := range space.Objects() {
		for _, tag := range []string{TagHard, TagSoft, TagDoor, TagSand} {
			if obj.HasTags(tag) {
				counts[tag]++
			}
		}
		if _, ok := obj.Data.(gamemath.Rect); !ok {
			t.Errorf("object Data = %T, want gamemath.Rect", obj.Data)
		}
	}
	if counts[TagHard] != 1 || counts[TagSoft] != 1 || counts[TagSand] != 1 || counts[TagDoor] != 0 {
		t.Errorf("tag counts = %v", counts)
	}
}
