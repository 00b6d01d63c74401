package object

import (
	"os/exec"
	"strings"
	"testing"
)

// The movement core must build on machines without a window system.
func TestCoreDoesNotLinkEngine(t *testing.T) {
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not on PATH")
	}

	banned := []string{
		"github.com/hajimehoshi/ebiten",
		"github.com/yohamta/donburi",
	}
	for _, pkg := range []string{"../pool", "../collision", "../projectile", "../weapon", "."} {
		out, err := exec.Command(goBin, "list", "-deps", pkg).Output()
		if err != nil {
			t.Fatalf("go list -deps %s: %v", pkg, err)
		}
		for _, dep := range strings.Fields(string(out)) {
			for _, prefix := range banned {
				if strings.HasPrefix(dep, prefix) {
					t.Errorf("%s depends on %s", pkg, dep)
				}
			}
		}
	}
}
