package collision

import "strings"

// Filter selects which block categories a query considers.
type Filter uint8

const (
	Hard Filter = 1 << iota
	Soft
	Door
	Sand

	None Filter = 0
	All         = Hard | Soft | Door | Sand
)

// Has reports whether every category in other is selected by f.
func (f Filter) Has(other Filter) bool {
	return other != 0 && f&other == other
}

func (f Filter) String() string {
	if f == None {
		return "none"
	}
	var names []string
	for _, c := range []struct {
		flag Filter
		name string
	}{
		{Hard, "hard"},
		{Soft, "soft"},
		{Door, "door"},
		{Sand, "sand"},
	} {
		if f.Has(c.flag) {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, "|")
}
