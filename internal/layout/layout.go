// Package layout places the obstacle course from tracked QR codes.
//
// Each printed code names a layout. When a code is seen, the obstacle parent
// is moved to the code and every obstacle is put at its layout position.
package layout

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrUnknownLayout is returned when a layout name is not in the set.
var ErrUnknownLayout = errors.New("unknown layout")

const (
	// Unrecognized is the layout reported for codes with an unknown payload.
	Unrecognized = "Unrecognized Layout"
	// Demo is the single-obstacle layout used for walkthroughs.
	Demo = "Demo Layout"

	numberedCodes = 8
)

// Hidden obstacles are parked far outside the course.
const hiddenOffset = 1000

// Obstacle kinds, which decide the height an obstacle sits at.
const (
	KindLow  = "low"
	KindWide = "wide"
	KindHigh = "high"
)

// Heights in meters for each obstacle kind. High is operator adjustable and
// is read from the rig when a layout is applied.
type Heights struct {
	Low  float32
	Wide float32
	High float32
}

// DefaultHeights are the course heights for a 5'4" user.
func DefaultHeights() Heights {
	return Heights{Low: 0.05, Wide: 0.9, High: 1.524}
}

func (h Heights) forKind(kind string) float32 {
	switch kind {
	case KindHigh:
		return h.High
	case KindWide:
		return h.Wide
	}
	return h.Low
}

// --- JSON types ---

type File struct {
	Layouts []Def `json:"layouts"`
}

// Def is one named course layout.
type Def struct {
	Name      string      `json:"name"`
	Obstacles []Placement `json:"obstacles"`
}

// Placement puts one obstacle on the floor plan. Position is [x, z] as the
// walker sees it: +x to the walker's right, +z ahead along the hallway. The
// height comes from the kind.
type Placement struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Position [2]float32 `json:"position"`
	Hidden   bool       `json:"hidden,omitempty"`
}

// Local returns the obstacle's local position under the obstacle parent.
// The parent's local +Z runs ahead, which leaves its local -X on the walker's
// right, so the floor plan x is negated.
func (p Placement) Local(h Heights) rl.Vector3 {
	if p.Hidden {
		return rl.Vector3{X: hiddenOffset, Y: h.forKind(p.Kind), Z: hiddenOffset}
	}
	return rl.Vector3{X: -p.Position[0], Y: h.forKind(p.Kind), Z: p.Position[1]}
}

// Set is the collection of layouts known to the rig.
type Set struct {
	defs  map[string]Def
	order []string
}

//go:embed layouts.json
var defaultLayouts []byte

// Default returns the built-in hallway layouts.
func Default() *Set {
	s, err := Parse(defaultLayouts)
	if err != nil {
		panic(fmt.Sprintf("built-in layouts: %v", err))
	}
	return s
}

// Load reads a layout file from disk.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layouts: %w", err)
	}
	return Parse(data)
}

// Parse decodes a layout file.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	s := &Set{defs: make(map[string]Def, len(f.Layouts))}
	for _, def := range f.Layouts {
		if def.Name == "" {
			return nil, errors.New("parse layouts: layout without a name")
		}
		if _, dup := s.defs[def.Name]; dup {
			return nil, fmt.Errorf("parse layouts: duplicate layout %q", def.Name)
		}
		for _, p := range def.Obstacles {
			switch p.Kind {
			case KindLow, KindWide, KindHigh:
			default:
				return nil, fmt.Errorf("parse layouts: %s: obstacle %q has unknown kind %q", def.Name, p.Name, p.Kind)
			}
		}
		s.defs[def.Name] = def
		s.order = append(s.order, def.Name)
	}
	return s, nil
}

// Get returns the named layout.
func (s *Set) Get(name string) (Def, error) {
	def, ok := s.defs[name]
	if !ok {
		return Def{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return def, nil
}

// Names lists the layouts in file order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// PayloadToLayout maps a QR payload to its layout name: "QR Code N" is
// "Layout N" for N in 1..8, "Demo" is the demo layout, anything else is
// unrecognized.
func PayloadToLayout(payload string) string {
	if payload == "Demo" {
		return Demo
	}
	if rest, ok := strings.CutPrefix(payload, "QR Code "); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= numberedCodes && strconv.Itoa(n) == rest {
			return "Layout " + rest
		}
	}
	return Unrecognized
}
