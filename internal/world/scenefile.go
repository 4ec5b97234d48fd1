package world

import (
	"encoding/json"
	"fmt"
	"os"

	"visualcues/internal/components"
	"visualcues/internal/engine"
	"visualcues/internal/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components,omitempty"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
	Color  string     `json:"color,omitempty"`
}

type cameraDef struct {
	Type string  `json:"type"`
	FOV  float32 `json:"fov,omitempty"`
	Near float32 `json:"near,omitempty"`
	Far  float32 `json:"far,omitempty"`
}

type headControllerDef struct {
	Type      string  `json:"type"`
	Yaw       float32 `json:"yaw"`
	Pitch     float32 `json:"pitch"`
	EyeHeight float32 `json:"eyeHeight,omitempty"`
	MoveSpeed float32 `json:"moveSpeed,omitempty"`
}

type hudCueDef struct {
	Type      string  `json:"type"`
	Direction string  `json:"direction"`
	Length    float32 `json:"length,omitempty"`
	Thickness float32 `json:"thickness,omitempty"`
}

type rectTransformDef struct {
	Type             string     `json:"type"`
	Anchor           string     `json:"anchor"`
	AnchoredPosition [2]float32 `json:"anchoredPosition,omitempty"`
	SizeDelta        [2]float32 `json:"sizeDelta,omitempty"`
}

type uiImageDef struct {
	Type         string  `json:"type"`
	Color        string  `json:"color"`
	Outline      string  `json:"outline,omitempty"`
	OutlineWidth float32 `json:"outlineWidth,omitempty"`
}

type uiTextDef struct {
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	FontSize    int32  `json:"fontSize,omitempty"`
	LineSpacing int32  `json:"lineSpacing,omitempty"`
	Color       string `json:"color,omitempty"`
	Background  string `json:"background,omitempty"`
	Align       string `json:"align,omitempty"`
}

type uiCanvasDef struct {
	Type      string `json:"type"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

// --- Name mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Gold":      rl.Gold,
	"Blank":     rl.Blank,
}

var (
	nameByColor  map[rl.Color]string
	nameByAnchor map[components.AnchorPreset]string
)

var anchorByName = map[string]components.AnchorPreset{
	"center":  components.AnchorMiddleCenter,
	"top":     components.AnchorTopCenter,
	"right":   components.AnchorMiddleRight,
	"bottom":  components.AnchorBottomCenter,
	"left":    components.AnchorMiddleLeft,
	"stretch": components.AnchorStretchAll,
	"topleft": components.AnchorTopLeft,
}

var alignByName = map[string]components.TextAlignment{
	"left":   components.TextAlignLeft,
	"center": components.TextAlignCenter,
	"right":  components.TextAlignRight,
}

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
	nameByAnchor = make(map[components.AnchorPreset]string, len(anchorByName))
	for name, a := range anchorByName {
		nameByAnchor[a] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if n, _ := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); n == 4 {
		return rl.NewColor(r, g, b, a)
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Loading ---

// LoadScene reads a scene file from disk.
func LoadScene(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene builds a scene from scene file JSON.
func ParseScene(data []byte) (*engine.Scene, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	scene := engine.NewScene("Main")
	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return nil, err
		}
		scene.AddGameObject(g)
	}
	return scene, nil
}

func buildObject(objDef ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(objDef.Name)
	if objDef.Active != nil {
		g.Active = *objDef.Active
	}
	g.Transform.Position = vec3(objDef.Position)
	g.Transform.Rotation = vec3(objDef.Rotation)

	// Default scale to 1 if zero
	if objDef.Scale != [3]float32{} {
		g.Transform.Scale = vec3(objDef.Scale)
	}

	for _, raw := range objDef.Components {
		if err := loadComponent(g, raw); err != nil {
			return nil, fmt.Errorf("parse scene: %s: %w", objDef.Name, err)
		}
	}

	for _, childDef := range objDef.Children {
		child, err := buildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return err
	}

	switch header.Type {
	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		col := components.NewBoxCollider(vec3(def.Size))
		col.Offset = vec3(def.Offset)
		if def.Color != "" {
			col.Color = lookupColor(def.Color)
		}
		g.AddComponent(col)

	case "Camera":
		var def cameraDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		cam := components.NewCamera()
		if def.FOV > 0 {
			cam.FOV = def.FOV
		}
		if def.Near > 0 {
			cam.Near = def.Near
		}
		if def.Far > 0 {
			cam.Far = def.Far
		}
		g.AddComponent(cam)

	case "HeadController":
		var def headControllerDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		h := components.NewHeadController()
		h.Yaw = def.Yaw
		h.Pitch = def.Pitch
		if def.EyeHeight > 0 {
			h.EyeHeight = def.EyeHeight
		}
		if def.MoveSpeed > 0 {
			h.MoveSpeed = def.MoveSpeed
		}
		g.AddComponent(h)

	case "HUDCue":
		var def hudCueDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		d, err := hud.ParseDirection(def.Direction)
		if err != nil {
			return err
		}
		cue := components.NewHUDCue(d)
		if def.Length > 0 {
			cue.Length = def.Length
		}
		if def.Thickness > 0 {
			cue.Thickness = def.Thickness
		}
		g.AddComponent(cue)

	case "RectTransform":
		var def rectTransformDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		preset, ok := anchorByName[def.Anchor]
		if !ok {
			return fmt.Errorf("unknown anchor %q", def.Anchor)
		}
		rt := components.NewRectTransform()
		rt.SetAnchorPreset(preset)
		rt.AnchoredPosition = rl.Vector2{X: def.AnchoredPosition[0], Y: def.AnchoredPosition[1]}
		rt.SizeDelta = rl.Vector2{X: def.SizeDelta[0], Y: def.SizeDelta[1]}
		g.AddComponent(rt)

	case "UIImage":
		var def uiImageDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		img := components.NewUIImage(lookupColor(def.Color))
		if def.OutlineWidth > 0 {
			img.Outline = lookupColor(def.Outline)
			img.OutlineWidth = def.OutlineWidth
		}
		g.AddComponent(img)

	case "UIText":
		var def uiTextDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		text := components.NewUIText()
		text.Text = def.Text
		if def.FontSize > 0 {
			text.FontSize = def.FontSize
		}
		if def.LineSpacing > 0 {
			text.LineSpacing = def.LineSpacing
		}
		if def.Color != "" {
			text.Color = lookupColor(def.Color)
		}
		if def.Background != "" {
			text.Background = lookupColor(def.Background)
		}
		if def.Align != "" {
			align, ok := alignByName[def.Align]
			if !ok {
				return fmt.Errorf("unknown text alignment %q", def.Align)
			}
			text.Alignment = align
		}
		g.AddComponent(text)

	case "UICanvas":
		var def uiCanvasDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		c := components.NewUICanvas()
		c.SortOrder = def.SortOrder
		g.AddComponent(c)

	default:
		return fmt.Errorf("unknown component type %q", header.Type)
	}
	return nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Saving ---

// SaveScene writes the scene, including current transforms, to path.
func SaveScene(scene *engine.Scene, path string) error {
	data, err := MarshalScene(scene)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// MarshalScene encodes the scene as scene file JSON.
func MarshalScene(scene *engine.Scene) ([]byte, error) {
	var sf SceneFile
	for _, g := range scene.GameObjects {
		sf.Objects = append(sf.Objects, objectDef(g))
	}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func objectDef(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Position: arr3(g.Transform.Position),
		Rotation: arr3(g.Transform.Rotation),
		Scale:    arr3(g.Transform.Scale),
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}
	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			def.Components = append(def.Components, raw)
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, objectDef(child))
	}
	return def
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr3(comp.Size),
			Offset: arr3(comp.Offset),
			Color:  lookupColorName(comp.Color),
		}

	case *components.Camera:
		def = cameraDef{Type: "Camera", FOV: comp.FOV, Near: comp.Near, Far: comp.Far}

	case *components.HeadController:
		def = headControllerDef{
			Type:      "HeadController",
			Yaw:       comp.Yaw,
			Pitch:     comp.Pitch,
			EyeHeight: comp.EyeHeight,
			MoveSpeed: comp.MoveSpeed,
		}

	case *components.HUDCue:
		def = hudCueDef{
			Type:      "HUDCue",
			Direction: comp.Direction.String(),
			Length:    comp.Length,
			Thickness: comp.Thickness,
		}

	case *components.RectTransform:
		anchor := "center"
		if preset, ok := comp.Preset(); ok {
			anchor = nameByAnchor[preset]
		}
		def = rectTransformDef{
			Type:             "RectTransform",
			Anchor:           anchor,
			AnchoredPosition: [2]float32{comp.AnchoredPosition.X, comp.AnchoredPosition.Y},
			SizeDelta:        [2]float32{comp.SizeDelta.X, comp.SizeDelta.Y},
		}

	case *components.UIImage:
		img := uiImageDef{Type: "UIImage", Color: lookupColorName(comp.Color)}
		if comp.OutlineWidth > 0 {
			img.Outline = lookupColorName(comp.Outline)
			img.OutlineWidth = comp.OutlineWidth
		}
		def = img

	case *components.UIText:
		text := uiTextDef{
			Type:        "UIText",
			Text:        comp.Text,
			FontSize:    comp.FontSize,
			LineSpacing: comp.LineSpacing,
			Color:       lookupColorName(comp.Color),
		}
		if comp.Background.A > 0 {
			text.Background = lookupColorName(comp.Background)
		}
		for name, align := range alignByName {
			if align == comp.Alignment {
				text.Align = name
			}
		}
		def = text

	case *components.UICanvas:
		def = uiCanvasDef{Type: "UICanvas", SortOrder: comp.SortOrder}

	default:
		return nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
