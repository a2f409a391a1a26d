package trellis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/trellis/flex"
)

// StyleSheet is a set of named flex styles loaded from TOML.
//
//	[styles.toolbar]
//	direction = "row"
//	justify_content = "space-between"
//	align_items = "center"
//	padding = [4, 8]
//
//	[styles.button]
//	grow = 1
//	shrink = "auto"
//	min_width = 40
//	color = "#3080ff"
type StyleSheet struct {
	styles map[string]*Style
}

// Style holds the properties of one named style. Unset fields leave the
// node's current value alone.
type Style struct {
	// Container
	Direction      *string   `toml:"direction"`
	Wrap           *bool     `toml:"wrap"`
	JustifyContent *string   `toml:"justify_content"`
	AlignItems     *string   `toml:"align_items"`
	AlignContent   *string   `toml:"align_content"`
	Padding        []float64 `toml:"padding"`

	// Item
	Grow      *float64  `toml:"grow"`
	Shrink    any       `toml:"shrink"`
	AlignSelf *string   `toml:"align_self"`
	MinWidth  *float64  `toml:"min_width"`
	MaxWidth  *float64  `toml:"max_width"`
	MinHeight *float64  `toml:"min_height"`
	MaxHeight *float64  `toml:"max_height"`
	Margin    []float64 `toml:"margin"`

	// Node
	Width  *float64 `toml:"width"`
	Height *float64 `toml:"height"`
	Color  *string  `toml:"color"`

	direction      flex.Direction
	justifyContent flex.SpacingMode
	alignItems     flex.Align
	alignContent   flex.SpacingMode
	alignSelf      flex.Align
	shrink         flex.ShrinkFactor
	color          Color
}

type styleFile struct {
	Styles map[string]*Style `toml:"styles"`
}

// LoadStyleSheet parses a TOML style sheet. Every keyword is validated up
// front so that Apply cannot fail on a loaded style.
func LoadStyleSheet(data []byte) (*StyleSheet, error) {
	var f styleFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse style sheet: %w", err)
	}
	for name, st := range f.Styles {
		if st == nil {
			continue
		}
		if err := st.resolve(); err != nil {
			return nil, fmt.Errorf("parse style sheet: style %q: %w", name, err)
		}
	}
	if f.Styles == nil {
		f.Styles = make(map[string]*Style)
	}
	return &StyleSheet{styles: f.Styles}, nil
}

// Style returns the named style, or nil.
func (ss *StyleSheet) Style(name string) *Style {
	return ss.styles[name]
}

// Apply applies the named styles to n in order. Later styles override
// earlier ones. Container properties enable flex on n.
func (ss *StyleSheet) Apply(n *Node, names ...string) error {
	for _, name := range names {
		st := ss.styles[name]
		if st == nil {
			return fmt.Errorf("trellis: unknown style %q", name)
		}
		st.Apply(n)
	}
	return nil
}

func (st *Style) resolve() error {
	var ok bool
	if st.Direction != nil {
		if st.direction, ok = flex.ParseDirection(*st.Direction); !ok {
			return fmt.Errorf("unknown direction %q", *st.Direction)
		}
	}
	if st.JustifyContent != nil {
		if st.justifyContent, ok = flex.ParseSpacingMode(*st.JustifyContent); !ok {
			return fmt.Errorf("unknown justify_content %q", *st.JustifyContent)
		}
	}
	if st.AlignContent != nil {
		if st.alignContent, ok = flex.ParseSpacingMode(*st.AlignContent); !ok {
			return fmt.Errorf("unknown align_content %q", *st.AlignContent)
		}
	}
	if st.AlignItems != nil {
		if st.alignItems, ok = flex.ParseAlign(*st.AlignItems); !ok {
			return fmt.Errorf("unknown align_items %q", *st.AlignItems)
		}
	}
	if st.AlignSelf != nil {
		if st.alignSelf, ok = flex.ParseAlign(*st.AlignSelf); !ok {
			return fmt.Errorf("unknown align_self %q", *st.AlignSelf)
		}
	}
	switch v := st.Shrink.(type) {
	case nil:
	case string:
		if !strings.EqualFold(v, "auto") {
			return fmt.Errorf("shrink must be a number or \"auto\", got %q", v)
		}
		st.shrink = flex.ShrinkAuto
	case int64:
		st.shrink = flex.Shrink(float64(v))
	case float64:
		st.shrink = flex.Shrink(v)
	default:
		return fmt.Errorf("shrink must be a number or \"auto\", got %T", v)
	}
	if err := checkEdges("padding", st.Padding); err != nil {
		return err
	}
	if err := checkEdges("margin", st.Margin); err != nil {
		return err
	}
	if st.Color != nil {
		c, err := ParseColor(*st.Color)
		if err != nil {
			return err
		}
		st.color = c
	}
	return nil
}

func (st *Style) hasContainer() bool {
	return st.Direction != nil || st.Wrap != nil || st.JustifyContent != nil ||
		st.AlignItems != nil || st.AlignContent != nil || st.Padding != nil
}

// Apply sets the style's properties on n.
func (st *Style) Apply(n *Node) {
	if st.hasContainer() {
		c := n.EnableFlex()
		if st.Direction != nil {
			c.SetDirection(st.direction)
		}
		if st.Wrap != nil {
			c.SetWrap(*st.Wrap)
		}
		if st.JustifyContent != nil {
			c.SetJustifyContent(st.justifyContent)
		}
		if st.AlignItems != nil {
			c.SetAlignItems(st.alignItems)
		}
		if st.AlignContent != nil {
			c.SetAlignContent(st.alignContent)
		}
		if st.Padding != nil {
			c.SetPaddings(expandEdges(st.Padding))
		}
	}

	it := n.FlexItem()
	if st.Grow != nil {
		it.SetGrow(*st.Grow)
	}
	if st.Shrink != nil {
		it.SetShrink(st.shrink)
	}
	if st.AlignSelf != nil {
		it.SetAlignSelf(st.alignSelf)
	}
	if st.MinWidth != nil {
		it.SetMinWidth(*st.MinWidth)
	}
	if st.MaxWidth != nil {
		it.SetMaxWidth(*st.MaxWidth)
	}
	if st.MinHeight != nil {
		it.SetMinHeight(*st.MinHeight)
	}
	if st.MaxHeight != nil {
		it.SetMaxHeight(*st.MaxHeight)
	}
	if st.Margin != nil {
		it.SetMargins(expandEdges(st.Margin))
	}

	if st.Width != nil || st.Height != nil {
		w, h := n.Size()
		if st.Width != nil {
			w = *st.Width
		}
		if st.Height != nil {
			h = *st.Height
		}
		n.SetSize(w, h)
	}
	if st.Color != nil {
		n.Color = st.color
	}
}

func checkEdges(name string, v []float64) error {
	switch len(v) {
	case 0, 1, 2, 4:
		return nil
	}
	return fmt.Errorf("%s takes 1, 2 or 4 values, got %d", name, len(v))
}

// expandEdges expands the CSS shorthand forms [all], [vertical, horizontal]
// and [top, right, bottom, left].
func expandEdges(v []float64) (top, right, bottom, left float64) {
	switch len(v) {
	case 1:
		return v[0], v[0], v[0], v[0]
	case 2:
		return v[0], v[1], v[0], v[1]
	case 4:
		return v[0], v[1], v[2], v[3]
	}
	return 0, 0, 0, 0
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("color %q must start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q has wrong length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
