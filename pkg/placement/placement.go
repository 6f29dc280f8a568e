package placement

import "fmt"

// ProfileSystem holds the geometric parameters of a window/door profile
// system. All dimensions are in millimeters.
type ProfileSystem struct {
	Name          string  `json:"name" form:"name"`
	AxisOffset    float64 `json:"axisOffset" form:"axisOffset"`
	SashThickness float64 `json:"sashThickness" form:"sashThickness"`
	FrameWidth    float64 `json:"frameWidth" form:"frameWidth"`
	SashWidth     float64 `json:"sashWidth" form:"sashWidth"`
	Description   string  `json:"description" form:"description"`
}

// Placement is a computed mounting point for a single hardware item.
// X and Y are millimeters from the top-left corner of the window.
type Placement struct {
	Article  string  `json:"article"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Notes    string  `json:"notes,omitempty"`
}

// Spec describes one explicitly specified hardware item. An absolute
// coordinate takes precedence over a relative offset; if neither is set
// the axis defaults to 0. Both axes are resolved independently.
type Spec struct {
	Article  string   `json:"article" form:"article"`
	Name     string   `json:"name" form:"name"`
	X        *float64 `json:"x" form:"x"`
	Y        *float64 `json:"y" form:"y"`
	XOffset  *float64 `json:"xOffset" form:"xOffset"`
	YOffset  *float64 `json:"yOffset" form:"yOffset"`
	Rotation float64  `json:"rotation" form:"rotation"`
	Notes    string   `json:"notes" form:"notes"`
}

// ExtractedItem is a hardware item obtained from an external source such
// as a parsed specification sheet. Coordinates are optional; items
// without them are placed by categorizing their free-text name.
type ExtractedItem struct {
	Article   string   `json:"article" form:"article"`
	Name      string   `json:"name" form:"name"`
	XPosition *float64 `json:"xPosition" form:"xPosition"`
	YPosition *float64 `json:"yPosition" form:"yPosition"`
	Rotation  float64  `json:"rotation" form:"rotation"`
	Notes     string   `json:"notes" form:"notes"`
}

// UnknownProfileError reports a calculation that referenced a profile
// system that was never registered.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("profile system %q not found", e.Name)
}
