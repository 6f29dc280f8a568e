package placement

import "fmt"

type Alignment string

const (
	AlignmentHorizontal Alignment = "horizontal"
	AlignmentVertical   Alignment = "vertical"
)

// edgeMargin keeps symmetrically distributed items away from the very
// edge of the window, as a fraction of the distribution axis.
const edgeMargin = 0.05

// Calculator derives 2D mounting coordinates for hardware items from
// window dimensions and a registered profile system. It owns its own
// profile registry; calculations are pure reads over it.
type Calculator struct {
	profiles  map[string]ProfileSystem
	templates map[Category][]rule
}

func NewCalculator() *Calculator {
	return &Calculator{
		profiles:  make(map[string]ProfileSystem),
		templates: defaultTemplates(),
	}
}

// RegisterProfile stores a profile system by name. Registering the same
// name again replaces the previous entry.
func (c *Calculator) RegisterProfile(profile ProfileSystem) {
	c.profiles[profile.Name] = profile
}

// Profile returns the registered profile system by name.
func (c *Calculator) Profile(name string) (ProfileSystem, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

func (c *Calculator) requireProfile(name string) error {
	if _, ok := c.profiles[name]; !ok {
		return &UnknownProfileError{Name: name}
	}
	return nil
}

// PlacementsForCategory computes the built-in template placements of a
// hardware category for the given window size. An unknown category
// yields an empty result, not an error.
func (c *Calculator) PlacementsForCategory(windowWidth, windowHeight float64, profileName string, category Category) ([]Placement, error) {
	if err := c.requireProfile(profileName); err != nil {
		return nil, err
	}

	template := c.templates[category]
	placements := make([]Placement, 0, len(template))

	for _, r := range template {
		var x, y float64

		switch r.kind {
		case rulePosition:
			x = windowWidth * r.xOffset
			y = windowHeight * r.yOffset
		case ruleDimension:
			boxX := windowWidth * r.xOffset
			boxY := windowHeight * r.yOffset
			boxWidth := windowWidth * r.widthRatio
			boxHeight := windowHeight * r.heightRatio
			x = boxX + boxWidth/2
			y = boxY + boxHeight/2
		}

		placements = append(placements, Placement{
			Article: fmt.Sprintf("%s-%d", category, len(placements)+1),
			Name:    r.name,
			X:       x,
			Y:       y,
		})
	}

	return placements, nil
}

// PlacementsFromSpecs resolves explicitly specified hardware items to
// concrete coordinates. The profile is looked up for validation only;
// the arithmetic depends solely on the specs and the window size.
func (c *Calculator) PlacementsFromSpecs(windowWidth, windowHeight float64, profileName string, specs []Spec) ([]Placement, error) {
	if err := c.requireProfile(profileName); err != nil {
		return nil, err
	}

	placements := make([]Placement, 0, len(specs))

	for _, spec := range specs {
		article := spec.Article
		if article == "" {
			article = fmt.Sprintf("HW-%d", len(placements)+1)
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("Компонент-%d", len(placements)+1)
		}

		placements = append(placements, Placement{
			Article:  article,
			Name:     name,
			X:        resolveAxis(spec.X, spec.XOffset, windowWidth),
			Y:        resolveAxis(spec.Y, spec.YOffset, windowHeight),
			Rotation: spec.Rotation,
			Notes:    spec.Notes,
		})
	}

	return placements, nil
}

// resolveAxis picks the absolute coordinate if present, otherwise
// scales the relative offset by the window dimension, otherwise 0.
func resolveAxis(absolute, relative *float64, dimension float64) float64 {
	if absolute != nil {
		return *absolute
	}
	if relative != nil {
		return dimension * *relative
	}
	return 0
}

// PlacementsSymmetric distributes count identical items evenly along
// one axis while centering them on the other. A 5% margin on each side
// keeps items off the window edge. count <= 0 yields an empty result.
func (c *Calculator) PlacementsSymmetric(windowWidth, windowHeight float64, profileName, article, name string, count int, alignment Alignment) ([]Placement, error) {
	if err := c.requireProfile(profileName); err != nil {
		return nil, err
	}

	placements := make([]Placement, 0, max(count, 0))

	switch alignment {
	case AlignmentHorizontal:
		for i, x := range distribute(windowWidth, count) {
			placements = append(placements, Placement{
				Article: fmt.Sprintf("%s-%d", article, i+1),
				Name:    fmt.Sprintf("%s %d", name, i+1),
				X:       x,
				Y:       windowHeight / 2,
			})
		}
	case AlignmentVertical:
		for i, y := range distribute(windowHeight, count) {
			placements = append(placements, Placement{
				Article: fmt.Sprintf("%s-%d", article, i+1),
				Name:    fmt.Sprintf("%s %d", name, i+1),
				X:       windowWidth / 2,
				Y:       y,
			})
		}
	}

	return placements, nil
}

// distribute returns count coordinates spread evenly over the dimension
// between the edge margins, or the single midpoint for count == 1.
func distribute(dimension float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{dimension / 2}
	}

	margin := edgeMargin * dimension
	step := (dimension - 2*margin) / float64(count-1)

	positions := make([]float64, count)
	for i := range positions {
		positions[i] = margin + float64(i)*step
	}
	return positions
}

// PlacementsFromExtractedData places hardware items coming from an
// external extraction step. Items carrying explicit coordinates pass
// through unchanged; the rest are placed at the first default placement
// of their categorized name, falling back to the window center when the
// category has no template.
func (c *Calculator) PlacementsFromExtractedData(windowWidth, windowHeight float64, profileName string, items []ExtractedItem) ([]Placement, error) {
	if err := c.requireProfile(profileName); err != nil {
		return nil, err
	}

	placements := make([]Placement, 0, len(items))

	for _, item := range items {
		article := item.Article
		if article == "" {
			article = "N/A"
		}
		name := item.Name
		if name == "" {
			name = "Unknown"
		}

		if item.XPosition != nil && item.YPosition != nil {
			placements = append(placements, Placement{
				Article:  article,
				Name:     name,
				X:        *item.XPosition,
				Y:        *item.YPosition,
				Rotation: item.Rotation,
				Notes:    item.Notes,
			})
			continue
		}

		category := CategorizeHardwareName(item.Name)
		defaults, err := c.PlacementsForCategory(windowWidth, windowHeight, profileName, category)
		if err != nil {
			return nil, err
		}

		placement := Placement{
			Article: article,
			Name:    name,
			X:       windowWidth / 2,
			Y:       windowHeight / 2,
			Notes:   item.Notes,
		}
		if len(defaults) > 0 {
			placement.X = defaults[0].X
			placement.Y = defaults[0].Y
			placement.Rotation = defaults[0].Rotation
		}

		placements = append(placements, placement)
	}

	return placements, nil
}

// Recommendations groups default mounting points for the common
// hardware categories of a single window.
type Recommendations struct {
	Hinges []Placement `json:"hinges"`
	Handle []Placement `json:"handle"`
	Lock   []Placement `json:"lock"`
	Sill   []Placement `json:"sill"`
}

// MountingRecommendations computes the default placements for hinges,
// handle, lock and sill in one call.
func (c *Calculator) MountingRecommendations(windowWidth, windowHeight float64, profileName string) (Recommendations, error) {
	if err := c.requireProfile(profileName); err != nil {
		return Recommendations{}, err
	}

	var rec Recommendations
	var err error

	if rec.Hinges, err = c.PlacementsForCategory(windowWidth, windowHeight, profileName, CategoryHinge); err != nil {
		return Recommendations{}, err
	}
	if rec.Handle, err = c.PlacementsForCategory(windowWidth, windowHeight, profileName, CategoryHandle); err != nil {
		return Recommendations{}, err
	}
	if rec.Lock, err = c.PlacementsForCategory(windowWidth, windowHeight, profileName, CategoryLock); err != nil {
		return Recommendations{}, err
	}
	if rec.Sill, err = c.PlacementsForCategory(windowWidth, windowHeight, profileName, CategorySill); err != nil {
		return Recommendations{}, err
	}

	return rec, nil
}
