package placement

import (
	"errors"
	"math"
	"testing"
)

const floatTolerance = 1e-9

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func newTestCalculator() *Calculator {
	c := NewCalculator()
	c.RegisterProfile(ProfileSystem{
		Name:          "KBE 58",
		AxisOffset:    13,
		SashThickness: 58,
		FrameWidth:    58,
		SashWidth:     58,
	})
	return c
}

func TestPlacementsForCategory(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		height   float64
		category Category
		expected []Placement
	}{
		{
			name:     "Hinges on a standard window",
			width:    1000,
			height:   2000,
			category: CategoryHinge,
			expected: []Placement{
				{Article: "hinge-1", Name: "Петля верхняя", X: 50, Y: 100},
				{Article: "hinge-2", Name: "Петля средняя", X: 50, Y: 1000},
				{Article: "hinge-3", Name: "Петля нижняя", X: 50, Y: 1900},
			},
		},
		{
			name:     "Handle",
			width:    1000,
			height:   2000,
			category: CategoryHandle,
			expected: []Placement{
				{Article: "handle-1", Name: "Ручка", X: 500, Y: 1500},
			},
		},
		{
			name:     "Lock",
			width:    1000,
			height:   2000,
			category: CategoryLock,
			expected: []Placement{
				{Article: "lock-1", Name: "Замок", X: 950, Y: 1000},
			},
		},
		{
			name:     "Sill bounding box collapses to its center",
			width:    1000,
			height:   2000,
			category: CategorySill,
			expected: []Placement{
				{Article: "sill-1", Name: "Отлив", X: 500, Y: 1990},
			},
		},
		{
			name:     "Unknown category is empty, not an error",
			width:    1000,
			height:   2000,
			category: "unknown_category",
			expected: []Placement{},
		},
	}

	c := newTestCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.PlacementsForCategory(tt.width, tt.height, "KBE 58", tt.category)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertPlacements(t, got, tt.expected)
		})
	}
}

func TestUnknownProfile(t *testing.T) {
	c := newTestCalculator()

	tests := []struct {
		name string
		call func() error
	}{
		{"PlacementsForCategory", func() error {
			_, err := c.PlacementsForCategory(1000, 2000, "missing", CategoryHinge)
			return err
		}},
		{"PlacementsFromSpecs", func() error {
			_, err := c.PlacementsFromSpecs(1000, 2000, "missing", nil)
			return err
		}},
		{"PlacementsSymmetric", func() error {
			_, err := c.PlacementsSymmetric(1000, 2000, "missing", "A", "Item", 2, AlignmentHorizontal)
			return err
		}},
		{"PlacementsFromExtractedData", func() error {
			_, err := c.PlacementsFromExtractedData(1000, 2000, "missing", nil)
			return err
		}},
		{"MountingRecommendations", func() error {
			_, err := c.MountingRecommendations(1000, 2000, "missing")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var upe *UnknownProfileError
			if !errors.As(err, &upe) {
				t.Fatalf("expected UnknownProfileError, got %v", err)
			}
			if upe.Name != "missing" {
				t.Errorf("expected profile name %q in error, got %q", "missing", upe.Name)
			}
		})
	}
}

func TestRegisterProfileReplacesOnDuplicateName(t *testing.T) {
	c := NewCalculator()
	c.RegisterProfile(ProfileSystem{Name: "Rehau", FrameWidth: 60})
	c.RegisterProfile(ProfileSystem{Name: "Rehau", FrameWidth: 70})

	p, ok := c.Profile("Rehau")
	if !ok {
		t.Fatal("profile not found after registration")
	}
	if p.FrameWidth != 70 {
		t.Errorf("expected replaced profile with FrameWidth 70, got %v", p.FrameWidth)
	}
}

func TestPlacementsFromSpecs(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		specs    []Spec
		expected []Placement
	}{
		{
			name:  "Absolute x with relative y",
			specs: []Spec{{Article: "A1", Name: "Item", X: ptr(10), YOffset: ptr(0.5)}},
			expected: []Placement{
				{Article: "A1", Name: "Item", X: 10, Y: 250},
			},
		},
		{
			name:  "Absolute wins over relative",
			specs: []Spec{{Article: "A1", Name: "Item", X: ptr(42), XOffset: ptr(0.9)}},
			expected: []Placement{
				{Article: "A1", Name: "Item", X: 42, Y: 0},
			},
		},
		{
			name:  "Neither absolute nor relative defaults to zero",
			specs: []Spec{{Article: "A1", Name: "Item"}},
			expected: []Placement{
				{Article: "A1", Name: "Item", X: 0, Y: 0},
			},
		},
		{
			name:  "Rotation and notes pass through",
			specs: []Spec{{Article: "A1", Name: "Item", XOffset: ptr(0.1), YOffset: ptr(0.2), Rotation: 90, Notes: "into the sash"}},
			expected: []Placement{
				{Article: "A1", Name: "Item", X: 100, Y: 100, Rotation: 90, Notes: "into the sash"},
			},
		},
		{
			name:  "Missing article and name get defaults",
			specs: []Spec{{}},
			expected: []Placement{
				{Article: "HW-1", Name: "Компонент-1", X: 0, Y: 0},
			},
		},
	}

	c := newTestCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.PlacementsFromSpecs(1000, 500, "KBE 58", tt.specs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertPlacements(t, got, tt.expected)
		})
	}
}

func TestPlacementsSymmetric(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		alignment Alignment
		expected  []Placement
	}{
		{
			name:      "Single item centered horizontally",
			count:     1,
			alignment: AlignmentHorizontal,
			expected: []Placement{
				{Article: "A-1", Name: "Item 1", X: 500, Y: 250},
			},
		},
		{
			name:      "Three items with edge margins",
			count:     3,
			alignment: AlignmentHorizontal,
			expected: []Placement{
				{Article: "A-1", Name: "Item 1", X: 50, Y: 250},
				{Article: "A-2", Name: "Item 2", X: 500, Y: 250},
				{Article: "A-3", Name: "Item 3", X: 950, Y: 250},
			},
		},
		{
			name:      "Two items vertically",
			count:     2,
			alignment: AlignmentVertical,
			expected: []Placement{
				{Article: "A-1", Name: "Item 1", X: 500, Y: 25},
				{Article: "A-2", Name: "Item 2", X: 500, Y: 475},
			},
		},
		{
			name:      "Zero count is empty",
			count:     0,
			alignment: AlignmentHorizontal,
			expected:  []Placement{},
		},
		{
			name:      "Negative count is empty",
			count:     -3,
			alignment: AlignmentVertical,
			expected:  []Placement{},
		},
	}

	c := newTestCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.PlacementsSymmetric(1000, 500, "KBE 58", "A", "Item", tt.count, tt.alignment)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertPlacements(t, got, tt.expected)
		})
	}
}

func TestPlacementsFromExtractedData(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		items    []ExtractedItem
		expected []Placement
	}{
		{
			name: "Explicit coordinates pass through",
			items: []ExtractedItem{
				{Article: "X-1", Name: "Петля", XPosition: ptr(12), YPosition: ptr(34), Rotation: 45, Notes: "верх"},
			},
			expected: []Placement{
				{Article: "X-1", Name: "Петля", X: 12, Y: 34, Rotation: 45, Notes: "верх"},
			},
		},
		{
			name: "Handle classified by name falls back to template point",
			items: []ExtractedItem{
				{Article: "R-7", Name: "Дверная ручка"},
			},
			expected: []Placement{
				{Article: "R-7", Name: "Дверная ручка", X: 500, Y: 375},
			},
		},
		{
			name: "Unclassifiable item falls back to window center",
			items: []ExtractedItem{
				{Article: "U-1", Name: "Саморез"},
			},
			expected: []Placement{
				{Article: "U-1", Name: "Саморез", X: 500, Y: 250},
			},
		},
		{
			name: "Corner category has no template and centers too",
			items: []ExtractedItem{
				{Article: "C-1", Name: "Угол рамы"},
			},
			expected: []Placement{
				{Article: "C-1", Name: "Угол рамы", X: 500, Y: 250},
			},
		},
		{
			name: "Missing article and name get defaults",
			items: []ExtractedItem{
				{XPosition: ptr(1), YPosition: ptr(2)},
			},
			expected: []Placement{
				{Article: "N/A", Name: "Unknown", X: 1, Y: 2},
			},
		},
		{
			name: "Only one coordinate present still goes through classification",
			items: []ExtractedItem{
				{Article: "L-2", Name: "Замок основной", XPosition: ptr(100)},
			},
			expected: []Placement{
				{Article: "L-2", Name: "Замок основной", X: 950, Y: 250},
			},
		},
	}

	c := newTestCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.PlacementsFromExtractedData(1000, 500, "KBE 58", tt.items)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertPlacements(t, got, tt.expected)
		})
	}
}

func TestMountingRecommendations(t *testing.T) {
	c := newTestCalculator()

	rec, err := c.MountingRecommendations(1000, 2000, "KBE 58")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.Hinges) != 3 {
		t.Errorf("expected 3 hinge placements, got %d", len(rec.Hinges))
	}
	if len(rec.Handle) != 1 {
		t.Errorf("expected 1 handle placement, got %d", len(rec.Handle))
	}
	if len(rec.Lock) != 1 {
		t.Errorf("expected 1 lock placement, got %d", len(rec.Lock))
	}
	if len(rec.Sill) != 1 {
		t.Errorf("expected 1 sill placement, got %d", len(rec.Sill))
	}
}

func assertPlacements(t *testing.T, got, expected []Placement) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("expected %d placements, got %d: %+v", len(expected), len(got), got)
	}

	for i := range expected {
		if got[i].Article != expected[i].Article {
			t.Errorf("placement %d: expected article %q, got %q", i, expected[i].Article, got[i].Article)
		}
		if got[i].Name != expected[i].Name {
			t.Errorf("placement %d: expected name %q, got %q", i, expected[i].Name, got[i].Name)
		}
		if !floatEqual(got[i].X, expected[i].X) {
			t.Errorf("placement %d: expected x %v, got %v", i, expected[i].X, got[i].X)
		}
		if !floatEqual(got[i].Y, expected[i].Y) {
			t.Errorf("placement %d: expected y %v, got %v", i, expected[i].Y, got[i].Y)
		}
		if !floatEqual(got[i].Rotation, expected[i].Rotation) {
			t.Errorf("placement %d: expected rotation %v, got %v", i, expected[i].Rotation, got[i].Rotation)
		}
		if got[i].Notes != expected[i].Notes {
			t.Errorf("placement %d: expected notes %q, got %q", i, expected[i].Notes, got[i].Notes)
		}
	}
}
