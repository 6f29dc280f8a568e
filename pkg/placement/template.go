package placement

type Category string

const (
	CategoryHinge  Category = "hinge"
	CategoryHandle Category = "handle"
	CategoryLock   Category = "lock"
	CategorySill   Category = "sill"
	CategoryCorner Category = "corner"
	CategoryOther  Category = "other"
)

type ruleKind int

const (
	// rulePosition places an item at a point given as fractions of the
	// window width/height.
	rulePosition ruleKind = iota
	// ruleDimension describes a bounding box as fractional offsets and
	// ratios; the item is placed at the center of the box.
	ruleDimension
)

type rule struct {
	name        string
	kind        ruleKind
	xOffset     float64
	yOffset     float64
	widthRatio  float64
	heightRatio float64
}

// defaultTemplates is the built-in category -> placement rules table.
// The rule set is closed; it is never extended at runtime.
func defaultTemplates() map[Category][]rule {
	return map[Category][]rule{
		CategoryHinge: {
			{name: "Петля верхняя", kind: rulePosition, xOffset: 0.05, yOffset: 0.05},
			{name: "Петля средняя", kind: rulePosition, xOffset: 0.05, yOffset: 0.5},
			{name: "Петля нижняя", kind: rulePosition, xOffset: 0.05, yOffset: 0.95},
		},
		CategoryHandle: {
			{name: "Ручка", kind: rulePosition, xOffset: 0.5, yOffset: 0.75},
		},
		CategoryLock: {
			{name: "Замок", kind: rulePosition, xOffset: 0.95, yOffset: 0.5},
		},
		CategorySill: {
			{name: "Отлив", kind: ruleDimension, xOffset: 0, yOffset: 0.99, widthRatio: 1.0, heightRatio: 0.01},
		},
	}
}
