package placement

import "strings"

// categoryKeywords is checked in order; the first category with a
// matching keyword wins, so e.g. "Замок с ручкой" resolves to handle
// only if no hinge keyword matched first.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryHinge, []string{"петля", "hinge", "шарнир"}},
	{CategoryHandle, []string{"ручка", "handle", "кноб"}},
	{CategoryLock, []string{"замок", "lock", "засов"}},
	{CategorySill, []string{"отлив", "sill", "подоконник"}},
	{CategoryCorner, []string{"угол", "corner"}},
}

// CategorizeHardwareName maps a free-text hardware name to a category
// using case-insensitive substring matching. Names that match no known
// keyword fall into CategoryOther.
func CategorizeHardwareName(name string) Category {
	lower := strings.ToLower(name)

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}

	return CategoryOther
}
