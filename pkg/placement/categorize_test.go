package placement

import "testing"

func TestCategorizeHardwareName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"Russian hinge", "Петля верхняя", CategoryHinge},
		{"English hinge", "Butt Hinge 100mm", CategoryHinge},
		{"Pivot hinge synonym", "Шарнир поворотный", CategoryHinge},
		{"Russian handle", "Дверная ручка", CategoryHandle},
		{"Knob synonym", "Кноб латунный", CategoryHandle},
		{"Russian lock", "Замок врезной", CategoryLock},
		{"Bolt synonym", "Засов накладной", CategoryLock},
		{"Sill", "Отлив оконный", CategorySill},
		{"Window sill synonym", "Подоконник ПВХ", CategorySill},
		{"Corner", "Угол соединительный", CategoryCorner},
		{"Case insensitive", "HINGE set", CategoryHinge},
		{"Hinge beats handle on mixed name", "Петля с ручкой", CategoryHinge},
		{"Unknown", "Саморез 4x30", CategoryOther},
		{"Empty", "", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeHardwareName(tt.input); got != tt.expected {
				t.Errorf("CategorizeHardwareName(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
