package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func testOrder() Order {
	return Order{
		Name:          "Заказ 17",
		Description:   "Балконный блок",
		WindowWidth:   1540,
		WindowHeight:  1790,
		ProfileSystem: "KBE 58",
	}
}

func testItems() []Item {
	return []Item{
		{Article: "hinge-1", Name: "Петля верхняя", Quantity: 1, X: 77, Y: 89.5},
		{Article: "hinge-2", Name: "Петля нижняя", Quantity: 1, X: 77, Y: 1700.5},
		{Article: "handle-1", Name: "Ручка", Quantity: 1, X: 770, Y: 1342.5, Notes: "белая"},
	}
}

func generateTestReport(t *testing.T, path string, order Order, items []Item) {
	t.Helper()
	// Force the Helvetica fallback so the test does not depend on
	// fonts installed on the machine.
	cfg := &Config{FontPath: ""}
	if err := Generate(cfg, path, order, items); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
}

func assertIsPdf(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated report: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("generated report is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("generated file does not start with a PDF header")
	}
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.pdf")
	generateTestReport(t, out, testOrder(), testItems())
	assertIsPdf(t, out)
}

func TestGenerateWithoutItems(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.pdf")
	generateTestReport(t, out, testOrder(), nil)
	assertIsPdf(t, out)
}

func TestGenerateWithZeroWindowSkipsSchematic(t *testing.T) {
	order := testOrder()
	order.WindowWidth = 0
	order.WindowHeight = 0

	out := filepath.Join(t.TempDir(), "nozero.pdf")
	generateTestReport(t, out, order, testItems())
	assertIsPdf(t, out)
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.pdf")
	second := filepath.Join(dir, "second.pdf")
	generateTestReport(t, first, testOrder(), testItems())
	generateTestReport(t, second, testOrder(), nil)

	merged := filepath.Join(dir, "merged.pdf")
	if err := Merge([]string{first, second}, merged); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	assertIsPdf(t, merged)
}
