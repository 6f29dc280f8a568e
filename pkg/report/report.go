// Package report renders hardware installation reports for window
// orders as PDF documents: an order summary, a vector schematic of the
// window with the placed hardware, and the component table.
package report

import (
	"fmt"
	"os"
	"time"

	"codeberg.org/go-pdf/fpdf"
)

// Order is the order header rendered at the top of the report.
type Order struct {
	Name          string
	Description   string
	WindowWidth   float64
	WindowHeight  float64
	ProfileSystem string
}

// Item is one hardware row of the report table. X and Y are millimeters
// from the top-left corner of the window.
type Item struct {
	Article  string
	Name     string
	Quantity int
	X        float64
	Y        float64
	Rotation float64
	Notes    string
}

// Config controls report rendering.
type Config struct {
	// FontPath optionally points to a TTF file with Cyrillic coverage
	// (e.g. DejaVuSans). Without it the report falls back to the
	// built-in Helvetica and English labels, since the core PDF fonts
	// cannot encode Cyrillic.
	FontPath string
}

func NewDefaultConfig() *Config {
	return &Config{
		FontPath: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
}

// labels carries every string the report prints, so the whole document
// switches language together with the font fallback.
type labels struct {
	title       string
	orderInfo   string
	orderName   string
	description string
	windowSize  string
	profile     string
	createdAt   string
	schematic   string
	components  string
	article     string
	name        string
	quantity    string
	coordinates string
	rotation    string
	notes       string
}

var russianLabels = labels{
	title:       "Схема установки фурнитуры",
	orderInfo:   "Информация о заказе",
	orderName:   "Название",
	description: "Описание",
	windowSize:  "Размеры окна",
	profile:     "Профильная система",
	createdAt:   "Дата создания",
	schematic:   "Схема расположения фурнитуры",
	components:  "Перечень компонентов",
	article:     "Артикул",
	name:        "Название",
	quantity:    "Кол-во",
	coordinates: "Координаты",
	rotation:    "Поворот",
	notes:       "Примечания",
}

var englishLabels = labels{
	title:       "Hardware Installation Layout",
	orderInfo:   "Order information",
	orderName:   "Name",
	description: "Description",
	windowSize:  "Window size",
	profile:     "Profile system",
	createdAt:   "Created at",
	schematic:   "Hardware placement schematic",
	components:  "Component list",
	article:     "Article",
	name:        "Name",
	quantity:    "Qty",
	coordinates: "Coordinates",
	rotation:    "Rotation",
	notes:       "Notes",
}

const fontFamily = "reportfont"

// Generate writes the full report PDF to outputPath.
func Generate(cfg *Config, outputPath string, order Order, items []Item) error {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	family := "Helvetica"
	lbl := englishLabels
	if cfg.FontPath != "" {
		if _, err := os.Stat(cfg.FontPath); err == nil {
			pdf.AddUTF8Font(fontFamily, "", cfg.FontPath)
			pdf.AddUTF8Font(fontFamily, "B", cfg.FontPath)
			family = fontFamily
			lbl = russianLabels
		}
	}

	pdf.AddPage()

	pdf.SetFont(family, "B", 18)
	pdf.CellFormat(0, 12, lbl.title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeOrderInfo(pdf, family, lbl, order)
	pdf.Ln(6)

	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 8, lbl.schematic, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	drawSchematic(pdf, family, order, items)
	pdf.Ln(6)

	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 8, lbl.components, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	writeItemTable(pdf, family, lbl, items)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write report pdf: %w", err)
	}
	return nil
}

func writeOrderInfo(pdf *fpdf.Fpdf, family string, lbl labels, order Order) {
	unit := "mm"
	if family == fontFamily {
		unit = "мм"
	}
	rows := []string{
		fmt.Sprintf("%s: %s", lbl.orderName, order.Name),
		fmt.Sprintf("%s: %s", lbl.description, order.Description),
		fmt.Sprintf("%s: %.0f x %.0f %s", lbl.windowSize, order.WindowWidth, order.WindowHeight, unit),
		fmt.Sprintf("%s: %s", lbl.profile, order.ProfileSystem),
		fmt.Sprintf("%s: %s", lbl.createdAt, time.Now().Format("02.01.2006 15:04")),
	}

	pdf.SetFont(family, "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(170, 8, lbl.orderInfo, "1", 1, "L", true, 0, "")

	pdf.SetFont(family, "", 10)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(170, 7, row, "1", 1, "L", true, 0, "")
	}
}

func writeItemTable(pdf *fpdf.Fpdf, family string, lbl labels, items []Item) {
	headers := []string{lbl.article, lbl.name, lbl.quantity, lbl.coordinates, lbl.rotation, lbl.notes}
	widths := []float64{28, 52, 14, 32, 16, 28}

	pdf.SetFont(family, "B", 9)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		cells := []string{
			item.Article,
			item.Name,
			fmt.Sprintf("%d", quantity),
			fmt.Sprintf("(%.0f; %.0f)", item.X, item.Y),
			fmt.Sprintf("%.0f", item.Rotation),
			item.Notes,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
