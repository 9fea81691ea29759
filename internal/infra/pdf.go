package infra

// pdf.go — receipt generation for work orders using go-pdf/fpdf.
// Layout: shop header, order metadata, item table with the frozen prices,
// bold total. The output file is saved to storagePath/recibo_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"mecanicagil/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF renders a printable receipt for an order and returns the
// absolute path to the generated file.
func GenerateReciboPDF(orden *model.OrdenTrabajo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", orden.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Mecanica Agil", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Orden de trabajo %s", orden.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, orden.CreatedAt.UTC().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	if orden.Vehiculo != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("%s %s — patente %s",
			orden.Vehiculo.Marca, orden.Vehiculo.Modelo, orden.Vehiculo.Patente), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	// ── Item table ───────────────────────────────────────────────────────────
	colServicio := contentW * 0.7
	colPrecio := contentW - colServicio

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colServicio, 6, "Servicio", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colPrecio, 6, "Precio", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range orden.Items {
		nombre := item.ServicioID.String()
		if item.Servicio != nil {
			nombre = item.Servicio.Nombre
		}
		pdf.CellFormat(colServicio, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(colPrecio, 6, "$ "+item.PrecioAlMomento.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(colServicio, 8, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(colPrecio, 8, "$ "+orden.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Estado: %s", orden.Estado), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
