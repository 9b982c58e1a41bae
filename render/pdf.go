package render

import (
	"github.com/jung-kurt/gofpdf"
)

// GofpdfConverter wraps the captured certificate image in a single A4
// landscape page, full bleed. The PDF has no selectable text; exact visual
// fidelity to the rendered template is the point.
type GofpdfConverter struct{}

func (GofpdfConverter) ImageToPDF(imagePath, pdfPath string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	pdf.ImageOptions(imagePath, 0, 0, w, h, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	return pdf.OutputFileAndClose(pdfPath)
}
