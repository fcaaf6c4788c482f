// Package render turns rolled-up statement trees into PDF documents. It
// consumes ReportNode trees only; the core never formats currency strings.
package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/lucashv/sistema-contabil/internal/models"
)

const (
	rowHeight   = 6.0
	accountColW = 77.0
	monthColW   = 15.0
	totalColW   = 20.0
	indentStep  = 4.0
)

var monthHeaders = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// StatementPDF renders a statement forest as a landscape A4 table: one row
// per account indented by depth, one column per month plus the annual total.
// Page breaks repeat the column header.
func StatementPDF(w io.Writer, title string, year int, forest []*models.ReportNode) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, 10, fmt.Sprintf("%s - %d", title, year), "", 1, "C", false, 0, "")
			pdf.Ln(2)
		}
		drawColumnHeader(pdf)
	})

	pdf.AddPage()
	for _, node := range forest {
		drawRows(pdf, node, 0)
	}

	return pdf.Output(w)
}

func drawColumnHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(accountColW, rowHeight, "Account", "B", 0, "L", false, 0, "")
	for _, m := range monthHeaders {
		pdf.CellFormat(monthColW, rowHeight, m, "B", 0, "R", false, 0, "")
	}
	pdf.CellFormat(totalColW, rowHeight, "Total", "B", 1, "R", false, 0, "")
}

func drawRows(pdf *gofpdf.Fpdf, node *models.ReportNode, depth int) {
	style := ""
	if depth == 0 {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 7)

	label := fmt.Sprintf("%s - %s", node.Account.Code, node.Account.Name)
	pdf.SetX(pdf.GetX() + indentStep*float64(depth))
	pdf.CellFormat(accountColW-indentStep*float64(depth), rowHeight, label, "", 0, "L", false, 0, "")

	for _, balance := range node.MonthlyBalances {
		pdf.CellFormat(monthColW, rowHeight, balance.StringFixed(2), "", 0, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(totalColW, rowHeight, node.AnnualTotal.StringFixed(2), "", 1, "R", false, 0, "")

	for _, child := range node.Children {
		drawRows(pdf, child, depth+1)
	}
}
