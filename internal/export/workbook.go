// Package export writes computed returns and statements to the file
// formats practitioners hand to filing tools: XLSX workbooks for the
// GST returns and BOM-prefixed CSV for TDS statements.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"niyam/internal/returns"
)

// WriteGSTR1Workbook writes the outward return as a workbook with one
// sheet per populated table.
func WriteGSTR1Workbook(w io.Writer, ret returns.GSTR1Return) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	first := true
	addSheet := func(name string) error {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
			first = false
			return nil
		}
		_, err := f.NewSheet(name)
		return err
	}

	if len(ret.B2B) > 0 {
		if err := addSheet("B2B"); err != nil {
			return fmt.Errorf("add B2B sheet: %w", err)
		}
		rows := [][]interface{}{{"Recipient GSTIN", "Invoice Number", "Invoice Date", "Invoice Value", "Place of Supply", "Reverse Charge", "Taxable Value", "IGST", "CGST", "SGST", "Cess"}}
		for _, group := range ret.B2B {
			for _, inv := range group.Invoices {
				rows = append(rows, []interface{}{
					group.RecipientGSTIN, inv.Number, inv.Date, dec(inv.Value), inv.PlaceOfSupply,
					inv.ReverseCharge, dec(inv.TaxableValue), dec(inv.IGST), dec(inv.CGST), dec(inv.SGST), dec(inv.Cess),
				})
			}
		}
		if err := writeRows(f, "B2B", rows); err != nil {
			return err
		}
	}

	if len(ret.B2CLarge) > 0 {
		if err := addSheet("B2CL"); err != nil {
			return fmt.Errorf("add B2CL sheet: %w", err)
		}
		rows := [][]interface{}{{"Invoice Number", "Invoice Date", "Invoice Value", "Place of Supply", "Taxable Value", "IGST", "Cess"}}
		for _, inv := range ret.B2CLarge {
			rows = append(rows, []interface{}{
				inv.Number, inv.Date, dec(inv.Value), inv.PlaceOfSupply, dec(inv.TaxableValue), dec(inv.IGST), dec(inv.Cess),
			})
		}
		if err := writeRows(f, "B2CL", rows); err != nil {
			return err
		}
	}

	if len(ret.B2CSmall) > 0 {
		if err := addSheet("B2CS"); err != nil {
			return fmt.Errorf("add B2CS sheet: %w", err)
		}
		rows := [][]interface{}{{"Place of Supply", "Rate", "Taxable Value", "IGST", "CGST", "SGST", "Cess"}}
		for _, row := range ret.B2CSmall {
			rows = append(rows, []interface{}{
				row.PlaceOfSupply, dec(row.Rate), dec(row.TaxableValue), dec(row.IGST), dec(row.CGST), dec(row.SGST), dec(row.Cess),
			})
		}
		if err := writeRows(f, "B2CS", rows); err != nil {
			return err
		}
	}

	if len(ret.Exports) > 0 {
		if err := addSheet("EXP"); err != nil {
			return fmt.Errorf("add EXP sheet: %w", err)
		}
		rows := [][]interface{}{{"Export Type", "Invoice Number", "Invoice Date", "Invoice Value", "Taxable Value", "IGST"}}
		for _, group := range ret.Exports {
			for _, inv := range group.Invoices {
				rows = append(rows, []interface{}{
					group.ExportType, inv.Number, inv.Date, dec(inv.Value), dec(inv.TaxableValue), dec(inv.IGST),
				})
			}
		}
		if err := writeRows(f, "EXP", rows); err != nil {
			return err
		}
	}

	if first {
		// Nothing populated: keep the default sheet with a note.
		if err := f.SetCellValue("Sheet1", "A1", "No outward supplies in period "+ret.Period); err != nil {
			return fmt.Errorf("write empty note: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteGSTR3BWorkbook writes the summary return as a single-sheet
// workbook: the section 3.1 rows followed by the section 4 ITC block.
func WriteGSTR3BWorkbook(w io.Writer, ret returns.GSTR3BReturn) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "GSTR-3B"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]interface{}{
		{"GSTR-3B", ret.Period},
		{},
		{"Section", "Taxable Value", "IGST", "CGST", "SGST", "Cess"},
		{"3.1(a) Outward taxable supplies", dec(ret.OutwardTaxable.TaxableValue), dec(ret.OutwardTaxable.IGST), dec(ret.OutwardTaxable.CGST), dec(ret.OutwardTaxable.SGST), dec(ret.OutwardTaxable.Cess)},
		{"3.1(b) Zero rated supplies", dec(ret.ZeroRated.TaxableValue), dec(ret.ZeroRated.IGST), dec(ret.ZeroRated.CGST), dec(ret.ZeroRated.SGST), dec(ret.ZeroRated.Cess)},
		{"3.1(d) Inward supplies (reverse charge)", dec(ret.InwardRCM.TaxableValue), dec(ret.InwardRCM.IGST), dec(ret.InwardRCM.CGST), dec(ret.InwardRCM.SGST), dec(ret.InwardRCM.Cess)},
	}

	if ret.ITC != nil {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"4 Eligible ITC", "", "IGST", "CGST", "SGST", "Cess"},
		)
		for _, entry := range ret.ITC.Availed {
			rows = append(rows, []interface{}{
				"ITC availed: " + string(entry.Category), "", dec(entry.IGST), dec(entry.CGST), dec(entry.SGST), dec(entry.Cess),
			})
		}
		rows = append(rows,
			[]interface{}{"ITC reversed", "", dec(ret.ITC.Reversed.IGST), dec(ret.ITC.Reversed.CGST), dec(ret.ITC.Reversed.SGST), dec(ret.ITC.Reversed.Cess)},
			[]interface{}{"Net ITC available", "", dec(ret.ITC.Net.IGST), dec(ret.ITC.Net.CGST), dec(ret.ITC.Net.SGST), dec(ret.ITC.Net.Cess)},
		)
	}

	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// dec converts a decimal into the float form excelize stores. Values
// are already rounded to 2dp at the engine boundary.
func dec(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
