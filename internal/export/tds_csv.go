package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"niyam/internal/domain"
)

// BOM is the UTF-8 byte order mark, written ahead of CSV output for
// Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// statementColumns defines the quarterly-statement CSV header row.
var statementColumns = []string{
	"TAN",
	"Financial Year",
	"Quarter",
	"Vendor Name",
	"Vendor PAN",
	"Section",
	"Payment Date",
	"Payment Amount",
	"Rate",
	"TDS Amount",
	"Deposit Date",
	"Challan Number",
}

// certificateColumns defines the certificate-summary CSV header row.
var certificateColumns = []string{
	"Certificate Number",
	"TAN",
	"Financial Year",
	"Quarter",
	"Vendor Name",
	"Vendor PAN",
	"Total Payment",
	"Total TDS",
	"Deduction Count",
}

const csvDateLayout = "2006-01-02"

// TDSWriter writes TDS statements and certificates as CSV.
type TDSWriter struct {
	csv *csv.Writer
}

// NewTDSWriter creates a TDSWriter that writes BOM-prefixed CSV to w.
func NewTDSWriter(w io.Writer) (*TDSWriter, error) {
	if _, err := w.Write(BOM); err != nil {
		return nil, fmt.Errorf("write BOM: %w", err)
	}
	return &TDSWriter{csv: csv.NewWriter(w)}, nil
}

// WriteStatement writes the quarterly statement's deduction rows under
// the statement header.
func (w *TDSWriter) WriteStatement(ret domain.TDSReturn, deductions []domain.TDSDeduction) error {
	if err := w.csv.Write(statementColumns); err != nil {
		return err
	}
	for i := range deductions {
		if err := w.csv.Write(deductionRow(&ret, &deductions[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteCertificates writes one summary row per certificate.
func (w *TDSWriter) WriteCertificates(certs []domain.TDSCertificate) error {
	if err := w.csv.Write(certificateColumns); err != nil {
		return err
	}
	for i := range certs {
		if err := w.csv.Write(certificateRow(&certs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *TDSWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *TDSWriter) Error() error {
	return w.csv.Error()
}

func deductionRow(ret *domain.TDSReturn, d *domain.TDSDeduction) []string {
	row := make([]string, len(statementColumns))
	row[0] = ret.TAN
	row[1] = ret.FinancialYear
	row[2] = "Q" + strconv.Itoa(ret.Quarter)
	row[3] = d.VendorName
	row[4] = d.VendorPAN
	row[5] = string(d.Section)
	row[6] = d.PaymentDate.Format(csvDateLayout)
	row[7] = d.PaymentAmount.StringFixed(2)
	row[8] = d.Rate.String()
	row[9] = d.TDSAmount.StringFixed(2)
	if d.DepositDate != nil {
		row[10] = d.DepositDate.Format(csvDateLayout)
	}
	row[11] = d.ChallanNumber
	return row
}

func certificateRow(c *domain.TDSCertificate) []string {
	return []string{
		c.CertificateNumber,
		c.TAN,
		c.FinancialYear,
		"Q" + strconv.Itoa(c.Quarter),
		c.VendorName,
		c.VendorPAN,
		c.TotalPayment.StringFixed(2),
		c.TotalTDS.StringFixed(2),
		strconv.Itoa(len(c.Deductions)),
	}
}
