package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party identifies one side of a transaction. GSTIN is empty for
// unregistered parties; Country is empty for domestic parties.
type Party struct {
	Name      string `json:"name,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
	PAN       string `json:"pan,omitempty"`
	Country   string `json:"country,omitempty"`
	StateCode string `json:"state_code,omitempty"`
}

// LineItem is one taxable line of a transaction with its credit
// classification. BusinessUsePercent nil means fully business use.
type LineItem struct {
	Description        string           `json:"description,omitempty"`
	HSNSACCode         string           `json:"hsn_sac_code,omitempty"`
	Category           CreditCategory   `json:"category"`
	BlockedReason      BlockedReason    `json:"blocked_reason,omitempty"`
	BusinessUsePercent *decimal.Decimal `json:"business_use_percent,omitempty"`
	TaxableAmount      decimal.Decimal  `json:"taxable_amount"`
	TaxAmount          decimal.Decimal  `json:"tax_amount"`
}

// Transaction is the caller-supplied input record for the engine.
// The engine never mutates or retains it.
type Transaction struct {
	DocumentNumber string          `json:"document_number"`
	DocumentDate   time.Time       `json:"document_date"`
	SupplyDate     *time.Time      `json:"supply_date,omitempty"`
	Type           TransactionType `json:"type"`
	Vendor         Party           `json:"vendor"`
	VendorType     VendorType      `json:"vendor_type"`
	Recipient      Party           `json:"recipient"`
	ServiceType    ServiceType     `json:"service_type,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	CessRate       decimal.Decimal `json:"cess_rate,omitempty"`
	PlaceOfSupply  string          `json:"place_of_supply,omitempty"`
	LUTNumber      string          `json:"lut_number,omitempty"`
	InvoiceValid   bool            `json:"invoice_valid"`
	GoodsReceived  bool            `json:"goods_received"`
	LineItems      []LineItem      `json:"line_items,omitempty"`
}

// RCMDecision is the reverse-charge detector's verdict for one
// transaction.
type RCMDecision struct {
	Applicable bool            `json:"applicable"`
	Type       RCMType         `json:"type"`
	Reason     string          `json:"reason,omitempty"`
	Rate       decimal.Decimal `json:"rate"`
	TaxType    TaxType         `json:"tax_type,omitempty"`
}

// TaxCalculationResult carries the component split and payable split
// for one transaction. TotalTax includes cess.
type TaxCalculationResult struct {
	CGST            decimal.Decimal `json:"cgst"`
	SGST            decimal.Decimal `json:"sgst"`
	IGST            decimal.Decimal `json:"igst"`
	Cess            decimal.Decimal `json:"cess"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	RCMAmount       decimal.Decimal `json:"rcm_amount"`
	VendorGST       decimal.Decimal `json:"vendor_gst"`
	PayableToVendor decimal.Decimal `json:"payable_to_vendor"`
	PayableToGovt   decimal.Decimal `json:"payable_to_government"`
}

// LineEligibility is the per-line ITC outcome.
type LineEligibility struct {
	Index    int             `json:"index"`
	Category CreditCategory  `json:"category"`
	Eligible decimal.Decimal `json:"eligible"`
	Blocked  decimal.Decimal `json:"blocked"`
	Reason   string          `json:"reason,omitempty"`
}

// ITCEligibility is the input-tax-credit outcome for one transaction.
// Eligible + Blocked equals the tax subject to credit rules.
type ITCEligibility struct {
	Eligible           decimal.Decimal   `json:"eligible"`
	Blocked            decimal.Decimal   `json:"blocked"`
	ReversalRequired   decimal.Decimal   `json:"reversal_required"`
	EligibilityPercent decimal.Decimal   `json:"eligibility_percent"`
	Reasons            []string          `json:"reasons,omitempty"`
	Lines              []LineEligibility `json:"lines,omitempty"`
}

// ReturnClassification maps one transaction to its statutory return
// placement. ITCSection is set only for reverse-charge entries.
type ReturnClassification struct {
	Table        GSTR1Table      `json:"table"`
	Section      GSTR3BSection   `json:"section"`
	ITCSection   string          `json:"itc_section,omitempty"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	Cess         decimal.Decimal `json:"cess"`
}

// ReconRecord is one line of a purchase register or of
// counterparty-reported data, in either direction of a reconciliation.
type ReconRecord struct {
	SupplierGSTIN  string          `json:"supplier_gstin"`
	DocumentNumber string          `json:"document_number"`
	DocumentDate   time.Time       `json:"document_date"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	IGST           decimal.Decimal `json:"igst"`
}

// Discrepancy names one field-level mismatch found by the matcher.
type Discrepancy struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ComponentDiffs holds signed purchase-minus-counterparty differences.
type ComponentDiffs struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
}

// ReconciliationMatch scores one purchase record against one
// counterparty record. Score is in [0,100].
type ReconciliationMatch struct {
	Score         int             `json:"score"`
	IsMatched     bool            `json:"is_matched"`
	Discrepancies []Discrepancy   `json:"discrepancies,omitempty"`
	Differences   *ComponentDiffs `json:"differences,omitempty"`
}

// MatchedPair couples a purchase record with its counterparty record
// and the match outcome.
type MatchedPair struct {
	Purchase     ReconRecord         `json:"purchase"`
	Counterparty ReconRecord         `json:"counterparty"`
	Match        ReconciliationMatch `json:"match"`
}

// ReconSummary aggregates a batch reconciliation run.
type ReconSummary struct {
	PurchaseCount     int `json:"purchase_count"`
	CounterpartyCount int `json:"counterparty_count"`
	MatchedCount      int `json:"matched_count"`
	FullMatchCount    int `json:"full_match_count"`
	MissingCount      int `json:"missing_count"`
	AdditionalCount   int `json:"additional_count"`
}

// ReconBatchResult partitions a batch run: every purchase record lands
// in exactly one of Matched or MissingFromCounterparty; every
// counterparty record without a purchase counterpart lands in
// Additional.
type ReconBatchResult struct {
	Matched                 []MatchedPair `json:"matched"`
	MissingFromCounterparty []ReconRecord `json:"missing_from_counterparty"`
	Additional              []ReconRecord `json:"additional"`
	Summary                 ReconSummary  `json:"summary"`
}

// TDSDeduction is one withholding deduction. TDSAmount is filled by
// the aggregator when absent.
type TDSDeduction struct {
	VendorName    string          `json:"vendor_name,omitempty"`
	VendorPAN     string          `json:"vendor_pan"`
	Section       TDSSection      `json:"section"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	Rate          decimal.Decimal `json:"rate"`
	TDSAmount     decimal.Decimal `json:"tds_amount"`
	DepositDate   *time.Time      `json:"deposit_date,omitempty"`
	ChallanNumber string          `json:"challan_number,omitempty"`
}

// ThresholdStatus reports cumulative payments against a section
// threshold for one vendor and financial year.
type ThresholdStatus struct {
	VendorPAN      string          `json:"vendor_pan"`
	Section        TDSSection      `json:"section"`
	FinancialYear  string          `json:"financial_year"`
	CumulativePaid decimal.Decimal `json:"cumulative_paid"`
	Threshold      decimal.Decimal `json:"threshold"`
	Exceeded       bool            `json:"exceeded"`
}

// LateDepositCharge is the interest and penalty owed on a late
// deposit.
type LateDepositCharge struct {
	DueDate  time.Time       `json:"due_date"`
	DaysLate int             `json:"days_late"`
	Interest decimal.Decimal `json:"interest"`
	Penalty  decimal.Decimal `json:"penalty"`
}

// TDSCertificate is the Form 16A-shaped certificate for one vendor
// and quarter.
type TDSCertificate struct {
	CertificateNumber string          `json:"certificate_number"`
	TAN               string          `json:"tan"`
	FinancialYear     string          `json:"financial_year"`
	Quarter           int             `json:"quarter"`
	VendorName        string          `json:"vendor_name,omitempty"`
	VendorPAN         string          `json:"vendor_pan"`
	TotalPayment      decimal.Decimal `json:"total_payment"`
	TotalTDS          decimal.Decimal `json:"total_tds"`
	Deductions        []TDSDeduction  `json:"deductions"`
}

// TDSSectionSummary is the per-section breakdown of a quarterly
// statement.
type TDSSectionSummary struct {
	Section      TDSSection      `json:"section"`
	Count        int             `json:"count"`
	TotalPayment decimal.Decimal `json:"total_payment"`
	TotalTDS     decimal.Decimal `json:"total_tds"`
}

// TDSReturn is the quarterly statement for one deductor.
type TDSReturn struct {
	TAN            string              `json:"tan"`
	FinancialYear  string              `json:"financial_year"`
	Quarter        int                 `json:"quarter"`
	DeductionCount int                 `json:"deduction_count"`
	TotalPayment   decimal.Decimal     `json:"total_payment"`
	TotalTDS       decimal.Decimal     `json:"total_tds"`
	TotalInterest  decimal.Decimal     `json:"total_interest"`
	TotalPenalty   decimal.Decimal     `json:"total_penalty"`
	Sections       []TDSSectionSummary `json:"sections"`
	Findings       []Finding           `json:"findings,omitempty"`
}

// Finding is a compliance warning attached to an otherwise valid
// result. Findings are never raised as errors.
type Finding struct {
	Code     FindingCode     `json:"code"`
	Severity FindingSeverity `json:"severity"`
	Message  string          `json:"message"`
}

// Assessment is the full pipeline outcome for one transaction.
type Assessment struct {
	DocumentNumber string               `json:"document_number"`
	RCM            RCMDecision          `json:"rcm"`
	Tax            TaxCalculationResult `json:"tax"`
	ITC            *ITCEligibility      `json:"itc,omitempty"`
	Classification ReturnClassification `json:"classification"`
	Findings       []Finding            `json:"findings,omitempty"`
}
