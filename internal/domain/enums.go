package domain

// TransactionType tags the supply direction and counterparty class of
// a transaction. Values are lifecycle tags, not filing codes.
type TransactionType string

const (
	TransactionExport      TransactionType = "export"
	TransactionDomesticB2B TransactionType = "domestic_b2b"
	TransactionDomesticB2C TransactionType = "domestic_b2c"
	TransactionSelfInvoice TransactionType = "self_invoice"
)

// Valid reports whether the transaction type is a known value.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionExport, TransactionDomesticB2B, TransactionDomesticB2C, TransactionSelfInvoice:
		return true
	}
	return false
}

// VendorType classifies the supplying party's registration status.
type VendorType string

const (
	VendorRegular      VendorType = "regular"
	VendorComposition  VendorType = "composition"
	VendorUnregistered VendorType = "unregistered"
	VendorForeign      VendorType = "foreign"
)

// Valid reports whether the vendor type is a known value.
func (v VendorType) Valid() bool {
	switch v {
	case VendorRegular, VendorComposition, VendorUnregistered, VendorForeign:
		return true
	}
	return false
}

// RCMType is the reverse-charge subtype decided by the detector.
type RCMType string

const (
	RCMNone                 RCMType = "NONE"
	RCMDomesticUnregistered RCMType = "DOMESTIC_UNREGISTERED"
	RCMImportOfServices     RCMType = "IMPORT_OF_SERVICES"
)

// TaxType identifies which levy a rate applies under.
type TaxType string

const (
	TaxTypeIGST     TaxType = "IGST"
	TaxTypeCGSTSGST TaxType = "CGST_SGST"
)

// ServiceType tags the nature of a service for reverse-charge lookup.
type ServiceType string

const (
	ServiceGTA           ServiceType = "gta"
	ServiceLegal         ServiceType = "legal"
	ServiceSponsorship   ServiceType = "sponsorship"
	ServiceSecurity      ServiceType = "security"
	ServiceDirector      ServiceType = "director"
	ServiceRecoveryAgent ServiceType = "recovery_agent"
	ServiceOther         ServiceType = "other"
)

// CreditCategory classifies a line item for input-tax-credit purposes.
type CreditCategory string

const (
	CreditBlocked       CreditCategory = "BLOCKED"
	CreditCapitalGoods  CreditCategory = "CAPITAL_GOODS"
	CreditInputs        CreditCategory = "INPUTS"
	CreditInputServices CreditCategory = "INPUT_SERVICES"
)

// Valid reports whether the credit category is a known value.
func (c CreditCategory) Valid() bool {
	switch c {
	case CreditBlocked, CreditCapitalGoods, CreditInputs, CreditInputServices:
		return true
	}
	return false
}

// BlockedReason is the statutory sub-reason for a BLOCKED line item,
// per the section 17(5) blocking clauses.
type BlockedReason string

const (
	BlockedMotorVehicles       BlockedReason = "MOTOR_VEHICLES"
	BlockedFoodAndBeverages    BlockedReason = "FOOD_AND_BEVERAGES"
	BlockedWorksContract       BlockedReason = "WORKS_CONTRACT"
	BlockedClubMembership      BlockedReason = "CLUB_MEMBERSHIP"
	BlockedPersonalConsumption BlockedReason = "PERSONAL_CONSUMPTION"
)

// BlockedReasonDescriptions maps blocking sub-reasons to the statutory
// wording recorded in eligibility results.
var BlockedReasonDescriptions = map[BlockedReason]string{
	BlockedMotorVehicles:       "motor vehicles for personal transport - section 17(5)(a)",
	BlockedFoodAndBeverages:    "food, beverages and outdoor catering - section 17(5)(b)",
	BlockedWorksContract:       "works contract for immovable property - section 17(5)(c)",
	BlockedClubMembership:      "club and fitness membership - section 17(5)(b)",
	BlockedPersonalConsumption: "goods or services for personal consumption - section 17(5)(g)",
}

// GSTR1Table is the outward-return table a transaction reports under.
type GSTR1Table string

const (
	TableB2B           GSTR1Table = "B2B"
	TableB2CLarge      GSTR1Table = "B2C_LARGE"
	TableB2CSmall      GSTR1Table = "B2C_SMALL"
	TableExportsLUT    GSTR1Table = "EXPORTS_WITH_LUT"
	TableExportsPaid   GSTR1Table = "EXPORTS_WITH_PAYMENT"
	TableNotApplicable GSTR1Table = "NOT_APPLICABLE"
)

// GSTR3BSection is the summary-return section a transaction reports under.
type GSTR3BSection string

const (
	SectionOutwardTaxable GSTR3BSection = "OUTWARD_TAXABLE"
	SectionZeroRated      GSTR3BSection = "ZERO_RATED"
	SectionInwardRCM      GSTR3BSection = "INWARD_RCM"
)

// ITCSectionRCM is the summary-return ITC section attached to
// reverse-charge entries (credit on self-assessed tax).
const ITCSectionRCM = "4(A)(3)"

// TDSSection is the withholding section a payment is deducted under.
type TDSSection string

const (
	Section194A TDSSection = "194A"
	Section194C TDSSection = "194C"
	Section194H TDSSection = "194H"
	Section194I TDSSection = "194I"
	Section194J TDSSection = "194J"
)

// Valid reports whether the TDS section is a known value.
func (s TDSSection) Valid() bool {
	switch s {
	case Section194A, Section194C, Section194H, Section194I, Section194J:
		return true
	}
	return false
}

// FindingCode identifies a compliance finding attached to a result.
type FindingCode string

const (
	FindingLateSelfInvoice     FindingCode = "LATE_SELF_INVOICE"
	FindingTDSThresholdCrossed FindingCode = "TDS_THRESHOLD_EXCEEDED"
	FindingITCExceedsAvailable FindingCode = "ITC_EXCEEDS_AVAILABLE"
	FindingLateTDSDeposit      FindingCode = "LATE_TDS_DEPOSIT"
)

// FindingSeverity grades a compliance finding.
type FindingSeverity string

const (
	FindingWarning FindingSeverity = "warning"
	FindingInfo    FindingSeverity = "info"
)
