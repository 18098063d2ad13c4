// Package rcm decides whether reverse-charge liability applies to a
// transaction and with which subtype.
package rcm

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/taxid"
)

// NotifiedService is one entry of the reverse-charge-notified list
// with its statutory rate and levy type.
type NotifiedService struct {
	Service     domain.ServiceType
	Description string
	Rate        decimal.Decimal
	TaxType     domain.TaxType
}

// notifiedDefaults is the statutory section 9(3) notified list.
var notifiedDefaults = []NotifiedService{
	{domain.ServiceGTA, "goods transport agency services", decimal.NewFromInt(5), domain.TaxTypeCGSTSGST},
	{domain.ServiceLegal, "legal services from an advocate or firm of advocates", decimal.NewFromInt(18), domain.TaxTypeCGSTSGST},
	{domain.ServiceSponsorship, "sponsorship services", decimal.NewFromInt(18), domain.TaxTypeCGSTSGST},
	{domain.ServiceSecurity, "security personnel services", decimal.NewFromInt(18), domain.TaxTypeCGSTSGST},
	{domain.ServiceDirector, "services of a director to the company", decimal.NewFromInt(18), domain.TaxTypeCGSTSGST},
	{domain.ServiceRecoveryAgent, "recovery agent services", decimal.NewFromInt(18), domain.TaxTypeCGSTSGST},
}

// importDefault applies to imported services with no specific entry.
var importDefault = NotifiedService{
	Service:     domain.ServiceOther,
	Description: "imported taxable service",
	Rate:        decimal.NewFromInt(18),
	TaxType:     domain.TaxTypeIGST,
}

// Input carries the identity and service attributes the detector
// inspects.
type Input struct {
	VendorGSTIN    string             `json:"vendor_gstin,omitempty"`
	VendorName     string             `json:"vendor_name,omitempty"`
	VendorCountry  string             `json:"vendor_country,omitempty"`
	VendorType     domain.VendorType  `json:"vendor_type,omitempty"`
	RecipientGSTIN string             `json:"recipient_gstin,omitempty"`
	ServiceType    domain.ServiceType `json:"service_type,omitempty"`
	TaxableAmount  decimal.Decimal    `json:"taxable_amount"`
}

// Detector evaluates the reverse-charge decision rules against its
// notified-service tables. It is immutable after construction and safe
// for concurrent use.
type Detector struct {
	notified      map[domain.ServiceType]NotifiedService
	importDefault NotifiedService
}

// NewDetector builds a detector over the statutory notified list.
func NewDetector() *Detector {
	return NewDetectorWithServices(notifiedDefaults, importDefault)
}

// NewDetectorWithServices builds a detector over an explicit notified
// list and import fallback entry.
func NewDetectorWithServices(services []NotifiedService, importEntry NotifiedService) *Detector {
	m := make(map[domain.ServiceType]NotifiedService, len(services))
	for _, s := range services {
		m[s.Service] = s
	}
	return &Detector{notified: m, importDefault: importEntry}
}

// Detect applies the decision rules, first match wins:
//
//  1. foreign vendor and registered recipient: import of services
//  2. domestic vendor without registration supplying a notified
//     service: domestic unregistered reverse charge
//  3. otherwise no reverse charge
//
// Composition vendors never trigger reverse charge; the credit
// consequences of dealing with one belong to the ITC engine.
func (d *Detector) Detect(in Input) domain.RCMDecision {
	if in.VendorType == domain.VendorComposition {
		return none("composition vendor")
	}

	if !taxid.IsDomestic(in.VendorCountry) {
		if in.RecipientGSTIN == "" {
			return none("unregistered recipient of imported service")
		}
		entry := d.importDefault
		if e, ok := d.notified[in.ServiceType]; ok {
			entry = e
		}
		return domain.RCMDecision{
			Applicable: true,
			Type:       domain.RCMImportOfServices,
			Reason:     "cross-border service import",
			Rate:       entry.Rate,
			TaxType:    domain.TaxTypeIGST,
		}
	}

	if in.VendorGSTIN == "" {
		if entry, ok := d.notified[in.ServiceType]; ok {
			return domain.RCMDecision{
				Applicable: true,
				Type:       domain.RCMDomesticUnregistered,
				Reason:     fmt.Sprintf("notified service from unregistered vendor: %s", entry.Description),
				Rate:       entry.Rate,
				TaxType:    entry.TaxType,
			}
		}
		return none("service not on the notified list")
	}

	return none("registered domestic vendor")
}

func none(reason string) domain.RCMDecision {
	return domain.RCMDecision{
		Applicable: false,
		Type:       domain.RCMNone,
		Reason:     reason,
		Rate:       decimal.Zero,
	}
}
