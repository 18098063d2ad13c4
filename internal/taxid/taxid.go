// Package taxid validates Indian statutory identifier formats and
// provides the state-code and domestic-country lookup tables shared by
// the engine packages.
package taxid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"niyam/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	tanPattern   = regexp.MustCompile(`^[A-Z]{4}\d{5}[A-Z]$`)
	hsnPattern   = regexp.MustCompile(`^\d{4,8}$`)
)

// StateNames maps GST state codes (01-38) to state/UT names.
var StateNames = map[string]string{
	"01": "Jammu and Kashmir", "02": "Himachal Pradesh", "03": "Punjab",
	"04": "Chandigarh", "05": "Uttarakhand", "06": "Haryana",
	"07": "Delhi", "08": "Rajasthan", "09": "Uttar Pradesh",
	"10": "Bihar", "11": "Sikkim", "12": "Arunachal Pradesh",
	"13": "Nagaland", "14": "Manipur", "15": "Mizoram",
	"16": "Tripura", "17": "Meghalaya", "18": "Assam",
	"19": "West Bengal", "20": "Jharkhand", "21": "Odisha",
	"22": "Chhattisgarh", "23": "Madhya Pradesh", "24": "Gujarat",
	"25": "Daman and Diu", "26": "Dadra and Nagar Haveli", "27": "Maharashtra",
	"28": "Andhra Pradesh (old)", "29": "Karnataka", "30": "Goa",
	"31": "Lakshadweep", "32": "Kerala", "33": "Tamil Nadu",
	"34": "Puducherry", "35": "Andaman and Nicobar Islands", "36": "Telangana",
	"37": "Andhra Pradesh", "38": "Ladakh",
}

// domesticSpellings are the accepted spellings of the domestic country,
// compared after uppercasing and trimming.
var domesticSpellings = map[string]bool{
	"IN": true, "IND": true, "INDIA": true, "BHARAT": true,
}

// ValidateGSTIN checks the 15-character GSTIN format: 2-digit state
// code, 5 letters, 4 digits, 1 letter, 1 entity code, the fixed letter
// Z, and 1 check character.
func ValidateGSTIN(gstin string) error {
	if gstin == "" {
		return &domain.ValidationError{Field: "gstin", Message: "GSTIN is required"}
	}
	if !gstinPattern.MatchString(gstin) {
		return &domain.ValidationError{Field: "gstin", Message: fmt.Sprintf("%q does not match GSTIN format", gstin)}
	}
	if _, ok := StateNames[gstin[:2]]; !ok {
		return &domain.ValidationError{Field: "gstin", Message: fmt.Sprintf("%q has unknown state code %s", gstin, gstin[:2])}
	}
	return nil
}

// ValidatePAN checks the 10-character PAN format (5 letters, 4 digits,
// 1 letter).
func ValidatePAN(pan string) error {
	if pan == "" {
		return &domain.ValidationError{Field: "pan", Message: "PAN is required"}
	}
	if !panPattern.MatchString(pan) {
		return &domain.ValidationError{Field: "pan", Message: fmt.Sprintf("%q does not match PAN format", pan)}
	}
	return nil
}

// ValidateTAN checks the 10-character deduction-account format
// (4 letters, 5 digits, 1 letter).
func ValidateTAN(tan string) error {
	if tan == "" {
		return &domain.ValidationError{Field: "tan", Message: "TAN is required"}
	}
	if !tanPattern.MatchString(tan) {
		return &domain.ValidationError{Field: "tan", Message: fmt.Sprintf("%q does not match TAN format", tan)}
	}
	return nil
}

// ValidateHSN checks a 4-8 digit HSN/SAC code.
func ValidateHSN(code string) error {
	if !hsnPattern.MatchString(code) {
		return &domain.ValidationError{Field: "hsn_sac_code", Message: fmt.Sprintf("%q is not a 4-8 digit HSN/SAC code", code)}
	}
	return nil
}

// ValidateStateCode checks a 2-digit GST state code (01-38).
func ValidateStateCode(code string) error {
	if len(code) == 2 {
		if n, err := strconv.Atoi(code); err == nil && n >= 1 && n <= 38 {
			return nil
		}
	}
	return &domain.ValidationError{Field: "state_code", Message: fmt.Sprintf("%q is not a 2-digit state code (01-38)", code)}
}

// StateCodeOf extracts the 2-digit state code prefix of a GSTIN.
// Returns "" when the GSTIN is too short.
func StateCodeOf(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

// PANOf extracts the PAN embedded in characters 3-12 of a GSTIN.
// Returns "" when the GSTIN is too short.
func PANOf(gstin string) string {
	if len(gstin) < 12 {
		return ""
	}
	return gstin[2:12]
}

// NormalizeCountry uppercases and trims a country spelling and maps
// every accepted domestic spelling to "IN". Other values are returned
// uppercased as-is.
func NormalizeCountry(country string) string {
	c := strings.ToUpper(strings.TrimSpace(country))
	if domesticSpellings[c] {
		return "IN"
	}
	return c
}

// IsDomestic reports whether the country value is a spelling of the
// domestic country. An empty country is treated as domestic.
func IsDomestic(country string) bool {
	c := strings.ToUpper(strings.TrimSpace(country))
	if c == "" {
		return true
	}
	return domesticSpellings[c]
}
