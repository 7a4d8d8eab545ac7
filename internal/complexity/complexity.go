// Package complexity derives the effective implementation complexity and
// delivery time estimate for a catalog process, adjusted by the platforms
// the visitor reported during onboarding.
package complexity

import (
	"github.com/immoralia/process-catalog/internal/catalog"
	"github.com/immoralia/process-catalog/internal/onboarding"
)

// Complexity tiers, low to high.
const (
	Low    = "Baja"
	Medium = "Media"
	High   = "Alta"

	// NotApplicable marks processes whose scope is agreed per project and
	// cannot be tiered up front.
	NotApplicable = "N/A"
)

var levels = map[string]int{
	Low:    1,
	Medium: 2,
	High:   3,
}

var tierByLevel = map[int]string{
	1: Low,
	2: Medium,
	3: High,
}

// timeEstimates maps each tier to the customer-facing delivery window.
var timeEstimates = map[string]string{
	Low:    "1 semana o menos",
	Medium: "1–2 semanas",
	High:   "2–3 semanas",
}

// notApplicableEstimate is shown for untiered processes.
const notApplicableEstimate = "2-3 semanas"

// platformDeltas adjusts the baseline tier by how demanding each ERP or CRM
// platform is to integrate. Unlisted platforms adjust nothing.
var platformDeltas = map[string]int{
	// ERP
	"Holded":     -1,
	"QuickBooks": -1,
	"Xero":       -1,
	"Sage":       0,
	"Odoo":       0,
	"A3":         0,
	"Microsoft Dynamics 365 Business Central": 0,
	"Cegid (Ekon/XRP)":                        0,
	"SAP Business One":                        1,
	"Oracle NetSuite":                         1,
	"SAP S/4HANA":                             2,
	"Oracle ERP Cloud":                        2,
	"Workday":                                 2,

	// CRM
	"HubSpot":                      -1,
	"Pipedrive":                    -1,
	"Zoho":                         -1,
	"Freshsales (Freshworks CRM)":  -1,
	"Monday Sales CRM":             -1,
	"Copper CRM":                   -1,
	"Close (Close.io)":             -1,
	"Insightly":                    -1,
	"Zendesk Sell":                 -1,
	"ActiveCampaign (Deals CRM)":   -1,
	"Microsoft Dynamics 365 Sales": 0,
	"SugarCRM":                     0,
	"Salesforce":                   1,
}

// mediumFloor lists processes that never drop below the medium tier no
// matter how simple the visitor's platforms are.
var mediumFloor = map[string]bool{
	"A3": true,
}

// Result is the effective complexity shown on a process card.
type Result struct {
	Complejidad  string `json:"complejidad"`
	TimeEstimate string `json:"timeEstimate"`
}

// For returns the effective complexity of a process for the given profile.
// A nil profile leaves the baseline untouched. Only an explicit N/A
// declaration is exempt from adjustment; an undeclared tier counts as Media
// and goes through the delta path like any other.
func For(process *catalog.Process, profile *onboarding.Profile) Result {
	if process.Complejidad == NotApplicable {
		return Result{Complejidad: NotApplicable, TimeEstimate: notApplicableEstimate}
	}

	level, ok := levels[process.Complejidad]
	if !ok {
		level = levels[Medium]
	}

	level += platformDelta(process, profile)
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	if mediumFloor[process.ID] && level < levels[Medium] {
		level = levels[Medium]
	}

	tier := tierByLevel[level]
	return Result{Complejidad: tier, TimeEstimate: timeEstimates[tier]}
}

// platformDelta picks the adjustment for the platforms the visitor selected.
// Only domains the process actually integrates with count, and when both an
// ERP and a CRM apply the harder of the two wins.
func platformDelta(process *catalog.Process, profile *onboarding.Profile) int {
	var deltas []int
	if hasDomain(process, catalog.DomainERP) {
		if platform := profile.PlatformERP(); platform != "" {
			deltas = append(deltas, platformDeltas[platform])
		}
	}
	if hasDomain(process, catalog.DomainCRM) {
		if platform := profile.PlatformCRM(); platform != "" {
			deltas = append(deltas, platformDeltas[platform])
		}
	}
	if len(deltas) == 0 {
		return 0
	}
	max := deltas[0]
	for _, d := range deltas[1:] {
		if d > max {
			max = d
		}
	}
	return max
}

func hasDomain(process *catalog.Process, domain catalog.Domain) bool {
	for _, d := range process.IntegrationDomains {
		if d == domain {
			return true
		}
	}
	return false
}
