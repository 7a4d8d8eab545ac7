// Package onboarding holds the questionnaire profile, its local persistence
// and the six-step wizard that collects it.
package onboarding

import (
	"encoding/json"
	"strings"
)

// Maturity is the visitor's self-reported digitalization level.
type Maturity string

const (
	MaturityBasic        Maturity = "Básico"
	MaturityIntermediate Maturity = "Intermedio"
	MaturityAdvanced     Maturity = "Avanzado"
)

// Channels are the communication channels the visitor's business uses,
// split between client-facing and internal.
type Channels struct {
	Clients  []string `json:"clients"`
	Internal []string `json:"internal"`
}

// Profile is the questionnaire answer set. OtherTools maps a tool category
// name to its free-text override (serialized as "other_<Category>" keys on
// the wire). Extra carries any additional string-keyed fields verbatim, such
// as the platform selections the complexity engine reads.
type Profile struct {
	Sector      string   `json:"sector"`
	OtherSector string   `json:"otherSector,omitempty"`
	Tools       []string `json:"tools"`
	OtherTool   string   `json:"otherTool,omitempty"`
	Channels    Channels `json:"channels"`

	OtherClientChannel   string `json:"otherClientChannel,omitempty"`
	OtherInternalChannel string `json:"otherInternalChannel,omitempty"`

	Maturity       Maturity `json:"maturity"`
	UsesAI         bool     `json:"usesAI"`
	AITools        string   `json:"aiTools,omitempty"`
	AIUsagePurpose string   `json:"aiUsagePurpose,omitempty"`
	Volume         string   `json:"volume,omitempty"`

	Pains       []string `json:"pains"`
	OtherPain   string   `json:"otherPain,omitempty"`
	BiggestPain string   `json:"biggestPain,omitempty"`

	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono,omitempty"`

	OtherTools map[string]string `json:"-"`
	Extra      map[string]string `json:"-"`
}

// Extra keys read by the complexity engine.
const (
	KeyERPPlatform = "selected_erp_platform_id"
	KeyCRMPlatform = "selected_crm_platform_id"
)

const otherToolPrefix = "other_"

// profileAlias avoids recursive MarshalJSON calls.
type profileAlias Profile

// MarshalJSON serializes the profile with OtherTools flattened back to
// "other_<Category>" keys and Extra keys inlined, so the wire shape matches
// what the lead endpoints expect.
func (p Profile) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(profileAlias(p))
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}
	for category, text := range p.OtherTools {
		out[otherToolPrefix+category] = text
	}
	for key, value := range p.Extra {
		if _, exists := out[key]; !exists {
			out[key] = value
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores known fields, routes "other_<Category>" keys into
// OtherTools, and keeps any remaining string-valued keys in Extra.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var alias profileAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = Profile(alias)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if knownProfileKeys[key] {
			continue
		}
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			continue // non-string ad hoc fields are dropped
		}
		if strings.HasPrefix(key, otherToolPrefix) {
			if p.OtherTools == nil {
				p.OtherTools = make(map[string]string)
			}
			p.OtherTools[strings.TrimPrefix(key, otherToolPrefix)] = text
		} else {
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[key] = text
		}
	}
	return nil
}

var knownProfileKeys = map[string]bool{
	"sector": true, "otherSector": true,
	"tools": true, "otherTool": true,
	"channels":           true,
	"otherClientChannel": true, "otherInternalChannel": true,
	"maturity": true, "usesAI": true, "aiTools": true, "aiUsagePurpose": true,
	"volume": true,
	"pains":  true, "otherPain": true, "biggestPain": true,
	"nombre": true, "email": true, "telefono": true,
}

// PlatformERP returns the selected accounting-system platform, if any.
func (p *Profile) PlatformERP() string {
	if p == nil {
		return ""
	}
	return p.Extra[KeyERPPlatform]
}

// PlatformCRM returns the selected customer-relationship-system platform.
func (p *Profile) PlatformCRM() string {
	if p == nil {
		return ""
	}
	return p.Extra[KeyCRMPlatform]
}
