package onboarding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileJSON_OtherToolsFlattened(t *testing.T) {
	profile := Profile{
		Sector:   "Agencia/marketing",
		Tools:    []string{"Holded", "Gestión: Otro"},
		Maturity: MaturityIntermediate,
		Nombre:   "Ana",
		Email:    "ana@example.com",
		OtherTools: map[string]string{
			"Gestión": "Wrike",
		},
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Wrike", raw["other_Gestión"])
}

func TestProfileJSON_RoundTripPreservesExtra(t *testing.T) {
	input := `{
		"sector": "Retail",
		"tools": ["Holded"],
		"channels": {"clients": ["Email"], "internal": ["Slack"]},
		"maturity": "Básico",
		"usesAI": true,
		"pains": [],
		"nombre": "Luis",
		"email": "luis@example.com",
		"other_CRM/Ventas": "Attio",
		"selected_erp_platform_id": "Holded",
		"campaign_source": "google"
	}`

	var profile Profile
	require.NoError(t, json.Unmarshal([]byte(input), &profile))

	assert.Equal(t, "Attio", profile.OtherTools["CRM/Ventas"])
	assert.Equal(t, "Holded", profile.PlatformERP())
	assert.Equal(t, "google", profile.Extra["campaign_source"])

	// Re-marshal and make sure the ad hoc keys survive.
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Attio", raw["other_CRM/Ventas"])
	assert.Equal(t, "Holded", raw["selected_erp_platform_id"])
	assert.Equal(t, "google", raw["campaign_source"])
}

func TestProfileJSON_NonStringAdHocFieldsDropped(t *testing.T) {
	input := `{"sector": "Retail", "tools": [], "pains": [], "nombre": "x", "email": "x@y.z", "weird": {"nested": 1}}`

	var profile Profile
	require.NoError(t, json.Unmarshal([]byte(input), &profile))
	assert.NotContains(t, profile.Extra, "weird")
}

func TestPlatformAccessors_NilProfile(t *testing.T) {
	var profile *Profile
	assert.Equal(t, "", profile.PlatformERP())
	assert.Equal(t, "", profile.PlatformCRM())
}
