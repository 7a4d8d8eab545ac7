package complexity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immoralia/process-catalog/internal/catalog"
	"github.com/immoralia/process-catalog/internal/onboarding"
)

func profileWithPlatforms(erp, crm string) *onboarding.Profile {
	extra := make(map[string]string)
	if erp != "" {
		extra[onboarding.KeyERPPlatform] = erp
	}
	if crm != "" {
		extra[onboarding.KeyCRMPlatform] = crm
	}
	return &onboarding.Profile{Extra: extra}
}

func TestFor_BaselineWithoutProfile(t *testing.T) {
	process, ok := catalog.ByID("D15")
	require.True(t, ok)

	result := For(process, nil)
	assert.Equal(t, Medium, result.Complejidad)
	assert.Equal(t, "1–2 semanas", result.TimeEstimate)
}

func TestFor_EasyPlatformLowersTier(t *testing.T) {
	process, ok := catalog.ByID("D15")
	require.True(t, ok)

	result := For(process, profileWithPlatforms("Holded", ""))
	assert.Equal(t, Low, result.Complejidad)
	assert.Equal(t, "1 semana o menos", result.TimeEstimate)
}

func TestFor_HardPlatformRaisesTier(t *testing.T) {
	process, ok := catalog.ByID("C9")
	require.True(t, ok)

	result := For(process, profileWithPlatforms("SAP Business One", ""))
	assert.Equal(t, Medium, result.Complejidad)
}

func TestFor_PlatformKeysMatchWireIdentifiers(t *testing.T) {
	// Platform identifiers arrive verbatim from the questionnaire, so the
	// delta table must be keyed by the full names.
	process, ok := catalog.ByID("A1")
	require.True(t, ok)

	result := For(process, profileWithPlatforms("SAP Business One", ""))
	assert.Equal(t, High, result.Complejidad)

	result = For(process, profileWithPlatforms("Microsoft Dynamics 365 Business Central", ""))
	assert.Equal(t, Medium, result.Complejidad)
}

func TestFor_MediumFloorHolds(t *testing.T) {
	process, ok := catalog.ByID("A3")
	require.True(t, ok)

	// Holded would lower A3 to Baja, but this process never drops below
	// Media.
	result := For(process, profileWithPlatforms("Holded", ""))
	assert.Equal(t, Medium, result.Complejidad)
}

func TestFor_ClampedAtBounds(t *testing.T) {
	high := &catalog.Process{
		ID:                 "X1",
		Complejidad:        High,
		IntegrationDomains: []catalog.Domain{catalog.DomainERP},
	}
	result := For(high, profileWithPlatforms("SAP S/4HANA", ""))
	assert.Equal(t, High, result.Complejidad)

	low := &catalog.Process{
		ID:                 "X2",
		Complejidad:        Low,
		IntegrationDomains: []catalog.Domain{catalog.DomainERP},
	}
	result = For(low, profileWithPlatforms("Holded", ""))
	assert.Equal(t, Low, result.Complejidad)
}

func TestFor_BothDomainsTakeHarderDelta(t *testing.T) {
	process := &catalog.Process{
		ID:                 "X3",
		Complejidad:        Medium,
		IntegrationDomains: []catalog.Domain{catalog.DomainERP, catalog.DomainCRM},
	}

	// Holded (-1) vs Salesforce (+1): the harder platform wins.
	result := For(process, profileWithPlatforms("Holded", "Salesforce"))
	assert.Equal(t, High, result.Complejidad)
}

func TestFor_PlatformOutsideIntegrationDomainsIgnored(t *testing.T) {
	process, ok := catalog.ByID("B8")
	require.True(t, ok)

	// B8 integrates no ERP, so the ERP selection changes nothing.
	result := For(process, profileWithPlatforms("SAP S/4HANA", ""))
	assert.Equal(t, Low, result.Complejidad)
}

func TestFor_UnknownPlatformIsNeutral(t *testing.T) {
	process, ok := catalog.ByID("D15")
	require.True(t, ok)

	result := For(process, profileWithPlatforms("Contaplus", ""))
	assert.Equal(t, Medium, result.Complejidad)
}

func TestFor_UndeclaredTierDefaultsToMedium(t *testing.T) {
	process := &catalog.Process{
		ID:                 "X4",
		IntegrationDomains: []catalog.Domain{catalog.DomainERP},
	}

	result := For(process, nil)
	assert.Equal(t, Medium, result.Complejidad)
	assert.Equal(t, "1–2 semanas", result.TimeEstimate)

	// The defaulted baseline still participates in delta adjustment.
	result = For(process, profileWithPlatforms("Holded", ""))
	assert.Equal(t, Low, result.Complejidad)
}

func TestFor_UntieredProcessStaysUntiered(t *testing.T) {
	process, ok := catalog.ByID("F25")
	require.True(t, ok)

	result := For(process, profileWithPlatforms("Holded", "HubSpot"))
	assert.Equal(t, NotApplicable, result.Complejidad)
	assert.Equal(t, "2-3 semanas", result.TimeEstimate)
}
