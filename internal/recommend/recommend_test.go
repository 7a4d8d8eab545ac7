package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immoralia/process-catalog/internal/catalog"
	"github.com/immoralia/process-catalog/internal/onboarding"
)

func TestScore_Weights(t *testing.T) {
	process, ok := catalog.ByID("C9")
	require.True(t, ok)

	profile := &onboarding.Profile{
		Sector: "Retail",
		Tools:  []string{"Holded"},
		Channels: onboarding.Channels{
			Clients: []string{"Email"},
		},
	}

	// sector (5) + tool (3) + client channel (2)
	assert.Equal(t, 10, Score(process, profile))
}

func TestScore_NilProfile(t *testing.T) {
	process, ok := catalog.ByID("A1")
	require.True(t, ok)
	assert.Equal(t, 0, Score(process, nil))
}

func TestForProfile_SectorOnlyQualifies(t *testing.T) {
	profile := &onboarding.Profile{Sector: "Peluquería/estética"}

	recommended := ForProfile(profile)
	require.Len(t, recommended, 1)
	assert.Equal(t, "F25", recommended[0].ID)
}

func TestForProfile_ToolsOnlyDoesNotQualify(t *testing.T) {
	profile := &onboarding.Profile{Tools: []string{"Holded"}}
	assert.Empty(t, ForProfile(profile))
}

func TestForProfile_CappedAtFourInCatalogOrder(t *testing.T) {
	// This sector matches nearly every catalog entry; the output must still
	// be the first four in catalog-definition order.
	profile := &onboarding.Profile{Sector: "Agencia/marketing"}

	recommended := ForProfile(profile)
	require.Len(t, recommended, 4)
	assert.Equal(t, "A1", recommended[0].ID)
	assert.Equal(t, "A2", recommended[1].ID)
	assert.Equal(t, "A3", recommended[2].ID)
	assert.Equal(t, "A4", recommended[3].ID)
}

func TestForProfile_NoProfile(t *testing.T) {
	assert.Empty(t, ForProfile(nil))
}
