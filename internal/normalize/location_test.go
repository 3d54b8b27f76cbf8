package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindLocation(t *testing.T) {
	cases := []struct {
		name  string
		texts []string
		opts  LocationOptions
		want  string
	}{
		{"explicit city", []string{"Paris 75009", "Freelance", "TJM 600 €"}, LocationOptions{}, "Paris 75009"},
		{"remote skipped", []string{"Remote", "France"}, LocationOptions{}, "France"},
		{"remote accepted", []string{"Full remote possible"}, LocationOptions{IncludeRemote: true}, "Full remote possible"},
		{"contract only", []string{"Contrat freelance"}, LocationOptions{IncludeRemote: true}, ""},
		{"rate skipped", []string{"600 € Lyon", "Lille"}, LocationOptions{}, "Lille"},
		{"schedule skipped", []string{"Durée : 6 mois", "Démarrage ASAP", "Expérience 5 ans", "Nantes"}, LocationOptions{}, "Nantes"},
		{"postal code", []string{"69003 Villeurbanne"}, LocationOptions{}, "69003 Villeurbanne"},
		{"short segment", []string{"12 - la défense"}, LocationOptions{}, "12 - la défense"},
		{"long segment rejected", []string{"une mission de longue haleine"}, LocationOptions{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FindLocation(tc.texts, tc.opts))
		})
	}
}
