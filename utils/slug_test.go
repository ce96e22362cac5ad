package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Summer Jazz Night":      "summer-jazz-night",
		"  Tech Conf 2026!  ":    "tech-conf-2026",
		"Rock & Roll -- Revival": "rock-roll-revival",
		"UPPER case":             "upper-case",
		"":                       "",
		"---":                    "",
		"Fête de la Musique":     "fête-de-la-musique",
	}

	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}
