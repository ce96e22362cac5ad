package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestEventDeletionCascades(t *testing.T) {
	s, err := schema.Parse(&Event{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	// tiers and purchase history both go with the event
	for _, name := range []string{"Tickets", "OrderItems"} {
		rel, ok := s.Relationships.Relations[name]
		require.True(t, ok, "missing %s relation", name)

		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, "%s declares no foreign key constraint", name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, "%s must cascade on delete", name)
	}
}
