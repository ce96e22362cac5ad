package order

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestOrderDeletionCascadesToItems(t *testing.T) {
	s, err := schema.Parse(&Order{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Items"]
	require.True(t, ok, "missing Items relation")

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint, "Items declares no foreign key constraint")
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}
