package ticket

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestTicketDeletionCascades(t *testing.T) {
	s, err := schema.Parse(&Ticket{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["OrderItems"]
	require.True(t, ok, "missing OrderItems relation")

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint, "OrderItems declares no foreign key constraint")
	assert.Equal(t, "CASCADE", constraint.OnDelete)
}
