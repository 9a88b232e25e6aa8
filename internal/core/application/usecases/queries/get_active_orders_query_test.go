package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewGetActiveOrdersQuery(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()

	assert.NoError(t, query.Validate())
}

func TestGetActiveOrdersQueryZeroValueIsNotValid(t *testing.T) {
	var query queries.GetActiveOrdersQuery

	assert.ErrorIs(t, query.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
