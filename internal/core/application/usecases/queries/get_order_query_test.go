package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetOrderQueryWithInvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})

	assert.Error(t, err)
}

func TestGetOrderQueryZeroValueIsNotValid(t *testing.T) {
	var query queries.GetOrderQuery

	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
