package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurgeDeliveredOrdersCommandHandler(t *testing.T) {
	ctx := context.Background()

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}

	factory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(repo),
		repo.On("PurgeDelivered", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewPurgeDeliveredOrdersCommandHandler(factory)

	cmd, err := commands.NewPurgeDeliveredOrdersCommand(7 * 24 * time.Hour)
	require.NoError(t, err)

	removed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	cutoff := repo.Calls[0].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().UTC().Add(-7*24*time.Hour), cutoff, time.Minute)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeDeliveredOrdersCommandHandlerWithNothingToPurge(t *testing.T) {
	ctx := context.Background()

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}

	factory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(repo),
		repo.On("PurgeDelivered", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewPurgeDeliveredOrdersCommandHandler(factory)

	cmd, err := commands.NewPurgeDeliveredOrdersCommand(7 * 24 * time.Hour)
	require.NoError(t, err)

	removed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestPurgeDeliveredOrdersCommandHandlerWithInvalidCommand(t *testing.T) {
	factory := &MockOrderUoWFactory{}

	handler := commands.NewPurgeDeliveredOrdersCommandHandler(factory)

	_, err := handler.Handle(context.Background(), commands.PurgeDeliveredOrdersCommand{})

	assert.ErrorIs(t, err, commands.ErrPurgeDeliveredOrdersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPurgeDeliveredOrdersCommandHandlerWithPurgeError(t *testing.T) {
	ctx := context.Background()
	purgeErr := errors.New("purge failed")

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}

	factory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(repo),
		repo.On("PurgeDelivered", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), purgeErr),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewPurgeDeliveredOrdersCommandHandler(factory)

	cmd, err := commands.NewPurgeDeliveredOrdersCommand(7 * 24 * time.Hour)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, purgeErr)
	uow.AssertNotCalled(t, "Commit", ctx)
}
