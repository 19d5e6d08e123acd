package commands_test

import (
	"errors"
	"strings"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPlaceOrderCommand("Margherita", []string{"basil", "mozzarella"})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				_ = args.Get(1).(*order.Order).AssignID(7)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.ID(7), placed.ID())
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, "Margherita", placed.PizzaType())
	require.Len(t, placed.Toppings(), 2)
	assert.Equal(t, order.ID(7), placed.Toppings()[1].OrderID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_NameTooLong(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPlaceOrderCommand("Margherita", []string{strings.Repeat("x", order.MaxNameLength+1)})
	factory := new(MockOrderUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.NotErrorIs(t, err, errs.ErrStorageUnavailable)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPlaceOrderCommand("Margherita", nil)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("connection refused")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPlaceOrderCommand("Margherita", []string{"basil"})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.Nil(t, placed)

	var storageErr *errs.StorageUnavailableError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "place order", storageErr.Operation)
	assert.EqualError(t, storageErr.Cause, "add error")
	uow.AssertNotCalled(t, "Commit", ctx)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPlaceOrderCommand("Margherita", nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
