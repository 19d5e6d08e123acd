package commands_test

import (
	"errors"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimNextOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewClaimNextOrderCommand("")
	next := storedOrder(2, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("LockFirstPending", ctx).Return(next, nil).Once(),
		repo.On("Update", ctx, next).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimNextOrderCommandHandler(factory)
	claimed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.ID(2), claimed.ID())
	assert.Equal(t, order.InProgress, claimed.Status())
	repo.AssertNotCalled(t, "GetFirstPending", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimNextOrderCommandHandler_Handle_NoPendingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewClaimNextOrderCommand(order.Ready)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("LockFirstPending", ctx).
			Return(nil, errs.NewObjectNotFoundError("order", "first pending")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimNextOrderCommandHandler(factory)
	claimed, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoPendingOrder)
	assert.Nil(t, claimed)
	uow.AssertExpectations(t)
}

func TestClaimNextOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewClaimNextOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.ClaimNextOrderCommand{})
	require.ErrorIs(t, err, commands.ErrClaimNextOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestClaimNextOrderCommandHandler_Handle_StoreErrors(t *testing.T) {
	tests := []struct {
		name      string
		beginErr  error
		lockErr   error
		updateErr error
		commitErr error
	}{
		{name: "begin", beginErr: errors.New("begin error")},
		{name: "lock", lockErr: errors.New("lock error")},
		{name: "update", updateErr: errors.New("update error")},
		{name: "commit", commitErr: errors.New("commit error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewClaimNextOrderCommand("")
			next := storedOrder(1, order.Pending)

			repo := new(MockOrderRepository)
			repo.On("LockFirstPending", ctx).Return(next, tt.lockErr).Maybe()
			repo.On("Update", ctx, next).Return(tt.updateErr).Maybe()

			uow := new(MockOrderUoW)
			uow.On("Begin", ctx).Return(tt.beginErr)
			uow.On("OrderRepository").Return(repo).Maybe()
			uow.On("Commit", ctx).Return(tt.commitErr).Maybe()
			uow.On("Rollback", ctx).Return(nil).Maybe()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow)

			h := commands.NewClaimNextOrderCommandHandler(factory)
			claimed, err := h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrStorageUnavailable)
			assert.Nil(t, claimed)
		})
	}
}
