package commands_test

import (
	"context"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) GetFirstPending(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) LockFirstPending(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	return orderOrNil(args.Get(0)), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func orderOrNil(v any) *order.Order {
	if v == nil {
		return nil
	}
	return v.(*order.Order)
}

func storedOrder(id order.ID, status order.Status) *order.Order {
	topping, err := order.RestoreTopping(id, 1, "basil")
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(id, "Margherita", status, []order.Topping{topping})
	if err != nil {
		panic(err)
	}
	return o
}
