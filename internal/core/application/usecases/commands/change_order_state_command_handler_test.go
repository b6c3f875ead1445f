package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStateCommandHandler_Handle_DepotAdvancesOrder(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleDepot)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, kernel.NewUUID(), order.StatusPending, lines)

	cmd, err := commands.NewChangeOrderStateCommand(caller, target.ID(), order.StatusPreparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockOrderCatalogUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, target.BuyerID(), "order.status_changed", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStateCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, target.Status())
	catalogRepo.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestChangeOrderStateCommandHandler_Handle_CancellationRestoresStock(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleDepot)

	stocked := makeTestProduct(t, 3, 0)
	productID := stocked.ID()
	lines := []order.Line{makeTestLine(t, &productID, stocked.Name(), 2)}
	target := makeTestOrder(t, kernel.NewUUID(), order.StatusPreparing, lines)

	cmd, err := commands.NewChangeOrderStateCommand(caller, target.ID(), order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockOrderCatalogUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProduct", ctx, productID).Return(stocked, nil).Once(),
		catalogRepo.On("UpdateProduct", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, target.BuyerID(), "order.status_changed", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStateCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, target.Status())
	assert.Equal(t, 5, stocked.QuantityOnHand())
	uow.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
}

func TestChangeOrderStateCommandHandler_Handle_BuyerCancelsOwnOrder(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleBuyer)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, caller.ID(), order.StatusPending, lines)

	cmd, err := commands.NewChangeOrderStateCommand(caller, target.ID(), order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockOrderCatalogUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, target.BuyerID(), "order.status_changed", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStateCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, target.Status())
}

func TestChangeOrderStateCommandHandler_Handle_BuyerCannotAdvance(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleBuyer)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, caller.ID(), order.StatusPending, lines)

	cmd, err := commands.NewChangeOrderStateCommand(caller, target.ID(), order.StatusPreparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderCatalogUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStateCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.StatusPending, target.Status())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStateCommandHandler_Handle_BuyerCannotCancelForeignOrder(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleBuyer)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, kernel.NewUUID(), order.StatusPending, lines)

	cmd, err := commands.NewChangeOrderStateCommand(caller, target.ID(), order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderCatalogUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStateCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestChangeOrderStateCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleDepot)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, kernel.NewUUID(), order.StatusPending, lines)

	cmd, err := commands.NewChangeOrderStateCommand(caller, target.ID(), order.StatusShipped)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderCatalogUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStateCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.StatusPending, target.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
