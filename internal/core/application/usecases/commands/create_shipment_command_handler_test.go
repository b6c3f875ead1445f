package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleDepot)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, kernel.NewUUID(), order.StatusReady, lines)
	shipmentID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	cmd, err := commands.NewCreateShipmentCommand(caller, shipmentID, target.ID(),
		&carrierID, "van 12", "J. Smith", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByOrderID", ctx, target.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, target.Status())

	added := shipmentRepo.Calls[1].Arguments[1].(*shipment.Shipment)
	assert.Equal(t, shipment.StatusPending, added.Status())
	require.NotNil(t, added.CarrierID())
	assert.True(t, added.CarrierID().IsEqual(carrierID))

	require.NotNil(t, added.EstimatedAt())
	require.NotNil(t, target.EstimatedDeliveryAt())
	assert.True(t, added.EstimatedAt().Equal(*target.EstimatedDeliveryAt()))
	assert.True(t, target.EstimatedDeliveryAt().After(time.Now()))

	shipmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_DuplicateShipment(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleDepot)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, kernel.NewUUID(), order.StatusReady, lines)

	existing, err := shipment.NewShipment(kernel.NewUUID(), target.ID(), "")
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand(caller, kernel.NewUUID(), target.ID(),
		nil, "", "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByOrderID", ctx, target.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.StatusReady, target.Status())
	shipmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleDepot)

	lines := []order.Line{makeTestLine(t, nil, "flour", 2)}
	target := makeTestOrder(t, kernel.NewUUID(), order.StatusPending, lines)

	cmd, err := commands.NewCreateShipmentCommand(caller, kernel.NewUUID(), target.ID(),
		nil, "", "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "ShipmentRepository")
}

func TestCreateShipmentCommandHandler_Handle_BuyerNotAuthorized(t *testing.T) {
	ctx := t.Context()
	caller := makeTestCaller(t, kernel.RoleBuyer)

	cmd, err := commands.NewCreateShipmentCommand(caller, kernel.NewUUID(), kernel.NewUUID(),
		nil, "", "", "")
	require.NoError(t, err)

	factory := new(MockShipmentOrderUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}
