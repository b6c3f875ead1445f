package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var eventNotifier ports.Notifier
	if config.KafkaHost != "" {
		eventNotifier = notifier.NewKafkaNotifier(config.KafkaHost, config.KafkaNotificationsTopic, logger)
	} else {
		eventNotifier = notifier.NewNoopNotifier(logger)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   eventNotifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) Notifier() ports.Notifier {
	return c.notifier
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.CatalogStockUoWFactory = FuncCatalogStockUoWFactory(func() commands.CatalogStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f)
}

func (c *CompositionRoot) CreateLinkProductsCommandHandler() commands.LinkProductsCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLinkProductsCommandHandler(f)
}

func (c *CompositionRoot) CreateMergeStockCommandHandler() commands.MergeStockCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMergeStockCommandHandler(f)
}

func (c *CompositionRoot) CreateAddAlternateBarcodeCommandHandler() commands.AddAlternateBarcodeCommandHandler {
	var f commands.CatalogStockUoWFactory = FuncCatalogStockUoWFactory(func() commands.CatalogStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddAlternateBarcodeCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveAlternateBarcodeCommandHandler() commands.RemoveAlternateBarcodeCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveAlternateBarcodeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCatalogUoWFactory = FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceOrderLinesCommandHandler() commands.ReplaceOrderLinesCommandHandler {
	var f commands.OrderCatalogUoWFactory = FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceOrderLinesCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	var f commands.OrderCatalogUoWFactory = FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStateCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentOrderUoWFactory = FuncShipmentOrderUoWFactory(func() commands.ShipmentOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentLocationCommandHandler() commands.UpdateShipmentLocationCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeShipmentStateCommandHandler() commands.ChangeShipmentStateCommandHandler {
	var f commands.ShipmentOrderUoWFactory = FuncShipmentOrderUoWFactory(func() commands.ShipmentOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeShipmentStateCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCreateReceiptCommandHandler() commands.CreateReceiptCommandHandler {
	var f commands.ReceiptUoWFactory = FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReceiptCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() commands.ConfirmReceiptCommandHandler {
	var f commands.ConfirmReceiptUoWFactory = FuncConfirmReceiptUoWFactory(func() commands.ConfirmReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmReceiptCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCreditStockCommandHandler() commands.CreditStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreditStockCommandHandler(f)
}

func (c *CompositionRoot) CreateDepleteStockCommandHandler() commands.DepleteStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDepleteStockCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveBarcodeQueryHandler() queries.ResolveBarcodeQueryHandler {
	return queries.NewResolveBarcodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateConsolidatedQuantityQueryHandler() queries.ConsolidatedQuantityQueryHandler {
	return queries.NewConsolidatedQuantityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredOrdersQueryHandler() queries.GetUndeliveredOrdersQueryHandler {
	return queries.NewGetUndeliveredOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPersonalStockQueryHandler() queries.ListPersonalStockQueryHandler {
	return queries.NewListPersonalStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLedgerEntriesQueryHandler() queries.ListLedgerEntriesQueryHandler {
	return queries.NewListLedgerEntriesQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every command and query handler for the HTTP
// adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateProduct:          c.CreateCreateProductCommandHandler(),
		RemoveProduct:          c.CreateRemoveProductCommandHandler(),
		RestockProduct:         c.CreateRestockProductCommandHandler(),
		LinkProducts:           c.CreateLinkProductsCommandHandler(),
		MergeStock:             c.CreateMergeStockCommandHandler(),
		AddAlternateBarcode:    c.CreateAddAlternateBarcodeCommandHandler(),
		RemoveAlternateBarcode: c.CreateRemoveAlternateBarcodeCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ReplaceOrderLines:      c.CreateReplaceOrderLinesCommandHandler(),
		ChangeOrderState:       c.CreateChangeOrderStateCommandHandler(),
		CreateShipment:         c.CreateCreateShipmentCommandHandler(),
		AssignCarrier:          c.CreateAssignCarrierCommandHandler(),
		UpdateShipmentLocation: c.CreateUpdateShipmentLocationCommandHandler(),
		ChangeShipmentState:    c.CreateChangeShipmentStateCommandHandler(),
		CreateReceipt:          c.CreateCreateReceiptCommandHandler(),
		ConfirmReceipt:         c.CreateConfirmReceiptCommandHandler(),
		CreditStock:            c.CreateCreditStockCommandHandler(),
		DepleteStock:           c.CreateDepleteStockCommandHandler(),

		ResolveBarcode:       c.CreateResolveBarcodeQueryHandler(),
		ConsolidatedQuantity: c.CreateConsolidatedQuantityQueryHandler(),
		GetUndeliveredOrders: c.CreateGetUndeliveredOrdersQueryHandler(),
		ListPersonalStock:    c.CreateListPersonalStockQueryHandler(),
		ListLedgerEntries:    c.CreateListLedgerEntriesQueryHandler(),
	}
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetUndeliveredOrdersQueryHandler(), c.notifier, c.logger)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCatalogStockUoWFactory func() commands.CatalogStockUoW

func (f FuncCatalogStockUoWFactory) Create() commands.CatalogStockUoW {
	return f()
}

type FuncOrderCatalogUoWFactory func() commands.OrderCatalogUoW

func (f FuncOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncShipmentOrderUoWFactory func() commands.ShipmentOrderUoW

func (f FuncShipmentOrderUoWFactory) Create() commands.ShipmentOrderUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}

type FuncConfirmReceiptUoWFactory func() commands.ConfirmReceiptUoW

func (f FuncConfirmReceiptUoWFactory) Create() commands.ConfirmReceiptUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}
