package cmd

import (
	"log/slog"

	httpadapter "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/jobs"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs around one database pool.
// Writes go through gorm units of work; reads go through sqlx on the same pool.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	readDB     *sqlx.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, readDB *sqlx.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		readDB:     readDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClaimNextOrderCommandHandler() commands.ClaimNextOrderCommandHandler {
	return commands.NewClaimNextOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readDB)
}

func (c *CompositionRoot) CreateGetFirstPendingOrderQueryHandler() queries.GetFirstPendingOrderQueryHandler {
	return queries.NewGetFirstPendingOrderQueryHandler(c.readDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.readDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateClaimNextOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetFirstPendingOrderQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.logger,
	)
}

// CreateJobManager returns a manager for the jobs enabled in the config.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var enabled []jobs.Job

	if c.cfg.Kitchen.Enabled {
		kitchenJob, err := jobs.NewKitchenJob(
			c.CreateClaimNextOrderCommandHandler(),
			c.cfg.Kitchen.Schedule,
			order.Status(c.cfg.Kitchen.Status),
			c.logger,
		)
		if err != nil {
			return nil, err
		}
		enabled = append(enabled, kitchenJob)
	}

	return jobs.NewJobManager(enabled...), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
