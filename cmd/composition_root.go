package cmd

import (
	httpadapter "teashop/internal/adapters/in/http"
	"teashop/internal/adapters/out/postgres"
	"teashop/internal/core/application/usecases/commands"
	"teashop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sessions   *httpadapter.SessionStore
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   httpadapter.NewSessionStore(),
	}
}

func (c *CompositionRoot) SessionStore() *httpadapter.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) CreateUpdateCartCommandHandler() commands.UpdateCartCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCartCommandHandler() commands.CheckoutCartCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCartCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	var f commands.IdentityUoWFactory = FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignInCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveStaleCartsCommandHandler() commands.RemoveStaleCartsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveStaleCartsCommandHandler(f)
}

func (c *CompositionRoot) CreateListInventoryQueryHandler() queries.ListInventoryQueryHandler {
	return queries.NewListInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOpenOrdersQueryHandler() queries.ListOpenOrdersQueryHandler {
	return queries.NewListOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOperatorQueryHandler() queries.GetOperatorQueryHandler {
	return queries.NewGetOperatorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.sessions,
		c.CreateUpdateCartCommandHandler(),
		c.CreateCheckoutCartCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateSignInCommandHandler(),
		c.CreateListInventoryQueryHandler(),
		c.CreateListOpenOrdersQueryHandler(),
		c.CreateGetCustomerQueryHandler(),
		c.CreateGetOperatorQueryHandler(),
		c.CreateGetCartQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}
