package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tunezone-api/internal/application/auth"
	"github.com/jhoicas/tunezone-api/internal/application/cart"
	"github.com/jhoicas/tunezone-api/internal/application/catalog"
	"github.com/jhoicas/tunezone-api/internal/application/checkout"
	"github.com/jhoicas/tunezone-api/internal/application/dashboard"
	"github.com/jhoicas/tunezone-api/internal/application/notify"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CatalogUC     *catalog.CatalogUseCase
	CartUC        *cart.CartUseCase
	Notifications *notify.Center
	CheckoutUC    *checkout.CheckoutUseCase
	DashboardUC   *dashboard.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authed := AuthMiddleware(deps.AuthUC)

	// Auth: login e invitado son públicos
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/guest", authHandler.Guest)
	authGroup.Get("/me", authed, authHandler.Me)
	authGroup.Post("/logout", authed, authHandler.Logout)

	// Catálogo (cualquier sesión; el precio mayorista depende del rol)
	productHandler := NewProductHandler(deps.CatalogUC)
	products := api.Group("/products", authed)
	products.Get("/", productHandler.List)
	products.Get("/facets", productHandler.Facets)
	products.Get("/:id", productHandler.Get)

	// Carrito
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup := api.Group("/cart", authed)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items/:id", cartHandler.Update)
	cartGroup.Delete("/items/:id", cartHandler.Remove)
	cartGroup.Post("/items/:id/increment", cartHandler.Increment)
	cartGroup.Post("/items/:id/decrement", cartHandler.Decrement)

	// Notificaciones
	notificationHandler := NewNotificationHandler(deps.Notifications)
	notifications := api.Group("/notifications", authed)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", notificationHandler.Create)
	notifications.Delete("/:id", notificationHandler.Dismiss)

	// Checkout y pagos: los invitados no compran
	buyers := RequireRole(string(entity.RoleDealer), string(entity.RoleAdmin))
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	api.Post("/checkout", authed, buyers, checkoutHandler.Start)
	payments := api.Group("/payments", authed, buyers)
	payments.Get("/:id", checkoutHandler.Poll)
	payments.Get("/:id/qr", checkoutHandler.QR)
	payments.Post("/:id/cancel", checkoutHandler.Cancel)
	orders := api.Group("/orders", authed, buyers)
	orders.Get("/", checkoutHandler.Orders)
	orders.Get("/:id/receipt", checkoutHandler.Receipt)

	// Dashboard: acceso por pestaña según rol
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash := api.Group("/dashboards", authed)
	dash.Get("/overview", RequireTab(dashboard.TabOverview), dashboardHandler.Overview)
	dash.Get("/inventory", RequireTab(dashboard.TabInventory), dashboardHandler.Inventory)
	dash.Get("/sales", RequireTab(dashboard.TabSales), dashboardHandler.Sales)
	dash.Get("/warranty", RequireTab(dashboard.TabWarranty), dashboardHandler.Warranty)
	dash.Get("/support", RequireTab(dashboard.TabSupport), dashboardHandler.Support)
}
