package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rider-tracker/internal/application/auth"
	"github.com/jhoicas/rider-tracker/internal/application/customer"
	appdelivery "github.com/jhoicas/rider-tracker/internal/application/delivery"
	"github.com/jhoicas/rider-tracker/internal/application/tracking"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *customer.CustomerUseCase
	DeliveryUC    *appdelivery.DeliveryUseCase
	RemittancePDF *appdelivery.RemittancePDFUseCase
	TrackingUC    *tracking.TrackingUseCase
	JWTSecret     string
	JWTExpMinutes int
	// ExposeErrors incluye el error crudo en las respuestas 500 (desactivar en producción).
	ExposeErrors bool
	ServiceName  string
	HealthChecks map[string]HealthCheck
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	r := newResponder(deps.ExposeErrors, deps.Log)

	app.Get("/health", NewHealthHandler(deps.ServiceName, deps.HealthChecks).Health)

	api := app.Group("/api")

	// Auth (público salvo perfil)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, time.Duration(deps.JWTExpMinutes)*time.Minute, r)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)

	// Rutas protegidas (Bearer o cookie jwt)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole("rider", "admin"))

	// Clientes
	customers := protected.Group("/customer")
	customerHandler := NewCustomerHandler(deps.CustomerUC, r)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/", customerHandler.Update)

	// Entregas; las rutas fijas van antes de /:id
	deliveries := protected.Group("/delivery")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC, deps.RemittancePDF, r)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.ListActive)
	deliveries.Get("/addresses", deliveryHandler.Addresses)
	deliveries.Get("/history", deliveryHandler.History)
	deliveries.Get("/history/summary", deliveryHandler.Summary)
	deliveries.Get("/history/summary.pdf", deliveryHandler.SummaryPDF)
	deliveries.Get("/progress", deliveryHandler.Progress)
	deliveries.Put("/delivered", deliveryHandler.MarkDelivered)
	deliveries.Put("/returned", deliveryHandler.MarkReturned)
	deliveries.Delete("/:id", deliveryHandler.Delete)

	// Mapa y ubicación del rider
	rider := protected.Group("/rider")
	riderHandler := NewRiderHandler(deps.TrackingUC, r)
	rider.Get("/map", riderHandler.Map)
	rider.Put("/location", riderHandler.SaveLocation)
	rider.Get("/location/:userId", riderHandler.GetLocation)
	rider.Post("/simulation", riderHandler.StartSimulation)
	rider.Delete("/simulation", riderHandler.StopSimulation)
}
