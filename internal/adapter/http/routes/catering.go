package routes

import (
	"github.com/ceccimesquita/papillon/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients        = "/api/cliente"
	PathBudgets        = "/api/orcamento"
	PathEvents         = "/api/evento"
	PathSupplies       = "/api/insumo"
	PathEmployees      = "/api/funcionarios"
	PathMenus          = "/cardapios"
	PathPaymentMethods = "/api/pagamentos"
)

func addCateringRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	budgetHandler *handlers.BudgetHandler,
	eventHandler *handlers.EventHandler,
	supplyHandler *handlers.SupplyHandler,
	menuHandler *handlers.MenuHandler,
	employeeHandler *handlers.EmployeeHandler,
	paymentMethodHandler *handlers.PaymentMethodHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.Register)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetDetails)
		clients.GET("/:id/detalhes", clientHandler.GetDetails)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.Create)
		budgets.GET("", budgetHandler.List)
		budgets.GET("/:id", budgetHandler.Get)
		budgets.PUT("/:id", budgetHandler.Update)
		budgets.PATCH("/:id/status", budgetHandler.ChangeStatus)
		budgets.GET("/:id/pdf", budgetHandler.DownloadPdf)
		budgets.DELETE("/:id", budgetHandler.Delete)
	}

	events := rg.Group(PathEvents)
	{
		events.POST("", eventHandler.Create)
		events.GET("", eventHandler.List)
		events.GET("/:id", eventHandler.Get)
		events.PUT("/:id", eventHandler.Update)
		events.PATCH("/:id/status", eventHandler.ChangeStatus)
		events.DELETE("/:id", eventHandler.Delete)
	}

	supplies := rg.Group(PathSupplies)
	{
		supplies.POST("", supplyHandler.Create)
		supplies.GET("", supplyHandler.List)
		supplies.GET("/:id", supplyHandler.Get)
		supplies.GET("/evento/:id", supplyHandler.ListByEvent)
		supplies.PUT("/:id", supplyHandler.Update)
		supplies.DELETE("/:id", supplyHandler.Delete)
	}

	menus := rg.Group(PathMenus)
	{
		menus.POST("", menuHandler.Create)
		menus.GET("", menuHandler.List)
		menus.GET("/:id", menuHandler.Get)
		menus.DELETE("/:id", menuHandler.Delete)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.POST("", employeeHandler.Create)
		employees.GET("", employeeHandler.List)
		employees.GET("/:id", employeeHandler.Get)
		employees.PUT("/:id", employeeHandler.Update)
		employees.DELETE("/:id", employeeHandler.Delete)
	}

	paymentMethods := rg.Group(PathPaymentMethods)
	{
		paymentMethods.POST("", paymentMethodHandler.Create)
		paymentMethods.GET("", paymentMethodHandler.List)
		paymentMethods.GET("/:id", paymentMethodHandler.Get)
		paymentMethods.PUT("/:id", paymentMethodHandler.Update)
		paymentMethods.DELETE("/:id", paymentMethodHandler.Delete)
	}
}
