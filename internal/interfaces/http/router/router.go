package router

import (
	"github.com/gin-gonic/gin"

	"github.com/quoteline/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers wired into the API
type Handlers struct {
	Quote       *handler.QuoteHandler
	SalesOrder  *handler.SalesOrderHandler
	Procurement *handler.ProcurementHandler
	Invoice     *handler.InvoiceHandler
	Numbering   *handler.NumberingHandler
}

// Setup registers all API routes on the engine under /api/v1
func Setup(engine *gin.Engine, h Handlers) {
	api := engine.Group("/api/v1")

	trade := api.Group("/trade")
	{
		trade.POST("/quotes", h.Quote.Create)
		trade.GET("/quotes", h.Quote.List)
		trade.GET("/quotes/:id", h.Quote.GetByID)
		trade.POST("/quotes/:id/send", h.Quote.Send)
		trade.POST("/quotes/:id/accept", h.Quote.Accept)
		trade.POST("/quotes/:id/reject", h.Quote.Reject)
		trade.DELETE("/quotes/:id", h.Quote.Delete)

		trade.POST("/sales-orders", h.SalesOrder.Create)
		trade.GET("/sales-orders/:id", h.SalesOrder.GetByID)
		trade.POST("/sales-orders/:id/confirm", h.SalesOrder.Confirm)
	}

	procurement := api.Group("/procurement")
	{
		procurement.POST("/purchase-orders", h.Procurement.CreateVendorPo)
		procurement.GET("/purchase-orders/:id", h.Procurement.GetVendorPo)
		procurement.POST("/purchase-orders/:id/issue", h.Procurement.IssueVendorPo)
		procurement.POST("/purchase-orders/:id/receive", h.Procurement.ReceiveVendorPo)
		procurement.GET("/goods-received-notes/:id", h.Procurement.GetGrn)
	}

	billing := api.Group("/billing")
	{
		billing.POST("/invoices", h.Invoice.CreateMaster)
		billing.GET("/invoices/:id", h.Invoice.GetByID)
		billing.POST("/invoices/:id/children", h.Invoice.CreateChild)
		billing.GET("/invoices/:id/children", h.Invoice.GetChildren)
		billing.POST("/invoices/:id/issue", h.Invoice.Issue)
		billing.POST("/invoices/:id/pay", h.Invoice.MarkPaid)
		billing.POST("/invoices/:id/void", h.Invoice.Void)
	}

	admin := api.Group("/admin/numbering")
	{
		admin.GET("/schemes", h.Numbering.ListSchemes)
		admin.GET("/schemes/:type", h.Numbering.GetScheme)
		admin.PUT("/schemes/:type", h.Numbering.UpdateScheme)
		admin.GET("/schemes/:type/counter", h.Numbering.GetCounter)
		admin.PUT("/schemes/:type/counter", h.Numbering.SetCounter)
		admin.DELETE("/schemes/:type/counter", h.Numbering.ResetCounter)
		admin.POST("/migrate", h.Numbering.Migrate)
	}
}
