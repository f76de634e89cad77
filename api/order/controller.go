/*
Package order exposes the order lifecycle over HTTP.

Controllers bind parameters, delegate to the application service and
translate outcomes through the response package. Binding errors return
400 directly; business errors go through HandleAppError, which maps
domain sentinels to their error codes and HTTP statuses.
*/
package order

import (
	"net/http"

	"github.com/kchelvan55/customer-admin-app-sub000/api/response"
	orderapp "github.com/kchelvan55/customer-admin-app-sub000/application/order"
	"github.com/kchelvan55/customer-admin-app-sub000/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller handles order endpoints.
type Controller struct {
	orderService *orderapp.ApplicationService
}

func NewController(orderService *orderapp.ApplicationService) *Controller {
	return &Controller{orderService: orderService}
}

// RegisterRoutes registers the order routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.CreateOrder)
		orderGroup.GET("/queue", c.GetBillingQueue)
		orderGroup.GET("/:id", c.GetOrder)
		orderGroup.GET("/shop/:shopId", c.GetShopOrders)
		orderGroup.PUT("/:id/shipping-date", c.SetShippingDate)
		orderGroup.PUT("/:id/clear-biller", c.ClearBiller)
		orderGroup.POST("/:id/ship", c.ShipOrder)
		orderGroup.POST("/:id/deliver", c.DeliverOrder)
		orderGroup.POST("/:id/cancel", c.CancelOrder)
		orderGroup.POST("/:id/modification-requests", c.CreateModificationRequest)
		orderGroup.POST("/:id/modification-requests/:reqId/resolve", c.ResolveModificationRequest)
		orderGroup.POST("/:id/credit-check", c.CheckCredit)
	}
}

// CreateOrder handles POST /api/v1/orders.
func (c *Controller) CreateOrder(ctx *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.CreateOrder(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, o, "order created successfully")
}

// GetOrder handles GET /api/v1/orders/:id.
func (c *Controller) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "order retrieved successfully")
}

// GetShopOrders handles GET /api/v1/orders/shop/:shopId.
func (c *Controller) GetShopOrders(ctx *gin.Context) {
	shopID := ctx.Param("shopId")
	if shopID == "" {
		response.HandleError(ctx, errors.BadRequest("shop ID is required"), "shop ID is required", http.StatusBadRequest)
		return
	}

	orders, err := c.orderService.GetShopOrders(ctx.Request.Context(), shopID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "shop orders retrieved successfully")
}

// GetBillingQueue handles GET /api/v1/orders/queue. The queue lists
// assignable orders in working order, most urgent first.
func (c *Controller) GetBillingQueue(ctx *gin.Context) {
	queue, err := c.orderService.GetBillingQueue(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, queue, "billing queue retrieved successfully")
}

// SetShippingDate handles PUT /api/v1/orders/:id/shipping-date.
// A null date clears the current shipping date.
func (c *Controller) SetShippingDate(ctx *gin.Context) {
	orderID := ctx.Param("id")
	var req orderapp.SetShippingDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.SetShippingDate(ctx.Request.Context(), orderID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "shipping date updated successfully")
}

// ClearBiller handles PUT /api/v1/orders/:id/clear-biller.
func (c *Controller) ClearBiller(ctx *gin.Context) {
	o, err := c.orderService.ClearBiller(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "biller cleared successfully")
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (c *Controller) ShipOrder(ctx *gin.Context) {
	var req orderapp.ShipOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.ShipOrder(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "order shipped successfully")
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (c *Controller) DeliverOrder(ctx *gin.Context) {
	var req orderapp.DeliverOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.DeliverOrder(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "order delivered successfully")
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (c *Controller) CancelOrder(ctx *gin.Context) {
	var req orderapp.CancelOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.CancelOrder(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "order cancelled successfully")
}

// CreateModificationRequest handles
// POST /api/v1/orders/:id/modification-requests.
func (c *Controller) CreateModificationRequest(ctx *gin.Context) {
	var req orderapp.CreateModificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.CreateModificationRequest(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, o, "modification request created successfully")
}

// ResolveModificationRequest handles
// POST /api/v1/orders/:id/modification-requests/:reqId/resolve.
// Accepted effects apply to the order immediately, whole-request or
// one line at a time.
func (c *Controller) ResolveModificationRequest(ctx *gin.Context) {
	var req orderapp.ResolveModificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	o, err := c.orderService.ResolveModificationRequest(ctx.Request.Context(), ctx.Param("id"), ctx.Param("reqId"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "modification request resolved successfully")
}

// CheckCredit handles POST /api/v1/orders/:id/credit-check.
func (c *Controller) CheckCredit(ctx *gin.Context) {
	var req orderapp.CreditCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.CheckCredit(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "credit check completed")
}
