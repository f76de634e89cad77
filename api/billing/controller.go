// Package billing exposes the biller-assignment and billing-task
// endpoints.
package billing

import (
	"net/http"

	"github.com/kchelvan55/customer-admin-app-sub000/api/response"
	orderapp "github.com/kchelvan55/customer-admin-app-sub000/application/order"

	"github.com/gin-gonic/gin"
)

// Controller handles billing endpoints.
type Controller struct {
	orderService *orderapp.ApplicationService
}

func NewController(orderService *orderapp.ApplicationService) *Controller {
	return &Controller{orderService: orderService}
}

// RegisterRoutes registers the billing routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	billingGroup := router.Group("/billing")
	{
		billingGroup.POST("/assign", c.AssignBillers)
		billingGroup.POST("/:id/start", c.StartBilling)
		billingGroup.POST("/:id/complete", c.CompleteBilling)
		billingGroup.POST("/:id/cancel", c.CancelBilling)
	}
}

// AssignBillers handles POST /api/v1/billing/assign.
//
// The response always carries exactly one of result or conflict. A
// conflict is not an error: it tells the caller a more urgent order
// exists and the same request must be repeated with override to
// proceed anyway.
func (c *Controller) AssignBillers(ctx *gin.Context) {
	var req orderapp.AssignBillersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.orderService.AssignBillers(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	message := "billers assigned"
	if result.Conflict != nil {
		message = "priority conflict: a more urgent order is waiting"
	}
	response.HandleSuccess(ctx, result, message)
}

// StartBilling handles POST /api/v1/billing/:id/start.
func (c *Controller) StartBilling(ctx *gin.Context) {
	o, err := c.orderService.StartBilling(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "billing started")
}

// CompleteBilling handles POST /api/v1/billing/:id/complete.
func (c *Controller) CompleteBilling(ctx *gin.Context) {
	o, err := c.orderService.CompleteBilling(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "billing completed")
}

// CancelBilling handles POST /api/v1/billing/:id/cancel.
func (c *Controller) CancelBilling(ctx *gin.Context) {
	o, err := c.orderService.CancelBilling(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, o, "billing cancelled")
}
