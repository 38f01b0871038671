package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/resto-pos/dto"
	"github.com/danuartha/resto-pos/events"
	"github.com/danuartha/resto-pos/services"
	"github.com/danuartha/resto-pos/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// GetAllOrders -> list orders beserta items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.GetAll()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", dto.NewOrderResponses(orders))
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Service.GetByID(orderID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", dto.NewOrderResponse(*order))
}

// CreateOrder -> buat order baru berstatus NEW dengan snapshot harga item
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.Create(req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastOrderUpdate(*order)
	utils.InfoLogger.Printf("Order %d created for user %d", order.ID, order.UserID)
	utils.RespondJSON(c, http.StatusCreated, "Order created", dto.NewOrderResponse(*order))
}

// AddItem -> tambah item ke order yang ada
func (oc *OrderController) AddItem(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	var req dto.OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.AddItem(orderID, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusCreated, "Item added", dto.NewOrderResponse(*order))
}

// UpdateItem -> partial update satu item (quantity/notes/active)
func (oc *OrderController) UpdateItem(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req dto.OrderItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.UpdateItem(orderID, itemID, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusOK, "Item updated", dto.NewOrderResponse(*order))
}

// RemoveItem -> hapus item dari order
func (oc *OrderController) RemoveItem(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	order, err := oc.Service.RemoveItem(orderID, itemID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusOK, "Item removed", dto.NewOrderResponse(*order))
}

// UpdateStatus -> ganti status order
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	var req dto.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.UpdateStatus(orderID, req.Status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastOrderUpdate(*order)
	utils.InfoLogger.Printf("Order %d status changed to %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", dto.NewOrderResponse(*order))
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	if err := oc.Service.Delete(orderID); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": orderID})
}

// StartOrder -> staff mendudukkan walk-in: meja jadi OCCUPIED, order NEW kosong
func (oc *OrderController) StartOrder(c *gin.Context) {
	var req dto.StartOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.Start(req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastOrderStarted(*order)
	if order.Table != nil {
		events.BroadcastTableUpdate(*order.Table)
		events.BroadcastStaffNotification(fmt.Sprintf("Order #%d started at table %s", order.ID, order.Table.Label))
	}
	utils.RespondJSON(c, http.StatusCreated, "Order started", dto.NewOrderResponse(*order))
}

// PayOrder -> order jadi PAID, meja (jika ada) dilepas ke AVAILABLE
func (oc *OrderController) PayOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}

	var req dto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, payment, err := oc.Service.Pay(orderID, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastOrderPaid(*order, *payment)
	if order.Table != nil {
		events.BroadcastTableUpdate(*order.Table)
	}
	utils.InfoLogger.Printf("Order %d paid (%s, amount=%.2f)", order.ID, payment.Method, payment.Amount)
	utils.RespondJSON(c, http.StatusOK, "Order paid", gin.H{
		"order":   dto.NewOrderResponse(*order),
		"payment": payment,
	})
}

// GetPaidOrders -> semua order berstatus PAID
func (oc *OrderController) GetPaidOrders(c *gin.Context) {
	orders, err := oc.Service.GetPaid()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Paid orders", dto.NewOrderResponses(orders))
}

// GetOpenOrders -> order yang statusnya bukan PAID/CANCELLED
func (oc *OrderController) GetOpenOrders(c *gin.Context) {
	orders, err := oc.Service.GetOpen()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Open orders", dto.NewOrderResponses(orders))
}

// GetOpenOrdersByTable -> order terbuka untuk satu meja
func (oc *OrderController) GetOpenOrdersByTable(c *gin.Context) {
	tableID, ok := parseIDParam(c, "table_id")
	if !ok {
		return
	}

	orders, err := oc.Service.GetOpenByTable(tableID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Open orders for table", dto.NewOrderResponses(orders))
}

// parseIDParam membaca path param sebagai uint; merespons 400 sendiri bila gagal.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}
