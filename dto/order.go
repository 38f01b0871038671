package dto

import (
	"time"

	"github.com/danuartha/resto-pos/models"
)

type OrderItemRequest struct {
	MenuID   uint   `json:"menu_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Notes    string `json:"notes"`
}

type OrderCreateRequest struct {
	UserID  uint               `json:"user_id" binding:"required"`
	TableID *uint              `json:"table_id"`
	Items   []OrderItemRequest `json:"items" binding:"required"`
}

// OrderItemUpdateRequest memakai pointer untuk partial update: field nil
// dibiarkan apa adanya, tidak dikosongkan.
type OrderItemUpdateRequest struct {
	Quantity *int    `json:"quantity"`
	Notes    *string `json:"notes"`
	Active   *bool   `json:"active"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type StartOrderRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	TableID uint `json:"table_id" binding:"required"`
}

type PayOrderRequest struct {
	Method     string   `json:"method" binding:"required"`
	PaidAmount *float64 `json:"paid_amount" binding:"required"`
	Tip        float64  `json:"tip"`
	Note       string   `json:"note"`
}

// Response membawa field display (label meja, nama menu, nama status) agar
// caller tidak perlu lookup kedua untuk merender order.
type OrderItemResponse struct {
	ID       uint    `json:"id"`
	MenuID   uint    `json:"menu_id"`
	MenuName string  `json:"menu_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	Active   bool    `json:"active"`
}

type OrderResponse struct {
	ID         uint                `json:"id"`
	UserID     uint                `json:"user_id"`
	UserName   string              `json:"user_name"`
	TableID    *uint               `json:"table_id,omitempty"`
	TableLabel string              `json:"table_label,omitempty"`
	Status     string              `json:"status"`
	Total      float64             `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}

func NewOrderResponse(order models.Order) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		UserName:  order.User.Name,
		TableID:   order.TableID,
		Status:    order.Status,
		Total:     order.Total(),
		CreatedAt: order.CreatedAt,
		Items:     make([]OrderItemResponse, 0, len(order.OrderItems)),
	}
	if order.Table != nil {
		resp.TableLabel = order.Table.Label
	}
	for _, item := range order.OrderItems {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:       item.ID,
			MenuID:   item.MenuID,
			MenuName: item.MenuName,
			Price:    item.Price,
			Quantity: item.Quantity,
			Notes:    item.Notes,
			Active:   item.Active,
		})
	}
	return resp
}

func NewOrderResponses(orders []models.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, NewOrderResponse(order))
	}
	return responses
}
