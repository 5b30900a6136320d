package public

import (
	"errors"
	"strconv"

	"github.com/freshcart/freshcart/internal/http/response"
	"github.com/freshcart/freshcart/internal/models"
	"github.com/freshcart/freshcart/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// SetCartQuantityRequest 覆盖购物车数量请求
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	Product   *models.Product `json:"product"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		respItems = append(respItems, CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Product:   item.Product,
		})
	}

	totals := service.ComputeCartTotals(items)
	response.Success(c, gin.H{
		"items":    respItems,
		"subtotal": totals.Subtotal,
		"tax":      totals.Tax,
		"total":    totals.Total,
	})
}

// AddCartItem 加入购物车，已有同商品条目时数量 +1
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.CartService.AddItem(uid, req.ProductID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		case errors.Is(err, service.ErrProductOutOfStock):
			respondError(c, response.CodeBadRequest, "error.out_of_stock", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"added": true})
}

// SetCartItemQuantity 覆盖购物车项数量，数量小于 1 等价删除
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.CartService.SetQuantity(uid, uint(productID), req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.CartService.RemoveItem(uid, uint(productID)); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
