package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/freshcart/freshcart/internal/constants"
	"github.com/freshcart/freshcart/internal/logger"
	"github.com/freshcart/freshcart/internal/models"
	"github.com/freshcart/freshcart/internal/queue"
	"github.com/freshcart/freshcart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	cartService *CartService
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, cartService *CartService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		cartService: cartService,
		queueClient: queueClient,
	}
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID          uint
	DeliveryAddress string
	PaymentMethod   string
	ClientIP        string
}

// CreateOrder 提交订单。前置条件按序校验，任一失败立即返回：
// 收货地址必填（校验先于购物车读取），购物车非空。
// 订单与订单项落库、购物车清空在同一事务内完成，失败整体回滚。
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	address := strings.TrimSpace(input.DeliveryAddress)
	if address == "" {
		return nil, ErrAddressRequired
	}

	details, err := s.cartService.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrCartEmpty
	}

	totals := ComputeCartTotals(details)
	now := time.Now()
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		DeliveryAddress: address,
		PaymentMethod:   normalizePaymentMethod(input.PaymentMethod),
		SubtotalAmount:  totals.Subtotal,
		TaxAmount:       totals.Tax,
		TotalAmount:     totals.Total,
		PaymentStatus:   constants.PaymentStatusPending,
		ClientIP:        strings.TrimSpace(input.ClientIP),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items := make([]models.OrderItem, 0, len(details))
	for _, detail := range details {
		lineTotal := detail.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(detail.Quantity)))
		item := models.OrderItem{
			ProductID:  detail.ProductID,
			UnitPrice:  detail.UnitPrice,
			Quantity:   detail.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if detail.Product != nil {
			item.Name = detail.Product.Name
			item.ImageURL = detail.Product.ImageURL
		}
		items = append(items, item)
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = items

	s.enqueueStatusEmail(order.ID, order.PaymentStatus)
	return order, nil
}

// GetByIDForUser 获取用户订单详情
func (s *OrderService) GetByIDForUser(id, userID uint) (*models.Order, error) {
	if id == 0 || userID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser 获取用户订单列表
func (s *OrderService) ListByUser(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   NormalizePaymentStatus(status),
	}
	return s.orderRepo.ListByUser(filter)
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetByID 管理端获取订单详情
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdatePaymentStatus 管理端更新订单支付状态，终态后的变更会被拒绝
func (s *OrderService) UpdatePaymentStatus(id uint, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := ValidatePaymentStatusTransition(order.PaymentStatus, status); err != nil {
		return nil, err
	}
	normalized := NormalizePaymentStatus(status)
	if normalized == order.PaymentStatus {
		return order, nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, normalized, updates); err != nil {
		return nil, err
	}
	order.PaymentStatus = normalized
	order.UpdatedAt = now

	s.enqueueStatusEmail(order.ID, normalized)
	return order, nil
}

// enqueueStatusEmail 推送状态通知邮件任务，失败仅记录日志不阻塞主流程
func (s *OrderService) enqueueStatusEmail(orderID uint, status string) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	payload := queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  status,
	}
	if err := s.queueClient.EnqueueOrderStatusEmail(payload); err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_id", orderID,
			"status", status,
			"error", err,
		)
	}
}

func normalizePaymentMethod(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case constants.PaymentMethodCard, constants.PaymentMethodWallet:
		return value
	default:
		return constants.PaymentMethodCOD
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("FC%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
