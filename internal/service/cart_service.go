package service

import (
	"strconv"
	"time"

	"github.com/freshcart/freshcart/internal/logger"
	"github.com/freshcart/freshcart/internal/models"
	"github.com/freshcart/freshcart/internal/repository"
)

// CartItemDetail 购物车项详情（用于响应与计价）
type CartItemDetail struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	Product   *models.Product `json:"product"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车，按加入顺序返回。
// 商品已删除或下架的条目在加载时直接清理，不进入结果。
func (s *CartService) ListByUser(userID uint) ([]CartItemDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	stale := make([]uint, 0)
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(strconv.FormatUint(uint64(item.ProductID), 10))
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.InStock {
			stale = append(stale, item.ID)
			continue
		}

		details = append(details, CartItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Product:   product,
		})
	}
	if len(stale) > 0 {
		if err := s.cartRepo.DeleteByIDs(stale); err != nil {
			logger.Warnw("cart_prune_stale_failed",
				"user_id", userID,
				"item_ids", stale,
				"error", err,
			)
		}
	}
	return details, nil
}

// AddItem 加入购物车：缺货商品拒绝且不改动购物车；
// 已有同商品条目时数量 +1，否则新建数量为 1 的条目。
func (s *CartService) AddItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	product, err := s.productRepo.GetByIDValue(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if !product.InStock {
		return ErrProductOutOfStock
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	now := time.Now()
	quantity := 1
	if existing != nil {
		quantity = existing.Quantity + 1
	}
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.cartRepo.Upsert(item)
}

// SetQuantity 覆盖指定商品数量；数量小于 1 等价于删除该条目。
// 商品不在购物车中时不做任何事，也不会创建新条目。
func (s *CartService) SetQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	if quantity < 1 {
		return s.cartRepo.DeleteByUserAndProduct(userID, productID)
	}
	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	now := time.Now()
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.cartRepo.Upsert(item)
}

// RemoveItem 删除购物车项，条目不存在时为空操作
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByUser(userID)
}
