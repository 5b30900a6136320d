package service

import (
	"strings"

	"github.com/freshcart/freshcart/internal/models"
	"github.com/freshcart/freshcart/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProductInput 创建/更新商品输入
type CreateProductInput struct {
	Name          string
	Description   string
	Category      string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	ImageURL      string
	Images        []string
	Rating        *float64
	ReviewCount   *int
	InStock       *bool
	SortOrder     int
}

// ListPublic 获取门店商品列表
func (s *ProductService) ListPublic(category, search string, onlyInStock bool, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		Category:    category,
		Search:      search,
		OnlyInStock: onlyInStock,
	}
	return s.repo.List(filter)
}

// ListAdmin 获取管理端商品列表，不过滤缺货商品
func (s *ProductService) ListAdmin(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: category,
		Search:   search,
	}
	return s.repo.List(filter)
}

// GetByID 获取商品详情
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品，按归一化名称做重复检测，重复则拒绝且不落库。
// 检测与写入不在同一事务内。
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	price := input.Price.Round(2)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}

	names, err := s.repo.ListNames()
	if err != nil {
		return nil, err
	}
	if IsDuplicateProductName(name, names) {
		return nil, ErrProductDuplicate
	}

	rating := 4.0
	if input.Rating != nil {
		rating = *input.Rating
	}
	reviewCount := 0
	if input.ReviewCount != nil {
		reviewCount = *input.ReviewCount
	}
	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := models.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Price:       models.NewMoneyFromDecimal(price),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Images:      models.StringArray(input.Images),
		Rating:      rating,
		ReviewCount: reviewCount,
		InStock:     inStock,
		SortOrder:   input.SortOrder,
	}
	if input.OriginalPrice != nil {
		original := models.NewMoneyFromDecimal(input.OriginalPrice.Round(2))
		product.OriginalPrice = &original
	}

	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 更新商品，改名不做归一化重复检测
func (s *ProductService) Update(id string, input CreateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	price := input.Price.Round(2)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		product.Name = name
	}
	product.Description = strings.TrimSpace(input.Description)
	product.Category = strings.TrimSpace(input.Category)
	product.Price = models.NewMoneyFromDecimal(price)
	product.OriginalPrice = nil
	if input.OriginalPrice != nil {
		original := models.NewMoneyFromDecimal(input.OriginalPrice.Round(2))
		product.OriginalPrice = &original
	}
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.Images = models.StringArray(input.Images)
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		product.ReviewCount = *input.ReviewCount
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	product.SortOrder = input.SortOrder

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
