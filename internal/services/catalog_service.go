package services

import (
	"furniture_store/internal/models"
	"furniture_store/internal/repository"
)

type CatalogService interface {
	// Products
	CreateProduct(product *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	ListProducts(categoryID uint, search string) ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error

	// Categories
	CreateCategory(category *models.Category) error
	GetCategoryByID(id uint) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *catalogService) CreateProduct(product *models.Product) error {
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return asNotFound(err, ErrCategoryNotFound)
	}
	return s.productRepo.Create(product)
}

func (s *catalogService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, ErrProductNotFound)
	}
	return product, nil
}

// ListProducts returns active products, optionally narrowed by category or a
// name/description search. Search takes precedence over the category filter.
func (s *catalogService) ListProducts(categoryID uint, search string) ([]models.Product, error) {
	if search != "" {
		return s.productRepo.Search(search)
	}
	if categoryID != 0 {
		return s.productRepo.GetByCategory(categoryID)
	}
	return s.productRepo.GetAll()
}

func (s *catalogService) UpdateProduct(product *models.Product) error {
	if _, err := s.productRepo.GetByID(product.ID); err != nil {
		return asNotFound(err, ErrProductNotFound)
	}
	return s.productRepo.Update(product)
}

func (s *catalogService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.GetByID(id); err != nil {
		return asNotFound(err, ErrProductNotFound)
	}
	return s.productRepo.Delete(id)
}

func (s *catalogService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

func (s *catalogService) GetCategoryByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *catalogService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *catalogService) UpdateCategory(category *models.Category) error {
	if _, err := s.categoryRepo.GetByID(category.ID); err != nil {
		return asNotFound(err, ErrCategoryNotFound)
	}
	return s.categoryRepo.Update(category)
}

func (s *catalogService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return asNotFound(err, ErrCategoryNotFound)
	}
	return s.categoryRepo.Delete(id)
}
