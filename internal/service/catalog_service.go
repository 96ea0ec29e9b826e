package service

import (
	"database/sql"
	"errors"

	"tablebite/internal/domain"
	"tablebite/internal/storage"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateCategory(name, description string) (*domain.Category, error) {
	if name == "" || description == "" {
		return nil, ErrMissingFields
	}
	cat := &domain.Category{Name: name, Description: description}
	if err := s.repo.CreateCategory(cat); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) ListCategories(page, limit int) ([]domain.Category, int, error) {
	categories, err := s.repo.ListCategories(limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountCategories()
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *CatalogService) GetCategory(id int) (*domain.Category, error) {
	cat, err := s.repo.GetCategory(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) UpdateCategory(id int, name, description string) (*domain.Category, error) {
	if name == "" && description == "" {
		return nil, ErrMissingFields
	}
	cat, err := s.repo.UpdateCategory(id, name, description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		if storage.IsUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) DeleteCategory(id int) error {
	rows, err := s.repo.DeleteCategory(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CatalogService) CreateProduct(categoryID int, product *domain.Product) error {
	if product.Name == "" || product.Description == "" {
		return ErrMissingFields
	}
	if product.Price <= 0 {
		return ErrMissingFields
	}
	if len(product.Images) == 0 {
		return ErrImageRequired
	}

	if _, err := s.repo.GetCategory(categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCategoryNotFound
		}
		return err
	}

	product.CategoryID = categoryID
	product.IsAvailable = true
	return s.repo.CreateProduct(product)
}

func (s *CatalogService) ListProducts(categoryID, page, limit int) ([]domain.Product, int, error) {
	products, err := s.repo.ListProducts(categoryID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountProducts(categoryID)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *CatalogService) GetProduct(id int) (*domain.Product, error) {
	product, err := s.repo.GetProduct(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(product *domain.Product) error {
	if product.Name == "" && product.Description == "" && product.Price <= 0 && len(product.Ingredients) == 0 {
		return ErrMissingFields
	}
	if err := s.repo.UpdateProduct(product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *CatalogService) ToggleAvailability(id int) (*domain.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.SetProductAvailability(id, !product.IsAvailable); err != nil {
		return nil, err
	}
	product.IsAvailable = !product.IsAvailable
	return product, nil
}

func (s *CatalogService) ChangeCategory(productID, categoryID int) error {
	if _, err := s.repo.GetCategory(categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCategoryNotFound
		}
		return err
	}
	rows, err := s.repo.SetProductCategory(productID, categoryID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *CatalogService) AddImages(productID int, urls []string) (*domain.Product, error) {
	if len(urls) == 0 {
		return nil, ErrImageRequired
	}
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	product.Images = append(product.Images, urls...)
	if err := s.repo.SetProductImages(productID, product.Images); err != nil {
		return nil, err
	}
	return product, nil
}

// RemoveImage drops one image by position but never the last one.
func (s *CatalogService) RemoveImage(productID, index int) (*domain.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(product.Images) {
		return nil, ErrImageRequired
	}
	if len(product.Images) == 1 {
		return nil, ErrImageRequired
	}
	product.Images = append(product.Images[:index], product.Images[index+1:]...)
	if err := s.repo.SetProductImages(productID, product.Images); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(id int) error {
	rows, err := s.repo.DeleteProduct(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
