package storage

import (
	"database/sql"

	"tablebite/internal/domain"

	"github.com/lib/pq"
)

type CatalogRepo struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{DB: db}
}

func (r *CatalogRepo) CreateCategory(cat *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id, created_at",
		cat.Name, cat.Description,
	).Scan(&cat.ID, &cat.CreatedAt)
}

func (r *CatalogRepo) ListCategories(limit, offset int) ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT c.id, c.name, COALESCE(c.description, ''), COUNT(p.id), c.created_at
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ProductCount, &cat.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (r *CatalogRepo) CountCategories() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count)
	return count, err
}

func (r *CatalogRepo) GetCategory(id int) (*domain.Category, error) {
	var cat domain.Category
	err := r.DB.QueryRow(
		"SELECT id, name, COALESCE(description, ''), created_at FROM categories WHERE id = $1",
		id,
	).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}

	products, err := r.ListProducts(id, 0, 0)
	if err != nil {
		return nil, err
	}
	cat.Products = products
	cat.ProductCount = len(products)
	return &cat, nil
}

func (r *CatalogRepo) UpdateCategory(id int, name, description string) (*domain.Category, error) {
	var cat domain.Category
	err := r.DB.QueryRow(`
		UPDATE categories
		SET name = COALESCE(NULLIF($1, ''), name),
		    description = COALESCE(NULLIF($2, ''), description)
		WHERE id = $3
		RETURNING id, name, description, created_at`,
		name, description, id,
	).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepo) DeleteCategory(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CatalogRepo) CreateProduct(product *domain.Product) error {
	return r.DB.QueryRow(`
		INSERT INTO products (category_id, name, description, price, is_available, ingredients, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		product.CategoryID, product.Name, product.Description, product.Price,
		product.IsAvailable, pq.Array(product.Ingredients), pq.Array(product.Images),
	).Scan(&product.ID, &product.CreatedAt)
}

// ListProducts returns products for a category, or all products when categoryID
// is 0. limit 0 means no paging.
func (r *CatalogRepo) ListProducts(categoryID, limit, offset int) ([]domain.Product, error) {
	query := `
		SELECT id, category_id, name, COALESCE(description, ''), price, is_available, ingredients, images, created_at
		FROM products
		WHERE ($1 = 0 OR category_id = $1)
		ORDER BY created_at DESC`
	args := []interface{}{categoryID}
	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.CategoryID, &product.Name, &product.Description, &product.Price,
			&product.IsAvailable, pq.Array(&product.Ingredients), pq.Array(&product.Images), &product.CreatedAt,
		); err != nil {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *CatalogRepo) CountProducts(categoryID int) (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM products WHERE ($1 = 0 OR category_id = $1)", categoryID).Scan(&count)
	return count, err
}

func (r *CatalogRepo) GetProduct(id int) (*domain.Product, error) {
	var product domain.Product
	err := r.DB.QueryRow(`
		SELECT id, category_id, name, COALESCE(description, ''), price, is_available, ingredients, images, created_at
		FROM products WHERE id = $1`, id,
	).Scan(
		&product.ID, &product.CategoryID, &product.Name, &product.Description, &product.Price,
		&product.IsAvailable, pq.Array(&product.Ingredients), pq.Array(&product.Images), &product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepo) UpdateProduct(product *domain.Product) error {
	return r.DB.QueryRow(`
		UPDATE products
		SET name = COALESCE(NULLIF($1, ''), name),
		    description = COALESCE(NULLIF($2, ''), description),
		    price = CASE WHEN $3 > 0 THEN $3 ELSE price END,
		    ingredients = CASE WHEN cardinality($4::text[]) > 0 THEN $4 ELSE ingredients END
		WHERE id = $5
		RETURNING id, category_id, name, description, price, is_available, ingredients, images, created_at`,
		product.Name, product.Description, product.Price, pq.Array(product.Ingredients), product.ID,
	).Scan(
		&product.ID, &product.CategoryID, &product.Name, &product.Description, &product.Price,
		&product.IsAvailable, pq.Array(&product.Ingredients), pq.Array(&product.Images), &product.CreatedAt,
	)
}

func (r *CatalogRepo) SetProductAvailability(id int, available bool) (int64, error) {
	result, err := r.DB.Exec("UPDATE products SET is_available = $1 WHERE id = $2", available, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CatalogRepo) SetProductCategory(productID, categoryID int) (int64, error) {
	result, err := r.DB.Exec("UPDATE products SET category_id = $1 WHERE id = $2", categoryID, productID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CatalogRepo) SetProductImages(id int, images []string) error {
	_, err := r.DB.Exec("UPDATE products SET images = $1 WHERE id = $2", pq.Array(images), id)
	return err
}

func (r *CatalogRepo) DeleteProduct(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
