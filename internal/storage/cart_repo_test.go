package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newCartRepo(t *testing.T) (*CartRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewCartRepo(db), mock, func() { db.Close() }
}

func TestCartRepo_EnsureCart(t *testing.T) {
	repo, mock, cleanup := newCartRepo(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO carts").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	id, err := repo.EnsureCart(7)
	assert.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepo_AddItem(t *testing.T) {
	repo, mock, cleanup := newCartRepo(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO cart_items").
		WithArgs(1, 5, 2, 12.5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AddItem(1, 5, 2, 12.5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepo_GetCartByOwner_RecomputesTotals(t *testing.T) {
	repo, mock, cleanup := newCartRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT id, owner_id, created_at FROM carts").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "created_at"}).
			AddRow(1, 7, now))

	itemRows := sqlmock.NewRows([]string{
		"product_id", "quantity", "unit_price",
		"category_id", "name", "description", "price", "is_available", "ingredients", "images", "created_at",
	}).
		AddRow(5, 2, 12.5, 3, "Margherita", "Classic", 12.5, true,
			[]byte("{tomato,mozzarella}"), []byte("{/uploads/m.png}"), now).
		AddRow(6, 1, 8.0, 3, "Bruschetta", "Starter", 8.0, true,
			[]byte("{bread,tomato}"), []byte("{/uploads/b.png}"), now)
	mock.ExpectQuery("SELECT ci.product_id").
		WithArgs(1).
		WillReturnRows(itemRows)

	cart, err := repo.GetCartByOwner(7)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.TotalQuantity)
	assert.Equal(t, 33.0, cart.TotalPrice)
	assert.Equal(t, "Margherita", cart.Items[0].Product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepo_DecrementItem_DeletesAtOne(t *testing.T) {
	repo, mock, cleanup := newCartRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cart_items SET quantity = quantity - 1").
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.DecrementItem(1, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
