package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/modaluxe/backoffice/internal/utils"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestListCategoriesDefaultOrder(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY sort_order ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "sort_order"}).
			AddRow(uuid.New(), "Vêtements", "vetements", 1).
			AddRow(uuid.New(), "Parfums", "parfums", 2))

	categories, total, err := svc.ListCategories(utils.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, categories, 2)
	assert.Equal(t, "Vêtements", categories[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategoriesSearchFiltersQuery(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE LOWER\(name\) LIKE .+ OR LOWER\(slug\) LIKE`).
		WithArgs("%parfum%", "%parfum%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE`).
		WithArgs("%parfum%", "%parfum%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(uuid.New(), "Parfums", "parfums"))

	categories, total, err := svc.ListCategories(utils.ListParams{Search: "Parfum"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, categories, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategoryNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.DeleteCategory(id)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategoryInUseByProducts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(id, "Parfums", "parfums"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE category_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := svc.DeleteCategory(id)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategoryWithChildren(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(id, "Homme", "homme"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE category_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE parent_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.DeleteCategory(id)
	assert.ErrorIs(t, err, ErrCategoryHasChildren)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategorySucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCategoryService(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(id, "Archives", "archives"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE category_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE parent_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "categories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteCategory(id)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
