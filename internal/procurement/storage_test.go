package procurement

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dbMock(t *testing.T) (*sql.DB, Storage, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	return sqldb, NewStorage(gormdb), mock
}

func TestStorageGetCategoryByID(t *testing.T) {
	sqldb, storage, mock := dbMock(t)
	defer sqldb.Close()

	rows := sqlmock.NewRows([]string{"category_id", "name"}).AddRow(1, "Furniture")
	mock.ExpectQuery(`SELECT \* FROM "item_categories"`).WillReturnRows(rows)

	category, err := storage.GetCategoryByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Furniture", category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageGetCategoryByIDNotFound(t *testing.T) {
	sqldb, storage, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT \* FROM "item_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "name"}))

	_, err := storage.GetCategoryByID(99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageCountItemsByCategory(t *testing.T) {
	sqldb, storage, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "items"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := storage.CountItemsByCategory(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageRestoreCategory(t *testing.T) {
	sqldb, storage, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "item_categories" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, storage.RestoreCategory(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageDeletePlanningIsHard(t *testing.T) {
	sqldb, storage, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "order_planning"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, storage.DeletePlanning(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageDeleteOrderIsSoft(t *testing.T) {
	sqldb, storage, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, storage.DeleteOrder(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
