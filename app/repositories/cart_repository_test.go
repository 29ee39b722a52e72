package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return db, mock
}

func cartRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "session_id", "created_at", "updated_at"}).
		AddRow("cart-1", "session-1", now, now)
}

func TestGetOrCreateReturnsExistingCart(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `carts` WHERE session_id = ?").
		WillReturnRows(cartRows())

	cart, err := repo.GetOrCreateBySessionID(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-1", cart.ID)
	assert.Equal(t, "session-1", cart.SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreateInsertsWhenMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `carts` WHERE session_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "created_at", "updated_at"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `carts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	cart, err := repo.GetOrCreateBySessionID(context.Background(), "session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Equal(t, "session-1", cart.SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The loser of a concurrent first-touch hits the unique index on session_id
// and must recover by re-selecting the winner's row.
func TestGetOrCreateRecoversFromDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `carts` WHERE session_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "created_at", "updated_at"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `carts`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'session-1' for key 'carts.idx_carts_session_id'"})
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT (.+) FROM `carts` WHERE session_id = ?").
		WillReturnRows(cartRows())

	cart, err := repo.GetOrCreateBySessionID(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-1", cart.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementQtyReportsMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartItemRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `cart_items` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.IncrementQty(context.Background(), "cart-1", "product-1", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteScopedReportsRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartItemRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `cart_items`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.DeleteScoped(context.Background(), "cart-1", "item-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
