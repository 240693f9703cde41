package product

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Statements are matched literally (whitespace collapsed) so any change to the
// stock arithmetic, such as a floor predicate, fails these tests.
const (
	wantUpdateSQL      = `UPDATE product SET count = count + ?, price = ?, description = ?, discounted_price = ?, has_discount = ?, offer_price = ?, offer_expiration = ?, image = ? WHERE id = ?`
	wantFirstByNameSQL = `SELECT id FROM product WHERE name = ? ORDER BY id LIMIT 1 FOR UPDATE`
	wantDecrementSQL   = `UPDATE product SET count = count - ? WHERE id = ?`
)

func newMockTx(t *testing.T) (*SQL, *sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "mysql")
	mock.ExpectBegin()
	tx, err := conn.Beginx()
	require.NoError(t, err)

	return &SQL{conn: conn}, tx, mock
}

func TestUpdateTx_AddsCountDelta(t *testing.T) {
	repo, tx, mock := newMockTx(t)

	offer := 20.0
	expiry := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	p := &model.ProductEntity{
		ID:              7,
		Price:           100,
		Description:     "brass",
		DiscountedPrice: 80,
		HasDiscount:     true,
		OfferPrice:      &offer,
		OfferExpiration: &expiry,
	}

	// second listing of 5 on top of the stored 5: the database adds, the app never sends 10
	mock.ExpectExec(wantUpdateSQL).
		WithArgs(int64(5), 100.0, "brass", 80.0, true, 20.0, expiry, nil, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateTx(context.Background(), tx, p, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTx_MissingRow(t *testing.T) {
	repo, tx, mock := newMockTx(t)

	mock.ExpectExec(wantUpdateSQL).
		WithArgs(int64(1), 10.0, "", 0.0, false, nil, nil, nil, uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTx(context.Background(), tx, &model.ProductEntity{ID: 99, Price: 10}, 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStockByNameTx(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int64
		found     bool
		wantFound bool
	}{
		{name: "order 3 of 10 subtracts 3", quantity: 3, found: true, wantFound: true},
		{name: "oversell subtracts without a floor", quantity: 50, found: true, wantFound: true},
		{name: "unknown product is reported, not decremented", quantity: 2, found: false, wantFound: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, tx, mock := newMockTx(t)

			rows := sqlmock.NewRows([]string{"id"})
			if tt.found {
				rows.AddRow(7)
			}
			mock.ExpectQuery(wantFirstByNameSQL).WithArgs("Lamp").WillReturnRows(rows)
			if tt.found {
				mock.ExpectExec(wantDecrementSQL).
					WithArgs(tt.quantity, uint64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			found, err := repo.DecrementStockByNameTx(context.Background(), tx, "Lamp", tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
