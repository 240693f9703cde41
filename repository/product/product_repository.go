package product

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrDuplicateListing is returned when a concurrent listing created the same (name, seller) pair first.
var ErrDuplicateListing = errors.New("product listing already exists")

const mysqlDuplicateEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetByNameAndSellerTx(ctx context.Context, tx *sqlx.Tx, name string, sellerID uint64) (*model.ProductEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, p *model.ProductEntity) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, p *model.ProductEntity, countDelta int64) error
	DecrementStockByNameTx(ctx context.Context, tx *sqlx.Tx, name string, quantity int64) (bool, error)
	List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error)
	ListByCategory(ctx context.Context, category string) ([]model.ProductStockItem, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.ProductStockItem, error)
	GetSummary(ctx context.Context, id uint64) (*model.ProductSummary, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = `id, name, category, description, count, price, discounted_price, has_discount, offer_price, offer_expiration, user_id, image`

	getByNameAndSellerForUpdate = `SELECT ` + productColumns + ` FROM product WHERE name = ? AND user_id = ? ORDER BY id LIMIT 1 FOR UPDATE`

	insertProduct = `INSERT INTO product (name, category, description, count, price, discounted_price, has_discount, offer_price, offer_expiration, user_id, image)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateProduct = `UPDATE product SET count = count + ?, price = ?, description = ?, discounted_price = ?, has_discount = ?, offer_price = ?, offer_expiration = ?, image = ?
WHERE id = ?`

	firstIDByNameForUpdate = `SELECT id FROM product WHERE name = ? ORDER BY id LIMIT 1 FOR UPDATE`
	decrementStock         = `UPDATE product SET count = count - ? WHERE id = ?`

	listProductsBase = `SELECT p.id, p.name, p.category, p.description, p.count, p.price, p.discounted_price, p.has_discount, p.offer_expiration, p.image,
COALESCE(u.premium, false) AS premium_seller
FROM product p
LEFT JOIN user u ON u.id = p.user_id`

	listByCategory = `SELECT name, count, price, discounted_price FROM product WHERE category = ? ORDER BY id`
	listBySeller   = `SELECT name, count, price, discounted_price FROM product WHERE user_id = ? ORDER BY id`
	getSummary     = `SELECT id, name, user_id FROM product WHERE id = ?`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery applies at most one filter. Category wins over the search value
// when both are supplied; the search is a case-insensitive substring over name.
func buildListQuery(filter *model.ProductFilter) (string, []any) {
	query := listProductsBase
	args := make([]any, 0, 1)

	switch {
	case filter == nil:
	case filter.Category != nil:
		query += " WHERE p.category = ?"
		args = append(args, *filter.Category)
	case filter.SearchValue != nil:
		folded := cases.Lower(language.Und).String(*filter.SearchValue)
		query += " WHERE LOWER(p.name) LIKE ?"
		args = append(args, "%"+likeEscaper.Replace(folded)+"%")
	}

	return query + " ORDER BY p.id", args
}

func (s *SQL) GetByNameAndSellerTx(ctx context.Context, tx *sqlx.Tx, name string, sellerID uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := tx.QueryRowxContext(ctx, getByNameAndSellerForUpdate, name, sellerID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, p *model.ProductEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertProduct,
		p.Name, p.Category, p.Description, p.Count, p.Price, p.DiscountedPrice, p.HasDiscount,
		p.OfferPrice, p.OfferExpiration, p.UserID, p.Image)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return 0, ErrDuplicateListing
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateTx writes the pricing, offer and image fields of p and adds countDelta to the stored count.
func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, p *model.ProductEntity, countDelta int64) error {
	res, err := tx.ExecContext(ctx, updateProduct,
		countDelta, p.Price, p.Description, p.DiscountedPrice, p.HasDiscount,
		p.OfferPrice, p.OfferExpiration, p.Image, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DecrementStockByNameTx takes quantity off the first product (lowest id) with the given
// name, whoever sells it. There is no floor: the count may go negative. It reports false
// when no product has that name.
func (s *SQL) DecrementStockByNameTx(ctx context.Context, tx *sqlx.Tx, name string, quantity int64) (bool, error) {
	var id uint64
	if err := tx.GetContext(ctx, &id, firstIDByNameForUpdate, name); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	if _, err := tx.ExecContext(ctx, decrementStock, quantity, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error) {
	query, args := buildListQuery(filter)
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) ListByCategory(ctx context.Context, category string) ([]model.ProductStockItem, error) {
	items := make([]model.ProductStockItem, 0)
	if err := s.conn.SelectContext(ctx, &items, listByCategory, category); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListBySeller(ctx context.Context, sellerID uint64) ([]model.ProductStockItem, error) {
	items := make([]model.ProductStockItem, 0)
	if err := s.conn.SelectContext(ctx, &items, listBySeller, sellerID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetSummary(ctx context.Context, id uint64) (*model.ProductSummary, error) {
	var summary model.ProductSummary
	if err := s.conn.QueryRowxContext(ctx, getSummary, id).StructScan(&summary); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}
