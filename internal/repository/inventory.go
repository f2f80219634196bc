package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type InventoryRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewInventoryRepository(db *sqlx.DB) *InventoryRepository {
	return &InventoryRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// EnsureItem inserts a fixed inventory item if it is not already present.
// Used for the bootstrap consultation items, which carry no expiry date.
func (ir *InventoryRepository) EnsureItem(ctx context.Context, item *InventoryItem) error {
	query, args, err := ir.psql.Insert("inventory_items").
		Columns("name", "type", "dept", "quantity", "cost_price", "created_at").
		Values(item.Name, item.Type, item.Dept, item.Quantity, item.CostPrice, sq.Expr("NOW()")).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	_, err = ir.db.ExecContext(ctx, query, args...)
	return err
}
