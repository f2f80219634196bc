package upload

import (
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/eclinichms/eclinic-admin/pkg/password"
)

const dateLayout = "2006-01-02"

// InventoryItems loads the price list export:
//
//	NAME,RATE,SELLING PRICE,Quantity,Expiry Date,Billable Type,Department
//
// Re-importing the same file always reflects the latest values; an item row
// with a positive selling price also upserts the cash price for that item.
var InventoryItems = &Kind{
	Name:    "inventory_items",
	Columns: 7,
	insert: statement{
		name: "insert_inventory_items",
		sql: mustBuildInsert(
			"inventory_items",
			[]string{"name", "type", "cost_price", "dept", "quantity", "expiry_date", "created_at"},
			[]any{nil, nil, nil, nil, nil, nil, sq.Expr("NOW()")},
			ReplaceOnConflict([]string{"name", "type"}, "cost_price", "dept", "quantity", "expiry_date"),
			"id",
		),
	},
	returnsID: true,
	dependent: &statement{
		name: "insert_prices",
		sql: mustBuildInsert(
			"prices",
			[]string{"item_id", "cash", "uap", "san_care", "jubilee", "prudential", "aar", "saint_catherine", "icea", "liberty"},
			[]any{nil, nil, sq.Expr("0"), sq.Expr("0"), sq.Expr("0"), sq.Expr("0"), sq.Expr("0"), sq.Expr("0"), sq.Expr("0"), sq.Expr("0")},
			ReplaceOnConflict([]string{"item_id"}, "cash"),
			"",
		),
	},
	mapRow: mapInventoryItem,
}

func mapInventoryItem(row []string, idx int) (*rowOp, error) {
	rate, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return nil, &ParseError{Row: idx, Column: "RATE", Value: row[1], Err: err}
	}
	quantity, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, &ParseError{Row: idx, Column: "Quantity", Value: row[3], Err: err}
	}
	expiry, err := time.Parse(dateLayout, row[4])
	if err != nil {
		return nil, &ParseError{Row: idx, Column: "Expiry Date", Value: row[4], Err: err}
	}

	op := &rowOp{
		// name, type, cost_price, dept, quantity, expiry_date
		args: []any{row[0], row[5], rate, row[6], quantity, expiry},
	}

	// A price row is written only for a positive selling price; anything
	// unparseable is treated as absent, not as an error.
	if selling, err := strconv.ParseInt(row[2], 10, 64); err == nil && selling > 0 {
		op.hasDep = true
		op.depArgs = []any{selling}
	}
	return op, nil
}

// Invoices loads supplier invoices:
//
//	invoice_no,purchase_date,invoice_total,amount_paid,supplier,cashier
//
// The balance column is derived by the store on both insert and update so it
// can never diverge from invoice_total - amount_paid.
var Invoices = &Kind{
	Name:    "invoices",
	Columns: 6,
	insert: statement{
		name: "insert_invoices",
		sql: mustBuildInsert(
			"invoices",
			[]string{"invoice_no", "purchase_date", "invoice_total", "amount_paid", "supplier", "cashier", "balance"},
			[]any{nil, nil, nil, nil, nil, nil, sq.Expr("$3::bigint - $4::bigint")},
			ReplaceOnConflict(
				[]string{"invoice_no"},
				"purchase_date", "invoice_total", "amount_paid", "supplier", "cashier",
				"balance = EXCLUDED.invoice_total - EXCLUDED.amount_paid",
			),
			"",
		),
	},
	mapRow: mapInvoice,
}

func mapInvoice(row []string, idx int) (*rowOp, error) {
	purchaseDate, err := time.Parse(dateLayout, row[1])
	if err != nil {
		return nil, &ParseError{Row: idx, Column: "purchase_date", Value: row[1], Err: err}
	}
	total, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return nil, &ParseError{Row: idx, Column: "invoice_total", Value: row[2], Err: err}
	}
	paid, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return nil, &ParseError{Row: idx, Column: "amount_paid", Value: row[3], Err: err}
	}

	return &rowOp{
		args: []any{row[0], purchaseDate, total, paid, row[4], row[5]},
	}, nil
}

// UserAccounts provisions staff accounts:
//
//	Username,Title,FirstName,LastName,Email
//
// The initial password is the username, stored hashed; users are expected to
// change it on first login. No conflict target is declared: a duplicate
// username must fail rather than overwrite an existing identity.
var UserAccounts = &Kind{
	Name:    "users",
	Columns: 5,
	insert: statement{
		name: "insert_users",
		sql: mustBuildInsert(
			"users",
			[]string{"username", "title", "first_name", "last_name", "email", "password", "created_at", "updated_at", "is_superuser", "active"},
			[]any{nil, nil, nil, nil, nil, nil, sq.Expr("NOW()"), sq.Expr("NOW()"), sq.Expr("false"), sq.Expr("true")},
			ConflictPolicy{},
			"",
		),
	},
	mapRow: mapUserAccount,
}

func mapUserAccount(row []string, idx int) (*rowOp, error) {
	hash, err := password.Hash(row[0])
	if err != nil {
		return nil, &HashError{Row: idx, Username: row[0], Err: err}
	}

	return &rowOp{
		args: []any{row[0], row[1], row[2], row[3], row[4], hash},
	}, nil
}

// DiagnosisCategories loads the flat reference list of diagnosis categories,
// one category per row. Duplicates across repeated runs are silent no-ops.
var DiagnosisCategories = &Kind{
	Name:    "diagnosis_categories",
	Columns: 1,
	insert: statement{
		name: "insert_diagnosis_category",
		sql: mustBuildInsert(
			"diagnosis_categories",
			[]string{"category"},
			[]any{nil},
			IgnoreOnConflict(),
			"",
		),
	},
	mapRow: func(row []string, _ int) (*rowOp, error) {
		return &rowOp{args: []any{row[0]}}, nil
	},
}
