package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclinichms/eclinic-admin/pkg/password"
)

func TestMapInventoryItem(t *testing.T) {
	row := []string{"Inj Ceftriaxone 1g", "2500", "5000", "100", "2024-01-31", "Drug", "pharmacy"}

	op, err := mapInventoryItem(row, 0)
	require.NoError(t, err)

	expiry := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []any{"Inj Ceftriaxone 1g", "Drug", int64(2500), "pharmacy", 100, expiry}, op.args)
	require.True(t, op.hasDep)
	assert.Equal(t, []any{int64(5000)}, op.depArgs)
}

func TestMapInventoryItemPriceGating(t *testing.T) {
	tests := []struct {
		name    string
		selling string
	}{
		{"zero selling price", "0"},
		{"negative selling price", "-100"},
		{"non-numeric selling price", "n/a"},
		{"empty selling price", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := []string{"Paracetamol", "10", tt.selling, "100", "2025-01-01", "Drug", "pharmacy"}
			op, err := mapInventoryItem(row, 0)
			require.NoError(t, err)
			assert.False(t, op.hasDep, "item must be written without a price row")
		})
	}
}

func TestMapInventoryItemParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		column string
	}{
		{"bad rate", []string{"x", "abc", "5000", "100", "2024-01-31", "Drug", "pharmacy"}, "RATE"},
		{"bad quantity", []string{"x", "10", "5000", "many", "2024-01-31", "Drug", "pharmacy"}, "Quantity"},
		{"bad expiry", []string{"x", "10", "5000", "100", "31/01/2024", "Drug", "pharmacy"}, "Expiry Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapInventoryItem(tt.row, 3)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, 3, parseErr.Row)
			assert.Equal(t, tt.column, parseErr.Column)
		})
	}
}

func TestMapInvoice(t *testing.T) {
	row := []string{"INV-001", "2024-03-15", "120000", "50000", "Quality Chemicals", "jdoe"}

	op, err := mapInvoice(row, 0)
	require.NoError(t, err)

	purchase := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []any{"INV-001", purchase, int64(120000), int64(50000), "Quality Chemicals", "jdoe"}, op.args)
	assert.False(t, op.hasDep)
}

func TestMapInvoiceParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		column string
	}{
		{"bad date", []string{"INV-001", "March 15", "120000", "50000", "s", "c"}, "purchase_date"},
		{"bad total", []string{"INV-001", "2024-03-15", "12,000", "50000", "s", "c"}, "invoice_total"},
		{"bad amount paid", []string{"INV-001", "2024-03-15", "120000", "", "s", "c"}, "amount_paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapInvoice(tt.row, 1)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.column, parseErr.Column)
		})
	}
}

func TestMapUserAccount(t *testing.T) {
	row := []string{"johndoe", "Mr", "John", "Doe", "johndoe@gmail.com"}

	op, err := mapUserAccount(row, 0)
	require.NoError(t, err)
	require.Len(t, op.args, 6)
	assert.Equal(t, "johndoe", op.args[0])

	// The provisioned password is the username, stored hashed.
	hash, ok := op.args[5].(string)
	require.True(t, ok)
	assert.NotEqual(t, "johndoe", hash)
	assert.True(t, password.Verify("johndoe", hash))
}

func TestMapDiagnosisCategory(t *testing.T) {
	op, err := DiagnosisCategories.mapRow([]string{"Malaria"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Malaria"}, op.args)
}
