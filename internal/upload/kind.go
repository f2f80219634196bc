package upload

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// ConflictPolicy decides what a row's insert does when it collides with an
// existing uniqueness key. The zero value declares no conflict target, so a
// duplicate key is a hard failure.
type ConflictPolicy struct {
	target  []string
	replace []string
	ignore  bool
}

// ReplaceOnConflict overwrites the named columns when the target key already
// exists. An entry containing "=" is used verbatim as the SET expression;
// anything else expands to "col = EXCLUDED.col".
func ReplaceOnConflict(target []string, replace ...string) ConflictPolicy {
	return ConflictPolicy{target: target, replace: replace}
}

// IgnoreOnConflict leaves the existing row untouched. The target may be
// empty, matching any uniqueness constraint on the table.
func IgnoreOnConflict(target ...string) ConflictPolicy {
	return ConflictPolicy{target: target, ignore: true}
}

// Clause renders the ON CONFLICT suffix for a prepared insert, or "" when
// duplicates must fail.
func (p ConflictPolicy) Clause() string {
	if !p.ignore && len(p.replace) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("ON CONFLICT")
	if len(p.target) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(p.target, ", "))
	}

	if p.ignore {
		b.WriteString(" DO NOTHING")
		return b.String()
	}

	sets := make([]string, 0, len(p.replace))
	for _, col := range p.replace {
		if strings.Contains(col, "=") {
			sets = append(sets, col)
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	fmt.Fprintf(&b, " DO UPDATE SET %s", strings.Join(sets, ", "))
	return b.String()
}

// statement is a named parameterized insert, prepared once per batch and
// executed once per row.
type statement struct {
	name string
	sql  string
}

// rowOp is a fully mapped row: the primary statement's arguments, plus the
// dependent statement's trailing arguments when the row produces one. The
// generated id returned by the primary insert is prepended at execution time.
type rowOp struct {
	args    []any
	depArgs []any
	hasDep  bool
}

// Kind describes one upload type: its expected CSV shape, the statements it
// prepares, and the mapping from raw fields to statement parameters.
type Kind struct {
	Name    string
	Columns int

	insert    statement
	returnsID bool
	dependent *statement

	mapRow func(row []string, idx int) (*rowOp, error)
}

// ValidateShape checks the batch's column count against the kind. The first
// row's width is authoritative; the reader guarantees the rest match. An
// empty batch is valid. Callers run this before opening any connection.
func (k *Kind) ValidateShape(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	if actual := len(rows[0]); actual != k.Columns {
		return &SchemaMismatchError{Kind: k.Name, Expected: k.Columns, Actual: actual}
	}
	return nil
}

// buildInsert renders a fixed-text parameterized insert. Values must be nil
// for positional parameters ($1..$n in column order) or a squirrel expression
// for store-side literals; the argument list squirrel returns is discarded
// because the statement is prepared, not executed, at build time.
func buildInsert(table string, columns []string, values []any, policy ConflictPolicy, returning string) (string, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(table).
		Columns(columns...).
		Values(values...)

	if clause := policy.Clause(); clause != "" {
		builder = builder.Suffix(clause)
	}
	if returning != "" {
		builder = builder.Suffix("RETURNING " + returning)
	}

	query, _, err := builder.ToSql()
	if err != nil {
		return "", fmt.Errorf("build %s insert: %w", table, err)
	}
	return query, nil
}

func mustBuildInsert(table string, columns []string, values []any, policy ConflictPolicy, returning string) string {
	query, err := buildInsert(table, columns, values, policy, returning)
	if err != nil {
		panic(err)
	}
	return query
}
