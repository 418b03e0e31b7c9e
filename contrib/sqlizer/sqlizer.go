// Package sqlizer is a reference renderer that translates a [repospec.Query]
// into a parameterized SQL SELECT. It renders only; executing the statement
// against a database is the caller's concern.
//
// The renderer applies negation at render time: a negated composite is
// expanded over its children (De Morgan), and a negated leaf renders its
// constraint's complement.
//
// For cursor-mode page requests the keyset predicate is derived from the
// query's sorts, so a query must carry exactly one sort per cursor key.
// Under CURSOR_PREVIOUS the ORDER BY directions are flipped; the caller is
// expected to reverse the fetched rows, as keyset providers do.
package sqlizer

import (
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	repospec "github.com/repospec/repospec.go"
	"github.com/repospec/repospec.go/pkg/constraint"
	"github.com/repospec/repospec.go/pkg/order"
	"github.com/repospec/repospec.go/pkg/page"
	"github.com/repospec/repospec.go/pkg/restrict"
)

var (
	// ErrEmptyTable is the panic value for an empty table name.
	ErrEmptyTable = errors.New("sqlizer: table name is empty")
	// ErrUnknownAttribute reports a restriction or sort naming an attribute
	// outside the renderer's column set.
	ErrUnknownAttribute = errors.New("sqlizer: unknown attribute")
)

// Renderer renders queries against one table with a fixed set of allowed
// columns. Attribute names outside the set are rejected rather than
// interpolated.
type Renderer struct {
	table       string
	columns     map[string]struct{}
	logger      zerolog.Logger
	placeholder sq.PlaceholderFormat
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithLogger attaches a logger; rendered statements are logged at debug
// level.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithPlaceholderFormat overrides the default `?` placeholders, e.g. with
// [sq.Dollar] for PostgreSQL.
func WithPlaceholderFormat(f sq.PlaceholderFormat) Option {
	return func(r *Renderer) { r.placeholder = f }
}

// New returns a renderer for the named table permitting the given columns.
// It panics with [ErrEmptyTable] when table is empty.
func New(table string, columns []string, opts ...Option) *Renderer {
	if table == "" {
		panic(ErrEmptyTable)
	}
	cols := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		cols[c] = struct{}{}
	}
	r := &Renderer{
		table:       table,
		columns:     cols,
		logger:      zerolog.Nop(),
		placeholder: sq.Question,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render translates q into a SELECT statement and its arguments.
// A query the renderer cannot support, such as a cursor-mode request whose
// key count differs from the sort count, is declined with an error wrapping
// [repospec.ErrUnsupported].
func (r *Renderer) Render(q repospec.Query) (string, []any, error) {
	builder := sq.Select("*").From(r.table).PlaceholderFormat(r.placeholder)

	where, err := r.restriction(q.Restriction(), false)
	if err != nil {
		return "", nil, err
	}
	if where != nil {
		builder = builder.Where(where)
	}

	req, paged := q.PageRequest()
	sorts := q.Sorts()
	if paged && req.Mode() == page.ModeCursorPrevious {
		for i, s := range sorts {
			sorts[i] = s.Reversed()
		}
	}
	for _, s := range sorts {
		col, err := r.column(s.Property())
		if err != nil {
			return "", nil, err
		}
		if s.IgnoreCase() {
			col = "LOWER(" + col + ")"
		}
		builder = builder.OrderBy(col + " " + s.Direction().String())
	}

	if paged {
		builder, err = r.paginate(builder, req, q.Sorts())
		if err != nil {
			return "", nil, err
		}
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("sqlizer: building statement: %w", err)
	}
	r.logger.Debug().Str("sql", sql).Interface("args", args).Msg("rendered query")
	return sql, args, nil
}

// RenderCount translates q's restriction into a COUNT statement for
// answering page requests that ask for totals.
func (r *Renderer) RenderCount(q repospec.Query) (string, []any, error) {
	builder := sq.Select("COUNT(*)").From(r.table).PlaceholderFormat(r.placeholder)
	where, err := r.restriction(q.Restriction(), false)
	if err != nil {
		return "", nil, err
	}
	if where != nil {
		builder = builder.Where(where)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("sqlizer: building count statement: %w", err)
	}
	r.logger.Debug().Str("sql", sql).Interface("args", args).Msg("rendered count query")
	return sql, args, nil
}

func (r *Renderer) paginate(builder sq.SelectBuilder, req page.PageRequest, sorts []order.Sort) (sq.SelectBuilder, error) {
	switch req.Mode() {
	case page.ModeOffset:
		return builder.
			Limit(uint64(req.Size())).
			Offset(uint64(req.Page()-1) * uint64(req.Size())), nil
	case page.ModeCursorNext, page.ModeCursorPrevious:
		cursor, ok := req.Cursor()
		if !ok {
			return builder, fmt.Errorf("sqlizer: cursor mode without cursor: %w", repospec.ErrUnsupported)
		}
		keyset, err := r.keyset(cursor, sorts, req.Mode() == page.ModeCursorPrevious)
		if err != nil {
			return builder, err
		}
		return builder.Where(keyset).Limit(uint64(req.Size())), nil
	default:
		return builder, fmt.Errorf("sqlizer: pagination mode %v: %w", req.Mode(), repospec.ErrUnsupported)
	}
}

// keyset expands a cursor into the row-value comparison
//
//	(k1 > v1) OR (k1 = v1 AND k2 > v2) OR ...
//
// honoring each sort's direction, flipped when traversing backwards.
func (r *Renderer) keyset(cursor page.Cursor, sorts []order.Sort, backwards bool) (sq.Sqlizer, error) {
	if len(sorts) == 0 || cursor.Size() != len(sorts) {
		return nil, fmt.Errorf(
			"sqlizer: cursor with %d key(s) requires as many sorts, query has %d: %w",
			cursor.Size(), len(sorts), repospec.ErrUnsupported)
	}

	var alternatives sq.Or
	for i := 0; i < len(sorts); i++ {
		var conjunct sq.And
		for j := 0; j < i; j++ {
			col, err := r.column(sorts[j].Property())
			if err != nil {
				return nil, err
			}
			conjunct = append(conjunct, sq.Eq{col: cursor.Key(j)})
		}
		col, err := r.column(sorts[i].Property())
		if err != nil {
			return nil, err
		}
		after := sorts[i].IsAscending() != backwards
		if after {
			conjunct = append(conjunct, sq.Gt{col: cursor.Key(i)})
		} else {
			conjunct = append(conjunct, sq.Lt{col: cursor.Key(i)})
		}
		alternatives = append(alternatives, conjunct)
	}
	if len(alternatives) == 1 {
		return alternatives[0], nil
	}
	return alternatives, nil
}

// matchNone renders the contradiction predicate. As the walk's return value
// it marks a subtree decided false, the counterpart of nil for decided true.
type matchNone struct{}

func (matchNone) ToSql() (string, []any, error) { return "1=0", nil, nil }

// restriction walks rest and returns its predicate. nil means the subtree
// matches every row; [matchNone] means it matches none. Enclosing composites
// absorb or short-circuit on the decided cases: a true child is the identity
// of AND and annihilates OR, a false child annihilates AND and is the
// identity of OR.
func (r *Renderer) restriction(rest restrict.Restriction, negated bool) (sq.Sqlizer, error) {
	switch v := rest.(type) {
	case restrict.Basic:
		c := v.Constraint()
		if negated {
			c = c.Negate()
		}
		return r.leaf(v.Attribute(), c)
	case restrict.Composite:
		neg := negated != v.IsNegated()
		// ALL under negation becomes ANY of the negated children.
		conjunction := (v.Kind() == restrict.KindAll) != neg
		children := v.Restrictions()
		parts := make([]sq.Sqlizer, 0, len(children))
		for _, child := range children {
			p, err := r.restriction(child, neg)
			if err != nil {
				return nil, err
			}
			switch {
			case p == nil:
				if !conjunction {
					return nil, nil
				}
			case isMatchNone(p):
				if conjunction {
					return matchNone{}, nil
				}
			default:
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			if conjunction {
				return nil, nil
			}
			return matchNone{}, nil
		}
		if conjunction {
			return sq.And(parts), nil
		}
		return sq.Or(parts), nil
	default:
		matchesNothing := restrict.IsUnmatchable(rest) != negated
		if matchesNothing {
			return matchNone{}, nil
		}
		return nil, nil
	}
}

func isMatchNone(s sq.Sqlizer) bool {
	_, ok := s.(matchNone)
	return ok
}

func (r *Renderer) leaf(attribute string, c constraint.Constraint) (sq.Sqlizer, error) {
	col, err := r.column(attribute)
	if err != nil {
		return nil, err
	}

	switch v := c.(type) {
	case constraint.EqualTo:
		if v.IsCaseInsensitive() {
			return sq.Expr("LOWER("+col+") = LOWER(?)", v.Value()), nil
		}
		return sq.Eq{col: v.Value()}, nil
	case constraint.NotEqualTo:
		if v.IsCaseInsensitive() {
			return sq.Expr("LOWER("+col+") <> LOWER(?)", v.Value()), nil
		}
		return sq.NotEq{col: v.Value()}, nil
	case constraint.GreaterThan:
		return sq.Gt{col: v.Value()}, nil
	case constraint.GreaterThanOrEqual:
		return sq.GtOrEq{col: v.Value()}, nil
	case constraint.LessThan:
		return sq.Lt{col: v.Value()}, nil
	case constraint.LessThanOrEqual:
		return sq.LtOrEq{col: v.Value()}, nil
	case constraint.Between:
		lower, upper := v.Bounds()
		return sq.Expr(col+" BETWEEN ? AND ?", lower, upper), nil
	case constraint.NotBetween:
		lower, upper := v.Bounds()
		return sq.Expr(col+" NOT BETWEEN ? AND ?", lower, upper), nil
	case constraint.In:
		if v.IsCaseInsensitive() {
			return sq.Eq{"LOWER(" + col + ")": lowered(v.Values())}, nil
		}
		return sq.Eq{col: v.Values()}, nil
	case constraint.NotIn:
		if v.IsCaseInsensitive() {
			return sq.NotEq{"LOWER(" + col + ")": lowered(v.Values())}, nil
		}
		return sq.NotEq{col: v.Values()}, nil
	case constraint.Like:
		return likeExpr(col, "LIKE", v.Pattern().Value(), v.Pattern().EscapeRune(), v.IsCaseInsensitive()), nil
	case constraint.NotLike:
		return likeExpr(col, "NOT LIKE", v.Pattern().Value(), v.Pattern().EscapeRune(), v.IsCaseInsensitive()), nil
	case constraint.Null:
		return sq.Eq{col: nil}, nil
	case constraint.NotNull:
		return sq.NotEq{col: nil}, nil
	default:
		return nil, fmt.Errorf("sqlizer: constraint %T: %w", c, repospec.ErrUnsupported)
	}
}

func likeExpr(col, op, pattern string, escape rune, ignoreCase bool) sq.Sqlizer {
	lhs, rhs := col, "?"
	if ignoreCase {
		lhs, rhs = "LOWER("+col+")", "LOWER(?)"
	}
	return sq.Expr(lhs+" "+op+" "+rhs+" ESCAPE ?", pattern, string(escape))
}

func (r *Renderer) column(attribute string) (string, error) {
	if _, ok := r.columns[attribute]; !ok {
		return "", fmt.Errorf("%w %q on table %q", ErrUnknownAttribute, attribute, r.table)
	}
	return attribute, nil
}

func lowered(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			out[i] = strings.ToLower(s)
		} else {
			out[i] = v
		}
	}
	return out
}
