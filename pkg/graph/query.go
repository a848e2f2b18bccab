package graph

import (
	"strconv"
	"strings"
)

// Comparison operators used by predicates.
const (
	OpEqual       = "="
	OpGreaterThan = ">"
	OpLessThan    = "<"
	OpIn          = "IN"
)

// Predicate is one WHERE clause term.
//
// Values are inserted verbatim, wrapped in single quotes when Quoted is set.
// No escaping is applied: a value containing a quote character changes the
// meaning of the query. Producers of untrusted values must pass them through
// EscapeQueryValue first.
type Predicate struct {
	Column string
	Op     string
	Value  string
	Values []string
	Quoted bool
}

// Eq is a quoted equality predicate.
func Eq(column, value string) Predicate {
	return Predicate{Column: column, Op: OpEqual, Value: value, Quoted: true}
}

// EqRaw is an unquoted equality predicate, for numeric ids and functions
// such as me().
func EqRaw(column, value string) Predicate {
	return Predicate{Column: column, Op: OpEqual, Value: value}
}

// EqBool is an equality predicate against 0 or 1.
func EqBool(column string, value bool) Predicate {
	raw := "0"
	if value {
		raw = "1"
	}

	return EqRaw(column, raw)
}

// In is an unquoted membership predicate.
func In(column string, values ...string) Predicate {
	return Predicate{Column: column, Op: OpIn, Values: values}
}

// InQuoted is a membership predicate over quoted values.
func InQuoted(column string, values ...string) Predicate {
	return Predicate{Column: column, Op: OpIn, Values: values, Quoted: true}
}

// GreaterThan is an unquoted range predicate.
func GreaterThan(column string, value int64) Predicate {
	return Predicate{Column: column, Op: OpGreaterThan, Value: strconv.FormatInt(value, 10)}
}

// LessThan is an unquoted range predicate.
func LessThan(column string, value int64) Predicate {
	return Predicate{Column: column, Op: OpLessThan, Value: strconv.FormatInt(value, 10)}
}

// String renders the predicate.
func (p Predicate) String() string {
	if p.Op == OpIn {
		rendered := make([]string, len(p.Values))
		for i, value := range p.Values {
			rendered[i] = p.quote(value)
		}

		return p.Column + " IN (" + strings.Join(rendered, ", ") + ")"
	}

	return p.Column + " " + p.Op + " " + p.quote(p.Value)
}

func (p Predicate) quote(value string) string {
	if p.Quoted {
		return "'" + value + "'"
	}

	return value
}

// ColumnCriteria is the filter part of a query: identity predicates, range
// predicates, and optional LIMIT/OFFSET.
type ColumnCriteria struct {
	Equals []Predicate
	Ranges []Predicate
	Limit  *int
	Offset *int
}

// Criteria returns c itself, so a ColumnCriteria can be passed wherever a
// CriteriaProvider is accepted.
func (c ColumnCriteria) Criteria() ColumnCriteria {
	return c
}

// Clauses returns the rendered predicates, equality first, then ranges.
func (c ColumnCriteria) Clauses() []string {
	clauses := make([]string, 0, len(c.Equals)+len(c.Ranges))
	for _, predicate := range c.Equals {
		clauses = append(clauses, predicate.String())
	}

	for _, predicate := range c.Ranges {
		clauses = append(clauses, predicate.String())
	}

	return clauses
}

// IsEmpty reports whether the criteria contribute nothing to a query.
func (c ColumnCriteria) IsEmpty() bool {
	return len(c.Equals) == 0 && len(c.Ranges) == 0 && c.Limit == nil && c.Offset == nil
}

// CriteriaProvider is implemented by the typed criteria of each table.
type CriteriaProvider interface {
	Criteria() ColumnCriteria
}

// Source is the FROM part of a query. Scope, when set, is a mandatory
// predicate placed ahead of the criteria.
type Source struct {
	Table string
	Scope string
}

// Query sources.
var (
	SourceUser       = Source{Table: "user"}
	SourcePage       = Source{Table: "page"}
	SourceConnection = Source{Table: "connection", Scope: "source_id = me()"}
	SourceNewsFeed   = Source{
		Table: "stream",
		Scope: "filter_key IN (SELECT filter_key FROM stream_filter WHERE uid = me() AND type = 'newsfeed')",
	}
)

// BuildQuery renders
//
//	SELECT <columns> FROM <table> [WHERE <scope AND equals AND ranges>] [LIMIT n] [OFFSET m]
//
// Columns keep their given order. WHERE is omitted when there are no
// predicates. LIMIT and OFFSET always come last.
func BuildQuery(columns []string, criteria ColumnCriteria, source Source) string {
	var builder strings.Builder

	builder.WriteString("SELECT ")
	builder.WriteString(strings.Join(columns, ", "))
	builder.WriteString(" FROM ")
	builder.WriteString(source.Table)

	predicates := make([]string, 0, 1+len(criteria.Equals)+len(criteria.Ranges))
	if source.Scope != "" {
		predicates = append(predicates, source.Scope)
	}

	predicates = append(predicates, criteria.Clauses()...)

	if len(predicates) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(predicates, " AND "))
	}

	if criteria.Limit != nil {
		builder.WriteString(" LIMIT ")
		builder.WriteString(strconv.Itoa(*criteria.Limit))
	}

	if criteria.Offset != nil {
		builder.WriteString(" OFFSET ")
		builder.WriteString(strconv.Itoa(*criteria.Offset))
	}

	return builder.String()
}

var queryValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "\x00", "")

// EscapeQueryValue escapes backslashes, single quotes and control
// characters so that value can be placed inside a quoted predicate.
func EscapeQueryValue(value string) string {
	return queryValueEscaper.Replace(value)
}

// ColumnNames converts a typed column list to plain strings.
func ColumnNames[C ~string](columns []C) []string {
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = string(column)
	}

	return names
}

// IntPtr returns a pointer to v, for the optional Limit and Offset fields.
func IntPtr(v int) *int {
	return &v
}
