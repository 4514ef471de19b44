package igdb

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxLimit is the largest page size the service accepts.
const MaxLimit = 500

// AllFields is the wildcard field selection.
const AllFields = "*"

// Well-known field names used by the endpoint helpers.
const (
	FieldID   = "id"
	FieldName = "name"
	FieldGame = "game"
)

// Operator is a comparison operator of a where predicate.
type Operator int

// Supported operators.
const (
	OpEqual Operator = iota + 1
	OpNotEqual
	OpGreaterThan
	OpLessThan
	OpGreaterOrEqual
	OpLessOrEqual
	// OpContains is a case-sensitive substring match.
	OpContains
	// OpIn matches when the field equals any value of the set.
	OpIn
)

var operatorTokens = map[Operator]string{
	OpEqual:          "=",
	OpNotEqual:       "!=",
	OpGreaterThan:    ">",
	OpLessThan:       "<",
	OpGreaterOrEqual: ">=",
	OpLessOrEqual:    "<=",
	OpContains:       "~",
	OpIn:             "=",
}

// Token returns the query-language token of the operator.
func (o Operator) Token() string {
	return operatorTokens[o]
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	if token, ok := operatorTokens[o]; ok {
		return token
	}

	return "Operator(" + strconv.Itoa(int(o)) + ")"
}

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}

	return "asc"
}

// Filter is a single where predicate.
type Filter struct {
	Field    string
	Operator Operator
	Values   []string
}

// render writes "field op value".
func (f Filter) render() string {
	var value string

	switch f.Operator {
	case OpContains:
		value = `*"` + f.Values[0] + `"*`
	case OpIn:
		value = "(" + strings.Join(f.Values, ",") + ")"
	default:
		value = f.Values[0]
	}

	return f.Field + " " + f.Operator.Token() + " " + value
}

type sortClause struct {
	field     string
	direction Direction
}

// Query accumulates an Apicalypse query. Methods chain and record the first
// invalid argument, which Render reports.
//
// Values given to AddWhere, Contains, AddWhereIn and Search are inserted
// verbatim: nothing is quoted or escaped. String literals for equality
// filters must be quoted by the caller ("\"Zelda\""), and untrusted input
// must be sanitized before it reaches the query.
//
// Search and SortBy keep the last value set. When both a search term and
// filters are present, both are rendered and the service arbitrates.
type Query struct {
	fields    []string
	seen      map[string]struct{}
	allFields bool
	filters   []Filter
	search    *string
	sort      *sortClause
	limit     *int
	offset    *int
	err       error
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{seen: make(map[string]struct{})}
}

func (q *Query) fail(format string, args ...any) *Query {
	if q.err == nil {
		q.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
	}

	return q
}

// AddField selects a field. Selecting the same field twice has no effect.
func (q *Query) AddField(name string) *Query {
	if name == "" {
		return q.fail("field name must not be empty")
	}

	if q.seen == nil {
		q.seen = make(map[string]struct{})
	}

	if _, ok := q.seen[name]; ok {
		return q
	}

	q.seen[name] = struct{}{}
	q.fields = append(q.fields, name)

	return q
}

// AddFields selects several fields in order.
func (q *Query) AddFields(names ...string) *Query {
	for _, name := range names {
		q.AddField(name)
	}

	return q
}

// AllFields selects every field; individually added fields are ignored.
func (q *Query) AllFields() *Query {
	q.allFields = true

	return q
}

// AddWhere appends a predicate. Predicates are combined with AND.
func (q *Query) AddWhere(field string, op Operator, value string) *Query {
	if field == "" {
		return q.fail("filter field must not be empty")
	}

	if _, ok := operatorTokens[op]; !ok {
		return q.fail("unknown operator %d", int(op))
	}

	q.filters = append(q.filters, Filter{Field: field, Operator: op, Values: []string{value}})

	return q
}

// Contains appends a substring predicate, rendered as field ~ *"value"*.
func (q *Query) Contains(field, value string) *Query {
	return q.AddWhere(field, OpContains, value)
}

// AddWhereIn appends a set-membership predicate, rendered as
// field = (v1,v2). Values must already be in literal form.
func (q *Query) AddWhereIn(field string, values ...string) *Query {
	if field == "" {
		return q.fail("filter field must not be empty")
	}

	if len(values) == 0 {
		return q.fail("where-in on %q needs at least one value", field)
	}

	q.filters = append(q.filters, Filter{Field: field, Operator: OpIn, Values: append([]string(nil), values...)})

	return q
}

// Search sets the full-text search term.
func (q *Query) Search(term string) *Query {
	q.search = &term

	return q
}

// SortBy sets the sort clause.
func (q *Query) SortBy(field string, direction Direction) *Query {
	if field == "" {
		return q.fail("sort field must not be empty")
	}

	q.sort = &sortClause{field: field, direction: direction}

	return q
}

// Limit sets the page size, which must be between 1 and MaxLimit.
func (q *Query) Limit(n int) *Query {
	if n < 1 || n > MaxLimit {
		return q.fail("limit must be between 1 and %d, got %d", MaxLimit, n)
	}

	q.limit = &n

	return q
}

// Offset sets the index of the first result.
func (q *Query) Offset(n int) *Query {
	if n < 0 {
		return q.fail("offset must not be negative, got %d", n)
	}

	q.offset = &n

	return q
}

// Err returns the first invalid argument recorded by the builder.
func (q *Query) Err() error {
	return q.err
}

// Filters returns a copy of the predicates added so far.
func (q *Query) Filters() []Filter {
	return append([]Filter(nil), q.filters...)
}

// Render produces the query body. An empty query renders as "".
func (q *Query) Render() (string, error) {
	if q.err != nil {
		return "", q.err
	}

	clauses := make([]string, 0, 6)

	switch {
	case q.allFields:
		clauses = append(clauses, "fields "+AllFields+";")
	case len(q.fields) > 0:
		clauses = append(clauses, "fields "+strings.Join(q.fields, ",")+";")
	}

	if len(q.filters) > 0 {
		predicates := make([]string, 0, len(q.filters))
		for _, filter := range q.filters {
			predicates = append(predicates, filter.render())
		}

		clauses = append(clauses, "where "+strings.Join(predicates, " & ")+";")
	}

	if q.search != nil {
		clauses = append(clauses, `search "`+*q.search+`";`)
	}

	if q.sort != nil {
		clauses = append(clauses, "sort "+q.sort.field+" "+q.sort.direction.String()+";")
	}

	if q.limit != nil {
		clauses = append(clauses, "limit "+strconv.Itoa(*q.limit)+";")
	}

	if q.offset != nil {
		clauses = append(clauses, "offset "+strconv.Itoa(*q.offset)+";")
	}

	return strings.Join(clauses, " "), nil
}
