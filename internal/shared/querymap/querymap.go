// Package querymap translates API-level filters into parameterized gorm
// clauses through one declarative field table per entity.
package querymap

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

type Op string

const (
	OpEq     Op = "eq"
	OpNe     Op = "ne"
	OpIn     Op = "in"
	OpGte    Op = "gte"
	OpLt     Op = "lt"
	OpIsNull Op = "null"
)

type Condition struct {
	Field string
	Op    Op
	Value any
}

type Order struct {
	Field string
	Desc  bool
}

// Filter is built from API field names; it never carries column names.
type Filter struct {
	Conditions []Condition
	Orders     []Order
	Limit      int
}

func Eq(field string, v any) Condition { return Condition{Field: field, Op: OpEq, Value: v} }
func Ne(field string, v any) Condition { return Condition{Field: field, Op: OpNe, Value: v} }
func In(field string, v any) Condition { return Condition{Field: field, Op: OpIn, Value: v} }
func Gte(field string, v any) Condition { return Condition{Field: field, Op: OpGte, Value: v} }
func Lt(field string, v any) Condition { return Condition{Field: field, Op: OpLt, Value: v} }

// IsNull matches NULL when isNull is true and NOT NULL otherwise.
func IsNull(field string, isNull bool) Condition {
	return Condition{Field: field, Op: OpIsNull, Value: isNull}
}

func Where(conds ...Condition) Filter {
	return Filter{Conditions: conds}
}

func (f Filter) And(conds ...Condition) Filter {
	out := f
	out.Conditions = append(append([]Condition{}, f.Conditions...), conds...)
	return out
}

func (f Filter) OrderBy(field string, desc bool) Filter {
	out := f
	out.Orders = append(append([]Order{}, f.Orders...), Order{Field: field, Desc: desc})
	return out
}

func (f Filter) Take(n int) Filter {
	out := f
	out.Limit = n
	return out
}

// FieldMap maps API field names (camelCase) to column expressions.
// Expressions are fixed at declaration time; values always go through
// placeholders.
type FieldMap struct {
	entity  string
	columns map[string]string
}

func NewFieldMap(entity string, columns map[string]string) FieldMap {
	cp := make(map[string]string, len(columns))
	for k, v := range columns {
		cp[k] = v
	}
	return FieldMap{entity: entity, columns: cp}
}

func (m FieldMap) Column(field string) (string, error) {
	col, ok := m.columns[field]
	if !ok {
		return "", fmt.Errorf("querymap: unknown %s field %q", m.entity, field)
	}
	return col, nil
}

// Fields lists the mapped API fields in sorted order.
func (m FieldMap) Fields() []string {
	out := make([]string, 0, len(m.columns))
	for k := range m.columns {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Apply adds the filter's WHERE, ORDER BY and LIMIT clauses to db.
func (m FieldMap) Apply(db *gorm.DB, f Filter) (*gorm.DB, error) {
	for _, c := range f.Conditions {
		col, err := m.Column(c.Field)
		if err != nil {
			return nil, err
		}

		switch c.Op {
		case OpEq:
			db = db.Where(col+" = ?", c.Value)
		case OpNe:
			db = db.Where(col+" <> ?", c.Value)
		case OpIn:
			db = db.Where(col+" IN ?", c.Value)
		case OpGte:
			db = db.Where(col+" >= ?", c.Value)
		case OpLt:
			db = db.Where(col+" < ?", c.Value)
		case OpIsNull:
			isNull, ok := c.Value.(bool)
			if !ok {
				return nil, fmt.Errorf("querymap: %s null condition needs a bool, got %T", c.Field, c.Value)
			}
			if isNull {
				db = db.Where(col + " IS NULL")
			} else {
				db = db.Where(col + " IS NOT NULL")
			}
		default:
			return nil, fmt.Errorf("querymap: unsupported operator %q", c.Op)
		}
	}

	for _, o := range f.Orders {
		col, err := m.Column(o.Field)
		if err != nil {
			return nil, err
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		db = db.Order(col + " " + dir)
	}

	if f.Limit > 0 {
		db = db.Limit(f.Limit)
	}
	return db, nil
}

// Assignments maps a partial update keyed by API fields to column names.
// Computed expressions cannot be assigned.
func (m FieldMap) Assignments(partial map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(partial))
	for field, v := range partial {
		col, err := m.Column(field)
		if err != nil {
			return nil, err
		}
		if strings.ContainsAny(col, "( ") {
			return nil, fmt.Errorf("querymap: %s field %q is computed and cannot be assigned", m.entity, field)
		}
		out[col] = v
	}
	return out, nil
}
