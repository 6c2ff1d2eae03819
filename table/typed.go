package table

import (
	"github.com/mstgnz/splurge/types"
)

// Defaults holds the replacement values substituted for empty-like and
// none-like cells when a column is projected through a TypedView.
type Defaults struct {
	Empty any
	None  any
}

// TypeConfig overrides the natural defaults for specific data types. A
// nil or missing entry falls back to the defaults documented on
// defaultDefaultsFor.
type TypeConfig map[types.DataType]Defaults

// TypedView is a lazy, read-only typed projection of a Table: each access
// converts the underlying cell text to the column's inferred type.
type TypedView struct {
	table  *Table
	config TypeConfig
}

// ToTyped builds a TypedView over t using config to override the natural
// empty/none defaults per data type. A nil config uses the natural
// defaults everywhere.
func (t *Table) ToTyped(config TypeConfig) *TypedView {
	return &TypedView{table: t, config: config}
}

// defaultDefaultsFor returns the natural zero/identity default for dt's
// empty-like cells, and nil for its none-like cells, per spec §4.6's typed
// projection rules.
func defaultDefaultsFor(dt types.DataType) Defaults {
	switch dt {
	case types.INTEGER:
		return Defaults{Empty: int64(0), None: nil}
	case types.FLOAT:
		return Defaults{Empty: float64(0), None: nil}
	case types.BOOLEAN:
		return Defaults{Empty: false, None: nil}
	default:
		return Defaults{Empty: nil, None: nil}
	}
}

func (v *TypedView) defaultsFor(dt types.DataType) Defaults {
	if v.config != nil {
		if d, ok := v.config[dt]; ok {
			return d
		}
	}
	return defaultDefaultsFor(dt)
}

// convert applies the conversion rules of spec §4.6's typed projection to
// a single cell given its column's inferred type.
func convert(cell string, dt types.DataType, d Defaults) any {
	if types.IsEmptyLike(cell, true) {
		return d.Empty
	}
	if types.IsNoneLike(cell, true) {
		return d.None
	}

	switch dt {
	case types.INTEGER:
		if i := types.ToInt(cell, nil, true); i != nil {
			return *i
		}
		return d.Empty
	case types.FLOAT:
		if f := types.ToFloat(cell, nil, true); f != nil {
			return *f
		}
		return d.Empty
	case types.BOOLEAN:
		if b := types.ToBool(cell, nil, true); b != nil {
			return *b
		}
		return d.Empty
	case types.DATE:
		if dv := types.ToDate(cell, nil, true); dv != nil {
			return *dv
		}
		return d.Empty
	case types.TIME:
		if tv := types.ToTime(cell, nil, true); tv != nil {
			return *tv
		}
		return d.Empty
	case types.DATETIME:
		if dtv := types.ToDatetime(cell, nil, true); dtv != nil {
			return *dtv
		}
		return d.Empty
	case types.MIXED:
		return cell
	default:
		return cell
	}
}

// CellValue returns the typed value of the cell at the named column and
// row i.
func (v *TypedView) CellValue(name string, i int) (any, error) {
	dt, err := v.table.ColumnType(name)
	if err != nil {
		return nil, err
	}
	cell, err := v.table.CellValue(name, i)
	if err != nil {
		return nil, err
	}
	return convert(cell, dt, v.defaultsFor(dt)), nil
}

// Row returns row i as a column-name-to-typed-value mapping.
func (v *TypedView) Row(i int) (map[string]any, error) {
	if err := v.table.checkRowIndex(i); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(v.table.columnNames))
	for _, name := range v.table.columnNames {
		val, err := v.CellValue(name, i)
		if err != nil {
			return nil, err
		}
		out[name] = val
	}
	return out, nil
}
