// Package catalog defines the recognized GTFS table catalog: the fixed,
// process-wide mapping from table file name to the identifier columns used
// to deduplicate its rows during a merge.
//
// The catalog is declared once and never mutated. Accessors return copies
// so callers cannot alter the policy through a returned slice.
package catalog

// Table describes one recognized table file and its identifier columns.
type Table struct {
	// Name is the file name inside a feed directory (e.g. "stops.txt").
	Name string `json:"name" yaml:"name"`

	// IDFields are the identifier columns, in key order. Empty means the
	// table has no natural key and every row is kept.
	IDFields []string `json:"id_fields" yaml:"id_fields"`
}

// HasNaturalKey reports whether rows of this table are deduplicated.
func (t Table) HasNaturalKey() bool {
	return len(t.IDFields) > 0
}

// IsComposite reports whether the key spans more than one column.
func (t Table) IsComposite() bool {
	return len(t.IDFields) > 1
}

// clone returns a deep copy of the table.
func (t Table) clone() Table {
	ids := make([]string, len(t.IDFields))
	copy(ids, t.IDFields)
	return Table{Name: t.Name, IDFields: ids}
}

// Catalog is an ordered, immutable set of tables. Iteration order is the
// declaration order, which fixes the order output files are produced in.
type Catalog struct {
	tables []Table
	index  map[string]int
}

// New builds a catalog from the given tables. Later duplicates of a name
// replace earlier ones in place.
func New(tables ...Table) Catalog {
	c := Catalog{index: make(map[string]int, len(tables))}
	for _, t := range tables {
		if i, ok := c.index[t.Name]; ok {
			c.tables[i] = t.clone()
			continue
		}
		c.index[t.Name] = len(c.tables)
		c.tables = append(c.tables, t.clone())
	}
	return c
}

// gtfs is the recognized GTFS table catalog.
var gtfs = New(
	Table{Name: "agency.txt", IDFields: []string{"agency_id"}},
	Table{Name: "routes.txt", IDFields: []string{"route_id"}},
	Table{Name: "trips.txt", IDFields: []string{"trip_id"}},
	Table{Name: "stop_times.txt", IDFields: []string{"trip_id", "stop_sequence"}},
	Table{Name: "stops.txt", IDFields: []string{"stop_id"}},
	Table{Name: "calendar.txt", IDFields: []string{"service_id"}},
	Table{Name: "calendar_dates.txt", IDFields: []string{"service_id", "date"}},
	Table{Name: "levels.txt", IDFields: []string{"level_id"}},
	Table{Name: "feed_info.txt", IDFields: nil},
	Table{Name: "shapes.txt", IDFields: []string{"shape_id", "shape_pt_sequence"}},
	Table{Name: "frequencies.txt", IDFields: []string{"trip_id", "start_time"}},
	Table{Name: "translations.txt", IDFields: []string{"table_name", "field_name", "language", "record_id", "record_sub_id", "field_value"}},
)

// GTFS returns the recognized GTFS table catalog.
func GTFS() Catalog {
	return gtfs
}

// Len returns the number of tables in the catalog.
func (c Catalog) Len() int {
	return len(c.tables)
}

// Tables returns a copy of every table in declaration order.
func (c Catalog) Tables() []Table {
	out := make([]Table, len(c.tables))
	for i, t := range c.tables {
		out[i] = t.clone()
	}
	return out
}

// Names returns every table name in declaration order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.tables))
	for i, t := range c.tables {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the table with the given name.
func (c Catalog) Lookup(name string) (Table, bool) {
	i, ok := c.index[name]
	if !ok {
		return Table{}, false
	}
	return c.tables[i].clone(), true
}

// IDFields returns the identifier columns for name, or nil when the name
// is unknown or the table has no natural key.
func (c Catalog) IDFields(name string) []string {
	t, ok := c.Lookup(name)
	if !ok || !t.HasNaturalKey() {
		return nil
	}
	return t.IDFields
}
