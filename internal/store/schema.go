package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const prefsTable = "preferences"

// Preference table columns.
const (
	colKey       = "name"
	colValue     = "value"
	colUpdatedAt = "updated_at"
)

var (
	// PreferencesColumns holds the columns for the "preferences" table.
	PreferencesColumns = []*schema.Column{
		{Name: colKey, Type: field.TypeString, Size: 128},
		{Name: colValue, Type: field.TypeString, Size: 2147483647},
		{Name: colUpdatedAt, Type: field.TypeTime},
	}
	// PreferencesTable holds the schema information for the "preferences" table.
	PreferencesTable = &schema.Table{
		Name:       prefsTable,
		Columns:    PreferencesColumns,
		PrimaryKey: []*schema.Column{PreferencesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PreferencesTable,
	}
)
