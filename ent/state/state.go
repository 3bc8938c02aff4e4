// Code generated by ent, DO NOT EDIT.

package state

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the state type in the database.
	Label = "state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAbbreviation holds the string denoting the abbreviation field in the database.
	FieldAbbreviation = "abbreviation"
	// FieldConcurrencyStamp holds the string denoting the concurrency_stamp field in the database.
	FieldConcurrencyStamp = "concurrency_stamp"
	// Table holds the table name of the state in the database.
	Table = "states"
)

// Columns holds all SQL columns for state fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldAbbreviation,
	FieldConcurrencyStamp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// AbbreviationValidator is a validator for the "abbreviation" field. It is called by the builders before save.
	AbbreviationValidator func(string) error
	// DefaultConcurrencyStamp holds the default value on creation for the "concurrency_stamp" field.
	DefaultConcurrencyStamp func() uuid.UUID
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the State queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAbbreviation orders the results by the abbreviation field.
func ByAbbreviation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbbreviation, opts...).ToFunc()
}

// ByConcurrencyStamp orders the results by the concurrency_stamp field.
func ByConcurrencyStamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcurrencyStamp, opts...).ToFunc()
}
