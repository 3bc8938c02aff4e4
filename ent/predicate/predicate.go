// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Role is the predicate function for role builders.
type Role func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// State is the predicate function for state builders.
type State func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
