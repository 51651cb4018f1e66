// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Facility is the predicate function for facility builders.
type Facility func(*sql.Selector)

// SDSDocument is the predicate function for sdsdocument builders.
type SDSDocument func(*sql.Selector)
