// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
)

// Facility is the model entity for the Facility schema.
type Facility struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ContactEmail holds the value of the "contact_email" field.
	ContactEmail *string `json:"contact_email,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacilityQuery when eager-loading is set.
	Edges        FacilityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FacilityEdges holds the relations/edges for other nodes in the graph.
type FacilityEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*SDSDocument `json:"documents,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e FacilityEdges) DocumentsOrErr() ([]*SDSDocument, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e FacilityEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Facility) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facility.FieldName, facility.FieldContactEmail, facility.FieldAddress:
			values[i] = new(sql.NullString)
		case facility.FieldCreatedAt, facility.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case facility.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Facility fields.
func (f *Facility) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facility.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				f.ID = *value
			}
		case facility.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				f.Name = value.String
			}
		case facility.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				f.ContactEmail = new(string)
				*f.ContactEmail = value.String
			}
		case facility.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				f.Address = new(string)
				*f.Address = value.String
			}
		case facility.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				f.CreatedAt = value.Time
			}
		case facility.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				f.UpdatedAt = value.Time
			}
		default:
			f.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Facility.
// This includes values selected through modifiers, order, etc.
func (f *Facility) Value(name string) (ent.Value, error) {
	return f.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Facility entity.
func (f *Facility) QueryDocuments() *SDSDocumentQuery {
	return NewFacilityClient(f.config).QueryDocuments(f)
}

// QueryJobs queries the "jobs" edge of the Facility entity.
func (f *Facility) QueryJobs() *ExtractJobQuery {
	return NewFacilityClient(f.config).QueryJobs(f)
}

// Update returns a builder for updating this Facility.
// Note that you need to call Facility.Unwrap() before calling this method if this Facility
// was returned from a transaction, and the transaction was committed or rolled back.
func (f *Facility) Update() *FacilityUpdateOne {
	return NewFacilityClient(f.config).UpdateOne(f)
}

// Unwrap unwraps the Facility entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (f *Facility) Unwrap() *Facility {
	_tx, ok := f.config.driver.(*txDriver)
	if !ok {
		panic("ent: Facility is not a transactional entity")
	}
	f.config.driver = _tx.drv
	return f
}

// String implements the fmt.Stringer.
func (f *Facility) String() string {
	var builder strings.Builder
	builder.WriteString("Facility(")
	builder.WriteString(fmt.Sprintf("id=%v, ", f.ID))
	builder.WriteString("name=")
	builder.WriteString(f.Name)
	builder.WriteString(", ")
	if v := f.ContactEmail; v != nil {
		builder.WriteString("contact_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := f.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(f.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(f.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Facilities is a parsable slice of Facility.
type Facilities []*Facility
