// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/extractjob"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
	"github.com/qrsafety/sds-pipeline/gen/ent/predicate"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
)

// FacilityUpdate is the builder for updating Facility entities.
type FacilityUpdate struct {
	config
	hooks    []Hook
	mutation *FacilityMutation
}

// Where appends a list predicates to the FacilityUpdate builder.
func (fu *FacilityUpdate) Where(ps ...predicate.Facility) *FacilityUpdate {
	fu.mutation.Where(ps...)
	return fu
}

// SetName sets the "name" field.
func (fu *FacilityUpdate) SetName(s string) *FacilityUpdate {
	fu.mutation.SetName(s)
	return fu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (fu *FacilityUpdate) SetNillableName(s *string) *FacilityUpdate {
	if s != nil {
		fu.SetName(*s)
	}
	return fu
}

// SetContactEmail sets the "contact_email" field.
func (fu *FacilityUpdate) SetContactEmail(s string) *FacilityUpdate {
	fu.mutation.SetContactEmail(s)
	return fu
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (fu *FacilityUpdate) SetNillableContactEmail(s *string) *FacilityUpdate {
	if s != nil {
		fu.SetContactEmail(*s)
	}
	return fu
}

// ClearContactEmail clears the value of the "contact_email" field.
func (fu *FacilityUpdate) ClearContactEmail() *FacilityUpdate {
	fu.mutation.ClearContactEmail()
	return fu
}

// SetAddress sets the "address" field.
func (fu *FacilityUpdate) SetAddress(s string) *FacilityUpdate {
	fu.mutation.SetAddress(s)
	return fu
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (fu *FacilityUpdate) SetNillableAddress(s *string) *FacilityUpdate {
	if s != nil {
		fu.SetAddress(*s)
	}
	return fu
}

// ClearAddress clears the value of the "address" field.
func (fu *FacilityUpdate) ClearAddress() *FacilityUpdate {
	fu.mutation.ClearAddress()
	return fu
}

// SetCreatedAt sets the "created_at" field.
func (fu *FacilityUpdate) SetCreatedAt(t time.Time) *FacilityUpdate {
	fu.mutation.SetCreatedAt(t)
	return fu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (fu *FacilityUpdate) SetNillableCreatedAt(t *time.Time) *FacilityUpdate {
	if t != nil {
		fu.SetCreatedAt(*t)
	}
	return fu
}

// SetUpdatedAt sets the "updated_at" field.
func (fu *FacilityUpdate) SetUpdatedAt(t time.Time) *FacilityUpdate {
	fu.mutation.SetUpdatedAt(t)
	return fu
}

// AddDocumentIDs adds the "documents" edge to the SDSDocument entity by IDs.
func (fu *FacilityUpdate) AddDocumentIDs(ids ...uuid.UUID) *FacilityUpdate {
	fu.mutation.AddDocumentIDs(ids...)
	return fu
}

// AddDocuments adds the "documents" edges to the SDSDocument entity.
func (fu *FacilityUpdate) AddDocuments(s ...*SDSDocument) *FacilityUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return fu.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (fu *FacilityUpdate) AddJobIDs(ids ...uuid.UUID) *FacilityUpdate {
	fu.mutation.AddJobIDs(ids...)
	return fu
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (fu *FacilityUpdate) AddJobs(e ...*ExtractJob) *FacilityUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return fu.AddJobIDs(ids...)
}

// Mutation returns the FacilityMutation object of the builder.
func (fu *FacilityUpdate) Mutation() *FacilityMutation {
	return fu.mutation
}

// ClearDocuments clears all "documents" edges to the SDSDocument entity.
func (fu *FacilityUpdate) ClearDocuments() *FacilityUpdate {
	fu.mutation.ClearDocuments()
	return fu
}

// RemoveDocumentIDs removes the "documents" edge to SDSDocument entities by IDs.
func (fu *FacilityUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *FacilityUpdate {
	fu.mutation.RemoveDocumentIDs(ids...)
	return fu
}

// RemoveDocuments removes "documents" edges to SDSDocument entities.
func (fu *FacilityUpdate) RemoveDocuments(s ...*SDSDocument) *FacilityUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return fu.RemoveDocumentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (fu *FacilityUpdate) ClearJobs() *FacilityUpdate {
	fu.mutation.ClearJobs()
	return fu
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (fu *FacilityUpdate) RemoveJobIDs(ids ...uuid.UUID) *FacilityUpdate {
	fu.mutation.RemoveJobIDs(ids...)
	return fu
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (fu *FacilityUpdate) RemoveJobs(e ...*ExtractJob) *FacilityUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return fu.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (fu *FacilityUpdate) Save(ctx context.Context) (int, error) {
	fu.defaults()
	return withHooks(ctx, fu.sqlSave, fu.mutation, fu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fu *FacilityUpdate) SaveX(ctx context.Context) int {
	affected, err := fu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (fu *FacilityUpdate) Exec(ctx context.Context) error {
	_, err := fu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fu *FacilityUpdate) ExecX(ctx context.Context) {
	if err := fu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fu *FacilityUpdate) defaults() {
	if _, ok := fu.mutation.UpdatedAt(); !ok {
		v := facility.UpdateDefaultUpdatedAt()
		fu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fu *FacilityUpdate) check() error {
	if v, ok := fu.mutation.Name(); ok {
		if err := facility.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Facility.name": %w`, err)}
		}
	}
	return nil
}

func (fu *FacilityUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := fu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(facility.Table, facility.Columns, sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID))
	if ps := fu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fu.mutation.Name(); ok {
		_spec.SetField(facility.FieldName, field.TypeString, value)
	}
	if value, ok := fu.mutation.ContactEmail(); ok {
		_spec.SetField(facility.FieldContactEmail, field.TypeString, value)
	}
	if fu.mutation.ContactEmailCleared() {
		_spec.ClearField(facility.FieldContactEmail, field.TypeString)
	}
	if value, ok := fu.mutation.Address(); ok {
		_spec.SetField(facility.FieldAddress, field.TypeString, value)
	}
	if fu.mutation.AddressCleared() {
		_spec.ClearField(facility.FieldAddress, field.TypeString)
	}
	if value, ok := fu.mutation.CreatedAt(); ok {
		_spec.SetField(facility.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := fu.mutation.UpdatedAt(); ok {
		_spec.SetField(facility.FieldUpdatedAt, field.TypeTime, value)
	}
	if fu.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.DocumentsTable,
			Columns: []string{facility.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fu.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !fu.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.DocumentsTable,
			Columns: []string{facility.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fu.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.DocumentsTable,
			Columns: []string{facility.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if fu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.JobsTable,
			Columns: []string{facility.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fu.mutation.RemovedJobsIDs(); len(nodes) > 0 && !fu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.JobsTable,
			Columns: []string{facility.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fu.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.JobsTable,
			Columns: []string{facility.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, fu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	fu.mutation.done = true
	return n, nil
}

// FacilityUpdateOne is the builder for updating a single Facility entity.
type FacilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacilityMutation
}

// SetName sets the "name" field.
func (fuo *FacilityUpdateOne) SetName(s string) *FacilityUpdateOne {
	fuo.mutation.SetName(s)
	return fuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (fuo *FacilityUpdateOne) SetNillableName(s *string) *FacilityUpdateOne {
	if s != nil {
		fuo.SetName(*s)
	}
	return fuo
}

// SetContactEmail sets the "contact_email" field.
func (fuo *FacilityUpdateOne) SetContactEmail(s string) *FacilityUpdateOne {
	fuo.mutation.SetContactEmail(s)
	return fuo
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (fuo *FacilityUpdateOne) SetNillableContactEmail(s *string) *FacilityUpdateOne {
	if s != nil {
		fuo.SetContactEmail(*s)
	}
	return fuo
}

// ClearContactEmail clears the value of the "contact_email" field.
func (fuo *FacilityUpdateOne) ClearContactEmail() *FacilityUpdateOne {
	fuo.mutation.ClearContactEmail()
	return fuo
}

// SetAddress sets the "address" field.
func (fuo *FacilityUpdateOne) SetAddress(s string) *FacilityUpdateOne {
	fuo.mutation.SetAddress(s)
	return fuo
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (fuo *FacilityUpdateOne) SetNillableAddress(s *string) *FacilityUpdateOne {
	if s != nil {
		fuo.SetAddress(*s)
	}
	return fuo
}

// ClearAddress clears the value of the "address" field.
func (fuo *FacilityUpdateOne) ClearAddress() *FacilityUpdateOne {
	fuo.mutation.ClearAddress()
	return fuo
}

// SetCreatedAt sets the "created_at" field.
func (fuo *FacilityUpdateOne) SetCreatedAt(t time.Time) *FacilityUpdateOne {
	fuo.mutation.SetCreatedAt(t)
	return fuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (fuo *FacilityUpdateOne) SetNillableCreatedAt(t *time.Time) *FacilityUpdateOne {
	if t != nil {
		fuo.SetCreatedAt(*t)
	}
	return fuo
}

// SetUpdatedAt sets the "updated_at" field.
func (fuo *FacilityUpdateOne) SetUpdatedAt(t time.Time) *FacilityUpdateOne {
	fuo.mutation.SetUpdatedAt(t)
	return fuo
}

// AddDocumentIDs adds the "documents" edge to the SDSDocument entity by IDs.
func (fuo *FacilityUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	fuo.mutation.AddDocumentIDs(ids...)
	return fuo
}

// AddDocuments adds the "documents" edges to the SDSDocument entity.
func (fuo *FacilityUpdateOne) AddDocuments(s ...*SDSDocument) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return fuo.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (fuo *FacilityUpdateOne) AddJobIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	fuo.mutation.AddJobIDs(ids...)
	return fuo
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (fuo *FacilityUpdateOne) AddJobs(e ...*ExtractJob) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return fuo.AddJobIDs(ids...)
}

// Mutation returns the FacilityMutation object of the builder.
func (fuo *FacilityUpdateOne) Mutation() *FacilityMutation {
	return fuo.mutation
}

// ClearDocuments clears all "documents" edges to the SDSDocument entity.
func (fuo *FacilityUpdateOne) ClearDocuments() *FacilityUpdateOne {
	fuo.mutation.ClearDocuments()
	return fuo
}

// RemoveDocumentIDs removes the "documents" edge to SDSDocument entities by IDs.
func (fuo *FacilityUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	fuo.mutation.RemoveDocumentIDs(ids...)
	return fuo
}

// RemoveDocuments removes "documents" edges to SDSDocument entities.
func (fuo *FacilityUpdateOne) RemoveDocuments(s ...*SDSDocument) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return fuo.RemoveDocumentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (fuo *FacilityUpdateOne) ClearJobs() *FacilityUpdateOne {
	fuo.mutation.ClearJobs()
	return fuo
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (fuo *FacilityUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *FacilityUpdateOne {
	fuo.mutation.RemoveJobIDs(ids...)
	return fuo
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (fuo *FacilityUpdateOne) RemoveJobs(e ...*ExtractJob) *FacilityUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return fuo.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the FacilityUpdate builder.
func (fuo *FacilityUpdateOne) Where(ps ...predicate.Facility) *FacilityUpdateOne {
	fuo.mutation.Where(ps...)
	return fuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (fuo *FacilityUpdateOne) Select(field string, fields ...string) *FacilityUpdateOne {
	fuo.fields = append([]string{field}, fields...)
	return fuo
}

// Save executes the query and returns the updated Facility entity.
func (fuo *FacilityUpdateOne) Save(ctx context.Context) (*Facility, error) {
	fuo.defaults()
	return withHooks(ctx, fuo.sqlSave, fuo.mutation, fuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fuo *FacilityUpdateOne) SaveX(ctx context.Context) *Facility {
	node, err := fuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (fuo *FacilityUpdateOne) Exec(ctx context.Context) error {
	_, err := fuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fuo *FacilityUpdateOne) ExecX(ctx context.Context) {
	if err := fuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fuo *FacilityUpdateOne) defaults() {
	if _, ok := fuo.mutation.UpdatedAt(); !ok {
		v := facility.UpdateDefaultUpdatedAt()
		fuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fuo *FacilityUpdateOne) check() error {
	if v, ok := fuo.mutation.Name(); ok {
		if err := facility.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Facility.name": %w`, err)}
		}
	}
	return nil
}

func (fuo *FacilityUpdateOne) sqlSave(ctx context.Context) (_node *Facility, err error) {
	if err := fuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facility.Table, facility.Columns, sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID))
	id, ok := fuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Facility.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := fuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facility.FieldID)
		for _, f := range fields {
			if !facility.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != facility.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := fuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fuo.mutation.Name(); ok {
		_spec.SetField(facility.FieldName, field.TypeString, value)
	}
	if value, ok := fuo.mutation.ContactEmail(); ok {
		_spec.SetField(facility.FieldContactEmail, field.TypeString, value)
	}
	if fuo.mutation.ContactEmailCleared() {
		_spec.ClearField(facility.FieldContactEmail, field.TypeString)
	}
	if value, ok := fuo.mutation.Address(); ok {
		_spec.SetField(facility.FieldAddress, field.TypeString, value)
	}
	if fuo.mutation.AddressCleared() {
		_spec.ClearField(facility.FieldAddress, field.TypeString)
	}
	if value, ok := fuo.mutation.CreatedAt(); ok {
		_spec.SetField(facility.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := fuo.mutation.UpdatedAt(); ok {
		_spec.SetField(facility.FieldUpdatedAt, field.TypeTime, value)
	}
	if fuo.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.DocumentsTable,
			Columns: []string{facility.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fuo.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !fuo.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.DocumentsTable,
			Columns: []string{facility.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fuo.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.DocumentsTable,
			Columns: []string{facility.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if fuo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.JobsTable,
			Columns: []string{facility.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fuo.mutation.RemovedJobsIDs(); len(nodes) > 0 && !fuo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.JobsTable,
			Columns: []string{facility.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := fuo.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.JobsTable,
			Columns: []string{facility.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Facility{config: fuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, fuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facility.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	fuo.mutation.done = true
	return _node, nil
}
