// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/extractjob"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
	"github.com/qrsafety/sds-pipeline/gen/ent/predicate"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
)

// ExtractJobQuery is the builder for querying ExtractJob entities.
type ExtractJobQuery struct {
	config
	ctx          *QueryContext
	order        []extractjob.OrderOption
	inters       []Interceptor
	predicates   []predicate.ExtractJob
	withFacility *FacilityQuery
	withDocument *SDSDocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractJobQuery builder.
func (ejq *ExtractJobQuery) Where(ps ...predicate.ExtractJob) *ExtractJobQuery {
	ejq.predicates = append(ejq.predicates, ps...)
	return ejq
}

// Limit the number of records to be returned by this query.
func (ejq *ExtractJobQuery) Limit(limit int) *ExtractJobQuery {
	ejq.ctx.Limit = &limit
	return ejq
}

// Offset to start from.
func (ejq *ExtractJobQuery) Offset(offset int) *ExtractJobQuery {
	ejq.ctx.Offset = &offset
	return ejq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ejq *ExtractJobQuery) Unique(unique bool) *ExtractJobQuery {
	ejq.ctx.Unique = &unique
	return ejq
}

// Order specifies how the records should be ordered.
func (ejq *ExtractJobQuery) Order(o ...extractjob.OrderOption) *ExtractJobQuery {
	ejq.order = append(ejq.order, o...)
	return ejq
}

// QueryFacility chains the current query on the "facility" edge.
func (ejq *ExtractJobQuery) QueryFacility() *FacilityQuery {
	query := (&FacilityClient{config: ejq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ejq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ejq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, selector),
			sqlgraph.To(facility.Table, facility.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FacilityTable, extractjob.FacilityColumn),
		)
		fromU = sqlgraph.SetNeighbors(ejq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocument chains the current query on the "document" edge.
func (ejq *ExtractJobQuery) QueryDocument() *SDSDocumentQuery {
	query := (&SDSDocumentClient{config: ejq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ejq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ejq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, selector),
			sqlgraph.To(sdsdocument.Table, sdsdocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.DocumentTable, extractjob.DocumentColumn),
		)
		fromU = sqlgraph.SetNeighbors(ejq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractJob entity from the query.
// Returns a *NotFoundError when no ExtractJob was found.
func (ejq *ExtractJobQuery) First(ctx context.Context) (*ExtractJob, error) {
	nodes, err := ejq.Limit(1).All(setContextOp(ctx, ejq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ejq *ExtractJobQuery) FirstX(ctx context.Context) *ExtractJob {
	node, err := ejq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractJob ID from the query.
// Returns a *NotFoundError when no ExtractJob ID was found.
func (ejq *ExtractJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ejq.Limit(1).IDs(setContextOp(ctx, ejq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ejq *ExtractJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := ejq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractJob entity is found.
// Returns a *NotFoundError when no ExtractJob entities are found.
func (ejq *ExtractJobQuery) Only(ctx context.Context) (*ExtractJob, error) {
	nodes, err := ejq.Limit(2).All(setContextOp(ctx, ejq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractjob.Label}
	default:
		return nil, &NotSingularError{extractjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ejq *ExtractJobQuery) OnlyX(ctx context.Context) *ExtractJob {
	node, err := ejq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractJob ID in the query.
// Returns a *NotSingularError when more than one ExtractJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (ejq *ExtractJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ejq.Limit(2).IDs(setContextOp(ctx, ejq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractjob.Label}
	default:
		err = &NotSingularError{extractjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ejq *ExtractJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := ejq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractJobs.
func (ejq *ExtractJobQuery) All(ctx context.Context) ([]*ExtractJob, error) {
	ctx = setContextOp(ctx, ejq.ctx, ent.OpQueryAll)
	if err := ejq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractJob, *ExtractJobQuery]()
	return withInterceptors[[]*ExtractJob](ctx, ejq, qr, ejq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ejq *ExtractJobQuery) AllX(ctx context.Context) []*ExtractJob {
	nodes, err := ejq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractJob IDs.
func (ejq *ExtractJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if ejq.ctx.Unique == nil && ejq.path != nil {
		ejq.Unique(true)
	}
	ctx = setContextOp(ctx, ejq.ctx, ent.OpQueryIDs)
	if err = ejq.Select(extractjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ejq *ExtractJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := ejq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ejq *ExtractJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ejq.ctx, ent.OpQueryCount)
	if err := ejq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ejq, querierCount[*ExtractJobQuery](), ejq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ejq *ExtractJobQuery) CountX(ctx context.Context) int {
	count, err := ejq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ejq *ExtractJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ejq.ctx, ent.OpQueryExist)
	switch _, err := ejq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ejq *ExtractJobQuery) ExistX(ctx context.Context) bool {
	exist, err := ejq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ejq *ExtractJobQuery) Clone() *ExtractJobQuery {
	if ejq == nil {
		return nil
	}
	return &ExtractJobQuery{
		config:       ejq.config,
		ctx:          ejq.ctx.Clone(),
		order:        append([]extractjob.OrderOption{}, ejq.order...),
		inters:       append([]Interceptor{}, ejq.inters...),
		predicates:   append([]predicate.ExtractJob{}, ejq.predicates...),
		withFacility: ejq.withFacility.Clone(),
		withDocument: ejq.withDocument.Clone(),
		// clone intermediate query.
		sql:  ejq.sql.Clone(),
		path: ejq.path,
	}
}

// WithFacility tells the query-builder to eager-load the nodes that are connected to
// the "facility" edge. The optional arguments are used to configure the query builder of the edge.
func (ejq *ExtractJobQuery) WithFacility(opts ...func(*FacilityQuery)) *ExtractJobQuery {
	query := (&FacilityClient{config: ejq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ejq.withFacility = query
	return ejq
}

// WithDocument tells the query-builder to eager-load the nodes that are connected to
// the "document" edge. The optional arguments are used to configure the query builder of the edge.
func (ejq *ExtractJobQuery) WithDocument(opts ...func(*SDSDocumentQuery)) *ExtractJobQuery {
	query := (&SDSDocumentClient{config: ejq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ejq.withDocument = query
	return ejq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FacilityID uuid.UUID `json:"facility_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExtractJob.Query().
//		GroupBy(extractjob.FieldFacilityID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ejq *ExtractJobQuery) GroupBy(field string, fields ...string) *ExtractJobGroupBy {
	ejq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractJobGroupBy{build: ejq}
	grbuild.flds = &ejq.ctx.Fields
	grbuild.label = extractjob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FacilityID uuid.UUID `json:"facility_id,omitempty"`
//	}
//
//	client.ExtractJob.Query().
//		Select(extractjob.FieldFacilityID).
//		Scan(ctx, &v)
func (ejq *ExtractJobQuery) Select(fields ...string) *ExtractJobSelect {
	ejq.ctx.Fields = append(ejq.ctx.Fields, fields...)
	sbuild := &ExtractJobSelect{ExtractJobQuery: ejq}
	sbuild.label = extractjob.Label
	sbuild.flds, sbuild.scan = &ejq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractJobSelect configured with the given aggregations.
func (ejq *ExtractJobQuery) Aggregate(fns ...AggregateFunc) *ExtractJobSelect {
	return ejq.Select().Aggregate(fns...)
}

func (ejq *ExtractJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ejq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ejq); err != nil {
				return err
			}
		}
	}
	for _, f := range ejq.ctx.Fields {
		if !extractjob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ejq.path != nil {
		prev, err := ejq.path(ctx)
		if err != nil {
			return err
		}
		ejq.sql = prev
	}
	return nil
}

func (ejq *ExtractJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractJob, error) {
	var (
		nodes       = []*ExtractJob{}
		_spec       = ejq.querySpec()
		loadedTypes = [2]bool{
			ejq.withFacility != nil,
			ejq.withDocument != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractJob{config: ejq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ejq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ejq.withFacility; query != nil {
		if err := ejq.loadFacility(ctx, query, nodes, nil,
			func(n *ExtractJob, e *Facility) { n.Edges.Facility = e }); err != nil {
			return nil, err
		}
	}
	if query := ejq.withDocument; query != nil {
		if err := ejq.loadDocument(ctx, query, nodes, nil,
			func(n *ExtractJob, e *SDSDocument) { n.Edges.Document = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ejq *ExtractJobQuery) loadFacility(ctx context.Context, query *FacilityQuery, nodes []*ExtractJob, init func(*ExtractJob), assign func(*ExtractJob, *Facility)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractJob)
	for i := range nodes {
		fk := nodes[i].FacilityID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(facility.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "facility_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (ejq *ExtractJobQuery) loadDocument(ctx context.Context, query *SDSDocumentQuery, nodes []*ExtractJob, init func(*ExtractJob), assign func(*ExtractJob, *SDSDocument)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractJob)
	for i := range nodes {
		if nodes[i].DocumentID == nil {
			continue
		}
		fk := *nodes[i].DocumentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(sdsdocument.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "document_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (ejq *ExtractJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ejq.querySpec()
	_spec.Node.Columns = ejq.ctx.Fields
	if len(ejq.ctx.Fields) > 0 {
		_spec.Unique = ejq.ctx.Unique != nil && *ejq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ejq.driver, _spec)
}

func (ejq *ExtractJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	_spec.From = ejq.sql
	if unique := ejq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ejq.path != nil {
		_spec.Unique = true
	}
	if fields := ejq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for i := range fields {
			if fields[i] != extractjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ejq.withFacility != nil {
			_spec.Node.AddColumnOnce(extractjob.FieldFacilityID)
		}
		if ejq.withDocument != nil {
			_spec.Node.AddColumnOnce(extractjob.FieldDocumentID)
		}
	}
	if ps := ejq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ejq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ejq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ejq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ejq *ExtractJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ejq.driver.Dialect())
	t1 := builder.Table(extractjob.Table)
	columns := ejq.ctx.Fields
	if len(columns) == 0 {
		columns = extractjob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ejq.sql != nil {
		selector = ejq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ejq.ctx.Unique != nil && *ejq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ejq.predicates {
		p(selector)
	}
	for _, p := range ejq.order {
		p(selector)
	}
	if offset := ejq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ejq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ExtractJobGroupBy is the group-by builder for ExtractJob entities.
type ExtractJobGroupBy struct {
	selector
	build *ExtractJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ejgb *ExtractJobGroupBy) Aggregate(fns ...AggregateFunc) *ExtractJobGroupBy {
	ejgb.fns = append(ejgb.fns, fns...)
	return ejgb
}

// Scan applies the selector query and scans the result into the given value.
func (ejgb *ExtractJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ejgb.build.ctx, ent.OpQueryGroupBy)
	if err := ejgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractJobQuery, *ExtractJobGroupBy](ctx, ejgb.build, ejgb, ejgb.build.inters, v)
}

func (ejgb *ExtractJobGroupBy) sqlScan(ctx context.Context, root *ExtractJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ejgb.fns))
	for _, fn := range ejgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ejgb.flds)+len(ejgb.fns))
		for _, f := range *ejgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ejgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ejgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ExtractJobSelect is the builder for selecting fields of ExtractJob entities.
type ExtractJobSelect struct {
	*ExtractJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ejs *ExtractJobSelect) Aggregate(fns ...AggregateFunc) *ExtractJobSelect {
	ejs.fns = append(ejs.fns, fns...)
	return ejs
}

// Scan applies the selector query and scans the result into the given value.
func (ejs *ExtractJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ejs.ctx, ent.OpQuerySelect)
	if err := ejs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractJobQuery, *ExtractJobSelect](ctx, ejs.ExtractJobQuery, ejs, ejs.inters, v)
}

func (ejs *ExtractJobSelect) sqlScan(ctx context.Context, root *ExtractJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ejs.fns))
	for _, fn := range ejs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ejs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ejs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
