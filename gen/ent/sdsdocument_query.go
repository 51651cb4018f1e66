// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// SDSDocumentQuery is the builder for querying SDSDocument entities.
type SDSDocumentQuery struct {
	config
	ctx          *QueryContext
	order        []sdsdocument.OrderOption
	inters       []Interceptor
	predicates   []predicate.SDSDocument
	withFacility *FacilityQuery
	withJobs     *ExtractJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SDSDocumentQuery builder.
func (sdq *SDSDocumentQuery) Where(ps ...predicate.SDSDocument) *SDSDocumentQuery {
	sdq.predicates = append(sdq.predicates, ps...)
	return sdq
}

// Limit the number of records to be returned by this query.
func (sdq *SDSDocumentQuery) Limit(limit int) *SDSDocumentQuery {
	sdq.ctx.Limit = &limit
	return sdq
}

// Offset to start from.
func (sdq *SDSDocumentQuery) Offset(offset int) *SDSDocumentQuery {
	sdq.ctx.Offset = &offset
	return sdq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (sdq *SDSDocumentQuery) Unique(unique bool) *SDSDocumentQuery {
	sdq.ctx.Unique = &unique
	return sdq
}

// Order specifies how the records should be ordered.
func (sdq *SDSDocumentQuery) Order(o ...sdsdocument.OrderOption) *SDSDocumentQuery {
	sdq.order = append(sdq.order, o...)
	return sdq
}

// QueryFacility chains the current query on the "facility" edge.
func (sdq *SDSDocumentQuery) QueryFacility() *FacilityQuery {
	query := (&FacilityClient{config: sdq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := sdq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := sdq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sdsdocument.Table, sdsdocument.FieldID, selector),
			sqlgraph.To(facility.Table, facility.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sdsdocument.FacilityTable, sdsdocument.FacilityColumn),
		)
		fromU = sqlgraph.SetNeighbors(sdq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryJobs chains the current query on the "jobs" edge.
func (sdq *SDSDocumentQuery) QueryJobs() *ExtractJobQuery {
	query := (&ExtractJobClient{config: sdq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := sdq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := sdq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(sdsdocument.Table, sdsdocument.FieldID, selector),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sdsdocument.JobsTable, sdsdocument.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(sdq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SDSDocument entity from the query.
// Returns a *NotFoundError when no SDSDocument was found.
func (sdq *SDSDocumentQuery) First(ctx context.Context) (*SDSDocument, error) {
	nodes, err := sdq.Limit(1).All(setContextOp(ctx, sdq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sdsdocument.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (sdq *SDSDocumentQuery) FirstX(ctx context.Context) *SDSDocument {
	node, err := sdq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SDSDocument ID from the query.
// Returns a *NotFoundError when no SDSDocument ID was found.
func (sdq *SDSDocumentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = sdq.Limit(1).IDs(setContextOp(ctx, sdq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sdsdocument.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (sdq *SDSDocumentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := sdq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SDSDocument entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SDSDocument entity is found.
// Returns a *NotFoundError when no SDSDocument entities are found.
func (sdq *SDSDocumentQuery) Only(ctx context.Context) (*SDSDocument, error) {
	nodes, err := sdq.Limit(2).All(setContextOp(ctx, sdq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sdsdocument.Label}
	default:
		return nil, &NotSingularError{sdsdocument.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (sdq *SDSDocumentQuery) OnlyX(ctx context.Context) *SDSDocument {
	node, err := sdq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SDSDocument ID in the query.
// Returns a *NotSingularError when more than one SDSDocument ID is found.
// Returns a *NotFoundError when no entities are found.
func (sdq *SDSDocumentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = sdq.Limit(2).IDs(setContextOp(ctx, sdq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sdsdocument.Label}
	default:
		err = &NotSingularError{sdsdocument.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (sdq *SDSDocumentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := sdq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SDSDocuments.
func (sdq *SDSDocumentQuery) All(ctx context.Context) ([]*SDSDocument, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryAll)
	if err := sdq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SDSDocument, *SDSDocumentQuery]()
	return withInterceptors[[]*SDSDocument](ctx, sdq, qr, sdq.inters)
}

// AllX is like All, but panics if an error occurs.
func (sdq *SDSDocumentQuery) AllX(ctx context.Context) []*SDSDocument {
	nodes, err := sdq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SDSDocument IDs.
func (sdq *SDSDocumentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if sdq.ctx.Unique == nil && sdq.path != nil {
		sdq.Unique(true)
	}
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryIDs)
	if err = sdq.Select(sdsdocument.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (sdq *SDSDocumentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := sdq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (sdq *SDSDocumentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryCount)
	if err := sdq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, sdq, querierCount[*SDSDocumentQuery](), sdq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (sdq *SDSDocumentQuery) CountX(ctx context.Context) int {
	count, err := sdq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (sdq *SDSDocumentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryExist)
	switch _, err := sdq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (sdq *SDSDocumentQuery) ExistX(ctx context.Context) bool {
	exist, err := sdq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SDSDocumentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (sdq *SDSDocumentQuery) Clone() *SDSDocumentQuery {
	if sdq == nil {
		return nil
	}
	return &SDSDocumentQuery{
		config:       sdq.config,
		ctx:          sdq.ctx.Clone(),
		order:        append([]sdsdocument.OrderOption{}, sdq.order...),
		inters:       append([]Interceptor{}, sdq.inters...),
		predicates:   append([]predicate.SDSDocument{}, sdq.predicates...),
		withFacility: sdq.withFacility.Clone(),
		withJobs:     sdq.withJobs.Clone(),
		// clone intermediate query.
		sql:  sdq.sql.Clone(),
		path: sdq.path,
	}
}

// WithFacility tells the query-builder to eager-load the nodes that are connected to
// the "facility" edge. The optional arguments are used to configure the query builder of the edge.
func (sdq *SDSDocumentQuery) WithFacility(opts ...func(*FacilityQuery)) *SDSDocumentQuery {
	query := (&FacilityClient{config: sdq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	sdq.withFacility = query
	return sdq
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (sdq *SDSDocumentQuery) WithJobs(opts ...func(*ExtractJobQuery)) *SDSDocumentQuery {
	query := (&ExtractJobClient{config: sdq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	sdq.withJobs = query
	return sdq
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
//	client.SDSDocument.Query().
//		GroupBy(sdsdocument.FieldFacilityID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (sdq *SDSDocumentQuery) GroupBy(field string, fields ...string) *SDSDocumentGroupBy {
	sdq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SDSDocumentGroupBy{build: sdq}
	grbuild.flds = &sdq.ctx.Fields
	grbuild.label = sdsdocument.Label
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
//	client.SDSDocument.Query().
//		Select(sdsdocument.FieldFacilityID).
//		Scan(ctx, &v)
func (sdq *SDSDocumentQuery) Select(fields ...string) *SDSDocumentSelect {
	sdq.ctx.Fields = append(sdq.ctx.Fields, fields...)
	sbuild := &SDSDocumentSelect{SDSDocumentQuery: sdq}
	sbuild.label = sdsdocument.Label
	sbuild.flds, sbuild.scan = &sdq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SDSDocumentSelect configured with the given aggregations.
func (sdq *SDSDocumentQuery) Aggregate(fns ...AggregateFunc) *SDSDocumentSelect {
	return sdq.Select().Aggregate(fns...)
}

func (sdq *SDSDocumentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range sdq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, sdq); err != nil {
				return err
			}
		}
	}
	for _, f := range sdq.ctx.Fields {
		if !sdsdocument.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if sdq.path != nil {
		prev, err := sdq.path(ctx)
		if err != nil {
			return err
		}
		sdq.sql = prev
	}
	return nil
}

func (sdq *SDSDocumentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SDSDocument, error) {
	var (
		nodes       = []*SDSDocument{}
		_spec       = sdq.querySpec()
		loadedTypes = [2]bool{
			sdq.withFacility != nil,
			sdq.withJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SDSDocument).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SDSDocument{config: sdq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, sdq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := sdq.withFacility; query != nil {
		if err := sdq.loadFacility(ctx, query, nodes, nil,
			func(n *SDSDocument, e *Facility) { n.Edges.Facility = e }); err != nil {
			return nil, err
		}
	}
	if query := sdq.withJobs; query != nil {
		if err := sdq.loadJobs(ctx, query, nodes,
			func(n *SDSDocument) { n.Edges.Jobs = []*ExtractJob{} },
			func(n *SDSDocument, e *ExtractJob) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (sdq *SDSDocumentQuery) loadFacility(ctx context.Context, query *FacilityQuery, nodes []*SDSDocument, init func(*SDSDocument), assign func(*SDSDocument, *Facility)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SDSDocument)
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
func (sdq *SDSDocumentQuery) loadJobs(ctx context.Context, query *ExtractJobQuery, nodes []*SDSDocument, init func(*SDSDocument), assign func(*SDSDocument, *ExtractJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*SDSDocument)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractjob.FieldDocumentID)
	}
	query.Where(predicate.ExtractJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(sdsdocument.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DocumentID
		if fk == nil {
			return fmt.Errorf(`foreign-key "document_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "document_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (sdq *SDSDocumentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := sdq.querySpec()
	_spec.Node.Columns = sdq.ctx.Fields
	if len(sdq.ctx.Fields) > 0 {
		_spec.Unique = sdq.ctx.Unique != nil && *sdq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, sdq.driver, _spec)
}

func (sdq *SDSDocumentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sdsdocument.Table, sdsdocument.Columns, sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID))
	_spec.From = sdq.sql
	if unique := sdq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if sdq.path != nil {
		_spec.Unique = true
	}
	if fields := sdq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sdsdocument.FieldID)
		for i := range fields {
			if fields[i] != sdsdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if sdq.withFacility != nil {
			_spec.Node.AddColumnOnce(sdsdocument.FieldFacilityID)
		}
	}
	if ps := sdq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := sdq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := sdq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := sdq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (sdq *SDSDocumentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(sdq.driver.Dialect())
	t1 := builder.Table(sdsdocument.Table)
	columns := sdq.ctx.Fields
	if len(columns) == 0 {
		columns = sdsdocument.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if sdq.sql != nil {
		selector = sdq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if sdq.ctx.Unique != nil && *sdq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range sdq.predicates {
		p(selector)
	}
	for _, p := range sdq.order {
		p(selector)
	}
	if offset := sdq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := sdq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SDSDocumentGroupBy is the group-by builder for SDSDocument entities.
type SDSDocumentGroupBy struct {
	selector
	build *SDSDocumentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sdgb *SDSDocumentGroupBy) Aggregate(fns ...AggregateFunc) *SDSDocumentGroupBy {
	sdgb.fns = append(sdgb.fns, fns...)
	return sdgb
}

// Scan applies the selector query and scans the result into the given value.
func (sdgb *SDSDocumentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sdgb.build.ctx, ent.OpQueryGroupBy)
	if err := sdgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SDSDocumentQuery, *SDSDocumentGroupBy](ctx, sdgb.build, sdgb, sdgb.build.inters, v)
}

func (sdgb *SDSDocumentGroupBy) sqlScan(ctx context.Context, root *SDSDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sdgb.fns))
	for _, fn := range sdgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sdgb.flds)+len(sdgb.fns))
		for _, f := range *sdgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sdgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sdgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SDSDocumentSelect is the builder for selecting fields of SDSDocument entities.
type SDSDocumentSelect struct {
	*SDSDocumentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sds *SDSDocumentSelect) Aggregate(fns ...AggregateFunc) *SDSDocumentSelect {
	sds.fns = append(sds.fns, fns...)
	return sds
}

// Scan applies the selector query and scans the result into the given value.
func (sds *SDSDocumentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sds.ctx, ent.OpQuerySelect)
	if err := sds.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SDSDocumentQuery, *SDSDocumentSelect](ctx, sds.SDSDocumentQuery, sds, sds.inters, v)
}

func (sds *SDSDocumentSelect) sqlScan(ctx context.Context, root *SDSDocumentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sds.fns))
	for _, fn := range sds.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sds.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sds.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
