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
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// ManufacturerQuery is the builder for querying Manufacturer entities.
type ManufacturerQuery struct {
	config
	ctx          *QueryContext
	order        []manufacturer.OrderOption
	inters       []Interceptor
	predicates   []predicate.Manufacturer
	withUrls     *DiscoveredURLQuery
	withMachines *CatalogMachineQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ManufacturerQuery builder.
func (_q *ManufacturerQuery) Where(ps ...predicate.Manufacturer) *ManufacturerQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ManufacturerQuery) Limit(limit int) *ManufacturerQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ManufacturerQuery) Offset(offset int) *ManufacturerQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ManufacturerQuery) Unique(unique bool) *ManufacturerQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ManufacturerQuery) Order(o ...manufacturer.OrderOption) *ManufacturerQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUrls chains the current query on the "urls" edge.
func (_q *ManufacturerQuery) QueryUrls() *DiscoveredURLQuery {
	query := (&DiscoveredURLClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(manufacturer.Table, manufacturer.FieldID, selector),
			sqlgraph.To(discoveredurl.Table, discoveredurl.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, manufacturer.UrlsTable, manufacturer.UrlsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMachines chains the current query on the "machines" edge.
func (_q *ManufacturerQuery) QueryMachines() *CatalogMachineQuery {
	query := (&CatalogMachineClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(manufacturer.Table, manufacturer.FieldID, selector),
			sqlgraph.To(catalogmachine.Table, catalogmachine.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, manufacturer.MachinesTable, manufacturer.MachinesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Manufacturer entity from the query.
// Returns a *NotFoundError when no Manufacturer was found.
func (_q *ManufacturerQuery) First(ctx context.Context) (*Manufacturer, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{manufacturer.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ManufacturerQuery) FirstX(ctx context.Context) *Manufacturer {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Manufacturer ID from the query.
// Returns a *NotFoundError when no Manufacturer ID was found.
func (_q *ManufacturerQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{manufacturer.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ManufacturerQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Manufacturer entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Manufacturer entity is found.
// Returns a *NotFoundError when no Manufacturer entities are found.
func (_q *ManufacturerQuery) Only(ctx context.Context) (*Manufacturer, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{manufacturer.Label}
	default:
		return nil, &NotSingularError{manufacturer.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ManufacturerQuery) OnlyX(ctx context.Context) *Manufacturer {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Manufacturer ID in the query.
// Returns a *NotSingularError when more than one Manufacturer ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ManufacturerQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{manufacturer.Label}
	default:
		err = &NotSingularError{manufacturer.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ManufacturerQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Manufacturers.
func (_q *ManufacturerQuery) All(ctx context.Context) ([]*Manufacturer, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Manufacturer, *ManufacturerQuery]()
	return withInterceptors[[]*Manufacturer](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ManufacturerQuery) AllX(ctx context.Context) []*Manufacturer {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Manufacturer IDs.
func (_q *ManufacturerQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(manufacturer.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ManufacturerQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ManufacturerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ManufacturerQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ManufacturerQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ManufacturerQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ManufacturerQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ManufacturerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ManufacturerQuery) Clone() *ManufacturerQuery {
	if _q == nil {
		return nil
	}
	return &ManufacturerQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]manufacturer.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Manufacturer{}, _q.predicates...),
		withUrls:     _q.withUrls.Clone(),
		withMachines: _q.withMachines.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUrls tells the query-builder to eager-load the nodes that are connected to
// the "urls" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ManufacturerQuery) WithUrls(opts ...func(*DiscoveredURLQuery)) *ManufacturerQuery {
	query := (&DiscoveredURLClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUrls = query
	return _q
}

// WithMachines tells the query-builder to eager-load the nodes that are connected to
// the "machines" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ManufacturerQuery) WithMachines(opts ...func(*CatalogMachineQuery)) *ManufacturerQuery {
	query := (&CatalogMachineClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMachines = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Manufacturer.Query().
//		GroupBy(manufacturer.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ManufacturerQuery) GroupBy(field string, fields ...string) *ManufacturerGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ManufacturerGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = manufacturer.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Manufacturer.Query().
//		Select(manufacturer.FieldName).
//		Scan(ctx, &v)
func (_q *ManufacturerQuery) Select(fields ...string) *ManufacturerSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ManufacturerSelect{ManufacturerQuery: _q}
	sbuild.label = manufacturer.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ManufacturerSelect configured with the given aggregations.
func (_q *ManufacturerQuery) Aggregate(fns ...AggregateFunc) *ManufacturerSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ManufacturerQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !manufacturer.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ManufacturerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Manufacturer, error) {
	var (
		nodes       = []*Manufacturer{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withUrls != nil,
			_q.withMachines != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Manufacturer).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Manufacturer{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUrls; query != nil {
		if err := _q.loadUrls(ctx, query, nodes,
			func(n *Manufacturer) { n.Edges.Urls = []*DiscoveredURL{} },
			func(n *Manufacturer, e *DiscoveredURL) { n.Edges.Urls = append(n.Edges.Urls, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMachines; query != nil {
		if err := _q.loadMachines(ctx, query, nodes,
			func(n *Manufacturer) { n.Edges.Machines = []*CatalogMachine{} },
			func(n *Manufacturer, e *CatalogMachine) { n.Edges.Machines = append(n.Edges.Machines, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ManufacturerQuery) loadUrls(ctx context.Context, query *DiscoveredURLQuery, nodes []*Manufacturer, init func(*Manufacturer), assign func(*Manufacturer, *DiscoveredURL)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Manufacturer)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(discoveredurl.FieldManufacturerID)
	}
	query.Where(predicate.DiscoveredURL(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(manufacturer.UrlsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ManufacturerID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "manufacturer_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ManufacturerQuery) loadMachines(ctx context.Context, query *CatalogMachineQuery, nodes []*Manufacturer, init func(*Manufacturer), assign func(*Manufacturer, *CatalogMachine)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Manufacturer)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(catalogmachine.FieldManufacturerID)
	}
	query.Where(predicate.CatalogMachine(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(manufacturer.MachinesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ManufacturerID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "manufacturer_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ManufacturerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ManufacturerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(manufacturer.Table, manufacturer.Columns, sqlgraph.NewFieldSpec(manufacturer.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, manufacturer.FieldID)
		for i := range fields {
			if fields[i] != manufacturer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ManufacturerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(manufacturer.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = manufacturer.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ManufacturerGroupBy is the group-by builder for Manufacturer entities.
type ManufacturerGroupBy struct {
	selector
	build *ManufacturerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ManufacturerGroupBy) Aggregate(fns ...AggregateFunc) *ManufacturerGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ManufacturerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ManufacturerQuery, *ManufacturerGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ManufacturerGroupBy) sqlScan(ctx context.Context, root *ManufacturerQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ManufacturerSelect is the builder for selecting fields of Manufacturer entities.
type ManufacturerSelect struct {
	*ManufacturerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ManufacturerSelect) Aggregate(fns ...AggregateFunc) *ManufacturerSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ManufacturerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ManufacturerQuery, *ManufacturerSelect](ctx, _s.ManufacturerQuery, _s, _s.inters, v)
}

func (_s *ManufacturerSelect) sqlScan(ctx context.Context, root *ManufacturerQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
