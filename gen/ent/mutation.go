// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCatalogMachine = "CatalogMachine"
	TypeDiscoveredURL  = "DiscoveredURL"
	TypeManufacturer   = "Manufacturer"
)

// CatalogMachineMutation represents an operation that mutates the CatalogMachine nodes in the graph.
type CatalogMachineMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	machine_type        *string
	spec_tokens         *[]string
	appendspec_tokens   []string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	manufacturer        *uuid.UUID
	clearedmanufacturer bool
	done                bool
	oldValue            func(context.Context) (*CatalogMachine, error)
	predicates          []predicate.CatalogMachine
}

var _ ent.Mutation = (*CatalogMachineMutation)(nil)

// catalogmachineOption allows management of the mutation configuration using functional options.
type catalogmachineOption func(*CatalogMachineMutation)

// newCatalogMachineMutation creates new mutation for the CatalogMachine entity.
func newCatalogMachineMutation(c config, op Op, opts ...catalogmachineOption) *CatalogMachineMutation {
	m := &CatalogMachineMutation{
		config:        c,
		op:            op,
		typ:           TypeCatalogMachine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCatalogMachineID sets the ID field of the mutation.
func withCatalogMachineID(id uuid.UUID) catalogmachineOption {
	return func(m *CatalogMachineMutation) {
		var (
			err   error
			once  sync.Once
			value *CatalogMachine
		)
		m.oldValue = func(ctx context.Context) (*CatalogMachine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CatalogMachine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCatalogMachine sets the old CatalogMachine of the mutation.
func withCatalogMachine(node *CatalogMachine) catalogmachineOption {
	return func(m *CatalogMachineMutation) {
		m.oldValue = func(context.Context) (*CatalogMachine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CatalogMachineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CatalogMachineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CatalogMachine entities.
func (m *CatalogMachineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CatalogMachineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CatalogMachineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CatalogMachine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetManufacturerID sets the "manufacturer_id" field.
func (m *CatalogMachineMutation) SetManufacturerID(u uuid.UUID) {
	m.manufacturer = &u
}

// ManufacturerID returns the value of the "manufacturer_id" field in the mutation.
func (m *CatalogMachineMutation) ManufacturerID() (r uuid.UUID, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturerID returns the old "manufacturer_id" field's value of the CatalogMachine entity.
// If the CatalogMachine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogMachineMutation) OldManufacturerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturerID: %w", err)
	}
	return oldValue.ManufacturerID, nil
}

// ResetManufacturerID resets all changes to the "manufacturer_id" field.
func (m *CatalogMachineMutation) ResetManufacturerID() {
	m.manufacturer = nil
}

// SetName sets the "name" field.
func (m *CatalogMachineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CatalogMachineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CatalogMachine entity.
// If the CatalogMachine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogMachineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CatalogMachineMutation) ResetName() {
	m.name = nil
}

// SetMachineType sets the "machine_type" field.
func (m *CatalogMachineMutation) SetMachineType(s string) {
	m.machine_type = &s
}

// MachineType returns the value of the "machine_type" field in the mutation.
func (m *CatalogMachineMutation) MachineType() (r string, exists bool) {
	v := m.machine_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMachineType returns the old "machine_type" field's value of the CatalogMachine entity.
// If the CatalogMachine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogMachineMutation) OldMachineType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMachineType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMachineType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMachineType: %w", err)
	}
	return oldValue.MachineType, nil
}

// ClearMachineType clears the value of the "machine_type" field.
func (m *CatalogMachineMutation) ClearMachineType() {
	m.machine_type = nil
	m.clearedFields[catalogmachine.FieldMachineType] = struct{}{}
}

// MachineTypeCleared returns if the "machine_type" field was cleared in this mutation.
func (m *CatalogMachineMutation) MachineTypeCleared() bool {
	_, ok := m.clearedFields[catalogmachine.FieldMachineType]
	return ok
}

// ResetMachineType resets all changes to the "machine_type" field.
func (m *CatalogMachineMutation) ResetMachineType() {
	m.machine_type = nil
	delete(m.clearedFields, catalogmachine.FieldMachineType)
}

// SetSpecTokens sets the "spec_tokens" field.
func (m *CatalogMachineMutation) SetSpecTokens(s []string) {
	m.spec_tokens = &s
	m.appendspec_tokens = nil
}

// SpecTokens returns the value of the "spec_tokens" field in the mutation.
func (m *CatalogMachineMutation) SpecTokens() (r []string, exists bool) {
	v := m.spec_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecTokens returns the old "spec_tokens" field's value of the CatalogMachine entity.
// If the CatalogMachine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogMachineMutation) OldSpecTokens(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecTokens: %w", err)
	}
	return oldValue.SpecTokens, nil
}

// AppendSpecTokens adds s to the "spec_tokens" field.
func (m *CatalogMachineMutation) AppendSpecTokens(s []string) {
	m.appendspec_tokens = append(m.appendspec_tokens, s...)
}

// AppendedSpecTokens returns the list of values that were appended to the "spec_tokens" field in this mutation.
func (m *CatalogMachineMutation) AppendedSpecTokens() ([]string, bool) {
	if len(m.appendspec_tokens) == 0 {
		return nil, false
	}
	return m.appendspec_tokens, true
}

// ClearSpecTokens clears the value of the "spec_tokens" field.
func (m *CatalogMachineMutation) ClearSpecTokens() {
	m.spec_tokens = nil
	m.appendspec_tokens = nil
	m.clearedFields[catalogmachine.FieldSpecTokens] = struct{}{}
}

// SpecTokensCleared returns if the "spec_tokens" field was cleared in this mutation.
func (m *CatalogMachineMutation) SpecTokensCleared() bool {
	_, ok := m.clearedFields[catalogmachine.FieldSpecTokens]
	return ok
}

// ResetSpecTokens resets all changes to the "spec_tokens" field.
func (m *CatalogMachineMutation) ResetSpecTokens() {
	m.spec_tokens = nil
	m.appendspec_tokens = nil
	delete(m.clearedFields, catalogmachine.FieldSpecTokens)
}

// SetCreatedAt sets the "created_at" field.
func (m *CatalogMachineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CatalogMachineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CatalogMachine entity.
// If the CatalogMachine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogMachineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CatalogMachineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CatalogMachineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CatalogMachineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CatalogMachine entity.
// If the CatalogMachine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogMachineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CatalogMachineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearManufacturer clears the "manufacturer" edge to the Manufacturer entity.
func (m *CatalogMachineMutation) ClearManufacturer() {
	m.clearedmanufacturer = true
	m.clearedFields[catalogmachine.FieldManufacturerID] = struct{}{}
}

// ManufacturerCleared reports if the "manufacturer" edge to the Manufacturer entity was cleared.
func (m *CatalogMachineMutation) ManufacturerCleared() bool {
	return m.clearedmanufacturer
}

// ManufacturerIDs returns the "manufacturer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ManufacturerID instead. It exists only for internal usage by the builders.
func (m *CatalogMachineMutation) ManufacturerIDs() (ids []uuid.UUID) {
	if id := m.manufacturer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetManufacturer resets all changes to the "manufacturer" edge.
func (m *CatalogMachineMutation) ResetManufacturer() {
	m.manufacturer = nil
	m.clearedmanufacturer = false
}

// Where appends a list predicates to the CatalogMachineMutation builder.
func (m *CatalogMachineMutation) Where(ps ...predicate.CatalogMachine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CatalogMachineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CatalogMachineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CatalogMachine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CatalogMachineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CatalogMachineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CatalogMachine).
func (m *CatalogMachineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CatalogMachineMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.manufacturer != nil {
		fields = append(fields, catalogmachine.FieldManufacturerID)
	}
	if m.name != nil {
		fields = append(fields, catalogmachine.FieldName)
	}
	if m.machine_type != nil {
		fields = append(fields, catalogmachine.FieldMachineType)
	}
	if m.spec_tokens != nil {
		fields = append(fields, catalogmachine.FieldSpecTokens)
	}
	if m.created_at != nil {
		fields = append(fields, catalogmachine.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, catalogmachine.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CatalogMachineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case catalogmachine.FieldManufacturerID:
		return m.ManufacturerID()
	case catalogmachine.FieldName:
		return m.Name()
	case catalogmachine.FieldMachineType:
		return m.MachineType()
	case catalogmachine.FieldSpecTokens:
		return m.SpecTokens()
	case catalogmachine.FieldCreatedAt:
		return m.CreatedAt()
	case catalogmachine.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CatalogMachineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case catalogmachine.FieldManufacturerID:
		return m.OldManufacturerID(ctx)
	case catalogmachine.FieldName:
		return m.OldName(ctx)
	case catalogmachine.FieldMachineType:
		return m.OldMachineType(ctx)
	case catalogmachine.FieldSpecTokens:
		return m.OldSpecTokens(ctx)
	case catalogmachine.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case catalogmachine.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CatalogMachine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogMachineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case catalogmachine.FieldManufacturerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturerID(v)
		return nil
	case catalogmachine.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case catalogmachine.FieldMachineType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMachineType(v)
		return nil
	case catalogmachine.FieldSpecTokens:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecTokens(v)
		return nil
	case catalogmachine.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case catalogmachine.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogMachine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CatalogMachineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CatalogMachineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogMachineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CatalogMachine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CatalogMachineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(catalogmachine.FieldMachineType) {
		fields = append(fields, catalogmachine.FieldMachineType)
	}
	if m.FieldCleared(catalogmachine.FieldSpecTokens) {
		fields = append(fields, catalogmachine.FieldSpecTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CatalogMachineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CatalogMachineMutation) ClearField(name string) error {
	switch name {
	case catalogmachine.FieldMachineType:
		m.ClearMachineType()
		return nil
	case catalogmachine.FieldSpecTokens:
		m.ClearSpecTokens()
		return nil
	}
	return fmt.Errorf("unknown CatalogMachine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CatalogMachineMutation) ResetField(name string) error {
	switch name {
	case catalogmachine.FieldManufacturerID:
		m.ResetManufacturerID()
		return nil
	case catalogmachine.FieldName:
		m.ResetName()
		return nil
	case catalogmachine.FieldMachineType:
		m.ResetMachineType()
		return nil
	case catalogmachine.FieldSpecTokens:
		m.ResetSpecTokens()
		return nil
	case catalogmachine.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case catalogmachine.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CatalogMachine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CatalogMachineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.manufacturer != nil {
		edges = append(edges, catalogmachine.EdgeManufacturer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CatalogMachineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case catalogmachine.EdgeManufacturer:
		if id := m.manufacturer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CatalogMachineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CatalogMachineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CatalogMachineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmanufacturer {
		edges = append(edges, catalogmachine.EdgeManufacturer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CatalogMachineMutation) EdgeCleared(name string) bool {
	switch name {
	case catalogmachine.EdgeManufacturer:
		return m.clearedmanufacturer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CatalogMachineMutation) ClearEdge(name string) error {
	switch name {
	case catalogmachine.EdgeManufacturer:
		m.ClearManufacturer()
		return nil
	}
	return fmt.Errorf("unknown CatalogMachine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CatalogMachineMutation) ResetEdge(name string) error {
	switch name {
	case catalogmachine.EdgeManufacturer:
		m.ResetManufacturer()
		return nil
	}
	return fmt.Errorf("unknown CatalogMachine edge %s", name)
}

// DiscoveredURLMutation represents an operation that mutates the DiscoveredURL nodes in the graph.
type DiscoveredURLMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	url                 *string
	category            *string
	status              *string
	discovered_at       *time.Time
	scraped_at          *time.Time
	error_message       *string
	scraped_fields      *map[string]interface{}
	duplicate_status    *string
	existing_machine_id *uuid.UUID
	similarity_score    *float64
	addsimilarity_score *float64
	duplicate_reason    *string
	checked_at          *time.Time
	check_started_at    *time.Time
	ml_classification   *string
	ml_confidence       *float64
	addml_confidence    *float64
	ml_reason           *string
	machine_type        *string
	should_auto_skip    *bool
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	manufacturer        *uuid.UUID
	clearedmanufacturer bool
	done                bool
	oldValue            func(context.Context) (*DiscoveredURL, error)
	predicates          []predicate.DiscoveredURL
}

var _ ent.Mutation = (*DiscoveredURLMutation)(nil)

// discoveredurlOption allows management of the mutation configuration using functional options.
type discoveredurlOption func(*DiscoveredURLMutation)

// newDiscoveredURLMutation creates new mutation for the DiscoveredURL entity.
func newDiscoveredURLMutation(c config, op Op, opts ...discoveredurlOption) *DiscoveredURLMutation {
	m := &DiscoveredURLMutation{
		config:        c,
		op:            op,
		typ:           TypeDiscoveredURL,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiscoveredURLID sets the ID field of the mutation.
func withDiscoveredURLID(id uuid.UUID) discoveredurlOption {
	return func(m *DiscoveredURLMutation) {
		var (
			err   error
			once  sync.Once
			value *DiscoveredURL
		)
		m.oldValue = func(ctx context.Context) (*DiscoveredURL, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DiscoveredURL.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiscoveredURL sets the old DiscoveredURL of the mutation.
func withDiscoveredURL(node *DiscoveredURL) discoveredurlOption {
	return func(m *DiscoveredURLMutation) {
		m.oldValue = func(context.Context) (*DiscoveredURL, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiscoveredURLMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiscoveredURLMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DiscoveredURL entities.
func (m *DiscoveredURLMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiscoveredURLMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiscoveredURLMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DiscoveredURL.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetManufacturerID sets the "manufacturer_id" field.
func (m *DiscoveredURLMutation) SetManufacturerID(u uuid.UUID) {
	m.manufacturer = &u
}

// ManufacturerID returns the value of the "manufacturer_id" field in the mutation.
func (m *DiscoveredURLMutation) ManufacturerID() (r uuid.UUID, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturerID returns the old "manufacturer_id" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldManufacturerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturerID: %w", err)
	}
	return oldValue.ManufacturerID, nil
}

// ResetManufacturerID resets all changes to the "manufacturer_id" field.
func (m *DiscoveredURLMutation) ResetManufacturerID() {
	m.manufacturer = nil
}

// SetURL sets the "url" field.
func (m *DiscoveredURLMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *DiscoveredURLMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *DiscoveredURLMutation) ResetURL() {
	m.url = nil
}

// SetCategory sets the "category" field.
func (m *DiscoveredURLMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DiscoveredURLMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *DiscoveredURLMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[discoveredurl.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *DiscoveredURLMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *DiscoveredURLMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, discoveredurl.FieldCategory)
}

// SetStatus sets the "status" field.
func (m *DiscoveredURLMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DiscoveredURLMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DiscoveredURLMutation) ResetStatus() {
	m.status = nil
}

// SetDiscoveredAt sets the "discovered_at" field.
func (m *DiscoveredURLMutation) SetDiscoveredAt(t time.Time) {
	m.discovered_at = &t
}

// DiscoveredAt returns the value of the "discovered_at" field in the mutation.
func (m *DiscoveredURLMutation) DiscoveredAt() (r time.Time, exists bool) {
	v := m.discovered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveredAt returns the old "discovered_at" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldDiscoveredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveredAt: %w", err)
	}
	return oldValue.DiscoveredAt, nil
}

// ResetDiscoveredAt resets all changes to the "discovered_at" field.
func (m *DiscoveredURLMutation) ResetDiscoveredAt() {
	m.discovered_at = nil
}

// SetScrapedAt sets the "scraped_at" field.
func (m *DiscoveredURLMutation) SetScrapedAt(t time.Time) {
	m.scraped_at = &t
}

// ScrapedAt returns the value of the "scraped_at" field in the mutation.
func (m *DiscoveredURLMutation) ScrapedAt() (r time.Time, exists bool) {
	v := m.scraped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScrapedAt returns the old "scraped_at" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldScrapedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrapedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrapedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrapedAt: %w", err)
	}
	return oldValue.ScrapedAt, nil
}

// ClearScrapedAt clears the value of the "scraped_at" field.
func (m *DiscoveredURLMutation) ClearScrapedAt() {
	m.scraped_at = nil
	m.clearedFields[discoveredurl.FieldScrapedAt] = struct{}{}
}

// ScrapedAtCleared returns if the "scraped_at" field was cleared in this mutation.
func (m *DiscoveredURLMutation) ScrapedAtCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldScrapedAt]
	return ok
}

// ResetScrapedAt resets all changes to the "scraped_at" field.
func (m *DiscoveredURLMutation) ResetScrapedAt() {
	m.scraped_at = nil
	delete(m.clearedFields, discoveredurl.FieldScrapedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *DiscoveredURLMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DiscoveredURLMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DiscoveredURLMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[discoveredurl.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DiscoveredURLMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DiscoveredURLMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, discoveredurl.FieldErrorMessage)
}

// SetScrapedFields sets the "scraped_fields" field.
func (m *DiscoveredURLMutation) SetScrapedFields(value map[string]interface{}) {
	m.scraped_fields = &value
}

// ScrapedFields returns the value of the "scraped_fields" field in the mutation.
func (m *DiscoveredURLMutation) ScrapedFields() (r map[string]interface{}, exists bool) {
	v := m.scraped_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldScrapedFields returns the old "scraped_fields" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldScrapedFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrapedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrapedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrapedFields: %w", err)
	}
	return oldValue.ScrapedFields, nil
}

// ClearScrapedFields clears the value of the "scraped_fields" field.
func (m *DiscoveredURLMutation) ClearScrapedFields() {
	m.scraped_fields = nil
	m.clearedFields[discoveredurl.FieldScrapedFields] = struct{}{}
}

// ScrapedFieldsCleared returns if the "scraped_fields" field was cleared in this mutation.
func (m *DiscoveredURLMutation) ScrapedFieldsCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldScrapedFields]
	return ok
}

// ResetScrapedFields resets all changes to the "scraped_fields" field.
func (m *DiscoveredURLMutation) ResetScrapedFields() {
	m.scraped_fields = nil
	delete(m.clearedFields, discoveredurl.FieldScrapedFields)
}

// SetDuplicateStatus sets the "duplicate_status" field.
func (m *DiscoveredURLMutation) SetDuplicateStatus(s string) {
	m.duplicate_status = &s
}

// DuplicateStatus returns the value of the "duplicate_status" field in the mutation.
func (m *DiscoveredURLMutation) DuplicateStatus() (r string, exists bool) {
	v := m.duplicate_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateStatus returns the old "duplicate_status" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldDuplicateStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateStatus: %w", err)
	}
	return oldValue.DuplicateStatus, nil
}

// ResetDuplicateStatus resets all changes to the "duplicate_status" field.
func (m *DiscoveredURLMutation) ResetDuplicateStatus() {
	m.duplicate_status = nil
}

// SetExistingMachineID sets the "existing_machine_id" field.
func (m *DiscoveredURLMutation) SetExistingMachineID(u uuid.UUID) {
	m.existing_machine_id = &u
}

// ExistingMachineID returns the value of the "existing_machine_id" field in the mutation.
func (m *DiscoveredURLMutation) ExistingMachineID() (r uuid.UUID, exists bool) {
	v := m.existing_machine_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExistingMachineID returns the old "existing_machine_id" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldExistingMachineID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExistingMachineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExistingMachineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExistingMachineID: %w", err)
	}
	return oldValue.ExistingMachineID, nil
}

// ClearExistingMachineID clears the value of the "existing_machine_id" field.
func (m *DiscoveredURLMutation) ClearExistingMachineID() {
	m.existing_machine_id = nil
	m.clearedFields[discoveredurl.FieldExistingMachineID] = struct{}{}
}

// ExistingMachineIDCleared returns if the "existing_machine_id" field was cleared in this mutation.
func (m *DiscoveredURLMutation) ExistingMachineIDCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldExistingMachineID]
	return ok
}

// ResetExistingMachineID resets all changes to the "existing_machine_id" field.
func (m *DiscoveredURLMutation) ResetExistingMachineID() {
	m.existing_machine_id = nil
	delete(m.clearedFields, discoveredurl.FieldExistingMachineID)
}

// SetSimilarityScore sets the "similarity_score" field.
func (m *DiscoveredURLMutation) SetSimilarityScore(f float64) {
	m.similarity_score = &f
	m.addsimilarity_score = nil
}

// SimilarityScore returns the value of the "similarity_score" field in the mutation.
func (m *DiscoveredURLMutation) SimilarityScore() (r float64, exists bool) {
	v := m.similarity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarityScore returns the old "similarity_score" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldSimilarityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarityScore: %w", err)
	}
	return oldValue.SimilarityScore, nil
}

// AddSimilarityScore adds f to the "similarity_score" field.
func (m *DiscoveredURLMutation) AddSimilarityScore(f float64) {
	if m.addsimilarity_score != nil {
		*m.addsimilarity_score += f
	} else {
		m.addsimilarity_score = &f
	}
}

// AddedSimilarityScore returns the value that was added to the "similarity_score" field in this mutation.
func (m *DiscoveredURLMutation) AddedSimilarityScore() (r float64, exists bool) {
	v := m.addsimilarity_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSimilarityScore clears the value of the "similarity_score" field.
func (m *DiscoveredURLMutation) ClearSimilarityScore() {
	m.similarity_score = nil
	m.addsimilarity_score = nil
	m.clearedFields[discoveredurl.FieldSimilarityScore] = struct{}{}
}

// SimilarityScoreCleared returns if the "similarity_score" field was cleared in this mutation.
func (m *DiscoveredURLMutation) SimilarityScoreCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldSimilarityScore]
	return ok
}

// ResetSimilarityScore resets all changes to the "similarity_score" field.
func (m *DiscoveredURLMutation) ResetSimilarityScore() {
	m.similarity_score = nil
	m.addsimilarity_score = nil
	delete(m.clearedFields, discoveredurl.FieldSimilarityScore)
}

// SetDuplicateReason sets the "duplicate_reason" field.
func (m *DiscoveredURLMutation) SetDuplicateReason(s string) {
	m.duplicate_reason = &s
}

// DuplicateReason returns the value of the "duplicate_reason" field in the mutation.
func (m *DiscoveredURLMutation) DuplicateReason() (r string, exists bool) {
	v := m.duplicate_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateReason returns the old "duplicate_reason" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldDuplicateReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateReason: %w", err)
	}
	return oldValue.DuplicateReason, nil
}

// ClearDuplicateReason clears the value of the "duplicate_reason" field.
func (m *DiscoveredURLMutation) ClearDuplicateReason() {
	m.duplicate_reason = nil
	m.clearedFields[discoveredurl.FieldDuplicateReason] = struct{}{}
}

// DuplicateReasonCleared returns if the "duplicate_reason" field was cleared in this mutation.
func (m *DiscoveredURLMutation) DuplicateReasonCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldDuplicateReason]
	return ok
}

// ResetDuplicateReason resets all changes to the "duplicate_reason" field.
func (m *DiscoveredURLMutation) ResetDuplicateReason() {
	m.duplicate_reason = nil
	delete(m.clearedFields, discoveredurl.FieldDuplicateReason)
}

// SetCheckedAt sets the "checked_at" field.
func (m *DiscoveredURLMutation) SetCheckedAt(t time.Time) {
	m.checked_at = &t
}

// CheckedAt returns the value of the "checked_at" field in the mutation.
func (m *DiscoveredURLMutation) CheckedAt() (r time.Time, exists bool) {
	v := m.checked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedAt returns the old "checked_at" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldCheckedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedAt: %w", err)
	}
	return oldValue.CheckedAt, nil
}

// ClearCheckedAt clears the value of the "checked_at" field.
func (m *DiscoveredURLMutation) ClearCheckedAt() {
	m.checked_at = nil
	m.clearedFields[discoveredurl.FieldCheckedAt] = struct{}{}
}

// CheckedAtCleared returns if the "checked_at" field was cleared in this mutation.
func (m *DiscoveredURLMutation) CheckedAtCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldCheckedAt]
	return ok
}

// ResetCheckedAt resets all changes to the "checked_at" field.
func (m *DiscoveredURLMutation) ResetCheckedAt() {
	m.checked_at = nil
	delete(m.clearedFields, discoveredurl.FieldCheckedAt)
}

// SetCheckStartedAt sets the "check_started_at" field.
func (m *DiscoveredURLMutation) SetCheckStartedAt(t time.Time) {
	m.check_started_at = &t
}

// CheckStartedAt returns the value of the "check_started_at" field in the mutation.
func (m *DiscoveredURLMutation) CheckStartedAt() (r time.Time, exists bool) {
	v := m.check_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckStartedAt returns the old "check_started_at" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldCheckStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckStartedAt: %w", err)
	}
	return oldValue.CheckStartedAt, nil
}

// ClearCheckStartedAt clears the value of the "check_started_at" field.
func (m *DiscoveredURLMutation) ClearCheckStartedAt() {
	m.check_started_at = nil
	m.clearedFields[discoveredurl.FieldCheckStartedAt] = struct{}{}
}

// CheckStartedAtCleared returns if the "check_started_at" field was cleared in this mutation.
func (m *DiscoveredURLMutation) CheckStartedAtCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldCheckStartedAt]
	return ok
}

// ResetCheckStartedAt resets all changes to the "check_started_at" field.
func (m *DiscoveredURLMutation) ResetCheckStartedAt() {
	m.check_started_at = nil
	delete(m.clearedFields, discoveredurl.FieldCheckStartedAt)
}

// SetMlClassification sets the "ml_classification" field.
func (m *DiscoveredURLMutation) SetMlClassification(s string) {
	m.ml_classification = &s
}

// MlClassification returns the value of the "ml_classification" field in the mutation.
func (m *DiscoveredURLMutation) MlClassification() (r string, exists bool) {
	v := m.ml_classification
	if v == nil {
		return
	}
	return *v, true
}

// OldMlClassification returns the old "ml_classification" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldMlClassification(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlClassification: %w", err)
	}
	return oldValue.MlClassification, nil
}

// ClearMlClassification clears the value of the "ml_classification" field.
func (m *DiscoveredURLMutation) ClearMlClassification() {
	m.ml_classification = nil
	m.clearedFields[discoveredurl.FieldMlClassification] = struct{}{}
}

// MlClassificationCleared returns if the "ml_classification" field was cleared in this mutation.
func (m *DiscoveredURLMutation) MlClassificationCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldMlClassification]
	return ok
}

// ResetMlClassification resets all changes to the "ml_classification" field.
func (m *DiscoveredURLMutation) ResetMlClassification() {
	m.ml_classification = nil
	delete(m.clearedFields, discoveredurl.FieldMlClassification)
}

// SetMlConfidence sets the "ml_confidence" field.
func (m *DiscoveredURLMutation) SetMlConfidence(f float64) {
	m.ml_confidence = &f
	m.addml_confidence = nil
}

// MlConfidence returns the value of the "ml_confidence" field in the mutation.
func (m *DiscoveredURLMutation) MlConfidence() (r float64, exists bool) {
	v := m.ml_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMlConfidence returns the old "ml_confidence" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldMlConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlConfidence: %w", err)
	}
	return oldValue.MlConfidence, nil
}

// AddMlConfidence adds f to the "ml_confidence" field.
func (m *DiscoveredURLMutation) AddMlConfidence(f float64) {
	if m.addml_confidence != nil {
		*m.addml_confidence += f
	} else {
		m.addml_confidence = &f
	}
}

// AddedMlConfidence returns the value that was added to the "ml_confidence" field in this mutation.
func (m *DiscoveredURLMutation) AddedMlConfidence() (r float64, exists bool) {
	v := m.addml_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearMlConfidence clears the value of the "ml_confidence" field.
func (m *DiscoveredURLMutation) ClearMlConfidence() {
	m.ml_confidence = nil
	m.addml_confidence = nil
	m.clearedFields[discoveredurl.FieldMlConfidence] = struct{}{}
}

// MlConfidenceCleared returns if the "ml_confidence" field was cleared in this mutation.
func (m *DiscoveredURLMutation) MlConfidenceCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldMlConfidence]
	return ok
}

// ResetMlConfidence resets all changes to the "ml_confidence" field.
func (m *DiscoveredURLMutation) ResetMlConfidence() {
	m.ml_confidence = nil
	m.addml_confidence = nil
	delete(m.clearedFields, discoveredurl.FieldMlConfidence)
}

// SetMlReason sets the "ml_reason" field.
func (m *DiscoveredURLMutation) SetMlReason(s string) {
	m.ml_reason = &s
}

// MlReason returns the value of the "ml_reason" field in the mutation.
func (m *DiscoveredURLMutation) MlReason() (r string, exists bool) {
	v := m.ml_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldMlReason returns the old "ml_reason" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldMlReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlReason: %w", err)
	}
	return oldValue.MlReason, nil
}

// ClearMlReason clears the value of the "ml_reason" field.
func (m *DiscoveredURLMutation) ClearMlReason() {
	m.ml_reason = nil
	m.clearedFields[discoveredurl.FieldMlReason] = struct{}{}
}

// MlReasonCleared returns if the "ml_reason" field was cleared in this mutation.
func (m *DiscoveredURLMutation) MlReasonCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldMlReason]
	return ok
}

// ResetMlReason resets all changes to the "ml_reason" field.
func (m *DiscoveredURLMutation) ResetMlReason() {
	m.ml_reason = nil
	delete(m.clearedFields, discoveredurl.FieldMlReason)
}

// SetMachineType sets the "machine_type" field.
func (m *DiscoveredURLMutation) SetMachineType(s string) {
	m.machine_type = &s
}

// MachineType returns the value of the "machine_type" field in the mutation.
func (m *DiscoveredURLMutation) MachineType() (r string, exists bool) {
	v := m.machine_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMachineType returns the old "machine_type" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldMachineType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMachineType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMachineType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMachineType: %w", err)
	}
	return oldValue.MachineType, nil
}

// ClearMachineType clears the value of the "machine_type" field.
func (m *DiscoveredURLMutation) ClearMachineType() {
	m.machine_type = nil
	m.clearedFields[discoveredurl.FieldMachineType] = struct{}{}
}

// MachineTypeCleared returns if the "machine_type" field was cleared in this mutation.
func (m *DiscoveredURLMutation) MachineTypeCleared() bool {
	_, ok := m.clearedFields[discoveredurl.FieldMachineType]
	return ok
}

// ResetMachineType resets all changes to the "machine_type" field.
func (m *DiscoveredURLMutation) ResetMachineType() {
	m.machine_type = nil
	delete(m.clearedFields, discoveredurl.FieldMachineType)
}

// SetShouldAutoSkip sets the "should_auto_skip" field.
func (m *DiscoveredURLMutation) SetShouldAutoSkip(b bool) {
	m.should_auto_skip = &b
}

// ShouldAutoSkip returns the value of the "should_auto_skip" field in the mutation.
func (m *DiscoveredURLMutation) ShouldAutoSkip() (r bool, exists bool) {
	v := m.should_auto_skip
	if v == nil {
		return
	}
	return *v, true
}

// OldShouldAutoSkip returns the old "should_auto_skip" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldShouldAutoSkip(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShouldAutoSkip is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShouldAutoSkip requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShouldAutoSkip: %w", err)
	}
	return oldValue.ShouldAutoSkip, nil
}

// ResetShouldAutoSkip resets all changes to the "should_auto_skip" field.
func (m *DiscoveredURLMutation) ResetShouldAutoSkip() {
	m.should_auto_skip = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DiscoveredURLMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DiscoveredURLMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DiscoveredURL entity.
// If the DiscoveredURL object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscoveredURLMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DiscoveredURLMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearManufacturer clears the "manufacturer" edge to the Manufacturer entity.
func (m *DiscoveredURLMutation) ClearManufacturer() {
	m.clearedmanufacturer = true
	m.clearedFields[discoveredurl.FieldManufacturerID] = struct{}{}
}

// ManufacturerCleared reports if the "manufacturer" edge to the Manufacturer entity was cleared.
func (m *DiscoveredURLMutation) ManufacturerCleared() bool {
	return m.clearedmanufacturer
}

// ManufacturerIDs returns the "manufacturer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ManufacturerID instead. It exists only for internal usage by the builders.
func (m *DiscoveredURLMutation) ManufacturerIDs() (ids []uuid.UUID) {
	if id := m.manufacturer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetManufacturer resets all changes to the "manufacturer" edge.
func (m *DiscoveredURLMutation) ResetManufacturer() {
	m.manufacturer = nil
	m.clearedmanufacturer = false
}

// Where appends a list predicates to the DiscoveredURLMutation builder.
func (m *DiscoveredURLMutation) Where(ps ...predicate.DiscoveredURL) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiscoveredURLMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiscoveredURLMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DiscoveredURL, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiscoveredURLMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiscoveredURLMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DiscoveredURL).
func (m *DiscoveredURLMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiscoveredURLMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.manufacturer != nil {
		fields = append(fields, discoveredurl.FieldManufacturerID)
	}
	if m.url != nil {
		fields = append(fields, discoveredurl.FieldURL)
	}
	if m.category != nil {
		fields = append(fields, discoveredurl.FieldCategory)
	}
	if m.status != nil {
		fields = append(fields, discoveredurl.FieldStatus)
	}
	if m.discovered_at != nil {
		fields = append(fields, discoveredurl.FieldDiscoveredAt)
	}
	if m.scraped_at != nil {
		fields = append(fields, discoveredurl.FieldScrapedAt)
	}
	if m.error_message != nil {
		fields = append(fields, discoveredurl.FieldErrorMessage)
	}
	if m.scraped_fields != nil {
		fields = append(fields, discoveredurl.FieldScrapedFields)
	}
	if m.duplicate_status != nil {
		fields = append(fields, discoveredurl.FieldDuplicateStatus)
	}
	if m.existing_machine_id != nil {
		fields = append(fields, discoveredurl.FieldExistingMachineID)
	}
	if m.similarity_score != nil {
		fields = append(fields, discoveredurl.FieldSimilarityScore)
	}
	if m.duplicate_reason != nil {
		fields = append(fields, discoveredurl.FieldDuplicateReason)
	}
	if m.checked_at != nil {
		fields = append(fields, discoveredurl.FieldCheckedAt)
	}
	if m.check_started_at != nil {
		fields = append(fields, discoveredurl.FieldCheckStartedAt)
	}
	if m.ml_classification != nil {
		fields = append(fields, discoveredurl.FieldMlClassification)
	}
	if m.ml_confidence != nil {
		fields = append(fields, discoveredurl.FieldMlConfidence)
	}
	if m.ml_reason != nil {
		fields = append(fields, discoveredurl.FieldMlReason)
	}
	if m.machine_type != nil {
		fields = append(fields, discoveredurl.FieldMachineType)
	}
	if m.should_auto_skip != nil {
		fields = append(fields, discoveredurl.FieldShouldAutoSkip)
	}
	if m.updated_at != nil {
		fields = append(fields, discoveredurl.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiscoveredURLMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case discoveredurl.FieldManufacturerID:
		return m.ManufacturerID()
	case discoveredurl.FieldURL:
		return m.URL()
	case discoveredurl.FieldCategory:
		return m.Category()
	case discoveredurl.FieldStatus:
		return m.Status()
	case discoveredurl.FieldDiscoveredAt:
		return m.DiscoveredAt()
	case discoveredurl.FieldScrapedAt:
		return m.ScrapedAt()
	case discoveredurl.FieldErrorMessage:
		return m.ErrorMessage()
	case discoveredurl.FieldScrapedFields:
		return m.ScrapedFields()
	case discoveredurl.FieldDuplicateStatus:
		return m.DuplicateStatus()
	case discoveredurl.FieldExistingMachineID:
		return m.ExistingMachineID()
	case discoveredurl.FieldSimilarityScore:
		return m.SimilarityScore()
	case discoveredurl.FieldDuplicateReason:
		return m.DuplicateReason()
	case discoveredurl.FieldCheckedAt:
		return m.CheckedAt()
	case discoveredurl.FieldCheckStartedAt:
		return m.CheckStartedAt()
	case discoveredurl.FieldMlClassification:
		return m.MlClassification()
	case discoveredurl.FieldMlConfidence:
		return m.MlConfidence()
	case discoveredurl.FieldMlReason:
		return m.MlReason()
	case discoveredurl.FieldMachineType:
		return m.MachineType()
	case discoveredurl.FieldShouldAutoSkip:
		return m.ShouldAutoSkip()
	case discoveredurl.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiscoveredURLMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case discoveredurl.FieldManufacturerID:
		return m.OldManufacturerID(ctx)
	case discoveredurl.FieldURL:
		return m.OldURL(ctx)
	case discoveredurl.FieldCategory:
		return m.OldCategory(ctx)
	case discoveredurl.FieldStatus:
		return m.OldStatus(ctx)
	case discoveredurl.FieldDiscoveredAt:
		return m.OldDiscoveredAt(ctx)
	case discoveredurl.FieldScrapedAt:
		return m.OldScrapedAt(ctx)
	case discoveredurl.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case discoveredurl.FieldScrapedFields:
		return m.OldScrapedFields(ctx)
	case discoveredurl.FieldDuplicateStatus:
		return m.OldDuplicateStatus(ctx)
	case discoveredurl.FieldExistingMachineID:
		return m.OldExistingMachineID(ctx)
	case discoveredurl.FieldSimilarityScore:
		return m.OldSimilarityScore(ctx)
	case discoveredurl.FieldDuplicateReason:
		return m.OldDuplicateReason(ctx)
	case discoveredurl.FieldCheckedAt:
		return m.OldCheckedAt(ctx)
	case discoveredurl.FieldCheckStartedAt:
		return m.OldCheckStartedAt(ctx)
	case discoveredurl.FieldMlClassification:
		return m.OldMlClassification(ctx)
	case discoveredurl.FieldMlConfidence:
		return m.OldMlConfidence(ctx)
	case discoveredurl.FieldMlReason:
		return m.OldMlReason(ctx)
	case discoveredurl.FieldMachineType:
		return m.OldMachineType(ctx)
	case discoveredurl.FieldShouldAutoSkip:
		return m.OldShouldAutoSkip(ctx)
	case discoveredurl.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DiscoveredURL field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscoveredURLMutation) SetField(name string, value ent.Value) error {
	switch name {
	case discoveredurl.FieldManufacturerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturerID(v)
		return nil
	case discoveredurl.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case discoveredurl.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case discoveredurl.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case discoveredurl.FieldDiscoveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveredAt(v)
		return nil
	case discoveredurl.FieldScrapedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrapedAt(v)
		return nil
	case discoveredurl.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case discoveredurl.FieldScrapedFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrapedFields(v)
		return nil
	case discoveredurl.FieldDuplicateStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateStatus(v)
		return nil
	case discoveredurl.FieldExistingMachineID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExistingMachineID(v)
		return nil
	case discoveredurl.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarityScore(v)
		return nil
	case discoveredurl.FieldDuplicateReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateReason(v)
		return nil
	case discoveredurl.FieldCheckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedAt(v)
		return nil
	case discoveredurl.FieldCheckStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckStartedAt(v)
		return nil
	case discoveredurl.FieldMlClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlClassification(v)
		return nil
	case discoveredurl.FieldMlConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlConfidence(v)
		return nil
	case discoveredurl.FieldMlReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlReason(v)
		return nil
	case discoveredurl.FieldMachineType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMachineType(v)
		return nil
	case discoveredurl.FieldShouldAutoSkip:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShouldAutoSkip(v)
		return nil
	case discoveredurl.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DiscoveredURL field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiscoveredURLMutation) AddedFields() []string {
	var fields []string
	if m.addsimilarity_score != nil {
		fields = append(fields, discoveredurl.FieldSimilarityScore)
	}
	if m.addml_confidence != nil {
		fields = append(fields, discoveredurl.FieldMlConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiscoveredURLMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case discoveredurl.FieldSimilarityScore:
		return m.AddedSimilarityScore()
	case discoveredurl.FieldMlConfidence:
		return m.AddedMlConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscoveredURLMutation) AddField(name string, value ent.Value) error {
	switch name {
	case discoveredurl.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarityScore(v)
		return nil
	case discoveredurl.FieldMlConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMlConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DiscoveredURL numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiscoveredURLMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(discoveredurl.FieldCategory) {
		fields = append(fields, discoveredurl.FieldCategory)
	}
	if m.FieldCleared(discoveredurl.FieldScrapedAt) {
		fields = append(fields, discoveredurl.FieldScrapedAt)
	}
	if m.FieldCleared(discoveredurl.FieldErrorMessage) {
		fields = append(fields, discoveredurl.FieldErrorMessage)
	}
	if m.FieldCleared(discoveredurl.FieldScrapedFields) {
		fields = append(fields, discoveredurl.FieldScrapedFields)
	}
	if m.FieldCleared(discoveredurl.FieldExistingMachineID) {
		fields = append(fields, discoveredurl.FieldExistingMachineID)
	}
	if m.FieldCleared(discoveredurl.FieldSimilarityScore) {
		fields = append(fields, discoveredurl.FieldSimilarityScore)
	}
	if m.FieldCleared(discoveredurl.FieldDuplicateReason) {
		fields = append(fields, discoveredurl.FieldDuplicateReason)
	}
	if m.FieldCleared(discoveredurl.FieldCheckedAt) {
		fields = append(fields, discoveredurl.FieldCheckedAt)
	}
	if m.FieldCleared(discoveredurl.FieldCheckStartedAt) {
		fields = append(fields, discoveredurl.FieldCheckStartedAt)
	}
	if m.FieldCleared(discoveredurl.FieldMlClassification) {
		fields = append(fields, discoveredurl.FieldMlClassification)
	}
	if m.FieldCleared(discoveredurl.FieldMlConfidence) {
		fields = append(fields, discoveredurl.FieldMlConfidence)
	}
	if m.FieldCleared(discoveredurl.FieldMlReason) {
		fields = append(fields, discoveredurl.FieldMlReason)
	}
	if m.FieldCleared(discoveredurl.FieldMachineType) {
		fields = append(fields, discoveredurl.FieldMachineType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiscoveredURLMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiscoveredURLMutation) ClearField(name string) error {
	switch name {
	case discoveredurl.FieldCategory:
		m.ClearCategory()
		return nil
	case discoveredurl.FieldScrapedAt:
		m.ClearScrapedAt()
		return nil
	case discoveredurl.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case discoveredurl.FieldScrapedFields:
		m.ClearScrapedFields()
		return nil
	case discoveredurl.FieldExistingMachineID:
		m.ClearExistingMachineID()
		return nil
	case discoveredurl.FieldSimilarityScore:
		m.ClearSimilarityScore()
		return nil
	case discoveredurl.FieldDuplicateReason:
		m.ClearDuplicateReason()
		return nil
	case discoveredurl.FieldCheckedAt:
		m.ClearCheckedAt()
		return nil
	case discoveredurl.FieldCheckStartedAt:
		m.ClearCheckStartedAt()
		return nil
	case discoveredurl.FieldMlClassification:
		m.ClearMlClassification()
		return nil
	case discoveredurl.FieldMlConfidence:
		m.ClearMlConfidence()
		return nil
	case discoveredurl.FieldMlReason:
		m.ClearMlReason()
		return nil
	case discoveredurl.FieldMachineType:
		m.ClearMachineType()
		return nil
	}
	return fmt.Errorf("unknown DiscoveredURL nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiscoveredURLMutation) ResetField(name string) error {
	switch name {
	case discoveredurl.FieldManufacturerID:
		m.ResetManufacturerID()
		return nil
	case discoveredurl.FieldURL:
		m.ResetURL()
		return nil
	case discoveredurl.FieldCategory:
		m.ResetCategory()
		return nil
	case discoveredurl.FieldStatus:
		m.ResetStatus()
		return nil
	case discoveredurl.FieldDiscoveredAt:
		m.ResetDiscoveredAt()
		return nil
	case discoveredurl.FieldScrapedAt:
		m.ResetScrapedAt()
		return nil
	case discoveredurl.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case discoveredurl.FieldScrapedFields:
		m.ResetScrapedFields()
		return nil
	case discoveredurl.FieldDuplicateStatus:
		m.ResetDuplicateStatus()
		return nil
	case discoveredurl.FieldExistingMachineID:
		m.ResetExistingMachineID()
		return nil
	case discoveredurl.FieldSimilarityScore:
		m.ResetSimilarityScore()
		return nil
	case discoveredurl.FieldDuplicateReason:
		m.ResetDuplicateReason()
		return nil
	case discoveredurl.FieldCheckedAt:
		m.ResetCheckedAt()
		return nil
	case discoveredurl.FieldCheckStartedAt:
		m.ResetCheckStartedAt()
		return nil
	case discoveredurl.FieldMlClassification:
		m.ResetMlClassification()
		return nil
	case discoveredurl.FieldMlConfidence:
		m.ResetMlConfidence()
		return nil
	case discoveredurl.FieldMlReason:
		m.ResetMlReason()
		return nil
	case discoveredurl.FieldMachineType:
		m.ResetMachineType()
		return nil
	case discoveredurl.FieldShouldAutoSkip:
		m.ResetShouldAutoSkip()
		return nil
	case discoveredurl.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DiscoveredURL field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiscoveredURLMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.manufacturer != nil {
		edges = append(edges, discoveredurl.EdgeManufacturer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiscoveredURLMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case discoveredurl.EdgeManufacturer:
		if id := m.manufacturer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiscoveredURLMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiscoveredURLMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiscoveredURLMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmanufacturer {
		edges = append(edges, discoveredurl.EdgeManufacturer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiscoveredURLMutation) EdgeCleared(name string) bool {
	switch name {
	case discoveredurl.EdgeManufacturer:
		return m.clearedmanufacturer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiscoveredURLMutation) ClearEdge(name string) error {
	switch name {
	case discoveredurl.EdgeManufacturer:
		m.ClearManufacturer()
		return nil
	}
	return fmt.Errorf("unknown DiscoveredURL unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiscoveredURLMutation) ResetEdge(name string) error {
	switch name {
	case discoveredurl.EdgeManufacturer:
		m.ResetManufacturer()
		return nil
	}
	return fmt.Errorf("unknown DiscoveredURL edge %s", name)
}

// ManufacturerMutation represents an operation that mutates the Manufacturer nodes in the graph.
type ManufacturerMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	website         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	urls            map[uuid.UUID]struct{}
	removedurls     map[uuid.UUID]struct{}
	clearedurls     bool
	machines        map[uuid.UUID]struct{}
	removedmachines map[uuid.UUID]struct{}
	clearedmachines bool
	done            bool
	oldValue        func(context.Context) (*Manufacturer, error)
	predicates      []predicate.Manufacturer
}

var _ ent.Mutation = (*ManufacturerMutation)(nil)

// manufacturerOption allows management of the mutation configuration using functional options.
type manufacturerOption func(*ManufacturerMutation)

// newManufacturerMutation creates new mutation for the Manufacturer entity.
func newManufacturerMutation(c config, op Op, opts ...manufacturerOption) *ManufacturerMutation {
	m := &ManufacturerMutation{
		config:        c,
		op:            op,
		typ:           TypeManufacturer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withManufacturerID sets the ID field of the mutation.
func withManufacturerID(id uuid.UUID) manufacturerOption {
	return func(m *ManufacturerMutation) {
		var (
			err   error
			once  sync.Once
			value *Manufacturer
		)
		m.oldValue = func(ctx context.Context) (*Manufacturer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Manufacturer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withManufacturer sets the old Manufacturer of the mutation.
func withManufacturer(node *Manufacturer) manufacturerOption {
	return func(m *ManufacturerMutation) {
		m.oldValue = func(context.Context) (*Manufacturer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ManufacturerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ManufacturerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Manufacturer entities.
func (m *ManufacturerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ManufacturerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ManufacturerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Manufacturer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ManufacturerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ManufacturerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Manufacturer entity.
// If the Manufacturer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ManufacturerMutation) ResetName() {
	m.name = nil
}

// SetWebsite sets the "website" field.
func (m *ManufacturerMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ManufacturerMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Manufacturer entity.
// If the Manufacturer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturerMutation) OldWebsite(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ManufacturerMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[manufacturer.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ManufacturerMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[manufacturer.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ManufacturerMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, manufacturer.FieldWebsite)
}

// SetCreatedAt sets the "created_at" field.
func (m *ManufacturerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ManufacturerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Manufacturer entity.
// If the Manufacturer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ManufacturerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ManufacturerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddURLIDs adds the "urls" edge to the DiscoveredURL entity by ids.
func (m *ManufacturerMutation) AddURLIDs(ids ...uuid.UUID) {
	if m.urls == nil {
		m.urls = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.urls[ids[i]] = struct{}{}
	}
}

// ClearUrls clears the "urls" edge to the DiscoveredURL entity.
func (m *ManufacturerMutation) ClearUrls() {
	m.clearedurls = true
}

// UrlsCleared reports if the "urls" edge to the DiscoveredURL entity was cleared.
func (m *ManufacturerMutation) UrlsCleared() bool {
	return m.clearedurls
}

// RemoveURLIDs removes the "urls" edge to the DiscoveredURL entity by IDs.
func (m *ManufacturerMutation) RemoveURLIDs(ids ...uuid.UUID) {
	if m.removedurls == nil {
		m.removedurls = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.urls, ids[i])
		m.removedurls[ids[i]] = struct{}{}
	}
}

// RemovedUrls returns the removed IDs of the "urls" edge to the DiscoveredURL entity.
func (m *ManufacturerMutation) RemovedUrlsIDs() (ids []uuid.UUID) {
	for id := range m.removedurls {
		ids = append(ids, id)
	}
	return
}

// UrlsIDs returns the "urls" edge IDs in the mutation.
func (m *ManufacturerMutation) UrlsIDs() (ids []uuid.UUID) {
	for id := range m.urls {
		ids = append(ids, id)
	}
	return
}

// ResetUrls resets all changes to the "urls" edge.
func (m *ManufacturerMutation) ResetUrls() {
	m.urls = nil
	m.clearedurls = false
	m.removedurls = nil
}

// AddMachineIDs adds the "machines" edge to the CatalogMachine entity by ids.
func (m *ManufacturerMutation) AddMachineIDs(ids ...uuid.UUID) {
	if m.machines == nil {
		m.machines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.machines[ids[i]] = struct{}{}
	}
}

// ClearMachines clears the "machines" edge to the CatalogMachine entity.
func (m *ManufacturerMutation) ClearMachines() {
	m.clearedmachines = true
}

// MachinesCleared reports if the "machines" edge to the CatalogMachine entity was cleared.
func (m *ManufacturerMutation) MachinesCleared() bool {
	return m.clearedmachines
}

// RemoveMachineIDs removes the "machines" edge to the CatalogMachine entity by IDs.
func (m *ManufacturerMutation) RemoveMachineIDs(ids ...uuid.UUID) {
	if m.removedmachines == nil {
		m.removedmachines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.machines, ids[i])
		m.removedmachines[ids[i]] = struct{}{}
	}
}

// RemovedMachines returns the removed IDs of the "machines" edge to the CatalogMachine entity.
func (m *ManufacturerMutation) RemovedMachinesIDs() (ids []uuid.UUID) {
	for id := range m.removedmachines {
		ids = append(ids, id)
	}
	return
}

// MachinesIDs returns the "machines" edge IDs in the mutation.
func (m *ManufacturerMutation) MachinesIDs() (ids []uuid.UUID) {
	for id := range m.machines {
		ids = append(ids, id)
	}
	return
}

// ResetMachines resets all changes to the "machines" edge.
func (m *ManufacturerMutation) ResetMachines() {
	m.machines = nil
	m.clearedmachines = false
	m.removedmachines = nil
}

// Where appends a list predicates to the ManufacturerMutation builder.
func (m *ManufacturerMutation) Where(ps ...predicate.Manufacturer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ManufacturerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ManufacturerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Manufacturer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ManufacturerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ManufacturerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Manufacturer).
func (m *ManufacturerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ManufacturerMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, manufacturer.FieldName)
	}
	if m.website != nil {
		fields = append(fields, manufacturer.FieldWebsite)
	}
	if m.created_at != nil {
		fields = append(fields, manufacturer.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ManufacturerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case manufacturer.FieldName:
		return m.Name()
	case manufacturer.FieldWebsite:
		return m.Website()
	case manufacturer.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ManufacturerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case manufacturer.FieldName:
		return m.OldName(ctx)
	case manufacturer.FieldWebsite:
		return m.OldWebsite(ctx)
	case manufacturer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Manufacturer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ManufacturerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case manufacturer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case manufacturer.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case manufacturer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Manufacturer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ManufacturerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ManufacturerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ManufacturerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Manufacturer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ManufacturerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(manufacturer.FieldWebsite) {
		fields = append(fields, manufacturer.FieldWebsite)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ManufacturerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ManufacturerMutation) ClearField(name string) error {
	switch name {
	case manufacturer.FieldWebsite:
		m.ClearWebsite()
		return nil
	}
	return fmt.Errorf("unknown Manufacturer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ManufacturerMutation) ResetField(name string) error {
	switch name {
	case manufacturer.FieldName:
		m.ResetName()
		return nil
	case manufacturer.FieldWebsite:
		m.ResetWebsite()
		return nil
	case manufacturer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Manufacturer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ManufacturerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.urls != nil {
		edges = append(edges, manufacturer.EdgeUrls)
	}
	if m.machines != nil {
		edges = append(edges, manufacturer.EdgeMachines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ManufacturerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case manufacturer.EdgeUrls:
		ids := make([]ent.Value, 0, len(m.urls))
		for id := range m.urls {
			ids = append(ids, id)
		}
		return ids
	case manufacturer.EdgeMachines:
		ids := make([]ent.Value, 0, len(m.machines))
		for id := range m.machines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ManufacturerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedurls != nil {
		edges = append(edges, manufacturer.EdgeUrls)
	}
	if m.removedmachines != nil {
		edges = append(edges, manufacturer.EdgeMachines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ManufacturerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case manufacturer.EdgeUrls:
		ids := make([]ent.Value, 0, len(m.removedurls))
		for id := range m.removedurls {
			ids = append(ids, id)
		}
		return ids
	case manufacturer.EdgeMachines:
		ids := make([]ent.Value, 0, len(m.removedmachines))
		for id := range m.removedmachines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ManufacturerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedurls {
		edges = append(edges, manufacturer.EdgeUrls)
	}
	if m.clearedmachines {
		edges = append(edges, manufacturer.EdgeMachines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ManufacturerMutation) EdgeCleared(name string) bool {
	switch name {
	case manufacturer.EdgeUrls:
		return m.clearedurls
	case manufacturer.EdgeMachines:
		return m.clearedmachines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ManufacturerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Manufacturer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ManufacturerMutation) ResetEdge(name string) error {
	switch name {
	case manufacturer.EdgeUrls:
		m.ResetUrls()
		return nil
	case manufacturer.EdgeMachines:
		m.ResetMachines()
		return nil
	}
	return fmt.Errorf("unknown Manufacturer edge %s", name)
}
