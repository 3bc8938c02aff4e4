// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/qingyu-admin/ent/predicate"
	"github.com/anzhiyu-c/qingyu-admin/ent/state"
	"github.com/google/uuid"
)

// StateUpdate is the builder for updating State entities.
type StateUpdate struct {
	config
	hooks    []Hook
	mutation *StateMutation
}

// Where appends a list predicates to the StateUpdate builder.
func (su *StateUpdate) Where(ps ...predicate.State) *StateUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetName sets the "name" field.
func (su *StateUpdate) SetName(s string) *StateUpdate {
	su.mutation.SetName(s)
	return su
}

// SetNillableName sets the "name" field if the given value is not nil.
func (su *StateUpdate) SetNillableName(s *string) *StateUpdate {
	if s != nil {
		su.SetName(*s)
	}
	return su
}

// SetAbbreviation sets the "abbreviation" field.
func (su *StateUpdate) SetAbbreviation(s string) *StateUpdate {
	su.mutation.SetAbbreviation(s)
	return su
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (su *StateUpdate) SetNillableAbbreviation(s *string) *StateUpdate {
	if s != nil {
		su.SetAbbreviation(*s)
	}
	return su
}

// SetConcurrencyStamp sets the "concurrency_stamp" field.
func (su *StateUpdate) SetConcurrencyStamp(u uuid.UUID) *StateUpdate {
	su.mutation.SetConcurrencyStamp(u)
	return su
}

// SetNillableConcurrencyStamp sets the "concurrency_stamp" field if the given value is not nil.
func (su *StateUpdate) SetNillableConcurrencyStamp(u *uuid.UUID) *StateUpdate {
	if u != nil {
		su.SetConcurrencyStamp(*u)
	}
	return su
}

// Mutation returns the StateMutation object of the builder.
func (su *StateUpdate) Mutation() *StateMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *StateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *StateUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *StateUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *StateUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *StateUpdate) check() error {
	if v, ok := su.mutation.Name(); ok {
		if err := state.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "State.name": %w`, err)}
		}
	}
	if v, ok := su.mutation.Abbreviation(); ok {
		if err := state.AbbreviationValidator(v); err != nil {
			return &ValidationError{Name: "abbreviation", err: fmt.Errorf(`ent: validator failed for field "State.abbreviation": %w`, err)}
		}
	}
	return nil
}

func (su *StateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(state.Table, state.Columns, sqlgraph.NewFieldSpec(state.FieldID, field.TypeUUID))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Name(); ok {
		_spec.SetField(state.FieldName, field.TypeString, value)
	}
	if value, ok := su.mutation.Abbreviation(); ok {
		_spec.SetField(state.FieldAbbreviation, field.TypeString, value)
	}
	if value, ok := su.mutation.ConcurrencyStamp(); ok {
		_spec.SetField(state.FieldConcurrencyStamp, field.TypeUUID, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{state.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// StateUpdateOne is the builder for updating a single State entity.
type StateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateMutation
}

// SetName sets the "name" field.
func (suo *StateUpdateOne) SetName(s string) *StateUpdateOne {
	suo.mutation.SetName(s)
	return suo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (suo *StateUpdateOne) SetNillableName(s *string) *StateUpdateOne {
	if s != nil {
		suo.SetName(*s)
	}
	return suo
}

// SetAbbreviation sets the "abbreviation" field.
func (suo *StateUpdateOne) SetAbbreviation(s string) *StateUpdateOne {
	suo.mutation.SetAbbreviation(s)
	return suo
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (suo *StateUpdateOne) SetNillableAbbreviation(s *string) *StateUpdateOne {
	if s != nil {
		suo.SetAbbreviation(*s)
	}
	return suo
}

// SetConcurrencyStamp sets the "concurrency_stamp" field.
func (suo *StateUpdateOne) SetConcurrencyStamp(u uuid.UUID) *StateUpdateOne {
	suo.mutation.SetConcurrencyStamp(u)
	return suo
}

// SetNillableConcurrencyStamp sets the "concurrency_stamp" field if the given value is not nil.
func (suo *StateUpdateOne) SetNillableConcurrencyStamp(u *uuid.UUID) *StateUpdateOne {
	if u != nil {
		suo.SetConcurrencyStamp(*u)
	}
	return suo
}

// Mutation returns the StateMutation object of the builder.
func (suo *StateUpdateOne) Mutation() *StateMutation {
	return suo.mutation
}

// Where appends a list predicates to the StateUpdate builder.
func (suo *StateUpdateOne) Where(ps ...predicate.State) *StateUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *StateUpdateOne) Select(field string, fields ...string) *StateUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated State entity.
func (suo *StateUpdateOne) Save(ctx context.Context) (*State, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *StateUpdateOne) SaveX(ctx context.Context) *State {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *StateUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *StateUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *StateUpdateOne) check() error {
	if v, ok := suo.mutation.Name(); ok {
		if err := state.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "State.name": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Abbreviation(); ok {
		if err := state.AbbreviationValidator(v); err != nil {
			return &ValidationError{Name: "abbreviation", err: fmt.Errorf(`ent: validator failed for field "State.abbreviation": %w`, err)}
		}
	}
	return nil
}

func (suo *StateUpdateOne) sqlSave(ctx context.Context) (_node *State, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(state.Table, state.Columns, sqlgraph.NewFieldSpec(state.FieldID, field.TypeUUID))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "State.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, state.FieldID)
		for _, f := range fields {
			if !state.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != state.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Name(); ok {
		_spec.SetField(state.FieldName, field.TypeString, value)
	}
	if value, ok := suo.mutation.Abbreviation(); ok {
		_spec.SetField(state.FieldAbbreviation, field.TypeString, value)
	}
	if value, ok := suo.mutation.ConcurrencyStamp(); ok {
		_spec.SetField(state.FieldConcurrencyStamp, field.TypeUUID, value)
	}
	_node = &State{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{state.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
