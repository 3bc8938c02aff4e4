// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/qingyu-admin/ent/state"
	"github.com/google/uuid"
)

// StateCreate is the builder for creating a State entity.
type StateCreate struct {
	config
	mutation *StateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (sc *StateCreate) SetName(s string) *StateCreate {
	sc.mutation.SetName(s)
	return sc
}

// SetAbbreviation sets the "abbreviation" field.
func (sc *StateCreate) SetAbbreviation(s string) *StateCreate {
	sc.mutation.SetAbbreviation(s)
	return sc
}

// SetConcurrencyStamp sets the "concurrency_stamp" field.
func (sc *StateCreate) SetConcurrencyStamp(u uuid.UUID) *StateCreate {
	sc.mutation.SetConcurrencyStamp(u)
	return sc
}

// SetNillableConcurrencyStamp sets the "concurrency_stamp" field if the given value is not nil.
func (sc *StateCreate) SetNillableConcurrencyStamp(u *uuid.UUID) *StateCreate {
	if u != nil {
		sc.SetConcurrencyStamp(*u)
	}
	return sc
}

// SetID sets the "id" field.
func (sc *StateCreate) SetID(u uuid.UUID) *StateCreate {
	sc.mutation.SetID(u)
	return sc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sc *StateCreate) SetNillableID(u *uuid.UUID) *StateCreate {
	if u != nil {
		sc.SetID(*u)
	}
	return sc
}

// Mutation returns the StateMutation object of the builder.
func (sc *StateCreate) Mutation() *StateMutation {
	return sc.mutation
}

// Save creates the State in the database.
func (sc *StateCreate) Save(ctx context.Context) (*State, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *StateCreate) SaveX(ctx context.Context) *State {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *StateCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *StateCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *StateCreate) defaults() {
	if _, ok := sc.mutation.ConcurrencyStamp(); !ok {
		v := state.DefaultConcurrencyStamp()
		sc.mutation.SetConcurrencyStamp(v)
	}
	if _, ok := sc.mutation.ID(); !ok {
		v := state.DefaultID()
		sc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *StateCreate) check() error {
	if _, ok := sc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "State.name"`)}
	}
	if v, ok := sc.mutation.Name(); ok {
		if err := state.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "State.name": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Abbreviation(); !ok {
		return &ValidationError{Name: "abbreviation", err: errors.New(`ent: missing required field "State.abbreviation"`)}
	}
	if v, ok := sc.mutation.Abbreviation(); ok {
		if err := state.AbbreviationValidator(v); err != nil {
			return &ValidationError{Name: "abbreviation", err: fmt.Errorf(`ent: validator failed for field "State.abbreviation": %w`, err)}
		}
	}
	if _, ok := sc.mutation.ConcurrencyStamp(); !ok {
		return &ValidationError{Name: "concurrency_stamp", err: errors.New(`ent: missing required field "State.concurrency_stamp"`)}
	}
	return nil
}

func (sc *StateCreate) sqlSave(ctx context.Context) (*State, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *StateCreate) createSpec() (*State, *sqlgraph.CreateSpec) {
	var (
		_node = &State{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(state.Table, sqlgraph.NewFieldSpec(state.FieldID, field.TypeUUID))
	)
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := sc.mutation.Name(); ok {
		_spec.SetField(state.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := sc.mutation.Abbreviation(); ok {
		_spec.SetField(state.FieldAbbreviation, field.TypeString, value)
		_node.Abbreviation = value
	}
	if value, ok := sc.mutation.ConcurrencyStamp(); ok {
		_spec.SetField(state.FieldConcurrencyStamp, field.TypeUUID, value)
		_node.ConcurrencyStamp = value
	}
	return _node, _spec
}

// StateCreateBulk is the builder for creating many State entities in bulk.
type StateCreateBulk struct {
	config
	err      error
	builders []*StateCreate
}

// Save creates the State entities in the database.
func (scb *StateCreateBulk) Save(ctx context.Context) ([]*State, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*State, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *StateCreateBulk) SaveX(ctx context.Context) []*State {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *StateCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *StateCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
