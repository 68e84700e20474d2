// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sagara/kotoba/ent/learneditem"
)

// LearnedItemCreate is the builder for creating a LearnedItem entity.
type LearnedItemCreate struct {
	config
	mutation *LearnedItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearnedItemCreate) SetUserID(v string) *LearnedItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *LearnedItemCreate) SetItemID(v string) *LearnedItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *LearnedItemCreate) SetItemType(v string) *LearnedItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetScript sets the "script" field.
func (_c *LearnedItemCreate) SetScript(v string) *LearnedItemCreate {
	_c.mutation.SetScript(v)
	return _c
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_c *LearnedItemCreate) SetNillableScript(v *string) *LearnedItemCreate {
	if v != nil {
		_c.SetScript(*v)
	}
	return _c
}

// SetStrength sets the "strength" field.
func (_c *LearnedItemCreate) SetStrength(v int) *LearnedItemCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_c *LearnedItemCreate) SetNillableStrength(v *int) *LearnedItemCreate {
	if v != nil {
		_c.SetStrength(*v)
	}
	return _c
}

// SetLastReviewed sets the "last_reviewed" field.
func (_c *LearnedItemCreate) SetLastReviewed(v time.Time) *LearnedItemCreate {
	_c.mutation.SetLastReviewed(v)
	return _c
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_c *LearnedItemCreate) SetNillableLastReviewed(v *time.Time) *LearnedItemCreate {
	if v != nil {
		_c.SetLastReviewed(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *LearnedItemCreate) SetNextReview(v time.Time) *LearnedItemCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_c *LearnedItemCreate) SetNillableNextReview(v *time.Time) *LearnedItemCreate {
	if v != nil {
		_c.SetNextReview(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *LearnedItemCreate) SetCorrectCount(v int) *LearnedItemCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *LearnedItemCreate) SetNillableCorrectCount(v *int) *LearnedItemCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_c *LearnedItemCreate) SetIncorrectCount(v int) *LearnedItemCreate {
	_c.mutation.SetIncorrectCount(v)
	return _c
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_c *LearnedItemCreate) SetNillableIncorrectCount(v *int) *LearnedItemCreate {
	if v != nil {
		_c.SetIncorrectCount(*v)
	}
	return _c
}

// Mutation returns the LearnedItemMutation object of the builder.
func (_c *LearnedItemCreate) Mutation() *LearnedItemMutation {
	return _c.mutation
}

// Save creates the LearnedItem in the database.
func (_c *LearnedItemCreate) Save(ctx context.Context) (*LearnedItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnedItemCreate) SaveX(ctx context.Context) *LearnedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnedItemCreate) defaults() {
	if _, ok := _c.mutation.Script(); !ok {
		v := learneditem.DefaultScript
		_c.mutation.SetScript(v)
	}
	if _, ok := _c.mutation.Strength(); !ok {
		v := learneditem.DefaultStrength
		_c.mutation.SetStrength(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := learneditem.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		v := learneditem.DefaultIncorrectCount
		_c.mutation.SetIncorrectCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnedItemCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearnedItem.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learneditem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "LearnedItem.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := learneditem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "LearnedItem.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := learneditem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Script(); !ok {
		return &ValidationError{Name: "script", err: errors.New(`ent: missing required field "LearnedItem.script"`)}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "LearnedItem.strength"`)}
	}
	if v, ok := _c.mutation.Strength(); ok {
		if err := learneditem.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.strength": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "LearnedItem.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := learneditem.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "LearnedItem.incorrect_count"`)}
	}
	if v, ok := _c.mutation.IncorrectCount(); ok {
		if err := learneditem.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (_c *LearnedItemCreate) sqlSave(ctx context.Context) (*LearnedItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnedItemCreate) createSpec() (*LearnedItem, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnedItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learneditem.Table, sqlgraph.NewFieldSpec(learneditem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learneditem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(learneditem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(learneditem.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Script(); ok {
		_spec.SetField(learneditem.FieldScript, field.TypeString, value)
		_node.Script = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(learneditem.FieldStrength, field.TypeInt, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.LastReviewed(); ok {
		_spec.SetField(learneditem.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(learneditem.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(learneditem.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.IncorrectCount(); ok {
		_spec.SetField(learneditem.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	return _node, _spec
}

// LearnedItemCreateBulk is the builder for creating many LearnedItem entities in bulk.
type LearnedItemCreateBulk struct {
	config
	err      error
	builders []*LearnedItemCreate
}

// Save creates the LearnedItem entities in the database.
func (_c *LearnedItemCreateBulk) Save(ctx context.Context) ([]*LearnedItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnedItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnedItemMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearnedItemCreateBulk) SaveX(ctx context.Context) []*LearnedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
