// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sagara/kotoba/ent/predicate"
	"github.com/sagara/kotoba/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewEventUpdate) SetUserID(v string) *ReviewEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableUserID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdate) SetItemID(v string) *ReviewEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableItemID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ReviewEventUpdate) SetItemType(v string) *ReviewEventUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableItemType(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdate) SetCorrect(v bool) *ReviewEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCorrect(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ReviewEventUpdate) SetHintsUsed(v int) *ReviewEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableHintsUsed(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ReviewEventUpdate) AddHintsUsed(v int) *ReviewEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *ReviewEventUpdate) SetTimeSpentMs(v int64) *ReviewEventUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTimeSpentMs(v *int64) *ReviewEventUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *ReviewEventUpdate) AddTimeSpentMs(v int64) *ReviewEventUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetStrengthBefore sets the "strength_before" field.
func (_u *ReviewEventUpdate) SetStrengthBefore(v int) *ReviewEventUpdate {
	_u.mutation.ResetStrengthBefore()
	_u.mutation.SetStrengthBefore(v)
	return _u
}

// SetNillableStrengthBefore sets the "strength_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStrengthBefore(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetStrengthBefore(*v)
	}
	return _u
}

// AddStrengthBefore adds value to the "strength_before" field.
func (_u *ReviewEventUpdate) AddStrengthBefore(v int) *ReviewEventUpdate {
	_u.mutation.AddStrengthBefore(v)
	return _u
}

// SetStrengthAfter sets the "strength_after" field.
func (_u *ReviewEventUpdate) SetStrengthAfter(v int) *ReviewEventUpdate {
	_u.mutation.ResetStrengthAfter()
	_u.mutation.SetStrengthAfter(v)
	return _u
}

// SetNillableStrengthAfter sets the "strength_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStrengthAfter(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetStrengthAfter(*v)
	}
	return _u
}

// AddStrengthAfter adds value to the "strength_after" field.
func (_u *ReviewEventUpdate) AddStrengthAfter(v int) *ReviewEventUpdate {
	_u.mutation.AddStrengthAfter(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := reviewevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(reviewevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(reviewevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(reviewevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(reviewevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(reviewevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StrengthBefore(); ok {
		_spec.SetField(reviewevent.FieldStrengthBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrengthBefore(); ok {
		_spec.AddField(reviewevent.FieldStrengthBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrengthAfter(); ok {
		_spec.SetField(reviewevent.FieldStrengthAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrengthAfter(); ok {
		_spec.AddField(reviewevent.FieldStrengthAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewEventUpdateOne) SetUserID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableUserID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdateOne) SetItemID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableItemID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ReviewEventUpdateOne) SetItemType(v string) *ReviewEventUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableItemType(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdateOne) SetCorrect(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCorrect(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ReviewEventUpdateOne) SetHintsUsed(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableHintsUsed(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ReviewEventUpdateOne) AddHintsUsed(v int) *ReviewEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *ReviewEventUpdateOne) SetTimeSpentMs(v int64) *ReviewEventUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTimeSpentMs(v *int64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *ReviewEventUpdateOne) AddTimeSpentMs(v int64) *ReviewEventUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetStrengthBefore sets the "strength_before" field.
func (_u *ReviewEventUpdateOne) SetStrengthBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetStrengthBefore()
	_u.mutation.SetStrengthBefore(v)
	return _u
}

// SetNillableStrengthBefore sets the "strength_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStrengthBefore(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStrengthBefore(*v)
	}
	return _u
}

// AddStrengthBefore adds value to the "strength_before" field.
func (_u *ReviewEventUpdateOne) AddStrengthBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.AddStrengthBefore(v)
	return _u
}

// SetStrengthAfter sets the "strength_after" field.
func (_u *ReviewEventUpdateOne) SetStrengthAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetStrengthAfter()
	_u.mutation.SetStrengthAfter(v)
	return _u
}

// SetNillableStrengthAfter sets the "strength_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStrengthAfter(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStrengthAfter(*v)
	}
	return _u
}

// AddStrengthAfter adds value to the "strength_after" field.
func (_u *ReviewEventUpdateOne) AddStrengthAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.AddStrengthAfter(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := reviewevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(reviewevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(reviewevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(reviewevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(reviewevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(reviewevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StrengthBefore(); ok {
		_spec.SetField(reviewevent.FieldStrengthBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrengthBefore(); ok {
		_spec.AddField(reviewevent.FieldStrengthBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrengthAfter(); ok {
		_spec.SetField(reviewevent.FieldStrengthAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrengthAfter(); ok {
		_spec.AddField(reviewevent.FieldStrengthAfter, field.TypeInt, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
