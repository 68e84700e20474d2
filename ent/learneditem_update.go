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
	"github.com/sagara/kotoba/ent/learneditem"
	"github.com/sagara/kotoba/ent/predicate"
)

// LearnedItemUpdate is the builder for updating LearnedItem entities.
type LearnedItemUpdate struct {
	config
	hooks    []Hook
	mutation *LearnedItemMutation
}

// Where appends a list predicates to the LearnedItemUpdate builder.
func (_u *LearnedItemUpdate) Where(ps ...predicate.LearnedItem) *LearnedItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearnedItemUpdate) SetUserID(v string) *LearnedItemUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableUserID(v *string) *LearnedItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *LearnedItemUpdate) SetItemID(v string) *LearnedItemUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableItemID(v *string) *LearnedItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *LearnedItemUpdate) SetItemType(v string) *LearnedItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableItemType(v *string) *LearnedItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetScript sets the "script" field.
func (_u *LearnedItemUpdate) SetScript(v string) *LearnedItemUpdate {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableScript(v *string) *LearnedItemUpdate {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *LearnedItemUpdate) SetStrength(v int) *LearnedItemUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableStrength(v *int) *LearnedItemUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *LearnedItemUpdate) AddStrength(v int) *LearnedItemUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *LearnedItemUpdate) SetLastReviewed(v time.Time) *LearnedItemUpdate {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableLastReviewed(v *time.Time) *LearnedItemUpdate {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *LearnedItemUpdate) ClearLastReviewed() *LearnedItemUpdate {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *LearnedItemUpdate) SetNextReview(v time.Time) *LearnedItemUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableNextReview(v *time.Time) *LearnedItemUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *LearnedItemUpdate) ClearNextReview() *LearnedItemUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *LearnedItemUpdate) SetCorrectCount(v int) *LearnedItemUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableCorrectCount(v *int) *LearnedItemUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *LearnedItemUpdate) AddCorrectCount(v int) *LearnedItemUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *LearnedItemUpdate) SetIncorrectCount(v int) *LearnedItemUpdate {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *LearnedItemUpdate) SetNillableIncorrectCount(v *int) *LearnedItemUpdate {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *LearnedItemUpdate) AddIncorrectCount(v int) *LearnedItemUpdate {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// Mutation returns the LearnedItemMutation object of the builder.
func (_u *LearnedItemUpdate) Mutation() *LearnedItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnedItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnedItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedItemUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learneditem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := learneditem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := learneditem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := learneditem.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.strength": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := learneditem.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncorrectCount(); ok {
		if err := learneditem.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learneditem.Table, learneditem.Columns, sqlgraph.NewFieldSpec(learneditem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learneditem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(learneditem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(learneditem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(learneditem.FieldScript, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(learneditem.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(learneditem.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(learneditem.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(learneditem.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(learneditem.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(learneditem.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(learneditem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(learneditem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(learneditem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(learneditem.FieldIncorrectCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learneditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnedItemUpdateOne is the builder for updating a single LearnedItem entity.
type LearnedItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnedItemMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearnedItemUpdateOne) SetUserID(v string) *LearnedItemUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableUserID(v *string) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *LearnedItemUpdateOne) SetItemID(v string) *LearnedItemUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableItemID(v *string) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *LearnedItemUpdateOne) SetItemType(v string) *LearnedItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableItemType(v *string) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetScript sets the "script" field.
func (_u *LearnedItemUpdateOne) SetScript(v string) *LearnedItemUpdateOne {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableScript(v *string) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *LearnedItemUpdateOne) SetStrength(v int) *LearnedItemUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableStrength(v *int) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *LearnedItemUpdateOne) AddStrength(v int) *LearnedItemUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *LearnedItemUpdateOne) SetLastReviewed(v time.Time) *LearnedItemUpdateOne {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableLastReviewed(v *time.Time) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *LearnedItemUpdateOne) ClearLastReviewed() *LearnedItemUpdateOne {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *LearnedItemUpdateOne) SetNextReview(v time.Time) *LearnedItemUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableNextReview(v *time.Time) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *LearnedItemUpdateOne) ClearNextReview() *LearnedItemUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *LearnedItemUpdateOne) SetCorrectCount(v int) *LearnedItemUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableCorrectCount(v *int) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *LearnedItemUpdateOne) AddCorrectCount(v int) *LearnedItemUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetIncorrectCount sets the "incorrect_count" field.
func (_u *LearnedItemUpdateOne) SetIncorrectCount(v int) *LearnedItemUpdateOne {
	_u.mutation.ResetIncorrectCount()
	_u.mutation.SetIncorrectCount(v)
	return _u
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (_u *LearnedItemUpdateOne) SetNillableIncorrectCount(v *int) *LearnedItemUpdateOne {
	if v != nil {
		_u.SetIncorrectCount(*v)
	}
	return _u
}

// AddIncorrectCount adds value to the "incorrect_count" field.
func (_u *LearnedItemUpdateOne) AddIncorrectCount(v int) *LearnedItemUpdateOne {
	_u.mutation.AddIncorrectCount(v)
	return _u
}

// Mutation returns the LearnedItemMutation object of the builder.
func (_u *LearnedItemUpdateOne) Mutation() *LearnedItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnedItemUpdate builder.
func (_u *LearnedItemUpdateOne) Where(ps ...predicate.LearnedItem) *LearnedItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnedItemUpdateOne) Select(field string, fields ...string) *LearnedItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnedItem entity.
func (_u *LearnedItemUpdateOne) Save(ctx context.Context) (*LearnedItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedItemUpdateOne) SaveX(ctx context.Context) *LearnedItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnedItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedItemUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learneditem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := learneditem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := learneditem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := learneditem.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.strength": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := learneditem.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncorrectCount(); ok {
		if err := learneditem.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "LearnedItem.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedItemUpdateOne) sqlSave(ctx context.Context) (_node *LearnedItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learneditem.Table, learneditem.Columns, sqlgraph.NewFieldSpec(learneditem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnedItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learneditem.FieldID)
		for _, f := range fields {
			if !learneditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learneditem.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learneditem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(learneditem.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(learneditem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(learneditem.FieldScript, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(learneditem.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(learneditem.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(learneditem.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(learneditem.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(learneditem.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(learneditem.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(learneditem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(learneditem.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectCount(); ok {
		_spec.SetField(learneditem.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(learneditem.FieldIncorrectCount, field.TypeInt, value)
	}
	_node = &LearnedItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learneditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
