// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sagara/kotoba/ent/learneditem"
	"github.com/sagara/kotoba/ent/reviewevent"
	"github.com/sagara/kotoba/ent/schema"
	"github.com/sagara/kotoba/ent/sessionevent"
	"github.com/sagara/kotoba/ent/statssnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	learneditemFields := schema.LearnedItem{}.Fields()
	_ = learneditemFields
	// learneditemDescUserID is the schema descriptor for user_id field.
	learneditemDescUserID := learneditemFields[0].Descriptor()
	// learneditem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learneditem.UserIDValidator = learneditemDescUserID.Validators[0].(func(string) error)
	// learneditemDescItemID is the schema descriptor for item_id field.
	learneditemDescItemID := learneditemFields[1].Descriptor()
	// learneditem.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	learneditem.ItemIDValidator = learneditemDescItemID.Validators[0].(func(string) error)
	// learneditemDescItemType is the schema descriptor for item_type field.
	learneditemDescItemType := learneditemFields[2].Descriptor()
	// learneditem.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	learneditem.ItemTypeValidator = learneditemDescItemType.Validators[0].(func(string) error)
	// learneditemDescScript is the schema descriptor for script field.
	learneditemDescScript := learneditemFields[3].Descriptor()
	// learneditem.DefaultScript holds the default value on creation for the script field.
	learneditem.DefaultScript = learneditemDescScript.Default.(string)
	// learneditemDescStrength is the schema descriptor for strength field.
	learneditemDescStrength := learneditemFields[4].Descriptor()
	// learneditem.DefaultStrength holds the default value on creation for the strength field.
	learneditem.DefaultStrength = learneditemDescStrength.Default.(int)
	// learneditem.StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	learneditem.StrengthValidator = func() func(int) error {
		validators := learneditemDescStrength.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(strength int) error {
			for _, fn := range fns {
				if err := fn(strength); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// learneditemDescCorrectCount is the schema descriptor for correct_count field.
	learneditemDescCorrectCount := learneditemFields[7].Descriptor()
	// learneditem.DefaultCorrectCount holds the default value on creation for the correct_count field.
	learneditem.DefaultCorrectCount = learneditemDescCorrectCount.Default.(int)
	// learneditem.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	learneditem.CorrectCountValidator = learneditemDescCorrectCount.Validators[0].(func(int) error)
	// learneditemDescIncorrectCount is the schema descriptor for incorrect_count field.
	learneditemDescIncorrectCount := learneditemFields[8].Descriptor()
	// learneditem.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	learneditem.DefaultIncorrectCount = learneditemDescIncorrectCount.Default.(int)
	// learneditem.IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	learneditem.IncorrectCountValidator = learneditemDescIncorrectCount.Validators[0].(func(int) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescUserID is the schema descriptor for user_id field.
	revieweventDescUserID := revieweventFields[1].Descriptor()
	// reviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewevent.UserIDValidator = revieweventDescUserID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[2].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescItemType is the schema descriptor for item_type field.
	revieweventDescItemType := revieweventFields[3].Descriptor()
	// reviewevent.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	reviewevent.ItemTypeValidator = revieweventDescItemType.Validators[0].(func(string) error)
	// revieweventDescHintsUsed is the schema descriptor for hints_used field.
	revieweventDescHintsUsed := revieweventFields[5].Descriptor()
	// reviewevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	reviewevent.DefaultHintsUsed = revieweventDescHintsUsed.Default.(int)
	// revieweventDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	revieweventDescTimeSpentMs := revieweventFields[6].Descriptor()
	// reviewevent.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	reviewevent.DefaultTimeSpentMs = revieweventDescTimeSpentMs.Default.(int64)
	// revieweventDescStrengthBefore is the schema descriptor for strength_before field.
	revieweventDescStrengthBefore := revieweventFields[7].Descriptor()
	// reviewevent.DefaultStrengthBefore holds the default value on creation for the strength_before field.
	reviewevent.DefaultStrengthBefore = revieweventDescStrengthBefore.Default.(int)
	// revieweventDescStrengthAfter is the schema descriptor for strength_after field.
	revieweventDescStrengthAfter := revieweventFields[8].Descriptor()
	// reviewevent.DefaultStrengthAfter holds the default value on creation for the strength_after field.
	reviewevent.DefaultStrengthAfter = revieweventDescStrengthAfter.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescItemsServed is the schema descriptor for items_served field.
	sessioneventDescItemsServed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultItemsServed holds the default value on creation for the items_served field.
	sessionevent.DefaultItemsServed = sessioneventDescItemsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	statssnapshotFields := schema.StatsSnapshot{}.Fields()
	_ = statssnapshotFields
	// statssnapshotDescUserID is the schema descriptor for user_id field.
	statssnapshotDescUserID := statssnapshotFields[0].Descriptor()
	// statssnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	statssnapshot.UserIDValidator = statssnapshotDescUserID.Validators[0].(func(string) error)
	// statssnapshotDescTimestamp is the schema descriptor for timestamp field.
	statssnapshotDescTimestamp := statssnapshotFields[1].Descriptor()
	// statssnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	statssnapshot.DefaultTimestamp = statssnapshotDescTimestamp.Default.(func() time.Time)
}
