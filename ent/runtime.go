// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anzhiyu-c/qingyu-admin/ent/role"
	"github.com/anzhiyu-c/qingyu-admin/ent/schema"
	"github.com/anzhiyu-c/qingyu-admin/ent/setting"
	"github.com/anzhiyu-c/qingyu-admin/ent/state"
	"github.com/anzhiyu-c/qingyu-admin/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	roleFields := schema.Role{}.Fields()
	_ = roleFields
	// roleDescName is the schema descriptor for name field.
	roleDescName := roleFields[1].Descriptor()
	// role.NameValidator is a validator for the "name" field. It is called by the builders before save.
	role.NameValidator = func() func(string) error {
		validators := roleDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescConfigKey is the schema descriptor for config_key field.
	settingDescConfigKey := settingFields[0].Descriptor()
	// setting.ConfigKeyValidator is a validator for the "config_key" field. It is called by the builders before save.
	setting.ConfigKeyValidator = func() func(string) error {
		validators := settingDescConfigKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(config_key string) error {
			for _, fn := range fns {
				if err := fn(config_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// settingDescComment is the schema descriptor for comment field.
	settingDescComment := settingFields[2].Descriptor()
	// setting.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	setting.CommentValidator = settingDescComment.Validators[0].(func(string) error)
	// settingDescCreatedAt is the schema descriptor for created_at field.
	settingDescCreatedAt := settingFields[3].Descriptor()
	// setting.DefaultCreatedAt holds the default value on creation for the created_at field.
	setting.DefaultCreatedAt = settingDescCreatedAt.Default.(func() time.Time)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[4].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	stateFields := schema.State{}.Fields()
	_ = stateFields
	// stateDescName is the schema descriptor for name field.
	stateDescName := stateFields[1].Descriptor()
	// state.NameValidator is a validator for the "name" field. It is called by the builders before save.
	state.NameValidator = func() func(string) error {
		validators := stateDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stateDescAbbreviation is the schema descriptor for abbreviation field.
	stateDescAbbreviation := stateFields[2].Descriptor()
	// state.AbbreviationValidator is a validator for the "abbreviation" field. It is called by the builders before save.
	state.AbbreviationValidator = func() func(string) error {
		validators := stateDescAbbreviation.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(abbreviation string) error {
			for _, fn := range fns {
				if err := fn(abbreviation); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stateDescConcurrencyStamp is the schema descriptor for concurrency_stamp field.
	stateDescConcurrencyStamp := stateFields[3].Descriptor()
	// state.DefaultConcurrencyStamp holds the default value on creation for the concurrency_stamp field.
	state.DefaultConcurrencyStamp = stateDescConcurrencyStamp.Default.(func() uuid.UUID)
	// stateDescID is the schema descriptor for id field.
	stateDescID := stateFields[0].Descriptor()
	// state.DefaultID holds the default value on creation for the id field.
	state.DefaultID = stateDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[4].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[5].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = func() func(string) error {
		validators := userDescPasswordHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(password_hash string) error {
			for _, fn := range fns {
				if err := fn(password_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescSecurityStamp is the schema descriptor for security_stamp field.
	userDescSecurityStamp := userFields[6].Descriptor()
	// user.DefaultSecurityStamp holds the default value on creation for the security_stamp field.
	user.DefaultSecurityStamp = userDescSecurityStamp.Default.(func() uuid.UUID)
	// userDescEmailConfirmed is the schema descriptor for email_confirmed field.
	userDescEmailConfirmed := userFields[7].Descriptor()
	// user.DefaultEmailConfirmed holds the default value on creation for the email_confirmed field.
	user.DefaultEmailConfirmed = userDescEmailConfirmed.Default.(bool)
	// userDescPendingEmail is the schema descriptor for pending_email field.
	userDescPendingEmail := userFields[8].Descriptor()
	// user.PendingEmailValidator is a validator for the "pending_email" field. It is called by the builders before save.
	user.PendingEmailValidator = userDescPendingEmail.Validators[0].(func(string) error)
	// userDescAccessFailedCount is the schema descriptor for access_failed_count field.
	userDescAccessFailedCount := userFields[9].Descriptor()
	// user.DefaultAccessFailedCount holds the default value on creation for the access_failed_count field.
	user.DefaultAccessFailedCount = userDescAccessFailedCount.Default.(int)
}
