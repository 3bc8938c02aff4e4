// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/qingyu-admin/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// SecurityStamp applies equality check predicate on the "security_stamp" field. It's identical to SecurityStampEQ.
func SecurityStamp(v uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSecurityStamp, v))
}

// EmailConfirmed applies equality check predicate on the "email_confirmed" field. It's identical to EmailConfirmedEQ.
func EmailConfirmed(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailConfirmed, v))
}

// PendingEmail applies equality check predicate on the "pending_email" field. It's identical to PendingEmailEQ.
func PendingEmail(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPendingEmail, v))
}

// AccessFailedCount applies equality check predicate on the "access_failed_count" field. It's identical to AccessFailedCountEQ.
func AccessFailedCount(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAccessFailedCount, v))
}

// LockoutUntil applies equality check predicate on the "lockout_until" field. It's identical to LockoutUntilEQ.
func LockoutUntil(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLockoutUntil, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldUsername, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// SecurityStampEQ applies the EQ predicate on the "security_stamp" field.
func SecurityStampEQ(v uuid.UUID) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSecurityStamp, v))
}

// SecurityStampNEQ applies the NEQ predicate on the "security_stamp" field.
func SecurityStampNEQ(v uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSecurityStamp, v))
}

// SecurityStampIn applies the In predicate on the "security_stamp" field.
func SecurityStampIn(vs ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldIn(FieldSecurityStamp, vs...))
}

// SecurityStampNotIn applies the NotIn predicate on the "security_stamp" field.
func SecurityStampNotIn(vs ...uuid.UUID) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSecurityStamp, vs...))
}

// SecurityStampGT applies the GT predicate on the "security_stamp" field.
func SecurityStampGT(v uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGT(FieldSecurityStamp, v))
}

// SecurityStampGTE applies the GTE predicate on the "security_stamp" field.
func SecurityStampGTE(v uuid.UUID) predicate.User {
	return predicate.User(sql.FieldGTE(FieldSecurityStamp, v))
}

// SecurityStampLT applies the LT predicate on the "security_stamp" field.
func SecurityStampLT(v uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLT(FieldSecurityStamp, v))
}

// SecurityStampLTE applies the LTE predicate on the "security_stamp" field.
func SecurityStampLTE(v uuid.UUID) predicate.User {
	return predicate.User(sql.FieldLTE(FieldSecurityStamp, v))
}

// EmailConfirmedEQ applies the EQ predicate on the "email_confirmed" field.
func EmailConfirmedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailConfirmed, v))
}

// EmailConfirmedNEQ applies the NEQ predicate on the "email_confirmed" field.
func EmailConfirmedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailConfirmed, v))
}

// PendingEmailEQ applies the EQ predicate on the "pending_email" field.
func PendingEmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPendingEmail, v))
}

// PendingEmailNEQ applies the NEQ predicate on the "pending_email" field.
func PendingEmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPendingEmail, v))
}

// PendingEmailIn applies the In predicate on the "pending_email" field.
func PendingEmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPendingEmail, vs...))
}

// PendingEmailNotIn applies the NotIn predicate on the "pending_email" field.
func PendingEmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPendingEmail, vs...))
}

// PendingEmailGT applies the GT predicate on the "pending_email" field.
func PendingEmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPendingEmail, v))
}

// PendingEmailGTE applies the GTE predicate on the "pending_email" field.
func PendingEmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPendingEmail, v))
}

// PendingEmailLT applies the LT predicate on the "pending_email" field.
func PendingEmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPendingEmail, v))
}

// PendingEmailLTE applies the LTE predicate on the "pending_email" field.
func PendingEmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPendingEmail, v))
}

// PendingEmailContains applies the Contains predicate on the "pending_email" field.
func PendingEmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPendingEmail, v))
}

// PendingEmailHasPrefix applies the HasPrefix predicate on the "pending_email" field.
func PendingEmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPendingEmail, v))
}

// PendingEmailHasSuffix applies the HasSuffix predicate on the "pending_email" field.
func PendingEmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPendingEmail, v))
}

// PendingEmailIsNil applies the IsNil predicate on the "pending_email" field.
func PendingEmailIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPendingEmail))
}

// PendingEmailNotNil applies the NotNil predicate on the "pending_email" field.
func PendingEmailNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPendingEmail))
}

// PendingEmailEqualFold applies the EqualFold predicate on the "pending_email" field.
func PendingEmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPendingEmail, v))
}

// PendingEmailContainsFold applies the ContainsFold predicate on the "pending_email" field.
func PendingEmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPendingEmail, v))
}

// AccessFailedCountEQ applies the EQ predicate on the "access_failed_count" field.
func AccessFailedCountEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAccessFailedCount, v))
}

// AccessFailedCountNEQ applies the NEQ predicate on the "access_failed_count" field.
func AccessFailedCountNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAccessFailedCount, v))
}

// AccessFailedCountIn applies the In predicate on the "access_failed_count" field.
func AccessFailedCountIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldAccessFailedCount, vs...))
}

// AccessFailedCountNotIn applies the NotIn predicate on the "access_failed_count" field.
func AccessFailedCountNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAccessFailedCount, vs...))
}

// AccessFailedCountGT applies the GT predicate on the "access_failed_count" field.
func AccessFailedCountGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldAccessFailedCount, v))
}

// AccessFailedCountGTE applies the GTE predicate on the "access_failed_count" field.
func AccessFailedCountGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAccessFailedCount, v))
}

// AccessFailedCountLT applies the LT predicate on the "access_failed_count" field.
func AccessFailedCountLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldAccessFailedCount, v))
}

// AccessFailedCountLTE applies the LTE predicate on the "access_failed_count" field.
func AccessFailedCountLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAccessFailedCount, v))
}

// LockoutUntilEQ applies the EQ predicate on the "lockout_until" field.
func LockoutUntilEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLockoutUntil, v))
}

// LockoutUntilNEQ applies the NEQ predicate on the "lockout_until" field.
func LockoutUntilNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLockoutUntil, v))
}

// LockoutUntilIn applies the In predicate on the "lockout_until" field.
func LockoutUntilIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLockoutUntil, vs...))
}

// LockoutUntilNotIn applies the NotIn predicate on the "lockout_until" field.
func LockoutUntilNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLockoutUntil, vs...))
}

// LockoutUntilGT applies the GT predicate on the "lockout_until" field.
func LockoutUntilGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLockoutUntil, v))
}

// LockoutUntilGTE applies the GTE predicate on the "lockout_until" field.
func LockoutUntilGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLockoutUntil, v))
}

// LockoutUntilLT applies the LT predicate on the "lockout_until" field.
func LockoutUntilLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLockoutUntil, v))
}

// LockoutUntilLTE applies the LTE predicate on the "lockout_until" field.
func LockoutUntilLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLockoutUntil, v))
}

// LockoutUntilIsNil applies the IsNil predicate on the "lockout_until" field.
func LockoutUntilIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLockoutUntil))
}

// LockoutUntilNotNil applies the NotNil predicate on the "lockout_until" field.
func LockoutUntilNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLockoutUntil))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginAt))
}

// HasRoles applies the HasEdge predicate on the "roles" edge.
func HasRoles() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, RolesTable, RolesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRolesWith applies the HasEdge predicate on the "roles" edge with a given conditions (other predicates).
func HasRolesWith(preds ...predicate.Role) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newRolesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
