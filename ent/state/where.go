// Code generated by ent, DO NOT EDIT.

package state

import (
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/qingyu-admin/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.State {
	return predicate.State(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.State {
	return predicate.State(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.State {
	return predicate.State(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.State {
	return predicate.State(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.State {
	return predicate.State(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.State {
	return predicate.State(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.State {
	return predicate.State(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldName, v))
}

// Abbreviation applies equality check predicate on the "abbreviation" field. It's identical to AbbreviationEQ.
func Abbreviation(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldAbbreviation, v))
}

// ConcurrencyStamp applies equality check predicate on the "concurrency_stamp" field. It's identical to ConcurrencyStampEQ.
func ConcurrencyStamp(v uuid.UUID) predicate.State {
	return predicate.State(sql.FieldEQ(FieldConcurrencyStamp, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.State {
	return predicate.State(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.State {
	return predicate.State(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.State {
	return predicate.State(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.State {
	return predicate.State(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.State {
	return predicate.State(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.State {
	return predicate.State(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.State {
	return predicate.State(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.State {
	return predicate.State(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.State {
	return predicate.State(sql.FieldContainsFold(FieldName, v))
}

// AbbreviationEQ applies the EQ predicate on the "abbreviation" field.
func AbbreviationEQ(v string) predicate.State {
	return predicate.State(sql.FieldEQ(FieldAbbreviation, v))
}

// AbbreviationNEQ applies the NEQ predicate on the "abbreviation" field.
func AbbreviationNEQ(v string) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldAbbreviation, v))
}

// AbbreviationIn applies the In predicate on the "abbreviation" field.
func AbbreviationIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldIn(FieldAbbreviation, vs...))
}

// AbbreviationNotIn applies the NotIn predicate on the "abbreviation" field.
func AbbreviationNotIn(vs ...string) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldAbbreviation, vs...))
}

// AbbreviationGT applies the GT predicate on the "abbreviation" field.
func AbbreviationGT(v string) predicate.State {
	return predicate.State(sql.FieldGT(FieldAbbreviation, v))
}

// AbbreviationGTE applies the GTE predicate on the "abbreviation" field.
func AbbreviationGTE(v string) predicate.State {
	return predicate.State(sql.FieldGTE(FieldAbbreviation, v))
}

// AbbreviationLT applies the LT predicate on the "abbreviation" field.
func AbbreviationLT(v string) predicate.State {
	return predicate.State(sql.FieldLT(FieldAbbreviation, v))
}

// AbbreviationLTE applies the LTE predicate on the "abbreviation" field.
func AbbreviationLTE(v string) predicate.State {
	return predicate.State(sql.FieldLTE(FieldAbbreviation, v))
}

// AbbreviationContains applies the Contains predicate on the "abbreviation" field.
func AbbreviationContains(v string) predicate.State {
	return predicate.State(sql.FieldContains(FieldAbbreviation, v))
}

// AbbreviationHasPrefix applies the HasPrefix predicate on the "abbreviation" field.
func AbbreviationHasPrefix(v string) predicate.State {
	return predicate.State(sql.FieldHasPrefix(FieldAbbreviation, v))
}

// AbbreviationHasSuffix applies the HasSuffix predicate on the "abbreviation" field.
func AbbreviationHasSuffix(v string) predicate.State {
	return predicate.State(sql.FieldHasSuffix(FieldAbbreviation, v))
}

// AbbreviationEqualFold applies the EqualFold predicate on the "abbreviation" field.
func AbbreviationEqualFold(v string) predicate.State {
	return predicate.State(sql.FieldEqualFold(FieldAbbreviation, v))
}

// AbbreviationContainsFold applies the ContainsFold predicate on the "abbreviation" field.
func AbbreviationContainsFold(v string) predicate.State {
	return predicate.State(sql.FieldContainsFold(FieldAbbreviation, v))
}

// ConcurrencyStampEQ applies the EQ predicate on the "concurrency_stamp" field.
func ConcurrencyStampEQ(v uuid.UUID) predicate.State {
	return predicate.State(sql.FieldEQ(FieldConcurrencyStamp, v))
}

// ConcurrencyStampNEQ applies the NEQ predicate on the "concurrency_stamp" field.
func ConcurrencyStampNEQ(v uuid.UUID) predicate.State {
	return predicate.State(sql.FieldNEQ(FieldConcurrencyStamp, v))
}

// ConcurrencyStampIn applies the In predicate on the "concurrency_stamp" field.
func ConcurrencyStampIn(vs ...uuid.UUID) predicate.State {
	return predicate.State(sql.FieldIn(FieldConcurrencyStamp, vs...))
}

// ConcurrencyStampNotIn applies the NotIn predicate on the "concurrency_stamp" field.
func ConcurrencyStampNotIn(vs ...uuid.UUID) predicate.State {
	return predicate.State(sql.FieldNotIn(FieldConcurrencyStamp, vs...))
}

// ConcurrencyStampGT applies the GT predicate on the "concurrency_stamp" field.
func ConcurrencyStampGT(v uuid.UUID) predicate.State {
	return predicate.State(sql.FieldGT(FieldConcurrencyStamp, v))
}

// ConcurrencyStampGTE applies the GTE predicate on the "concurrency_stamp" field.
func ConcurrencyStampGTE(v uuid.UUID) predicate.State {
	return predicate.State(sql.FieldGTE(FieldConcurrencyStamp, v))
}

// ConcurrencyStampLT applies the LT predicate on the "concurrency_stamp" field.
func ConcurrencyStampLT(v uuid.UUID) predicate.State {
	return predicate.State(sql.FieldLT(FieldConcurrencyStamp, v))
}

// ConcurrencyStampLTE applies the LTE predicate on the "concurrency_stamp" field.
func ConcurrencyStampLTE(v uuid.UUID) predicate.State {
	return predicate.State(sql.FieldLTE(FieldConcurrencyStamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.State) predicate.State {
	return predicate.State(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.State) predicate.State {
	return predicate.State(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.State) predicate.State {
	return predicate.State(sql.NotPredicates(p))
}
