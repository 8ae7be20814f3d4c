// Code generated by ent, DO NOT EDIT.

package discoveredurl

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldID, id))
}

// ManufacturerID applies equality check predicate on the "manufacturer_id" field. It's identical to ManufacturerIDEQ.
func ManufacturerID(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldManufacturerID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldURL, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldCategory, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldStatus, v))
}

// DiscoveredAt applies equality check predicate on the "discovered_at" field. It's identical to DiscoveredAtEQ.
func DiscoveredAt(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldDiscoveredAt, v))
}

// ScrapedAt applies equality check predicate on the "scraped_at" field. It's identical to ScrapedAtEQ.
func ScrapedAt(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldScrapedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldErrorMessage, v))
}

// DuplicateStatus applies equality check predicate on the "duplicate_status" field. It's identical to DuplicateStatusEQ.
func DuplicateStatus(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldDuplicateStatus, v))
}

// ExistingMachineID applies equality check predicate on the "existing_machine_id" field. It's identical to ExistingMachineIDEQ.
func ExistingMachineID(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldExistingMachineID, v))
}

// SimilarityScore applies equality check predicate on the "similarity_score" field. It's identical to SimilarityScoreEQ.
func SimilarityScore(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldSimilarityScore, v))
}

// DuplicateReason applies equality check predicate on the "duplicate_reason" field. It's identical to DuplicateReasonEQ.
func DuplicateReason(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldDuplicateReason, v))
}

// CheckedAt applies equality check predicate on the "checked_at" field. It's identical to CheckedAtEQ.
func CheckedAt(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldCheckedAt, v))
}

// CheckStartedAt applies equality check predicate on the "check_started_at" field. It's identical to CheckStartedAtEQ.
func CheckStartedAt(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldCheckStartedAt, v))
}

// MlClassification applies equality check predicate on the "ml_classification" field. It's identical to MlClassificationEQ.
func MlClassification(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMlClassification, v))
}

// MlConfidence applies equality check predicate on the "ml_confidence" field. It's identical to MlConfidenceEQ.
func MlConfidence(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMlConfidence, v))
}

// MlReason applies equality check predicate on the "ml_reason" field. It's identical to MlReasonEQ.
func MlReason(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMlReason, v))
}

// MachineType applies equality check predicate on the "machine_type" field. It's identical to MachineTypeEQ.
func MachineType(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMachineType, v))
}

// ShouldAutoSkip applies equality check predicate on the "should_auto_skip" field. It's identical to ShouldAutoSkipEQ.
func ShouldAutoSkip(v bool) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldShouldAutoSkip, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldUpdatedAt, v))
}

// ManufacturerIDEQ applies the EQ predicate on the "manufacturer_id" field.
func ManufacturerIDEQ(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldManufacturerID, v))
}

// ManufacturerIDNEQ applies the NEQ predicate on the "manufacturer_id" field.
func ManufacturerIDNEQ(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldManufacturerID, v))
}

// ManufacturerIDIn applies the In predicate on the "manufacturer_id" field.
func ManufacturerIDIn(vs ...uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldManufacturerID, vs...))
}

// ManufacturerIDNotIn applies the NotIn predicate on the "manufacturer_id" field.
func ManufacturerIDNotIn(vs ...uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldManufacturerID, vs...))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldURL, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldCategory, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldStatus, v))
}

// DiscoveredAtEQ applies the EQ predicate on the "discovered_at" field.
func DiscoveredAtEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtNEQ applies the NEQ predicate on the "discovered_at" field.
func DiscoveredAtNEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtIn applies the In predicate on the "discovered_at" field.
func DiscoveredAtIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtNotIn applies the NotIn predicate on the "discovered_at" field.
func DiscoveredAtNotIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtGT applies the GT predicate on the "discovered_at" field.
func DiscoveredAtGT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldDiscoveredAt, v))
}

// DiscoveredAtGTE applies the GTE predicate on the "discovered_at" field.
func DiscoveredAtGTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldDiscoveredAt, v))
}

// DiscoveredAtLT applies the LT predicate on the "discovered_at" field.
func DiscoveredAtLT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldDiscoveredAt, v))
}

// DiscoveredAtLTE applies the LTE predicate on the "discovered_at" field.
func DiscoveredAtLTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldDiscoveredAt, v))
}

// ScrapedAtEQ applies the EQ predicate on the "scraped_at" field.
func ScrapedAtEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldScrapedAt, v))
}

// ScrapedAtNEQ applies the NEQ predicate on the "scraped_at" field.
func ScrapedAtNEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldScrapedAt, v))
}

// ScrapedAtIn applies the In predicate on the "scraped_at" field.
func ScrapedAtIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldScrapedAt, vs...))
}

// ScrapedAtNotIn applies the NotIn predicate on the "scraped_at" field.
func ScrapedAtNotIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldScrapedAt, vs...))
}

// ScrapedAtGT applies the GT predicate on the "scraped_at" field.
func ScrapedAtGT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldScrapedAt, v))
}

// ScrapedAtGTE applies the GTE predicate on the "scraped_at" field.
func ScrapedAtGTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldScrapedAt, v))
}

// ScrapedAtLT applies the LT predicate on the "scraped_at" field.
func ScrapedAtLT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldScrapedAt, v))
}

// ScrapedAtLTE applies the LTE predicate on the "scraped_at" field.
func ScrapedAtLTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldScrapedAt, v))
}

// ScrapedAtIsNil applies the IsNil predicate on the "scraped_at" field.
func ScrapedAtIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldScrapedAt))
}

// ScrapedAtNotNil applies the NotNil predicate on the "scraped_at" field.
func ScrapedAtNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldScrapedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ScrapedFieldsIsNil applies the IsNil predicate on the "scraped_fields" field.
func ScrapedFieldsIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldScrapedFields))
}

// ScrapedFieldsNotNil applies the NotNil predicate on the "scraped_fields" field.
func ScrapedFieldsNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldScrapedFields))
}

// DuplicateStatusEQ applies the EQ predicate on the "duplicate_status" field.
func DuplicateStatusEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldDuplicateStatus, v))
}

// DuplicateStatusNEQ applies the NEQ predicate on the "duplicate_status" field.
func DuplicateStatusNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldDuplicateStatus, v))
}

// DuplicateStatusIn applies the In predicate on the "duplicate_status" field.
func DuplicateStatusIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldDuplicateStatus, vs...))
}

// DuplicateStatusNotIn applies the NotIn predicate on the "duplicate_status" field.
func DuplicateStatusNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldDuplicateStatus, vs...))
}

// DuplicateStatusGT applies the GT predicate on the "duplicate_status" field.
func DuplicateStatusGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldDuplicateStatus, v))
}

// DuplicateStatusGTE applies the GTE predicate on the "duplicate_status" field.
func DuplicateStatusGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldDuplicateStatus, v))
}

// DuplicateStatusLT applies the LT predicate on the "duplicate_status" field.
func DuplicateStatusLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldDuplicateStatus, v))
}

// DuplicateStatusLTE applies the LTE predicate on the "duplicate_status" field.
func DuplicateStatusLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldDuplicateStatus, v))
}

// DuplicateStatusContains applies the Contains predicate on the "duplicate_status" field.
func DuplicateStatusContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldDuplicateStatus, v))
}

// DuplicateStatusHasPrefix applies the HasPrefix predicate on the "duplicate_status" field.
func DuplicateStatusHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldDuplicateStatus, v))
}

// DuplicateStatusHasSuffix applies the HasSuffix predicate on the "duplicate_status" field.
func DuplicateStatusHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldDuplicateStatus, v))
}

// DuplicateStatusEqualFold applies the EqualFold predicate on the "duplicate_status" field.
func DuplicateStatusEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldDuplicateStatus, v))
}

// DuplicateStatusContainsFold applies the ContainsFold predicate on the "duplicate_status" field.
func DuplicateStatusContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldDuplicateStatus, v))
}

// ExistingMachineIDEQ applies the EQ predicate on the "existing_machine_id" field.
func ExistingMachineIDEQ(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldExistingMachineID, v))
}

// ExistingMachineIDNEQ applies the NEQ predicate on the "existing_machine_id" field.
func ExistingMachineIDNEQ(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldExistingMachineID, v))
}

// ExistingMachineIDIn applies the In predicate on the "existing_machine_id" field.
func ExistingMachineIDIn(vs ...uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldExistingMachineID, vs...))
}

// ExistingMachineIDNotIn applies the NotIn predicate on the "existing_machine_id" field.
func ExistingMachineIDNotIn(vs ...uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldExistingMachineID, vs...))
}

// ExistingMachineIDGT applies the GT predicate on the "existing_machine_id" field.
func ExistingMachineIDGT(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldExistingMachineID, v))
}

// ExistingMachineIDGTE applies the GTE predicate on the "existing_machine_id" field.
func ExistingMachineIDGTE(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldExistingMachineID, v))
}

// ExistingMachineIDLT applies the LT predicate on the "existing_machine_id" field.
func ExistingMachineIDLT(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldExistingMachineID, v))
}

// ExistingMachineIDLTE applies the LTE predicate on the "existing_machine_id" field.
func ExistingMachineIDLTE(v uuid.UUID) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldExistingMachineID, v))
}

// ExistingMachineIDIsNil applies the IsNil predicate on the "existing_machine_id" field.
func ExistingMachineIDIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldExistingMachineID))
}

// ExistingMachineIDNotNil applies the NotNil predicate on the "existing_machine_id" field.
func ExistingMachineIDNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldExistingMachineID))
}

// SimilarityScoreEQ applies the EQ predicate on the "similarity_score" field.
func SimilarityScoreEQ(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldSimilarityScore, v))
}

// SimilarityScoreNEQ applies the NEQ predicate on the "similarity_score" field.
func SimilarityScoreNEQ(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldSimilarityScore, v))
}

// SimilarityScoreIn applies the In predicate on the "similarity_score" field.
func SimilarityScoreIn(vs ...float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreNotIn applies the NotIn predicate on the "similarity_score" field.
func SimilarityScoreNotIn(vs ...float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreGT applies the GT predicate on the "similarity_score" field.
func SimilarityScoreGT(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldSimilarityScore, v))
}

// SimilarityScoreGTE applies the GTE predicate on the "similarity_score" field.
func SimilarityScoreGTE(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldSimilarityScore, v))
}

// SimilarityScoreLT applies the LT predicate on the "similarity_score" field.
func SimilarityScoreLT(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldSimilarityScore, v))
}

// SimilarityScoreLTE applies the LTE predicate on the "similarity_score" field.
func SimilarityScoreLTE(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldSimilarityScore, v))
}

// SimilarityScoreIsNil applies the IsNil predicate on the "similarity_score" field.
func SimilarityScoreIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldSimilarityScore))
}

// SimilarityScoreNotNil applies the NotNil predicate on the "similarity_score" field.
func SimilarityScoreNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldSimilarityScore))
}

// DuplicateReasonEQ applies the EQ predicate on the "duplicate_reason" field.
func DuplicateReasonEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldDuplicateReason, v))
}

// DuplicateReasonNEQ applies the NEQ predicate on the "duplicate_reason" field.
func DuplicateReasonNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldDuplicateReason, v))
}

// DuplicateReasonIn applies the In predicate on the "duplicate_reason" field.
func DuplicateReasonIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldDuplicateReason, vs...))
}

// DuplicateReasonNotIn applies the NotIn predicate on the "duplicate_reason" field.
func DuplicateReasonNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldDuplicateReason, vs...))
}

// DuplicateReasonGT applies the GT predicate on the "duplicate_reason" field.
func DuplicateReasonGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldDuplicateReason, v))
}

// DuplicateReasonGTE applies the GTE predicate on the "duplicate_reason" field.
func DuplicateReasonGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldDuplicateReason, v))
}

// DuplicateReasonLT applies the LT predicate on the "duplicate_reason" field.
func DuplicateReasonLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldDuplicateReason, v))
}

// DuplicateReasonLTE applies the LTE predicate on the "duplicate_reason" field.
func DuplicateReasonLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldDuplicateReason, v))
}

// DuplicateReasonContains applies the Contains predicate on the "duplicate_reason" field.
func DuplicateReasonContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldDuplicateReason, v))
}

// DuplicateReasonHasPrefix applies the HasPrefix predicate on the "duplicate_reason" field.
func DuplicateReasonHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldDuplicateReason, v))
}

// DuplicateReasonHasSuffix applies the HasSuffix predicate on the "duplicate_reason" field.
func DuplicateReasonHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldDuplicateReason, v))
}

// DuplicateReasonIsNil applies the IsNil predicate on the "duplicate_reason" field.
func DuplicateReasonIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldDuplicateReason))
}

// DuplicateReasonNotNil applies the NotNil predicate on the "duplicate_reason" field.
func DuplicateReasonNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldDuplicateReason))
}

// DuplicateReasonEqualFold applies the EqualFold predicate on the "duplicate_reason" field.
func DuplicateReasonEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldDuplicateReason, v))
}

// DuplicateReasonContainsFold applies the ContainsFold predicate on the "duplicate_reason" field.
func DuplicateReasonContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldDuplicateReason, v))
}

// CheckedAtEQ applies the EQ predicate on the "checked_at" field.
func CheckedAtEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldCheckedAt, v))
}

// CheckedAtNEQ applies the NEQ predicate on the "checked_at" field.
func CheckedAtNEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldCheckedAt, v))
}

// CheckedAtIn applies the In predicate on the "checked_at" field.
func CheckedAtIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldCheckedAt, vs...))
}

// CheckedAtNotIn applies the NotIn predicate on the "checked_at" field.
func CheckedAtNotIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldCheckedAt, vs...))
}

// CheckedAtGT applies the GT predicate on the "checked_at" field.
func CheckedAtGT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldCheckedAt, v))
}

// CheckedAtGTE applies the GTE predicate on the "checked_at" field.
func CheckedAtGTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldCheckedAt, v))
}

// CheckedAtLT applies the LT predicate on the "checked_at" field.
func CheckedAtLT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldCheckedAt, v))
}

// CheckedAtLTE applies the LTE predicate on the "checked_at" field.
func CheckedAtLTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldCheckedAt, v))
}

// CheckedAtIsNil applies the IsNil predicate on the "checked_at" field.
func CheckedAtIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldCheckedAt))
}

// CheckedAtNotNil applies the NotNil predicate on the "checked_at" field.
func CheckedAtNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldCheckedAt))
}

// CheckStartedAtEQ applies the EQ predicate on the "check_started_at" field.
func CheckStartedAtEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldCheckStartedAt, v))
}

// CheckStartedAtNEQ applies the NEQ predicate on the "check_started_at" field.
func CheckStartedAtNEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldCheckStartedAt, v))
}

// CheckStartedAtIn applies the In predicate on the "check_started_at" field.
func CheckStartedAtIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldCheckStartedAt, vs...))
}

// CheckStartedAtNotIn applies the NotIn predicate on the "check_started_at" field.
func CheckStartedAtNotIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldCheckStartedAt, vs...))
}

// CheckStartedAtGT applies the GT predicate on the "check_started_at" field.
func CheckStartedAtGT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldCheckStartedAt, v))
}

// CheckStartedAtGTE applies the GTE predicate on the "check_started_at" field.
func CheckStartedAtGTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldCheckStartedAt, v))
}

// CheckStartedAtLT applies the LT predicate on the "check_started_at" field.
func CheckStartedAtLT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldCheckStartedAt, v))
}

// CheckStartedAtLTE applies the LTE predicate on the "check_started_at" field.
func CheckStartedAtLTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldCheckStartedAt, v))
}

// CheckStartedAtIsNil applies the IsNil predicate on the "check_started_at" field.
func CheckStartedAtIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldCheckStartedAt))
}

// CheckStartedAtNotNil applies the NotNil predicate on the "check_started_at" field.
func CheckStartedAtNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldCheckStartedAt))
}

// MlClassificationEQ applies the EQ predicate on the "ml_classification" field.
func MlClassificationEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMlClassification, v))
}

// MlClassificationNEQ applies the NEQ predicate on the "ml_classification" field.
func MlClassificationNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldMlClassification, v))
}

// MlClassificationIn applies the In predicate on the "ml_classification" field.
func MlClassificationIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldMlClassification, vs...))
}

// MlClassificationNotIn applies the NotIn predicate on the "ml_classification" field.
func MlClassificationNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldMlClassification, vs...))
}

// MlClassificationGT applies the GT predicate on the "ml_classification" field.
func MlClassificationGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldMlClassification, v))
}

// MlClassificationGTE applies the GTE predicate on the "ml_classification" field.
func MlClassificationGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldMlClassification, v))
}

// MlClassificationLT applies the LT predicate on the "ml_classification" field.
func MlClassificationLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldMlClassification, v))
}

// MlClassificationLTE applies the LTE predicate on the "ml_classification" field.
func MlClassificationLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldMlClassification, v))
}

// MlClassificationContains applies the Contains predicate on the "ml_classification" field.
func MlClassificationContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldMlClassification, v))
}

// MlClassificationHasPrefix applies the HasPrefix predicate on the "ml_classification" field.
func MlClassificationHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldMlClassification, v))
}

// MlClassificationHasSuffix applies the HasSuffix predicate on the "ml_classification" field.
func MlClassificationHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldMlClassification, v))
}

// MlClassificationIsNil applies the IsNil predicate on the "ml_classification" field.
func MlClassificationIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldMlClassification))
}

// MlClassificationNotNil applies the NotNil predicate on the "ml_classification" field.
func MlClassificationNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldMlClassification))
}

// MlClassificationEqualFold applies the EqualFold predicate on the "ml_classification" field.
func MlClassificationEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldMlClassification, v))
}

// MlClassificationContainsFold applies the ContainsFold predicate on the "ml_classification" field.
func MlClassificationContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldMlClassification, v))
}

// MlConfidenceEQ applies the EQ predicate on the "ml_confidence" field.
func MlConfidenceEQ(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMlConfidence, v))
}

// MlConfidenceNEQ applies the NEQ predicate on the "ml_confidence" field.
func MlConfidenceNEQ(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldMlConfidence, v))
}

// MlConfidenceIn applies the In predicate on the "ml_confidence" field.
func MlConfidenceIn(vs ...float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldMlConfidence, vs...))
}

// MlConfidenceNotIn applies the NotIn predicate on the "ml_confidence" field.
func MlConfidenceNotIn(vs ...float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldMlConfidence, vs...))
}

// MlConfidenceGT applies the GT predicate on the "ml_confidence" field.
func MlConfidenceGT(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldMlConfidence, v))
}

// MlConfidenceGTE applies the GTE predicate on the "ml_confidence" field.
func MlConfidenceGTE(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldMlConfidence, v))
}

// MlConfidenceLT applies the LT predicate on the "ml_confidence" field.
func MlConfidenceLT(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldMlConfidence, v))
}

// MlConfidenceLTE applies the LTE predicate on the "ml_confidence" field.
func MlConfidenceLTE(v float64) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldMlConfidence, v))
}

// MlConfidenceIsNil applies the IsNil predicate on the "ml_confidence" field.
func MlConfidenceIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldMlConfidence))
}

// MlConfidenceNotNil applies the NotNil predicate on the "ml_confidence" field.
func MlConfidenceNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldMlConfidence))
}

// MlReasonEQ applies the EQ predicate on the "ml_reason" field.
func MlReasonEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMlReason, v))
}

// MlReasonNEQ applies the NEQ predicate on the "ml_reason" field.
func MlReasonNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldMlReason, v))
}

// MlReasonIn applies the In predicate on the "ml_reason" field.
func MlReasonIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldMlReason, vs...))
}

// MlReasonNotIn applies the NotIn predicate on the "ml_reason" field.
func MlReasonNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldMlReason, vs...))
}

// MlReasonGT applies the GT predicate on the "ml_reason" field.
func MlReasonGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldMlReason, v))
}

// MlReasonGTE applies the GTE predicate on the "ml_reason" field.
func MlReasonGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldMlReason, v))
}

// MlReasonLT applies the LT predicate on the "ml_reason" field.
func MlReasonLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldMlReason, v))
}

// MlReasonLTE applies the LTE predicate on the "ml_reason" field.
func MlReasonLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldMlReason, v))
}

// MlReasonContains applies the Contains predicate on the "ml_reason" field.
func MlReasonContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldMlReason, v))
}

// MlReasonHasPrefix applies the HasPrefix predicate on the "ml_reason" field.
func MlReasonHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldMlReason, v))
}

// MlReasonHasSuffix applies the HasSuffix predicate on the "ml_reason" field.
func MlReasonHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldMlReason, v))
}

// MlReasonIsNil applies the IsNil predicate on the "ml_reason" field.
func MlReasonIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldMlReason))
}

// MlReasonNotNil applies the NotNil predicate on the "ml_reason" field.
func MlReasonNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldMlReason))
}

// MlReasonEqualFold applies the EqualFold predicate on the "ml_reason" field.
func MlReasonEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldMlReason, v))
}

// MlReasonContainsFold applies the ContainsFold predicate on the "ml_reason" field.
func MlReasonContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldMlReason, v))
}

// MachineTypeEQ applies the EQ predicate on the "machine_type" field.
func MachineTypeEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldMachineType, v))
}

// MachineTypeNEQ applies the NEQ predicate on the "machine_type" field.
func MachineTypeNEQ(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldMachineType, v))
}

// MachineTypeIn applies the In predicate on the "machine_type" field.
func MachineTypeIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldMachineType, vs...))
}

// MachineTypeNotIn applies the NotIn predicate on the "machine_type" field.
func MachineTypeNotIn(vs ...string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldMachineType, vs...))
}

// MachineTypeGT applies the GT predicate on the "machine_type" field.
func MachineTypeGT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldMachineType, v))
}

// MachineTypeGTE applies the GTE predicate on the "machine_type" field.
func MachineTypeGTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldMachineType, v))
}

// MachineTypeLT applies the LT predicate on the "machine_type" field.
func MachineTypeLT(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldMachineType, v))
}

// MachineTypeLTE applies the LTE predicate on the "machine_type" field.
func MachineTypeLTE(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldMachineType, v))
}

// MachineTypeContains applies the Contains predicate on the "machine_type" field.
func MachineTypeContains(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContains(FieldMachineType, v))
}

// MachineTypeHasPrefix applies the HasPrefix predicate on the "machine_type" field.
func MachineTypeHasPrefix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasPrefix(FieldMachineType, v))
}

// MachineTypeHasSuffix applies the HasSuffix predicate on the "machine_type" field.
func MachineTypeHasSuffix(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldHasSuffix(FieldMachineType, v))
}

// MachineTypeIsNil applies the IsNil predicate on the "machine_type" field.
func MachineTypeIsNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIsNull(FieldMachineType))
}

// MachineTypeNotNil applies the NotNil predicate on the "machine_type" field.
func MachineTypeNotNil() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotNull(FieldMachineType))
}

// MachineTypeEqualFold applies the EqualFold predicate on the "machine_type" field.
func MachineTypeEqualFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEqualFold(FieldMachineType, v))
}

// MachineTypeContainsFold applies the ContainsFold predicate on the "machine_type" field.
func MachineTypeContainsFold(v string) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldContainsFold(FieldMachineType, v))
}

// ShouldAutoSkipEQ applies the EQ predicate on the "should_auto_skip" field.
func ShouldAutoSkipEQ(v bool) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldShouldAutoSkip, v))
}

// ShouldAutoSkipNEQ applies the NEQ predicate on the "should_auto_skip" field.
func ShouldAutoSkipNEQ(v bool) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldShouldAutoSkip, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasManufacturer applies the HasEdge predicate on the "manufacturer" edge.
func HasManufacturer() predicate.DiscoveredURL {
	return predicate.DiscoveredURL(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ManufacturerTable, ManufacturerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasManufacturerWith applies the HasEdge predicate on the "manufacturer" edge with a given conditions (other predicates).
func HasManufacturerWith(preds ...predicate.Manufacturer) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(func(s *sql.Selector) {
		step := newManufacturerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiscoveredURL) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiscoveredURL) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiscoveredURL) predicate.DiscoveredURL {
	return predicate.DiscoveredURL(sql.NotPredicates(p))
}
