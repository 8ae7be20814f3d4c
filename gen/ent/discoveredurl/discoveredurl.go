// Code generated by ent, DO NOT EDIT.

package discoveredurl

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the discoveredurl type in the database.
	Label = "discovered_url"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldManufacturerID holds the string denoting the manufacturer_id field in the database.
	FieldManufacturerID = "manufacturer_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDiscoveredAt holds the string denoting the discovered_at field in the database.
	FieldDiscoveredAt = "discovered_at"
	// FieldScrapedAt holds the string denoting the scraped_at field in the database.
	FieldScrapedAt = "scraped_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldScrapedFields holds the string denoting the scraped_fields field in the database.
	FieldScrapedFields = "scraped_fields"
	// FieldDuplicateStatus holds the string denoting the duplicate_status field in the database.
	FieldDuplicateStatus = "duplicate_status"
	// FieldExistingMachineID holds the string denoting the existing_machine_id field in the database.
	FieldExistingMachineID = "existing_machine_id"
	// FieldSimilarityScore holds the string denoting the similarity_score field in the database.
	FieldSimilarityScore = "similarity_score"
	// FieldDuplicateReason holds the string denoting the duplicate_reason field in the database.
	FieldDuplicateReason = "duplicate_reason"
	// FieldCheckedAt holds the string denoting the checked_at field in the database.
	FieldCheckedAt = "checked_at"
	// FieldCheckStartedAt holds the string denoting the check_started_at field in the database.
	FieldCheckStartedAt = "check_started_at"
	// FieldMlClassification holds the string denoting the ml_classification field in the database.
	FieldMlClassification = "ml_classification"
	// FieldMlConfidence holds the string denoting the ml_confidence field in the database.
	FieldMlConfidence = "ml_confidence"
	// FieldMlReason holds the string denoting the ml_reason field in the database.
	FieldMlReason = "ml_reason"
	// FieldMachineType holds the string denoting the machine_type field in the database.
	FieldMachineType = "machine_type"
	// FieldShouldAutoSkip holds the string denoting the should_auto_skip field in the database.
	FieldShouldAutoSkip = "should_auto_skip"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeManufacturer holds the string denoting the manufacturer edge name in mutations.
	EdgeManufacturer = "manufacturer"
	// Table holds the table name of the discoveredurl in the database.
	Table = "discovered_url"
	// ManufacturerTable is the table that holds the manufacturer relation/edge.
	ManufacturerTable = "discovered_url"
	// ManufacturerInverseTable is the table name for the Manufacturer entity.
	// It exists in this package in order to avoid circular dependency with the "manufacturer" package.
	ManufacturerInverseTable = "manufacturers"
	// ManufacturerColumn is the table column denoting the manufacturer relation/edge.
	ManufacturerColumn = "manufacturer_id"
)

// Columns holds all SQL columns for discoveredurl fields.
var Columns = []string{
	FieldID,
	FieldManufacturerID,
	FieldURL,
	FieldCategory,
	FieldStatus,
	FieldDiscoveredAt,
	FieldScrapedAt,
	FieldErrorMessage,
	FieldScrapedFields,
	FieldDuplicateStatus,
	FieldExistingMachineID,
	FieldSimilarityScore,
	FieldDuplicateReason,
	FieldCheckedAt,
	FieldCheckStartedAt,
	FieldMlClassification,
	FieldMlConfidence,
	FieldMlReason,
	FieldMachineType,
	FieldShouldAutoSkip,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultDiscoveredAt holds the default value on creation for the "discovered_at" field.
	DefaultDiscoveredAt func() time.Time
	// DefaultDuplicateStatus holds the default value on creation for the "duplicate_status" field.
	DefaultDuplicateStatus string
	// DuplicateStatusValidator is a validator for the "duplicate_status" field. It is called by the builders before save.
	DuplicateStatusValidator func(string) error
	// MlClassificationValidator is a validator for the "ml_classification" field. It is called by the builders before save.
	MlClassificationValidator func(string) error
	// DefaultShouldAutoSkip holds the default value on creation for the "should_auto_skip" field.
	DefaultShouldAutoSkip bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DiscoveredURL queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByManufacturerID orders the results by the manufacturer_id field.
func ByManufacturerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturerID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDiscoveredAt orders the results by the discovered_at field.
func ByDiscoveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveredAt, opts...).ToFunc()
}

// ByScrapedAt orders the results by the scraped_at field.
func ByScrapedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScrapedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByDuplicateStatus orders the results by the duplicate_status field.
func ByDuplicateStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateStatus, opts...).ToFunc()
}

// ByExistingMachineID orders the results by the existing_machine_id field.
func ByExistingMachineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExistingMachineID, opts...).ToFunc()
}

// BySimilarityScore orders the results by the similarity_score field.
func BySimilarityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityScore, opts...).ToFunc()
}

// ByDuplicateReason orders the results by the duplicate_reason field.
func ByDuplicateReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateReason, opts...).ToFunc()
}

// ByCheckedAt orders the results by the checked_at field.
func ByCheckedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckedAt, opts...).ToFunc()
}

// ByCheckStartedAt orders the results by the check_started_at field.
func ByCheckStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckStartedAt, opts...).ToFunc()
}

// ByMlClassification orders the results by the ml_classification field.
func ByMlClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlClassification, opts...).ToFunc()
}

// ByMlConfidence orders the results by the ml_confidence field.
func ByMlConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlConfidence, opts...).ToFunc()
}

// ByMlReason orders the results by the ml_reason field.
func ByMlReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlReason, opts...).ToFunc()
}

// ByMachineType orders the results by the machine_type field.
func ByMachineType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMachineType, opts...).ToFunc()
}

// ByShouldAutoSkip orders the results by the should_auto_skip field.
func ByShouldAutoSkip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShouldAutoSkip, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByManufacturerField orders the results by manufacturer field.
func ByManufacturerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newManufacturerStep(), sql.OrderByField(field, opts...))
	}
}
func newManufacturerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ManufacturerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ManufacturerTable, ManufacturerColumn),
	)
}
