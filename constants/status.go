package constants

// ScrapeStatus is the canonical scrape status for rows in discovered_url.
type ScrapeStatus string

// Stable values (store these exact strings in DB).
const (
	ScrapePending ScrapeStatus = "pending" // discovered, not yet dispatched
	ScrapeScraped ScrapeStatus = "scraped" // extraction succeeded
	ScrapeSkipped ScrapeStatus = "skipped" // operator skipped
	ScrapeFailed  ScrapeStatus = "failed"  // extraction failed, re-selectable
)

// ScrapeStatuses lists every legal scrape status value.
var ScrapeStatuses = []string{
	string(ScrapePending),
	string(ScrapeScraped),
	string(ScrapeSkipped),
	string(ScrapeFailed),
}

// Terminal reports whether the status accepts no further scrape outcome
// without an explicit re-queue.
func (s ScrapeStatus) Terminal() bool {
	return s == ScrapeScraped || s == ScrapeSkipped || s == ScrapeFailed
}

// DuplicateStatus is the canonical duplicate-resolution status for rows in discovered_url.
type DuplicateStatus string

const (
	DuplicatePending      DuplicateStatus = "pending"       // not yet checked
	DuplicateConfirmed    DuplicateStatus = "duplicate"     // matched an existing catalog machine
	DuplicateUnique       DuplicateStatus = "unique"        // no sufficiently similar catalog machine
	DuplicateManualReview DuplicateStatus = "manual_review" // ambiguous band, human decides
)

// DuplicateStatuses lists every legal duplicate status value.
var DuplicateStatuses = []string{
	string(DuplicatePending),
	string(DuplicateConfirmed),
	string(DuplicateUnique),
	string(DuplicateManualReview),
}

// Duplicate reason values recorded alongside a duplicate status.
const (
	ReasonSimilarityMatch = "similarity_match"
	ReasonManualLink      = "manual_link"
	ReasonManualConfirm   = "manual_confirm"
	ReasonManualUnique    = "manual_unique"
	ReasonManualReview    = "manual_review"
)

// ManualReason reports whether the recorded reason came from a human action.
// Automatic recheck results never overwrite a manual decision.
func ManualReason(reason string) bool {
	return reason == ReasonManualLink || reason == ReasonManualConfirm ||
		reason == ReasonManualUnique || reason == ReasonManualReview
}

// BatchStatus describes a scrape batch handle's lifecycle.
type BatchStatus string

const (
	BatchRunning   BatchStatus = "RUNNING"
	BatchCompleted BatchStatus = "COMPLETED"
)
