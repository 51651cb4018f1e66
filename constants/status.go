package constants

// ExtractionStatus is the canonical status for rows in sds_documents.
// These exact lowercase strings are a frozen boundary: the dashboard and
// the label printer read them straight out of the persisted record.
type ExtractionStatus string

const (
	StatusPending       ExtractionStatus = "pending"
	StatusCompleted     ExtractionStatus = "completed"
	StatusOSHACompliant ExtractionStatus = "osha_compliant"
	StatusManualReview  ExtractionStatus = "manual_review_required"
	StatusAIEnhanced    ExtractionStatus = "ai_enhanced"
)

// AllExtractionStatuses lists every valid extraction status, for schema
// validation and exhaustiveness checks.
var AllExtractionStatuses = []ExtractionStatus{
	StatusPending,
	StatusCompleted,
	StatusOSHACompliant,
	StatusManualReview,
	StatusAIEnhanced,
}

// ExtractionStatusStrings returns the statuses as plain strings.
func ExtractionStatusStrings() []string {
	out := make([]string, len(AllExtractionStatuses))
	for i, s := range AllExtractionStatuses {
		out[i] = string(s)
	}
	return out
}

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // extraction completed and persisted
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

// JobStatuses lists the allowed job status strings for schema validation.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusExtractOK),
	string(JobStatusFailed),
}
