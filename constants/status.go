package constants

// DocStatus is the canonical processing status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusPending    DocStatus = "pending"    // uploaded, not yet picked up
	DocStatusProcessing DocStatus = "processing" // a pipeline stage is running
	DocStatusSuccess    DocStatus = "success"    // last stage completed
	DocStatusFailed     DocStatus = "failed"     // terminal failure, see processing_error
)

// DocStatuses lists the allowed status values for schema validation.
var DocStatuses = []string{
	string(DocStatusPending),
	string(DocStatusProcessing),
	string(DocStatusSuccess),
	string(DocStatusFailed),
}
