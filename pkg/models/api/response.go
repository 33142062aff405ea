package api

// RecordStatus tracks one record from receipt through processing to a
// terminal state. Every record leaves the handler in sent, skipped or failed.
type RecordStatus string

const (
	RecordReceived   RecordStatus = "received"
	RecordProcessing RecordStatus = "processing"
	RecordSent       RecordStatus = "sent"
	RecordSkipped    RecordStatus = "skipped"
	RecordFailed     RecordStatus = "failed"
)

// RecordResult is the terminal outcome of one S3 record within a batch.
type RecordResult struct {
	Bucket string       `json:"bucket"`
	Key    string       `json:"key"`
	Status RecordStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`
}

// BatchSummary aggregates record results of a single invocation.
type BatchSummary struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Response is the invocation result returned to the runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
