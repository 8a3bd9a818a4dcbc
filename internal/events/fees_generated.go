package events

import "time"

const FeesGeneratedTopic = "school.fee.generated.v1"

// FeesGeneratedEvent summarises one generation run for one school.
type FeesGeneratedEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	SchoolID          string    `json:"school_id"`
	Trigger           string    `json:"trigger"`
	AcademicYear      string    `json:"academic_year"`
	FeeMonth          string    `json:"fee_month,omitempty"`
	FeesCreated       int       `json:"fees_created"`
	StudentsProcessed int       `json:"students_processed"`
	OccurredAt        time.Time `json:"occurred_at"`
}
