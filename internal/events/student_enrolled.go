package events

import "time"

const StudentEnrolledTopic = "school.roster.student.enrolled.v1"

// StudentEnrolledEvent is published by the roster service when a student is
// enrolled or re-enrolled for an academic year.
type StudentEnrolledEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	SchoolID     string    `json:"school_id"`
	StudentID    string    `json:"student_id"`
	GradeLevelID string    `json:"grade_level_id"`
	AcademicYear string    `json:"academic_year"`
	CategoryIDs  []string  `json:"category_ids,omitempty"`
	EnrolledBy   string    `json:"enrolled_by,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
