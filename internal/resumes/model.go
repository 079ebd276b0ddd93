package resumes

import "time"

// TimestampLayout is the ISO-8601 form used for UploadedAt.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Record is the persisted metadata for one uploaded resume. It is written once and never updated.
type Record struct {
	ResumeID   string `dynamodbav:"resumeId" json:"resumeId"`
	Name       string `dynamodbav:"name" json:"name"`
	Email      string `dynamodbav:"email" json:"email"`
	Filename   string `dynamodbav:"filename" json:"filename"`
	UploadedAt string `dynamodbav:"uploadedAt" json:"uploadedAt"`
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FilenameFor derives the stored object name for a resume id.
func FilenameFor(resumeID string) string {
	return resumeID + ".pdf"
}
