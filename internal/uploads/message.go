package uploads

import (
	"fmt"

	"resume-intake/internal/notify"
	"resume-intake/internal/resumes"
)

func newUploadMessage(rec resumes.Record) notify.Message {
	body := fmt.Sprintf(`
New resume uploaded

Name  : %s
Email : %s
File  : %s
Time  : %s
`, rec.Name, rec.Email, rec.Filename, rec.UploadedAt)
	return notify.Message{Subject: subjectResumeUpload, Body: body}
}
