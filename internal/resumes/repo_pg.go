package resumes

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PGRepo stores records in the resume_uploads table.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Put(ctx context.Context, rec Record) error {
	uploadedAt, err := time.Parse(TimestampLayout, rec.UploadedAt)
	if err != nil {
		return fmt.Errorf("parse uploadedAt %q: %w", rec.UploadedAt, err)
	}
	const query = `
INSERT INTO resume_uploads (resume_id, name, email, filename, uploaded_at)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.DB.ExecContext(ctx, query,
		rec.ResumeID,
		rec.Name,
		rec.Email,
		rec.Filename,
		uploadedAt,
	); err != nil {
		return fmt.Errorf("insert resume_uploads id=%s: %w", rec.ResumeID, err)
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
