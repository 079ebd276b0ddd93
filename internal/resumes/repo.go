package resumes

import "context"

// Repo persists resume records.
type Repo interface {
	Put(ctx context.Context, rec Record) error
}
