package interfaces

import "context"

// IApplicantDirectory resolves applicant identity for queue enrichment.
// Lookups are best-effort: callers degrade to a placeholder on error and
// never abort a listing because the directory is down.

type IApplicantDirectory interface {
	GetDisplayName(ctx context.Context, ownerID string) (string, error)
	GetIdentifierDocument(ctx context.Context, ownerID string) (string, error)
}
