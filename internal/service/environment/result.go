package environment

import "github.com/leadwind/dopebook-backend/internal/domain"

// ListResult is one page of environment snapshots.
type ListResult struct {
	Environments []domain.EnvironmentSnapshot
	Page         domain.PageInfo
}
