package rifle

import "github.com/leadwind/dopebook-backend/internal/domain"

// ListResult is one page of rifle profiles.
type ListResult struct {
	Rifles []domain.RifleProfile
	Page   domain.PageInfo
}
