package ammo

import "github.com/leadwind/dopebook-backend/internal/domain"

// ListResult is one page of ammo profiles.
type ListResult struct {
	Ammo []domain.AmmoProfile
	Page domain.PageInfo
}
