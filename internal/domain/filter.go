package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Pagination limits for all list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is 1-indexed page/limit pagination.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies defaults and clamps the limit to [1,MaxLimit].
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the row offset for the normalized page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo describes one page of a list result.
type PageInfo struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NewPageInfo computes TotalPages = ceil(total/limit) for a normalized request.
func NewPageInfo(p PageRequest, total int) PageInfo {
	return PageInfo{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}
}

// RifleFilter narrows rifle profile lists. Sort columns: name, created_at.
type RifleFilter struct {
	Caliber   *string
	Search    *string // matches name or caliber, case-insensitive substring
	SortBy    string
	SortOrder SortOrder
	PageRequest
}

// AmmoFilter narrows ammo profile lists. Sort columns: name, created_at.
type AmmoFilter struct {
	RifleID      *uuid.UUID
	Manufacturer *string
	Search       *string // matches name, manufacturer or bullet type
	SortBy       string
	SortOrder    SortOrder
	PageRequest
}

// EnvironmentFilter narrows snapshot lists. Sorted by taken_at.
type EnvironmentFilter struct {
	TemperatureMin *float64
	TemperatureMax *float64
	TakenFrom      *time.Time
	TakenTo        *time.Time
	SortOrder      SortOrder
	PageRequest
}

// DopeLogSort enumerates the supported DOPE log list orderings.
type DopeLogSort string

const (
	DopeLogSortNewest        DopeLogSort = "newest"
	DopeLogSortDistanceAsc   DopeLogSort = "distance_asc"
	DopeLogSortDistanceDesc  DopeLogSort = "distance_desc"
	DopeLogSortHitPercentage DopeLogSort = "hit_percentage"
)

func (s DopeLogSort) IsValid() bool {
	switch s {
	case DopeLogSortNewest, DopeLogSortDistanceAsc, DopeLogSortDistanceDesc, DopeLogSortHitPercentage:
		return true
	}
	return false
}

// DopeLogFilter narrows DOPE log lists. Distance bounds apply to the
// normalized distance_yards field, not the raw entered distance.
type DopeLogFilter struct {
	RifleID     *uuid.UUID
	AmmoID      *uuid.UUID
	DistanceMin *float64
	DistanceMax *float64
	TargetType  *TargetType
	Sort        DopeLogSort
	PageRequest
}
