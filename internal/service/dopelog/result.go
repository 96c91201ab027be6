package dopelog

import "github.com/leadwind/dopebook-backend/internal/domain"

// ListResult is one page of DOPE log entries.
type ListResult struct {
	Logs []domain.DopeLog
	Page domain.PageInfo
}
