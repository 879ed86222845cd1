package engine

import "github.com/hjops/alarmtop/model"

// DefaultPageSize matches the upstream dashboard's history page size.
const DefaultPageSize = 20

// Paginate slices a filtered alarm list into one 1-indexed page. Out-of-range
// pages clamp to the nearest valid page, and a non-positive page size falls
// back to DefaultPageSize, so the result is always well-formed.
func Paginate(alarms []model.AlarmRecord, page, pageSize int) model.HistoryPage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(alarms)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return model.HistoryPage{
		Alarms:     alarms[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// ShowingRange returns the 1-indexed item range a page covers, for the
// "Showing 21-40 of 97" pagination footer. Both bounds are 0 for an empty
// page.
func ShowingRange(p model.HistoryPage) (first, last int) {
	if p.TotalItems == 0 || len(p.Alarms) == 0 {
		return 0, 0
	}
	first = (p.Page-1)*p.PageSize + 1
	last = first + len(p.Alarms) - 1
	return first, last
}
