package recipes

import "strings"

// Sort tokens are a direction prefix followed by a field name,
// e.g. "-updated_at" or "title".
const (
	OrderAsc  = ""
	OrderDesc = "-"

	FilterTitle       = "title"
	FilterDateUpdated = "updated_at"
	// filterDateCreated is accepted for compatibility and sorts by
	// modification time like FilterDateUpdated.
	filterDateCreated = "created_at"
)

// DefaultPageSize applies when Search is given a non-positive page size.
const DefaultPageSize = 30

// SortOrder is one of the four supported orderings.
type SortOrder int

const (
	SortUpdatedDesc SortOrder = iota
	SortUpdatedAsc
	SortTitleDesc
	SortTitleAsc
)

// ParseOrder maps a sort token to a SortOrder. Unknown tokens fall back to
// SortUpdatedDesc.
func ParseOrder(token string) SortOrder {
	token = strings.TrimSpace(strings.ToLower(token))
	desc := strings.HasPrefix(token, OrderDesc)
	field := strings.TrimPrefix(token, OrderDesc)

	switch field {
	case FilterTitle:
		if desc {
			return SortTitleDesc
		}
		return SortTitleAsc
	case FilterDateUpdated, filterDateCreated:
		if desc {
			return SortUpdatedDesc
		}
		return SortUpdatedAsc
	default:
		return SortUpdatedDesc
	}
}

// Token returns the canonical sort token for o.
func (o SortOrder) Token() string {
	switch o {
	case SortUpdatedAsc:
		return OrderAsc + FilterDateUpdated
	case SortTitleDesc:
		return OrderDesc + FilterTitle
	case SortTitleAsc:
		return OrderAsc + FilterTitle
	default:
		return OrderDesc + FilterDateUpdated
	}
}

// orderBy returns the ORDER BY clause for o. The id tiebreak keeps paging
// stable when sort keys collide.
func (o SortOrder) orderBy() string {
	switch o {
	case SortUpdatedAsc:
		return "updated_at ASC, id ASC"
	case SortTitleDesc:
		return "LOWER(title) DESC, id ASC"
	case SortTitleAsc:
		return "LOWER(title) ASC, id ASC"
	default:
		return "updated_at DESC, id ASC"
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
