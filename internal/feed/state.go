package feed

import "storyfeed/internal/domain"

// LoadType says which direction a load extends the cached window.
type LoadType int

const (
	// LoadRefresh restarts the cached run from the current anchor.
	LoadRefresh LoadType = iota
	// LoadPrepend extends the window backward from the first cached row.
	LoadPrepend
	// LoadAppend extends the window forward from the last cached row.
	LoadAppend
)

func (t LoadType) String() string {
	switch t {
	case LoadRefresh:
		return "refresh"
	case LoadPrepend:
		return "prepend"
	case LoadAppend:
		return "append"
	default:
		return "unknown"
	}
}

// PagingState is the caller's view of the loaded window: the pages held
// so far, the row index nearest the current anchor (-1 when unknown),
// and the page size to request.
type PagingState struct {
	Pages       [][]domain.Story
	AnchorIndex int
	PageSize    int
}

// FirstItem returns the first row of the first non-empty page.
func (s PagingState) FirstItem() *domain.Story {
	for _, page := range s.Pages {
		if len(page) > 0 {
			return &page[0]
		}
	}
	return nil
}

// LastItem returns the last row of the last non-empty page.
func (s PagingState) LastItem() *domain.Story {
	for i := len(s.Pages) - 1; i >= 0; i-- {
		if len(s.Pages[i]) > 0 {
			return &s.Pages[i][len(s.Pages[i])-1]
		}
	}
	return nil
}

// ClosestToAnchor returns the loaded row nearest the anchor index,
// clamped to the window, or nil when nothing is loaded.
func (s PagingState) ClosestToAnchor() *domain.Story {
	if s.AnchorIndex < 0 {
		return nil
	}
	idx := 0
	var closest *domain.Story
	for p := range s.Pages {
		for i := range s.Pages[p] {
			if closest == nil || idx <= s.AnchorIndex {
				closest = &s.Pages[p][i]
			}
			idx++
		}
	}
	return closest
}

// LoadResult is the terminal outcome of one successful mediation call.
type LoadResult struct {
	// EndOfPaginationReached is set when the remote run has no more
	// pages in the requested direction.
	EndOfPaginationReached bool
	// Stories holds the rows written by this load, in fetch order.
	Stories []domain.Story
}
