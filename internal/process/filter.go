package process

import (
	"fmt"
	"strconv"
	"strings"
)

// FolderFilter narrows a listing to one folder. AllFolders disables it.
type FolderFilter int

// AllFolders matches every folder.
const AllFolders FolderFilter = 0

// Set reports whether the filter restricts anything.
func (f FolderFilter) Set() bool { return f > 0 }

// Matches reports whether p belongs to the filtered folder.
func (f FolderFilter) Matches(p Process) bool {
	return !f.Set() || int(f) == p.Folder()
}

func (f FolderFilter) String() string {
	if !f.Set() {
		return "all"
	}
	return strconv.Itoa(int(f))
}

// ParseFolderFilter accepts "all", "" or a positive folder id.
func ParseFolderFilter(raw string) (FolderFilter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return AllFolders, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return AllFolders, fmt.Errorf("invalid folder %q (expected a positive id or \"all\")", raw)
	}
	return FolderFilter(id), nil
}

// Criteria is the user-entered filter state.
type Criteria struct {
	Search string
	Folder FolderFilter
}

// Term returns the normalized search term; empty means no text filter.
func (c Criteria) Term() string {
	return strings.ToLower(strings.TrimSpace(c.Search))
}

// Matches reports whether p passes both the folder and the text filter.
func (c Criteria) Matches(p Process) bool {
	if !c.Folder.Matches(p) {
		return false
	}
	term := c.Term()
	if term == "" {
		return true
	}
	return containsFold(p.Name, term) ||
		containsFold(p.Key, term) ||
		containsFold(p.Description, term)
}

// Filter returns the processes matching c in their original order.
// The input slice is never modified.
func Filter(ps []Process, c Criteria) []Process {
	out := make([]Process, 0, len(ps))
	for _, p := range ps {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Visible is Filter followed by Sort.
func Visible(ps []Process, c Criteria, s SortState) []Process {
	return Sort(Filter(ps, c), s)
}

func containsFold(field, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(field), lowerTerm)
}
