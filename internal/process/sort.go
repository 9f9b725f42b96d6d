package process

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the column a listing is ordered by.
type SortField int

const (
	SortByName SortField = iota
	SortByKey
	SortByDescription
)

// SortFields lists every sortable column in display order.
var SortFields = []SortField{SortByName, SortByKey, SortByDescription}

func (f SortField) String() string {
	switch f {
	case SortByName:
		return "name"
	case SortByKey:
		return "key"
	case SortByDescription:
		return "description"
	default:
		return fmt.Sprintf("SortField(%d)", int(f))
	}
}

func (f SortField) value(p Process) string {
	switch f {
	case SortByKey:
		return p.Key
	case SortByDescription:
		return p.Description
	default:
		return p.Name
	}
}

// ParseSortField maps a column name onto a SortField.
func ParseSortField(raw string) (SortField, error) {
	for _, f := range SortFields {
		if strings.EqualFold(strings.TrimSpace(raw), f.String()) {
			return f, nil
		}
	}
	return SortByName, fmt.Errorf("invalid sort field %q (valid fields: name, key, description)", raw)
}

// Direction is the sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ParseDirection accepts "asc" or "desc".
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("invalid order direction: %s (expected asc or desc)", raw)
	}
}

// SortState is the current column and direction.
type SortState struct {
	Field     SortField
	Direction Direction
}

// DefaultSort orders by name, ascending.
func DefaultSort() SortState {
	return SortState{Field: SortByName, Direction: Ascending}
}

// Toggle applies a header click: the same field flips direction,
// a different field starts ascending.
func (s SortState) Toggle(f SortField) SortState {
	if s.Field == f {
		return SortState{Field: f, Direction: s.Direction.Reverse()}
	}
	return SortState{Field: f, Direction: Ascending}
}

// Sort returns a new slice ordered by s using Unicode collation.
// The sort is stable: records with equal keys keep their input order
// in both directions.
func Sort(ps []Process, s SortState) []Process {
	out := slices.Clone(ps)
	if out == nil {
		out = []Process{}
	}
	// Collators keep scratch buffers and are not safe to share.
	col := collate.New(language.Und)
	slices.SortStableFunc(out, func(a, b Process) int {
		c := col.CompareString(s.Field.value(a), s.Field.value(b))
		if s.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}
