package process

import (
	"reflect"
	"testing"
)

func sampleProcesses() []Process {
	return []Process{
		{ID: 1, Name: "Invoice Bot", Key: "inv-1", FolderID: 2},
		{ID: 2, Name: "alpha", Key: "a-2", FolderID: 1},
		{ID: 3, Name: "Payroll Sync", Key: "PAY-3", Description: "Nightly invoice reconciliation", FolderID: 3},
		{ID: 4, Name: "Orphan", Key: "orph-4"},
	}
}

func ids(ps []Process) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []int64
	}{
		{
			name:     "empty criteria returns everything",
			criteria: Criteria{},
			want:     []int64{1, 2, 3, 4},
		},
		{
			name:     "whitespace search is no filter",
			criteria: Criteria{Search: "   "},
			want:     []int64{1, 2, 3, 4},
		},
		{
			name:     "search matches name case-insensitively",
			criteria: Criteria{Search: "invoice bot"},
			want:     []int64{1},
		},
		{
			name:     "search matches name or description",
			criteria: Criteria{Search: "INVOICE"},
			want:     []int64{1, 3},
		},
		{
			name:     "search matches key",
			criteria: Criteria{Search: "pay-"},
			want:     []int64{3},
		},
		{
			name:     "search term is trimmed",
			criteria: Criteria{Search: "  orph  "},
			want:     []int64{4},
		},
		{
			name:     "folder filter",
			criteria: Criteria{Folder: 2},
			want:     []int64{1},
		},
		{
			name:     "missing folder resolves to default folder",
			criteria: Criteria{Folder: DefaultFolderID},
			want:     []int64{2, 4},
		},
		{
			name:     "folder and search combine",
			criteria: Criteria{Folder: 3, Search: "invoice"},
			want:     []int64{3},
		},
		{
			name:     "no match",
			criteria: Criteria{Search: "nothing-here"},
			want:     []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sampleProcesses(), tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Filter(%+v) = %v, want %v", tt.criteria, got, tt.want)
			}
		})
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, Criteria{Search: "x"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	for _, c := range []Criteria{
		{Search: "invoice"},
		{Search: "a"},
		{Folder: 1},
		{Folder: 3, Search: "sync"},
		{Search: " "},
	} {
		once := Filter(sampleProcesses(), c)
		twice := Filter(once, c)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("filter not idempotent for %+v: %v vs %v", c, ids(once), ids(twice))
		}
	}
}

func TestFilterFolderMembership(t *testing.T) {
	for _, f := range []FolderFilter{1, 2, 3, 4} {
		for _, p := range Filter(sampleProcesses(), Criteria{Folder: f}) {
			if p.Folder() != int(f) {
				t.Fatalf("folder %d filter returned process %d in folder %d", f, p.ID, p.Folder())
			}
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := sampleProcesses()
	before := append([]Process(nil), in...)
	_ = Filter(in, Criteria{Search: "alpha"})
	if !reflect.DeepEqual(in, before) {
		t.Fatalf("input modified: %+v", in)
	}
}

func TestFilterToleratesMissingFields(t *testing.T) {
	ps := []Process{{ID: 9}}
	if got := Filter(ps, Criteria{Search: "x"}); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
	if got := Filter(ps, Criteria{}); len(got) != 1 {
		t.Fatalf("expected record to pass empty criteria, got %+v", got)
	}
}

func TestParseFolderFilter(t *testing.T) {
	tests := []struct {
		raw     string
		want    FolderFilter
		wantErr bool
	}{
		{raw: "", want: AllFolders},
		{raw: "all", want: AllFolders},
		{raw: "ALL", want: AllFolders},
		{raw: "2", want: 2},
		{raw: " 4 ", want: 4},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "prod", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFolderFilter(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseFolderFilter(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseFolderFilter(%q) unexpected error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFolderFilter(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
