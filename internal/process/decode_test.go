package process

import (
	"reflect"
	"testing"
)

func TestDecodeList(t *testing.T) {
	want := []Process{
		{ID: 1, Name: "Invoice Bot", Key: "inv-1", Version: "1.0.2", FolderID: 2},
		{ID: 2, Name: "alpha", Key: "a-2"},
	}
	tests := []struct {
		name string
		body string
		want []Process
	}{
		{
			name: "bare array",
			body: `[{"id":1,"name":"Invoice Bot","key":"inv-1","processVersion":"1.0.2","folderId":2},{"id":2,"name":"alpha","key":"a-2"}]`,
			want: want,
		},
		{
			name: "value envelope",
			body: `{"@odata.count":2,"value":[{"id":1,"name":"Invoice Bot","key":"inv-1","processVersion":"1.0.2","folderId":2},{"id":2,"name":"alpha","key":"a-2"}]}`,
			want: want,
		},
		{name: "empty envelope", body: `{}`, want: []Process{}},
		{name: "null", body: ` null `, want: []Process{}},
		{name: "empty body", body: ``, want: []Process{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeList([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeListRejectsScalars(t *testing.T) {
	if _, err := DecodeList([]byte(`"nope"`)); err == nil {
		t.Fatal("expected error for scalar payload")
	}
	if _, err := DecodeList([]byte(`[{"id":"x"}]`)); err == nil {
		t.Fatal("expected error for bad id type")
	}
}
