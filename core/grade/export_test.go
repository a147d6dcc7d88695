package grade

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/alama/core"
)

func TestExportImportRoundTrip(t *testing.T) {
	book := twoSemesterBook()

	data, err := ExportJSON(book)
	if err != nil {
		t.Fatalf("ExportJSON() failed: %v", err)
	}
	got, err := ParseImport(data)
	if err != nil {
		t.Fatalf("ParseImport() failed: %v", err)
	}
	assert.Equal(t, book, got)
}

func TestParseImport_rejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not JSON", data: "hello"},
		{name: "object instead of array", data: `{"id": "1", "courses": []}`},
		{name: "array of scalars", data: `[1, 2, 3]`},
		{name: "semester missing id", data: `[{"courses": []}]`},
		{name: "semester missing courses", data: `[{"id": "1"}]`},
		{name: "courses not an array", data: `[{"id": "1", "courses": "nope"}]`},
		{name: "course not an object", data: `[{"id": "1", "courses": [42]}]`},
		{name: "course field with wrong type", data: `[{"id": "1", "courses": [{"name": {}}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := ParseImport([]byte(tt.data))
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("err = %v; want ValidationError", err)
			}
			if book != nil {
				t.Errorf("book = %+v; want nil on rejection", book)
			}
		})
	}
}

func TestParseImport_tolerantCourseShape(t *testing.T) {
	// "course-like" means object shape only; missing fields default to empty
	data := `[{"id": "3", "courses": [{}, {"name": "Latin"}]}]`

	book, err := ParseImport([]byte(data))
	if err != nil {
		t.Fatalf("ParseImport() failed: %v", err)
	}
	want := Book{{ID: "3", Courses: []Course{{}, {Name: "Latin"}}}}
	assert.Equal(t, want, book)
}
