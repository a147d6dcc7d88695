package grade

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/alama/core"
)

var errBadImport = errors.New("this file does not look like an exported gradebook")

// ExportJSON serializes a Book for download.
func ExportJSON(book Book) ([]byte, error) {
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshalling gradebook")
	}
	return data, nil
}

type (
	importedCourse struct {
		ID      *string `json:"id"`
		Name    *string `json:"name"`
		Credits *string `json:"credits"`
		Grade   *string `json:"grade"`
	}

	importedSemester struct {
		ID      *string           `json:"id"`
		Courses *[]importedCourse `json:"courses"`
	}
)

// ParseImport validates and decodes a previously exported gradebook. Only an
// ordered array of objects, each bearing an identifier and an ordered array
// of course-like objects, is accepted; any other shape is rejected with a
// ValidationError and the caller's state stays untouched.
func ParseImport(data []byte) (Book, error) {
	var raw []importedSemester
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, core.NewValidationError(errBadImport)
	}

	book := make(Book, 0, len(raw))
	for _, sem := range raw {
		if sem.ID == nil || sem.Courses == nil {
			return nil, core.NewValidationError(errBadImport)
		}
		courses := make([]Course, 0, len(*sem.Courses))
		for _, c := range *sem.Courses {
			courses = append(courses, Course{
				ID:      strVal(c.ID),
				Name:    strVal(c.Name),
				Credits: strVal(c.Credits),
				Grade:   strVal(c.Grade),
			})
		}
		book = append(book, Semester{ID: *sem.ID, Courses: courses})
	}
	return book, nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
