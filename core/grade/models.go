package grade

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Field identifies one of the three editable columns of a Course.
type Field string

const (
	FieldName    Field = "name"
	FieldCredits Field = "credits"
	FieldGrade   Field = "grade"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldCredits, FieldGrade:
		return true
	}
	return false
}

// Course is one row of a semester. Credits and Grade hold the raw text the
// student typed (or pasted); they are only parsed to numbers at computation
// time so partial input survives edits untouched.
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Credits string `json:"credits"`
	Grade   string `json:"grade"`
}

// SetField writes `value` into the column identified by `f`.
// Unknown fields are ignored.
func (c *Course) SetField(f Field, value string) {
	switch f {
	case FieldName:
		c.Name = value
	case FieldCredits:
		c.Credits = value
	case FieldGrade:
		c.Grade = value
	}
}

// Semester groups an ordered list of courses. Its ID is the 1-based position
// label ("1", "2", ...); deleting a semester renumbers the rest, so the ID
// tracks position, not a stable identity.
type Semester struct {
	ID      string   `json:"id"`
	Courses []Course `json:"courses"`
}

func (s Semester) courseIndex(courseID string) int {
	for i, c := range s.Courses {
		if c.ID == courseID {
			return i
		}
	}
	return -1
}

// Book is the student's whole gradebook: an ordered list of semesters.
// The order matters; the cumulative average runs over a prefix of it.
type Book []Semester

func (b Book) semesterIndex(semID string) int {
	for i, s := range b {
		if s.ID == semID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can never mutate committed state.
func (b Book) Clone() Book {
	if b == nil {
		return nil
	}
	out := make(Book, len(b))
	for i, s := range b {
		out[i] = Semester{ID: s.ID, Courses: cloneCourses(s.Courses)}
	}
	return out
}

func cloneCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}

// IDGenerator draws process-wide unique course IDs. It is injectable so
// tests can supply deterministic values.
type IDGenerator func() string

func defaultIDGenerator() string { return uuid.New().String() }

// EditCourse is the payload for a single-field course edit.
type EditCourse struct {
	Field Field  `json:"field" validate:"required,oneof=name credits grade"`
	Value string `json:"value"`
}

func (ec *EditCourse) Validate(validate *validator.Validate) error {
	return validate.Struct(ec)
}

// PasteCourses is the payload for a clipboard paste targeting one cell.
type PasteCourses struct {
	Field Field  `json:"field" validate:"required,oneof=name credits grade"`
	Text  string `json:"text" validate:"required"`
}

func (pc *PasteCourses) Validate(validate *validator.Validate) error {
	return validate.Struct(pc)
}
