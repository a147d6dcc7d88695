package grade

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/trezcool/alama/core"
)

// memRepo is a minimal fixed-slot repository for service tests.
type memRepo struct {
	book  Book
	saves int
}

func (r *memRepo) LoadBook() (Book, error) { return r.book.Clone(), nil }
func (r *memRepo) SaveBook(b Book) error {
	r.book = b.Clone()
	r.saves++
	return nil
}

func newTestService(t *testing.T, book Book) (*Service, *memRepo) {
	t.Helper()
	repo := &memRepo{book: book}
	svc, err := NewService(repo, sequentialIDs("id"))
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return svc, repo
}

func twoSemesterBook() Book {
	return Book{
		{ID: "1", Courses: []Course{
			{ID: "c1", Name: "Algebra", Credits: "4", Grade: "9"},
			{ID: "c2", Name: "Physics", Credits: "3", Grade: "8"},
		}},
		{ID: "2", Courses: []Course{
			{ID: "c3", Name: "Drawing", Credits: "2", Grade: "10"},
		}},
		{ID: "3", Courses: []Course{
			{ID: "c4", Name: "History", Credits: "3", Grade: "7"},
		}},
	}
}

func TestService_seedsEmptySlot(t *testing.T) {
	svc, repo := newTestService(t, nil)

	book := svc.Book()
	if len(book) != 1 || len(book[0].Courses) != 1 {
		t.Fatalf("seeded book = %+v; want 1 semester with 1 course", book)
	}
	if book[0].ID != "1" {
		t.Errorf("seed semester ID = %q; want \"1\"", book[0].ID)
	}
	if repo.saves != 1 {
		t.Errorf("seed not persisted; saves = %d", repo.saves)
	}
}

func TestService_AddSemester(t *testing.T) {
	svc, _ := newTestService(t, twoSemesterBook())

	sem, err := svc.AddSemester()
	if err != nil {
		t.Fatalf("AddSemester() failed: %v", err)
	}
	if sem.ID != "4" {
		t.Errorf("new semester ID = %q; want \"4\"", sem.ID)
	}
	if len(sem.Courses) != 1 || sem.Courses[0].Name != "" {
		t.Errorf("new semester courses = %+v; want one empty course", sem.Courses)
	}
}

func TestService_SetCourseField(t *testing.T) {
	svc, repo := newTestService(t, twoSemesterBook())

	if err := svc.SetCourseField("1", "c2", FieldGrade, "9.5"); err != nil {
		t.Fatalf("SetCourseField() failed: %v", err)
	}
	if got := svc.Book()[0].Courses[1].Grade; got != "9.5" {
		t.Errorf("grade = %q; want \"9.5\"", got)
	}
	if repo.book[0].Courses[1].Grade != "9.5" {
		t.Error("change not persisted")
	}

	if err := svc.SetCourseField("1", "nope", FieldGrade, "1"); errors.Cause(err) != ErrCourseNotFound {
		t.Errorf("err = %v; want ErrCourseNotFound", err)
	}
	if err := svc.SetCourseField("9", "c1", FieldGrade, "1"); errors.Cause(err) != ErrSemesterNotFound {
		t.Errorf("err = %v; want ErrSemesterNotFound", err)
	}
}

func TestService_RemoveCourse(t *testing.T) {
	t.Run("plain removal keeps the semester", func(t *testing.T) {
		svc, _ := newTestService(t, twoSemesterBook())
		if err := svc.RemoveCourse("1", "c1"); err != nil {
			t.Fatalf("RemoveCourse() failed: %v", err)
		}
		book := svc.Book()
		if len(book) != 3 || len(book[0].Courses) != 1 || book[0].Courses[0].ID != "c2" {
			t.Errorf("book = %+v; want semester 1 with only c2", book)
		}
	})

	t.Run("emptied semester is removed and the rest renumbered", func(t *testing.T) {
		svc, _ := newTestService(t, twoSemesterBook())
		if err := svc.RemoveCourse("2", "c3"); err != nil {
			t.Fatalf("RemoveCourse() failed: %v", err)
		}
		book := svc.Book()
		if len(book) != 2 {
			t.Fatalf("len(book) = %d; want 2", len(book))
		}
		if book[0].ID != "1" || book[1].ID != "2" {
			t.Errorf("labels = %q, %q; want contiguous 1-based sequence", book[0].ID, book[1].ID)
		}
		if book[1].Courses[0].ID != "c4" {
			t.Errorf("renumbered semester courses = %+v; want c4", book[1].Courses)
		}
	})

	t.Run("last course of the only semester is protected", func(t *testing.T) {
		svc, _ := newTestService(t, Book{{ID: "1", Courses: []Course{{ID: "c1"}}}})
		err := svc.RemoveCourse("1", "c1")
		var vErr *core.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("err = %v; want ValidationError", err)
		}
		if len(svc.Book()[0].Courses) != 1 {
			t.Error("course was removed despite the guard")
		}
	})
}

func TestService_RemoveSemester(t *testing.T) {
	svc, _ := newTestService(t, twoSemesterBook())

	if err := svc.RemoveSemester("1"); err != nil {
		t.Fatalf("RemoveSemester() failed: %v", err)
	}
	book := svc.Book()
	if len(book) != 2 || book[0].ID != "1" || book[1].ID != "2" {
		t.Errorf("book = %+v; want 2 relabeled semesters", book)
	}
	if book[0].Courses[0].ID != "c3" {
		t.Errorf("first semester now = %+v; want the old semester 2", book[0])
	}

	_ = svc.RemoveSemester("1")
	err := svc.RemoveSemester("1")
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("removing the only semester: err = %v; want ValidationError", err)
	}
}

func TestService_Paste(t *testing.T) {
	t.Run("replaces only the target semester", func(t *testing.T) {
		svc, _ := newTestService(t, twoSemesterBook())
		if err := svc.Paste("1", "c1", FieldCredits, "5\n6\n7"); err != nil {
			t.Fatalf("Paste() failed: %v", err)
		}
		book := svc.Book()
		if got := len(book[0].Courses); got != 3 {
			t.Errorf("semester 1 courses = %d; want 3 (one appended)", got)
		}
		if book[0].Courses[2].Credits != "7" || book[0].Courses[2].Name != "" {
			t.Errorf("appended course = %+v; want credits-only", book[0].Courses[2])
		}
		if len(book[1].Courses) != 1 || book[1].Courses[0].Credits != "2" {
			t.Errorf("semester 2 was touched: %+v", book[1])
		}
	})

	t.Run("vanished target is a no-op", func(t *testing.T) {
		svc, repo := newTestService(t, twoSemesterBook())
		saves := repo.saves
		if err := svc.Paste("9", "c1", FieldCredits, "5"); err != nil {
			t.Fatalf("Paste() failed: %v", err)
		}
		if err := svc.Paste("1", "gone", FieldCredits, "5"); err != nil {
			t.Fatalf("Paste() failed: %v", err)
		}
		if repo.saves != saves {
			t.Error("no-op paste must not commit")
		}
	})
}

func TestService_Summary(t *testing.T) {
	svc, _ := newTestService(t, twoSemesterBook())

	sum := svc.Summary()
	if len(sum.Semesters) != 3 {
		t.Fatalf("len(Semesters) = %d; want 3", len(sum.Semesters))
	}
	// sem 1: (4*9 + 3*8)/7 = 8.57
	if got := sum.Semesters[0]; got.SGPA != 8.57 || got.CGPA != 8.57 {
		t.Errorf("sem 1 = %+v; want SGPA=CGPA=8.57", got)
	}
	// sem 2 rolling: (36+24+20)/9 = 8.89 vs own 10
	if got := sum.Semesters[1]; got.SGPA != 10 || got.CGPA != 8.89 {
		t.Errorf("sem 2 = %+v; want SGPA=10 CGPA=8.89", got)
	}
	// overall: (36+24+20+21)/12 = 8.42
	if sum.CGPA != 8.42 {
		t.Errorf("CGPA = %v; want 8.42", sum.CGPA)
	}
	if sum.Semesters[2].CGPA != sum.CGPA {
		t.Error("last rolling CGPA must equal the overall CGPA")
	}
}

func TestService_OnCommit(t *testing.T) {
	svc, _ := newTestService(t, twoSemesterBook())

	var notified int
	svc.OnCommit(func(b Book) { notified++ })

	if _, err := svc.AddSemester(); err != nil {
		t.Fatalf("AddSemester() failed: %v", err)
	}
	if err := svc.SetCourseField("1", "c1", FieldName, "Calculus"); err != nil {
		t.Fatalf("SetCourseField() failed: %v", err)
	}
	if notified != 2 {
		t.Errorf("commit hooks fired %d times; want 2", notified)
	}
}

func TestService_Restore(t *testing.T) {
	svc, _ := newTestService(t, twoSemesterBook())

	err := svc.Restore(Book{
		{ID: "17", Courses: []Course{{Name: "Latin", Credits: "2", Grade: "6"}}},
		{ID: "whatever", Courses: []Course{}},
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	book := svc.Book()
	if len(book) != 2 || book[0].ID != "1" || book[1].ID != "2" {
		t.Errorf("restored labels = %+v; want relabeled 1..n", book)
	}
	if book[0].Courses[0].ID == "" {
		t.Error("restored course without an ID must get a generated one")
	}
}
