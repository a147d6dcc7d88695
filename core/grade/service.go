package grade

import (
	"errors"
	"strconv"
	"sync"

	"github.com/trezcool/alama/core"
)

var (
	// errors
	ErrSemesterNotFound = errors.New("semester not found")
	ErrCourseNotFound   = errors.New("course not found")

	errLastCourse   = errors.New("the only course of the only semester cannot be removed")
	errLastSemester = errors.New("the only semester cannot be removed")
)

type (
	// Repository persists the whole Book in a fixed storage slot.
	Repository interface {
		LoadBook() (Book, error)
		SaveBook(Book) error
	}

	// CommitHook is notified after every committed Book change.
	CommitHook func(Book)

	// Service is the single state container for the gradebook. Every
	// mutation funnels through commit(), which persists the new state and
	// notifies subscribers; reads hand out deep snapshots. All derived
	// numbers are recomputed from the latest committed state, never cached.
	Service struct {
		mu    sync.RWMutex
		repo  Repository
		book  Book
		genID IDGenerator
		hooks []CommitHook
	}
)

// NewService loads the persisted Book (seeding a fresh one semester/one
// course book when the slot is empty). genID may be nil to use random UUIDs.
func NewService(repo Repository, genID IDGenerator) (*Service, error) {
	if genID == nil {
		genID = defaultIDGenerator
	}
	svc := &Service{repo: repo, genID: genID}

	book, err := repo.LoadBook()
	if err != nil {
		return nil, err
	}
	if len(book) == 0 {
		book = Book{{ID: "1", Courses: []Course{{ID: genID()}}}}
		if err := repo.SaveBook(book); err != nil {
			return nil, err
		}
	}
	svc.book = book
	return svc, nil
}

// OnCommit registers a subscriber called (synchronously) after each commit.
func (svc *Service) OnCommit(hook CommitHook) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.hooks = append(svc.hooks, hook)
}

// commit persists and installs the new state. Callers must hold svc.mu.
func (svc *Service) commit(book Book) error {
	if err := svc.repo.SaveBook(book); err != nil {
		return err
	}
	svc.book = book
	for _, hook := range svc.hooks {
		hook(book.Clone())
	}
	return nil
}

// relabel renumbers semester IDs to a contiguous 1-based sequence.
// Labels track position, not identity.
func relabel(book Book) {
	for i := range book {
		book[i].ID = strconv.Itoa(i + 1)
	}
}

// Book returns a deep snapshot of the current state.
func (svc *Service) Book() Book {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.book.Clone()
}

// AddSemester appends a new semester holding one empty course.
func (svc *Service) AddSemester() (Semester, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	book := svc.book.Clone()
	sem := Semester{
		ID:      strconv.Itoa(len(book) + 1),
		Courses: []Course{{ID: svc.genID()}},
	}
	book = append(book, sem)
	if err := svc.commit(book); err != nil {
		return Semester{}, err
	}
	return sem, nil
}

// AddCourse appends an empty course to the given semester.
func (svc *Service) AddCourse(semID string) (Course, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	book := svc.book.Clone()
	i := book.semesterIndex(semID)
	if i < 0 {
		return Course{}, ErrSemesterNotFound
	}
	course := Course{ID: svc.genID()}
	book[i].Courses = append(book[i].Courses, course)
	if err := svc.commit(book); err != nil {
		return Course{}, err
	}
	return course, nil
}

// SetCourseField writes a single field of a course.
func (svc *Service) SetCourseField(semID, courseID string, field Field, value string) error {
	if !field.IsValid() {
		return core.NewValidationError(nil, core.FieldError{Field: "field", Error: "unknown field"})
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	book := svc.book.Clone()
	i := book.semesterIndex(semID)
	if i < 0 {
		return ErrSemesterNotFound
	}
	j := book[i].courseIndex(courseID)
	if j < 0 {
		return ErrCourseNotFound
	}
	book[i].Courses[j].SetField(field, value)
	return svc.commit(book)
}

// RemoveCourse deletes a course. When this empties its semester and other
// semesters remain, the semester goes too and the rest are renumbered.
// Removing the only course of the only semester is rejected.
func (svc *Service) RemoveCourse(semID, courseID string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	book := svc.book.Clone()
	i := book.semesterIndex(semID)
	if i < 0 {
		return ErrSemesterNotFound
	}
	j := book[i].courseIndex(courseID)
	if j < 0 {
		return ErrCourseNotFound
	}
	if len(book[i].Courses) == 1 && len(book) == 1 {
		return core.NewValidationError(errLastCourse)
	}

	book[i].Courses = append(book[i].Courses[:j], book[i].Courses[j+1:]...)
	if len(book[i].Courses) == 0 {
		book = append(book[:i], book[i+1:]...)
		relabel(book)
	}
	return svc.commit(book)
}

// RemoveSemester deletes a whole semester and renumbers the rest.
// The last remaining semester is protected.
func (svc *Service) RemoveSemester(semID string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	book := svc.book.Clone()
	i := book.semesterIndex(semID)
	if i < 0 {
		return ErrSemesterNotFound
	}
	if len(book) == 1 {
		return core.NewValidationError(errLastSemester)
	}
	book = append(book[:i], book[i+1:]...)
	relabel(book)
	return svc.commit(book)
}

// Paste fans clipboard text out over the target semester's course list.
// A target semester or course that no longer exists makes this a no-op;
// other semesters are never touched.
func (svc *Service) Paste(semID, courseID string, field Field, raw string) error {
	if !field.IsValid() {
		return core.NewValidationError(nil, core.FieldError{Field: "field", Error: "unknown field"})
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	book := svc.book.Clone()
	i := book.semesterIndex(semID)
	if i < 0 {
		return nil // no-op
	}
	if book[i].courseIndex(courseID) < 0 {
		return nil // no-op
	}
	book[i].Courses = applyPaste(book[i].Courses, courseID, field, raw, svc.genID)
	return svc.commit(book)
}

// Restore replaces the whole Book (import). Semesters are relabeled 1..n and
// courses missing an ID get a fresh one.
func (svc *Service) Restore(book Book) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	book = book.Clone()
	relabel(book)
	for i := range book {
		if book[i].Courses == nil {
			book[i].Courses = []Course{}
		}
		for j := range book[i].Courses {
			if book[i].Courses[j].ID == "" {
				book[i].Courses[j].ID = svc.genID()
			}
		}
	}
	return svc.commit(book)
}

type (
	// SemesterSummary pairs a semester's own average with the cumulative
	// average through that semester. Both come from one snapshot, so the
	// two numbers are always mutually consistent.
	SemesterSummary struct {
		Semester string  `json:"semester"`
		SGPA     float64 `json:"sgpa"`
		CGPA     float64 `json:"cgpa"`
	}

	Summary struct {
		Semesters []SemesterSummary `json:"semesters"`
		CGPA      float64           `json:"cgpa"`
	}
)

// Summary computes the per-semester SGPA/rolling-CGPA series and the overall
// CGPA, fresh from the current state.
func (svc *Service) Summary() Summary {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	sum := Summary{Semesters: make([]SemesterSummary, 0, len(svc.book))}
	for i, sem := range svc.book {
		sum.Semesters = append(sum.Semesters, SemesterSummary{
			Semester: sem.ID,
			SGPA:     Average(sem.Courses),
			CGPA:     CumulativeAverage(svc.book, i),
		})
	}
	sum.CGPA = CumulativeAverage(svc.book)
	return sum
}
