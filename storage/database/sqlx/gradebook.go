package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/alama/core/grade"
)

type (
	semesterRow struct {
		Position int    `db:"position"`
		Label    string `db:"label"`
	}

	courseRow struct {
		ID               string      `db:"id"`
		SemesterPosition int         `db:"semester_position"`
		Position         int         `db:"position"`
		Name             null.String `db:"name"`
		Credits          string      `db:"credits"`
		Grade            string      `db:"grade"`
	}
)

type gradebookRepository struct {
	db *sqlx.DB
}

var _ grade.Repository = (*gradebookRepository)(nil)

func NewGradebookRepository(db *sql.DB) grade.Repository {
	return &gradebookRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *gradebookRepository) LoadBook() (grade.Book, error) {
	var sems []semesterRow
	if err := repo.db.Select(&sems, `SELECT position, label FROM semester ORDER BY position`); err != nil {
		return nil, errors.Wrap(err, "querying semesters")
	}

	var courses []courseRow
	err := repo.db.Select(
		&courses,
		`SELECT id, semester_position, position, name, credits, grade
		 FROM course ORDER BY semester_position, position`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}

	byPosition := make(map[int][]grade.Course, len(sems))
	for _, row := range courses {
		byPosition[row.SemesterPosition] = append(byPosition[row.SemesterPosition], grade.Course{
			ID:      row.ID,
			Name:    row.Name.String,
			Credits: row.Credits,
			Grade:   row.Grade,
		})
	}

	book := make(grade.Book, 0, len(sems))
	for _, row := range sems {
		cs := byPosition[row.Position]
		if cs == nil {
			cs = []grade.Course{}
		}
		book = append(book, grade.Semester{ID: row.Label, Courses: cs})
	}
	return book, nil
}

// SaveBook overwrites the whole storage slot in one transaction.
// The book is small; a full rewrite keeps renumbered labels consistent.
func (repo *gradebookRepository) SaveBook(book grade.Book) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.Exec(`DELETE FROM course`); err != nil {
		return errors.Wrap(err, "clearing courses")
	}
	if _, err = tx.Exec(`DELETE FROM semester`); err != nil {
		return errors.Wrap(err, "clearing semesters")
	}

	for i, sem := range book {
		row := semesterRow{Position: i + 1, Label: sem.ID}
		if _, err = tx.NamedExec(`INSERT INTO semester (position, label) VALUES (:position, :label)`, row); err != nil {
			return errors.Wrapf(err, "inserting semester %q", sem.ID)
		}
		for j, c := range sem.Courses {
			crow := courseRow{
				ID:               c.ID,
				SemesterPosition: i + 1,
				Position:         j + 1,
				Name:             null.NewString(c.Name, c.Name != ""),
				Credits:          c.Credits,
				Grade:            c.Grade,
			}
			_, err = tx.NamedExec(
				`INSERT INTO course (id, semester_position, position, name, credits, grade)
				 VALUES (:id, :semester_position, :position, :name, :credits, :grade)`,
				crow,
			)
			if err != nil {
				return errors.Wrapf(err, "inserting course %q", c.ID)
			}
		}
	}

	return errors.Wrap(tx.Commit(), "committing tx")
}
