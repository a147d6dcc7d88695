package reportsvc

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/grade"
)

//go:embed templates
var tmplFS embed.FS

// Service renders the printable transcript. It only lays out numbers the
// engine already computed; nothing is recalculated here.
type Service struct {
	tmpl    *template.Template
	appName string
}

func NewService(conf *core.Config) (*Service, error) {
	tmpl, err := template.New("transcript.gohtml").Funcs(template.FuncMap{
		"fmtDate": func(t time.Time) string { return t.Format("02 Jan 2006") },
	}).ParseFS(tmplFS, "templates/transcript.gohtml")
	if err != nil {
		return nil, errors.Wrap(err, "parsing transcript template")
	}
	return &Service{tmpl: tmpl, appName: conf.AppName}, nil
}

type (
	semesterData struct {
		Label   string
		Courses []grade.Course
		SGPA    float64
		CGPA    float64
	}

	transcriptData struct {
		AppName     string
		GeneratedAt time.Time
		Semesters   []semesterData
		CGPA        float64
	}
)

// Render writes the transcript HTML for the given snapshot and its summary.
func (svc *Service) Render(w io.Writer, book grade.Book, sum grade.Summary) error {
	data := transcriptData{
		AppName:     svc.appName,
		GeneratedAt: time.Now(),
		CGPA:        sum.CGPA,
	}
	for i, sem := range book {
		sd := semesterData{Label: sem.ID, Courses: sem.Courses}
		if i < len(sum.Semesters) {
			sd.SGPA = sum.Semesters[i].SGPA
			sd.CGPA = sum.Semesters[i].CGPA
		}
		data.Semesters = append(data.Semesters, sd)
	}
	return errors.Wrap(svc.tmpl.Execute(w, data), "rendering transcript")
}
