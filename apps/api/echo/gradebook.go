package echoapi

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/mail"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/grade"
	chartsvc "github.com/trezcool/alama/services/chart"
	reportsvc "github.com/trezcool/alama/services/report"
)

type gradebookApi struct {
	svc        *grade.Service
	reportSvc  *reportsvc.Service
	emailSvc   core.EmailService
	conf       *core.Config
	validate   *validator.Validate
	translator ut.Translator
}

func registerGradebookAPI(g *echo.Group, deps ServerDeps) {
	api := gradebookApi{
		svc:        deps.GradeSvc,
		reportSvc:  deps.ReportSvc,
		emailSvc:   deps.EmailSvc,
		conf:       deps.Conf,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	bg := g.Group("/gradebook")
	bg.GET("", api.retrieve)
	bg.GET("/summary", api.summary)
	bg.GET("/export", api.export)
	bg.POST("/import", api.importBook)

	sg := g.Group("/semesters")
	sg.POST("", api.addSemester)
	sg.DELETE("/:id", api.removeSemester)
	sg.POST("/:id/courses", api.addCourse)
	sg.PUT("/:id/courses/:cid", api.editCourse)
	sg.DELETE("/:id/courses/:cid", api.removeCourse)
	sg.POST("/:id/courses/:cid/paste", api.paste)

	g.GET("/report", api.report)
	g.GET("/chart.svg", api.chart)
	g.POST("/report/email", api.emailReport)
}

// Handlers

func (api *gradebookApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Book())
}

func (api *gradebookApi) summary(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Summary())
}

func (api *gradebookApi) addSemester(ctx echo.Context) error {
	sem, err := api.svc.AddSemester()
	if err != nil {
		return errors.Wrap(err, "adding semester")
	}
	return ctx.JSON(http.StatusCreated, sem)
}

func (api *gradebookApi) removeSemester(ctx echo.Context) error {
	if err := api.svc.RemoveSemester(ctx.Param("id")); err != nil {
		return notFoundOrErr(err, "removing semester")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *gradebookApi) addCourse(ctx echo.Context) error {
	course, err := api.svc.AddCourse(ctx.Param("id"))
	if err != nil {
		return notFoundOrErr(err, "adding course")
	}
	return ctx.JSON(http.StatusCreated, course)
}

func (api *gradebookApi) editCourse(ctx echo.Context) error {
	var data grade.EditCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EditCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.SetCourseField(ctx.Param("id"), ctx.Param("cid"), data.Field, data.Value); err != nil {
		return notFoundOrErr(err, "editing course")
	}
	return ctx.JSON(http.StatusOK, api.svc.Book())
}

func (api *gradebookApi) removeCourse(ctx echo.Context) error {
	if err := api.svc.RemoveCourse(ctx.Param("id"), ctx.Param("cid")); err != nil {
		return notFoundOrErr(err, "removing course")
	}
	return ctx.JSON(http.StatusOK, api.svc.Book())
}

func (api *gradebookApi) paste(ctx echo.Context) error {
	var data grade.PasteCourses
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PasteCourses")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	// a vanished target makes this a no-op, never an error
	if err := api.svc.Paste(ctx.Param("id"), ctx.Param("cid"), data.Field, data.Text); err != nil {
		return errors.Wrap(err, "pasting courses")
	}
	return ctx.JSON(http.StatusOK, api.svc.Book())
}

func (api *gradebookApi) export(ctx echo.Context) error {
	data, err := grade.ExportJSON(api.svc.Book())
	if err != nil {
		return errors.Wrap(err, "exporting gradebook")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="gradebook.json"`)
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}

func (api *gradebookApi) importBook(ctx echo.Context) error {
	data, err := ioutil.ReadAll(ctx.Request().Body)
	if err != nil {
		return core.NewValidationError(errors.New("the uploaded file could not be read"))
	}
	book, err := grade.ParseImport(data)
	if err != nil {
		return err
	}
	if err := api.svc.Restore(book); err != nil {
		return errors.Wrap(err, "restoring gradebook")
	}
	return ctx.JSON(http.StatusOK, api.svc.Book())
}

func (api *gradebookApi) report(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := api.reportSvc.Render(&buf, api.svc.Book(), api.svc.Summary()); err != nil {
		return errors.Wrap(err, "rendering report")
	}
	return ctx.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (api *gradebookApi) chart(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := chartsvc.RenderSVG(&buf, api.svc.Summary()); err != nil {
		return errors.Wrap(err, "rendering chart")
	}
	return ctx.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

type EmailReportRequest struct {
	To string `json:"to" validate:"required,email"`
}

func (r *EmailReportRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

func (api *gradebookApi) emailReport(ctx echo.Context) error {
	var data EmailReportRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EmailReportRequest")
	}
	data.To = core.CleanString(data.To, true)
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	var report bytes.Buffer
	if err := api.reportSvc.Render(&report, api.svc.Book(), api.svc.Summary()); err != nil {
		return errors.Wrap(err, "rendering report")
	}
	export, err := grade.ExportJSON(api.svc.Book())
	if err != nil {
		return errors.Wrap(err, "exporting gradebook")
	}

	msg := &core.EmailMessage{
		To:          []mail.Address{{Address: data.To}},
		Subject:     "Your grade transcript",
		BodyStr:     "Your grade transcript is attached; an HTML version is included below.",
		HTMLContent: report.String(),
	}
	if err := msg.Attach(bytes.NewReader(export), "gradebook.json", echo.MIMEApplicationJSON); err != nil {
		return errors.Wrap(err, "attaching export")
	}
	api.emailSvc.SendMessages(msg)

	return ctx.NoContent(http.StatusAccepted)
}

// notFoundOrErr maps missing-target domain errors to 404s.
func notFoundOrErr(err error, msg string) error {
	switch errors.Cause(err) {
	case grade.ErrSemesterNotFound, grade.ErrCourseNotFound:
		return errHttpNotFound
	}
	if _, ok := errors.Cause(err).(*core.ValidationError); ok {
		return err
	}
	return errors.Wrap(err, msg)
}
