package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apnapan/pulse/apps/api/echo/helpers"
	"github.com/apnapan/pulse/core/session"
	"github.com/apnapan/pulse/core/survey"
	"github.com/apnapan/pulse/ingest"
	"github.com/apnapan/pulse/report"
)

var (
	errNoDataset        = echo.NewHTTPError(http.StatusBadRequest, "No dataset has been uploaded yet. Please upload a file first.")
	errUnparsableUpload = echo.NewHTTPError(http.StatusBadRequest, "The uploaded file could not be parsed. Please check the file and try again.")
	errNoCategoryColumn = echo.NewHTTPError(http.StatusNotFound, "No survey question matched the selected category.")
	errNoGroupColumn    = echo.NewHTTPError(http.StatusNotFound, "The uploaded file has no column for the selected group.")
	errUnknownCategory  = echo.NewHTTPError(http.StatusBadRequest, "Unknown category.")
	errUnknownGroup     = echo.NewHTTPError(http.StatusBadRequest, "Unknown group.")
)

type surveyApi struct {
	sessions *SessionStore
}

func RegisterSurveyAPI(g *echo.Group, jwt echo.MiddlewareFunc, sessions *SessionStore) {
	api := surveyApi{sessions: sessions}

	sg := g.Group("/surveys", jwt)
	sg.POST("", api.surveyUpload)
	sg.GET("/insights", api.surveyInsights)
	sg.GET("/groups", api.surveyGroups)
	sg.POST("/report", api.surveyReport)

	g.GET("/sample", api.sampleDownload, jwt)
}

// Handlers

func (api *surveyApi) surveyUpload(ctx echo.Context) error {
	st, err := api.contextState(ctx)
	if err != nil {
		return err
	}
	// uploading from the landing page implies heading to the main page
	if st.Session.State == session.Landing {
		if err := st.Session.Trigger(session.StartExploring); err != nil {
			return err
		}
	}
	if st.Session.State != session.Main {
		return session.InvalidTransitionError{From: st.Session.State, Event: session.StartExploring}
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file provided")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	ds, dropped, err := ingest.ReadFile(fh.Filename, f)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFormat) || errors.Is(err, ingest.ErrEmptyFile) {
			return err
		}
		return errUnparsableUpload
	}

	insights, converted := survey.Analyze(ds)
	st.Dataset = ds
	st.Insights = insights
	st.Dropped = dropped
	st.Converted = converted

	return ctx.JSON(http.StatusOK, UploadResponse{
		Message:          "File uploaded and processed successfully!",
		Columns:          ds.Columns(),
		NumRows:          ds.NumRows(),
		DroppedColumns:   dropped,
		ConvertedColumns: converted,
		Insights:         insights,
	})
}

func (api *surveyApi) surveyInsights(ctx echo.Context) error {
	st, err := api.contextState(ctx)
	if err != nil {
		return err
	}
	if st.Dataset == nil {
		return errNoDataset
	}
	return ctx.JSON(http.StatusOK, st.Insights)
}

func (api *surveyApi) surveyGroups(ctx echo.Context) error {
	st, err := api.contextState(ctx)
	if err != nil {
		return err
	}
	if st.Dataset == nil {
		return errNoDataset
	}

	// the target defaults to the overall score; a category narrows it down to
	// that category's first matched question
	targetCol := survey.ColBelongingScore
	catName := ctx.QueryParam("category")
	if catName != "" {
		cat, ok := survey.CategoryByName(catName)
		if !ok {
			return errUnknownCategory
		}
		cols := st.Insights.Matched[cat]
		if len(cols) == 0 {
			return errNoCategoryColumn
		}
		targetCol = cols[0]
	}

	spec, ok := survey.GroupByLabel(ctx.QueryParam("group"))
	if !ok {
		return errUnknownGroup
	}
	groupCol := survey.FindColumn(st.Dataset.Columns(), spec.Keywords)
	if groupCol == "" {
		return errNoGroupColumn
	}

	stats, err := survey.Compare(st.Dataset, targetCol, groupCol)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, GroupsResponse{
		Category:     catName,
		TargetColumn: targetCol,
		Group:        spec.Label,
		GroupColumn:  groupCol,
		Stats:        stats,
	})
}

func (api *surveyApi) surveyReport(ctx echo.Context) error {
	st, err := api.contextState(ctx)
	if err != nil {
		return err
	}

	data := new(ReportRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	pdf, err := report.Generate(data.SchoolName, st.Insights)
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+report.Filename(data.SchoolName)+`"`)
	return ctx.Blob(http.StatusOK, "application/pdf", pdf)
}

func (api *surveyApi) sampleDownload(ctx echo.Context) error {
	csv, err := survey.SampleCSV()
	if err != nil {
		return err
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sample_data.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", csv)
}

func (api *surveyApi) contextState(ctx echo.Context) (*SessionState, error) {
	schoolID, err := helpers.GetContextSchoolID(ctx)
	if err != nil {
		return nil, err
	}
	return api.sessions.Get(schoolID), nil
}

type (
	UploadResponse struct {
		Message          string          `json:"message"`
		Columns          []string        `json:"columns"`
		NumRows          int             `json:"num_rows"`
		DroppedColumns   []string        `json:"dropped_columns"`
		ConvertedColumns []string        `json:"converted_columns"`
		Insights         survey.Insights `json:"insights"`
	}

	GroupsResponse struct {
		Category     string             `json:"category,omitempty"`
		TargetColumn string             `json:"target_column"`
		Group        string             `json:"group"`
		GroupColumn  string             `json:"group_column"`
		Stats        []survey.GroupStat `json:"stats"`
	}

	ReportRequest struct {
		SchoolName string `json:"school_name"`
	}
)
