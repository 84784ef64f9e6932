package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apnapan/pulse/core/account"
	"github.com/apnapan/pulse/core/session"
	"github.com/apnapan/pulse/core/survey"
)

const testCSV = `Submission_Timestamp,Do_you_feel_safe_at_school,Gender
2024-01-01 10:00,Agree,Male
2024-01-01 10:05,Neutral,Female
2024-01-01 10:10,Strongly Agree,Male
2024-01-01 10:15,Disagree,Female
`

func loginAccount(t *testing.T, ta *testApp, schoolID string) (account.Account, string) {
	t.Helper()
	acct := registerAccount(t, ta.acctSvc, schoolID, "pass123", schoolID+"@school.edu")
	token := getToken(t, acct)
	// mirror what a login does server-side
	st := ta.sessions.Reset(acct.SchoolID)
	if err := st.Session.Trigger(session.LoggedIn); err != nil {
		t.Fatalf("loginAccount() failed: %v", err)
	}
	return acct, token
}

func uploadCSV(t *testing.T, ta *testApp, token, content string) UploadResponse {
	t.Helper()
	req, rec := newUploadRequest(t, "/v1/surveys", token, "survey.csv", []byte(content))
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("uploadCSV() failed: code = %v; body = %s", rec.Code, rec.Body.String())
	}
	var resp UploadResponse
	unmarshalBody(t, rec, &resp)
	return resp
}

func Test_surveyApi_requiresAuth(t *testing.T) {
	ta := setupApp(t)

	paths := []struct{ method, path string }{
		{http.MethodPost, "/v1/surveys"},
		{http.MethodGet, "/v1/surveys/insights"},
		{http.MethodGet, "/v1/surveys/groups"},
		{http.MethodPost, "/v1/surveys/report"},
		{http.MethodGet, "/v1/sample"},
		{http.MethodPost, "/v1/feedback"},
		{http.MethodGet, "/v1/session"},
	}
	for _, p := range paths {
		req, rec := newRequest(p.method, p.path)
		ta.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.path)
	}
}

func Test_surveyApi_upload(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")

	resp := uploadCSV(t, ta, token, testCSV)

	assert.Equal(t, "File uploaded and processed successfully!", resp.Message)
	assert.Equal(t, 4, resp.NumRows)
	assert.Equal(t, []string{"Submission_Timestamp"}, resp.DroppedColumns)
	assert.Equal(t, []string{"Do_you_feel_safe_at_school"}, resp.ConvertedColumns)
	assert.NotContains(t, resp.Columns, "Submission_Timestamp")

	require.True(t, resp.Insights.HasData)
	// [4, 3, 5, 2] averages to 3.5
	assert.InDelta(t, 3.5, resp.Insights.CategoryAverages[survey.CategorySafety], 1e-9)
	assert.Equal(t, survey.CategorySafety, resp.Insights.HighestArea)
}

func Test_surveyApi_upload_unsupportedFormat(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")

	req, rec := newUploadRequest(t, "/v1/surveys", token, "survey.pdf", []byte("nope"))
	ta.app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp httpErr
	unmarshalBody(t, rec, &resp)
	assert.Equal(t, "Unsupported file format. Please upload a CSV, TXT, XLS, or XLSX file.", resp.Error)
}

func Test_surveyApi_upload_replacesPreviousDataset(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")

	uploadCSV(t, ta, token, testCSV)
	resp := uploadCSV(t, ta, token, "Do_you_feel_welcome_at_school\nAgree\nAgree\n")

	assert.Equal(t, 2, resp.NumRows)
	assert.Empty(t, resp.Insights.Matched[survey.CategorySafety])
}

func Test_surveyApi_insights(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")

	// nothing uploaded yet
	req, rec := newAuthRequest(http.MethodGet, "/v1/surveys/insights", token)
	ta.app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uploadCSV(t, ta, token, testCSV)

	req, rec = newAuthRequest(http.MethodGet, "/v1/surveys/insights", token)
	ta.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var insights survey.Insights
	unmarshalBody(t, rec, &insights)
	assert.True(t, insights.HasData)
	assert.InDelta(t, 3.5, insights.OverallScore, 1e-9)
}

func Test_surveyApi_groups(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")
	uploadCSV(t, ta, token, testCSV)

	req, rec := newAuthRequest(http.MethodGet, "/v1/surveys/groups?group=Gender", token)
	ta.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GroupsResponse
	unmarshalBody(t, rec, &resp)
	assert.Equal(t, survey.ColBelongingScore, resp.TargetColumn)
	assert.Equal(t, "Gender", resp.Group)
	assert.Equal(t, "Gender", resp.GroupColumn)

	require.Len(t, resp.Stats, 2)
	assert.Equal(t, "Female", resp.Stats[0].Group)
	assert.InDelta(t, 2.5, resp.Stats[0].Mean, 1e-9) // (3+2)/2
	assert.Equal(t, "Male", resp.Stats[1].Group)
	assert.InDelta(t, 4.5, resp.Stats[1].Mean, 1e-9) // (4+5)/2
}

func Test_surveyApi_groups_byCategory(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")
	uploadCSV(t, ta, token, testCSV)

	req, rec := newAuthRequest(http.MethodGet, "/v1/surveys/groups?group=Gender&category=Safety", token)
	ta.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GroupsResponse
	unmarshalBody(t, rec, &resp)
	assert.Equal(t, "Do_you_feel_safe_at_school", resp.TargetColumn)
}

func Test_surveyApi_groups_failures(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")
	uploadCSV(t, ta, token, testCSV)

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{"unknown group", "?group=Nope", http.StatusBadRequest},
		{"missing group", "", http.StatusBadRequest},
		{"unknown category", "?group=Gender&category=Nope", http.StatusBadRequest},
		{"category without matched column", "?group=Gender&category=Participation", http.StatusNotFound},
		{"group column absent from file", "?group=Religion", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/surveys/groups"+tt.query, token)
			ta.app.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func Test_surveyApi_report(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")

	body := marshallObj(t, map[string]string{"school_name": "Springfield High"})

	// refusal without a processed dataset
	req, rec := newAuthRequest(http.MethodPost, "/v1/surveys/report", token, body)
	ta.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp httpErr
	unmarshalBody(t, rec, &errResp)
	assert.Equal(t, "Cannot generate report: no valid data available. Please upload a file and process it.", errResp.Error)

	uploadCSV(t, ta, token, testCSV)

	req, rec = newAuthRequest(http.MethodPost, "/v1/surveys/report", token, body)
	ta.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Springfield_High_insights_report.pdf")
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func Test_surveyApi_sample(t *testing.T) {
	ta := setupApp(t)
	_, token := loginAccount(t, ta, "S100")

	req, rec := newAuthRequest(http.MethodGet, "/v1/sample", token)
	ta.app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sample_data.csv")
	assert.Contains(t, rec.Body.String(), "Do_you_feel_safe_at_school")
}
