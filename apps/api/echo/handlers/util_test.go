package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/apnapan/pulse/apps/api/echo/helpers"
	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/account"
	"github.com/apnapan/pulse/core/feedback"
	emailsvc "github.com/apnapan/pulse/services/email"
	inmemdb "github.com/apnapan/pulse/storage/inmem"
)

type httpErr struct {
	Error string `json:"error"`
}

type testApp struct {
	app      *echo.Echo
	acctSvc  *account.Service
	fbSvc    *feedback.Service
	sessions *SessionStore
}

func setupApp(t *testing.T) *testApp {
	t.Helper()
	core.Conf.Debug = false
	core.Conf.TestMode = true

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setupApp() failed: %v", err)
	}
	acctSvc := account.NewService(inmemdb.NewAccountRepository(db))
	fbSvc := feedback.NewService(inmemdb.NewFeedbackRepository(db), emailsvc.NewConsoleServiceMock())

	app := echo.New()
	app.Pre(middleware.RemoveTrailingSlash())
	app.HTTPErrorHandler = helpers.AppHTTPErrorHandler

	v1 := app.Group("/v1")
	jwt := middleware.JWTWithConfig(helpers.AppJWTConfig)
	sessions := NewSessionStore()

	RegisterAccountAPI(v1, acctSvc, sessions)
	RegisterSessionAPI(v1, jwt, sessions)
	RegisterSurveyAPI(v1, jwt, sessions)
	RegisterFeedbackAPI(v1, jwt, fbSvc)

	return &testApp{app: app, acctSvc: acctSvc, fbSvc: fbSvc, sessions: sessions}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func newUploadRequest(t *testing.T, path, token, filename string, content []byte) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func registerAccount(t *testing.T, svc *account.Service, schoolID, pwd, email string) account.Account {
	t.Helper()
	acct, err := svc.Register(account.NewAccount{
		SchoolID:        schoolID,
		Password:        pwd,
		PasswordConfirm: pwd,
		Email:           email,
	})
	if err != nil {
		t.Fatalf("registerAccount() failed: %v", err)
	}
	return acct
}

func getToken(t *testing.T, acct account.Account) string {
	t.Helper()
	token, err := helpers.GenerateToken(helpers.GetAccountClaims(acct))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func unmarshalBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarshalBody() failed: %v; body = %s", err, rec.Body.String())
	}
}
