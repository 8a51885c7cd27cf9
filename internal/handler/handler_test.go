package handler

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/bmi-calculator/internal/bmi"
    "github.com/iliyamo/bmi-calculator/internal/queue"
)

type recordingPublisher struct {
    events []queue.EvaluationEvent
    err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.EvaluationEvent) error {
    p.events = append(p.events, ev)
    return p.err
}

func newTestServer(t *testing.T, pub queue.Publisher) *echo.Echo {
    t.Helper()
    h := NewBMIHandler(bmi.NewEvaluator(), pub)
    e := echo.New()
    e.Renderer = NewRenderer()
    e.GET("/", h.Form)
    e.POST("/calculate", h.Calculate)
    e.POST("/v1/bmi", h.Evaluate)
    e.GET("/v1/bmi", h.Compute)
    e.GET("/v1/categories", h.Categories)
    e.GET("/healthz", Health)
    return e
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func postJSON(e *echo.Echo, body string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(http.MethodPost, "/v1/bmi", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    return do(e, req)
}

func postForm(e *echo.Echo, v url.Values) *httptest.ResponseRecorder {
    req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(v.Encode()))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
    return do(e, req)
}

func TestHealth(t *testing.T) {
    rec := do(newTestServer(t, nil), httptest.NewRequest(http.MethodGet, "/healthz", nil))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "ok", rec.Body.String())
    assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
}

func TestEvaluateJSON(t *testing.T) {
    pub := &recordingPublisher{}
    e := newTestServer(t, pub)

    rec := postJSON(e, `{"name":"Sam","age":30,"weight":70,"height":175}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var got evaluationResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
    assert.Equal(t, "Sam", got.Name)
    require.NotNil(t, got.Age)
    assert.Equal(t, 30, *got.Age)
    assert.InDelta(t, 22.857142857142858, got.BMI, 1e-9)
    assert.Equal(t, "22.86", got.Display)
    assert.Equal(t, "Normal weight", got.Category)
    assert.Equal(t, "You have a normal weight.", got.Message)
    assert.Equal(t, "success", got.Severity)
    assert.Equal(t, "legacy", got.Thresholds)

    require.Len(t, pub.events, 1)
    assert.Equal(t, "Normal weight", pub.events[0].Category)
    assert.Equal(t, "api", pub.events[0].Source)
}

func TestEvaluateJSONInvalidMeasurement(t *testing.T) {
    pub := &recordingPublisher{}
    e := newTestServer(t, pub)

    rec := postJSON(e, `{"name":"Sam","age":30,"weight":-5,"height":175}`)
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.JSONEq(t, `{"error":"Weight cannot be negative","field":"weight"}`, rec.Body.String())
    assert.Empty(t, pub.events)

    rec = postJSON(e, `{"weight":60,"height":-1}`)
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.JSONEq(t, `{"error":"Height cannot be negative","field":"height"}`, rec.Body.String())
}

func TestEvaluateNonFiniteBMI(t *testing.T) {
    pub := &recordingPublisher{}
    e := newTestServer(t, pub)

    rec := postJSON(e, `{"weight":1e308,"height":0.0001}`)
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.JSONEq(t, `{"error":"Height is too small for the given weight","field":"height"}`, rec.Body.String())

    rec = do(e, httptest.NewRequest(http.MethodGet, "/v1/bmi?weight=1e308&height=0.0001", nil))
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.Contains(t, rec.Body.String(), `"field":"height"`)

    rec = postForm(e, url.Values{"weight": {"1e308"}, "height": {"0.0001"}})
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.Contains(t, rec.Body.String(), `id="error">Height is too small for the given weight`)

    assert.Empty(t, pub.events)
}

func TestEvaluateJSONBadInput(t *testing.T) {
    e := newTestServer(t, nil)

    assert.Equal(t, http.StatusBadRequest, postJSON(e, `{"weight":"heavy"}`).Code)
    assert.Equal(t, http.StatusBadRequest, postJSON(e, `{`).Code)

    rec := postJSON(e, `{"age":121,"weight":60,"height":170}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "between 0 and 120")
}

func TestEvaluatePublishFailureDoesNotFailRequest(t *testing.T) {
    e := newTestServer(t, &recordingPublisher{err: errors.New("broker down")})
    rec := postJSON(e, `{"weight":90,"height":170}`)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"category":"Obese"`)
}

func TestComputeQuery(t *testing.T) {
    e := newTestServer(t, nil)

    rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/bmi?weight=60&height=0", nil))
    require.Equal(t, http.StatusOK, rec.Code)
    var got evaluationResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
    assert.Equal(t, 0.0, got.BMI)
    assert.Equal(t, "Underweight", got.Category)
    assert.Equal(t, "info", got.Severity)
    assert.Empty(t, got.Name)
    assert.Nil(t, got.Age)

    assert.Equal(t, http.StatusBadRequest, do(e, httptest.NewRequest(http.MethodGet, "/v1/bmi?weight=60", nil)).Code)
    assert.Equal(t, http.StatusBadRequest, do(e, httptest.NewRequest(http.MethodGet, "/v1/bmi?weight=x&height=1", nil)).Code)
    assert.Equal(t, http.StatusBadRequest, do(e, httptest.NewRequest(http.MethodGet, "/v1/bmi?weight=NaN&height=1", nil)).Code)
    assert.Equal(t, http.StatusUnprocessableEntity, do(e, httptest.NewRequest(http.MethodGet, "/v1/bmi?weight=60&height=-170", nil)).Code)
}

func TestCategories(t *testing.T) {
    rec := do(newTestServer(t, nil), httptest.NewRequest(http.MethodGet, "/v1/categories", nil))
    require.Equal(t, http.StatusOK, rec.Code)

    var got struct {
        Items      []categoryResp `json:"items"`
        Thresholds string         `json:"thresholds"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
    require.Len(t, got.Items, 4)
    assert.Equal(t, "Underweight", got.Items[0].Category)
    assert.Nil(t, got.Items[0].Min)
    assert.Equal(t, "Obese", got.Items[3].Category)
    assert.Nil(t, got.Items[3].Max)
    assert.Equal(t, "legacy", got.Thresholds)
}

func TestFormPage(t *testing.T) {
    rec := do(newTestServer(t, nil), httptest.NewRequest(http.MethodGet, "/", nil))
    require.Equal(t, http.StatusOK, rec.Code)
    body := rec.Body.String()
    assert.Contains(t, body, "BMI Calculator")
    assert.Contains(t, body, `name="weight"`)
    assert.Contains(t, body, "Calculate BMI")
    assert.NotContains(t, body, `id="result"`)
}

func TestCalculateForm(t *testing.T) {
    pub := &recordingPublisher{}
    e := newTestServer(t, pub)

    rec := postForm(e, url.Values{"name": {"Ada"}, "age": {"36"}, "weight": {"90"}, "height": {"170"}})
    require.Equal(t, http.StatusOK, rec.Code)
    body := rec.Body.String()
    assert.Contains(t, body, "<strong>Ada</strong>, your BMI is: <strong>31.14</strong>")
    assert.Contains(t, body, `class="box error" id="category">You are obese.`)
    require.Len(t, pub.events, 1)
    assert.Equal(t, "web", pub.events[0].Source)
}

func TestCalculateFormErrors(t *testing.T) {
    pub := &recordingPublisher{}
    e := newTestServer(t, pub)

    rec := postForm(e, url.Values{"name": {"Ada"}, "age": {"36"}, "weight": {"-5"}, "height": {"170"}})
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.Contains(t, rec.Body.String(), `id="error">Weight cannot be negative`)
    assert.NotContains(t, rec.Body.String(), `id="result"`)

    rec = postForm(e, url.Values{"age": {"36.5"}, "weight": {"60"}, "height": {"170"}})
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "Age must be a whole number")

    rec = postForm(e, url.Values{"weight": {"abc"}})
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "Weight must be a number")

    assert.Empty(t, pub.events)
}

func TestCalculateFormEscapesName(t *testing.T) {
    rec := postForm(newTestServer(t, nil), url.Values{"name": {"<b>x</b>"}, "weight": {"70"}, "height": {"175"}})
    require.Equal(t, http.StatusOK, rec.Code)
    assert.NotContains(t, rec.Body.String(), "<b>x</b>")
    assert.Contains(t, rec.Body.String(), "&lt;b&gt;x&lt;/b&gt;")
}

func TestNewBMIHandlerPanicsWithoutEvaluator(t *testing.T) {
    assert.Panics(t, func() { NewBMIHandler(nil, nil) })
}
