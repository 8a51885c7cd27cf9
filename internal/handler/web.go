package handler

import (
    "embed"
    "html/template"
    "io"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/bmi-calculator/internal/bmi"
    "github.com/iliyamo/bmi-calculator/internal/form"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders the embedded HTML templates for echo.
type Renderer struct {
    templates *template.Template
}

// NewRenderer parses the embedded templates.  They are compiled into the
// binary, so a parse failure is a programming error.
func NewRenderer() *Renderer {
    return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
    return r.templates.ExecuteTemplate(w, name, data)
}

// formValues echoes the submitted fields back into the form.
type formValues struct {
    Name   string
    Age    string
    Weight string
    Height string
}

type resultView struct {
    Name     string
    Display  string
    Category string
    Message  string
    Severity string
}

type pageData struct {
    Form       formValues
    Result     *resultView
    Error      string
    Thresholds string
}

// Form handles GET / and renders the empty form.
func (h *BMIHandler) Form(c echo.Context) error {
    return c.Render(http.StatusOK, "index.html", pageData{
        Form:       formValues{Age: "0", Weight: "0.0", Height: "0.0"},
        Thresholds: h.Evaluator.Thresholds().Name,
    })
}

// Calculate handles POST /calculate.  One submission triggers exactly one
// evaluation.  On failure the error message replaces the result.
func (h *BMIHandler) Calculate(c echo.Context) error {
    fv := formValues{
        Name:   c.FormValue("name"),
        Age:    c.FormValue("age"),
        Weight: c.FormValue("weight"),
        Height: c.FormValue("height"),
    }
    data := pageData{Form: fv, Thresholds: h.Evaluator.Thresholds().Name}

    in, err := form.Parse(fv.Name, fv.Age, fv.Weight, fv.Height)
    if err != nil {
        data.Error = err.Error()
        return c.Render(http.StatusBadRequest, "index.html", data)
    }

    res, err := h.evaluate(c, in, "web")
    if err != nil {
        data.Error = err.Error()
        return c.Render(http.StatusUnprocessableEntity, "index.html", data)
    }

    data.Result = newResultView(res)
    return c.Render(http.StatusOK, "index.html", data)
}

func newResultView(res bmi.Result) *resultView {
    return &resultView{
        Name:     res.Name,
        Display:  res.Display(),
        Category: res.Category.String(),
        Message:  res.Category.Message(),
        Severity: string(res.Category.Severity()),
    }
}
