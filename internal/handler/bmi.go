// Package handler exposes the HTTP handlers of the calculator: the HTML
// form, the JSON API and the health check.  Every handler builds a fresh
// Person per request and discards the result after writing the response.
package handler

import (
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/bmi-calculator/internal/bmi"
    "github.com/iliyamo/bmi-calculator/internal/form"
    "github.com/iliyamo/bmi-calculator/internal/queue"
)

// BMIHandler bundles the evaluator and the event publisher.
type BMIHandler struct {
    Evaluator *bmi.Evaluator
    Publisher queue.Publisher
}

// NewBMIHandler constructs a handler and panics if the evaluator is nil.  A
// nil publisher is replaced by a no-op one.
func NewBMIHandler(ev *bmi.Evaluator, pub queue.Publisher) *BMIHandler {
    if ev == nil {
        panic("nil evaluator passed to NewBMIHandler")
    }
    if pub == nil {
        pub = queue.NopPublisher{}
    }
    return &BMIHandler{Evaluator: ev, Publisher: pub}
}

// ----- DTOs -----

type evaluationResp struct {
    Name       string  `json:"name,omitempty"`
    Age        *int    `json:"age,omitempty"`
    BMI        float64 `json:"bmi"`
    Display    string  `json:"bmi_display"`
    Category   string  `json:"category"`
    Message    string  `json:"message"`
    Severity   string  `json:"severity"`
    Thresholds string  `json:"thresholds"`
}

type categoryResp struct {
    Category string   `json:"category"`
    Message  string   `json:"message"`
    Severity string   `json:"severity"`
    Min      *float64 `json:"min"`
    Max      *float64 `json:"max"`
}

type errorResp struct {
    Error string `json:"error"`
    Field string `json:"field,omitempty"`
}

// evaluate runs the evaluator and publishes the outcome.  Publishing errors
// are logged and otherwise ignored.
func (h *BMIHandler) evaluate(c echo.Context, in form.Input, source string) (bmi.Result, error) {
    res, err := h.Evaluator.EvaluateInput(in.Name, in.Age, in.Weight, in.Height)
    if err != nil {
        return bmi.Result{}, err
    }
    ev := queue.NewEvaluationEvent(res, h.Evaluator.Thresholds().Name, source, time.Now())
    if err := h.Publisher.Publish(c.Request().Context(), ev); err != nil {
        log.Warn().Err(err).Str("source", source).Msg("publish evaluation event failed")
    }
    return res, nil
}

func (h *BMIHandler) toResp(res bmi.Result) evaluationResp {
    return evaluationResp{
        BMI:        res.BMI,
        Display:    res.Display(),
        Category:   res.Category.String(),
        Message:    res.Category.Message(),
        Severity:   string(res.Category.Severity()),
        Thresholds: h.Evaluator.Thresholds().Name,
    }
}

// measurementErrorResp maps an evaluator error to a 422 body.  Any other
// error is unexpected and reported as 500.
func measurementErrorResp(c echo.Context, err error) error {
    var merr *bmi.MeasurementError
    if errors.As(err, &merr) {
        return c.JSON(http.StatusUnprocessableEntity, errorResp{Error: merr.Error(), Field: string(merr.Field)})
    }
    log.Error().Err(err).Msg("evaluation failed")
    return c.JSON(http.StatusInternalServerError, errorResp{Error: "internal error"})
}

// Evaluate handles POST /v1/bmi with a JSON body {name, age, weight, height}.
func (h *BMIHandler) Evaluate(c echo.Context) error {
    var in form.Input
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, errorResp{Error: "invalid request body"})
    }
    in.Name = strings.TrimSpace(in.Name)
    if err := in.Validate(); err != nil {
        return c.JSON(http.StatusBadRequest, errorResp{Error: err.Error(), Field: "age"})
    }

    res, err := h.evaluate(c, in, "api")
    if err != nil {
        return measurementErrorResp(c, err)
    }
    out := h.toResp(res)
    out.Name = res.Name
    out.Age = &res.Age
    c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
    return c.JSON(http.StatusOK, out)
}

// Compute handles GET /v1/bmi?weight=..&height=..  The response depends on
// the two numbers only and is safe to cache.
func (h *BMIHandler) Compute(c echo.Context) error {
    ws, hs := c.QueryParam("weight"), c.QueryParam("height")
    if strings.TrimSpace(ws) == "" || strings.TrimSpace(hs) == "" {
        return c.JSON(http.StatusBadRequest, errorResp{Error: "weight and height are required"})
    }
    weight, err := form.ParseNumber(ws, form.ErrWeight)
    if err != nil {
        return c.JSON(http.StatusBadRequest, errorResp{Error: err.Error(), Field: "weight"})
    }
    height, err := form.ParseNumber(hs, form.ErrHeight)
    if err != nil {
        return c.JSON(http.StatusBadRequest, errorResp{Error: err.Error(), Field: "height"})
    }

    res, err := h.evaluate(c, form.Input{Weight: weight, Height: height}, "api")
    if err != nil {
        return measurementErrorResp(c, err)
    }
    return c.JSON(http.StatusOK, h.toResp(res))
}

// Categories handles GET /v1/categories.
func (h *BMIHandler) Categories(c echo.Context) error {
    ranges := h.Evaluator.Thresholds().Ranges()
    out := make([]categoryResp, 0, len(ranges))
    for _, r := range ranges {
        out = append(out, categoryResp{
            Category: r.Category.String(),
            Message:  r.Category.Message(),
            Severity: string(r.Category.Severity()),
            Min:      r.Min,
            Max:      r.Max,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out, "thresholds": h.Evaluator.Thresholds().Name})
}
