package api

import (
    "encoding/json"
    "net/http/httptest"
    "testing"
)

func getCurve(t *testing.T, url string) []curvePoint {
    t.Helper()

    a := NewApi()
    req := httptest.NewRequest("GET", url, nil)
    rec := httptest.NewRecorder()
    a.handleCurve(rec, req)

    if rec.Code != 200 {
        t.Fatalf("Expected status 200, got %d", rec.Code)
    }

    var points []curvePoint
    if err := json.NewDecoder(rec.Body).Decode(&points); err != nil {
        t.Fatalf("Failed to decode curve response: %v", err)
    }
    return points
}

func TestCurveEndpointSamplesTheCurve(t *testing.T) {
    points := getCurve(t, "/curve?decay=0.5&threshold=0.01&samples=10")

    if len(points) != 11 {
        t.Fatalf("Expected 11 points, got %d", len(points))
    }
    if points[0].T != 0 || points[0].V != 0 {
        t.Errorf("Curve should start at (0, 0), got (%v, %v)", points[0].T, points[0].V)
    }
    last := points[len(points)-1]
    if last.T != 1 || last.V != 1 {
        t.Errorf("Curve should end at (1, 1), got (%v, %v)", last.T, last.V)
    }
}

func TestCurveEndpointDefaultsParameters(t *testing.T) {
    // Missing or malformed shape parameters fall back to the builder's own
    // defaulting rather than erroring.
    points := getCurve(t, "/curve?decay=nope")

    if len(points) != 101 {
        t.Fatalf("Expected the default 101 points, got %d", len(points))
    }
    if points[len(points)-1].V != 1 {
        t.Errorf("Defaulted curve should still end at 1, got %v", points[len(points)-1].V)
    }
}

func TestCurveEndpointCapsSampleCount(t *testing.T) {
    points := getCurve(t, "/curve?samples=999999")

    if len(points) != maxCurveSamples+1 {
        t.Fatalf("Expected the sample cap of %d points, got %d", maxCurveSamples+1, len(points))
    }
}
