package api

import (
    "encoding/json"
    "log"
    "math"
    "net/http"
    "strconv"

    "github.com/matt-g-everett/bouncetx/bounce"
    "github.com/matt-g-everett/bouncetx/util"
)

const maxCurveSamples = 10000

type Api struct {

}

func NewApi() *Api {
    a := new(Api)
    return a
}

type curvePoint struct {
    T float64 `json:"t"`
    V float64 `json:"v"`
}

// queryFloat reads a float query parameter, falling back to NaN so that the
// bounce builder applies its own defaulting.
func queryFloat(r *http.Request, name string) float64 {
    value, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
    if err != nil {
        return math.NaN()
    }
    return value
}

// handleCurve samples a bounce curve for the plotting client.
func (*Api) handleCurve(w http.ResponseWriter, r *http.Request) {
    decayRatio := queryFloat(r, "decay")
    restThreshold := queryFloat(r, "threshold")

    samples, err := strconv.Atoi(r.URL.Query().Get("samples"))
    if err != nil || samples < 1 {
        samples = 100
    }
    if samples > maxCurveSamples {
        samples = maxCurveSamples
    }

    values := util.SampleLut(samples+1, bounce.New(decayRatio, restThreshold))
    points := make([]curvePoint, samples+1)
    for i, v := range values {
        points[i] = curvePoint{T: float64(i) / float64(samples), V: v}
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(points)
}

func (a *Api) Serve() {
    http.HandleFunc("/curve", a.handleCurve)

    fs := http.FileServer(http.Dir("client/dist"))
    http.Handle("/", fs)

    log.Println("Listening...")
    http.ListenAndServe(":3000", nil)
}
