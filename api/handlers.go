package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/theoremus-urban-solutions/erp-rates/formatter"
	"github.com/theoremus-urban-solutions/erp-rates/gantry"
	"github.com/theoremus-urban-solutions/erp-rates/interval"
	"github.com/theoremus-urban-solutions/erp-rates/keys"
	"github.com/theoremus-urban-solutions/erp-rates/rates"
	"github.com/theoremus-urban-solutions/erp-rates/utils"
)

// QueryError is returned for unusable request parameters.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

type healthResponse struct {
	Status   string `json:"status"`
	Gantries int    `json:"gantries"`
	LoadedAt string `json:"loaded_at"`
}

type ratesResponse struct {
	GantryID      string                       `json:"gantryId"`
	VehicleType   string                       `json:"vehicleType"`
	DayType       string                       `json:"dayType"`
	View          interval.View                `json:"view"`
	Time          interval.Time                `json:"time"`
	MaxRateAmount float64                      `json:"maxRateAmount"`
	Rates         []interval.Interval[float64] `json:"rates"`
}

type layerResponse struct {
	Key  string        `json:"key"`
	Time interval.Time `json:"time"`
}

type statusResponse struct {
	Slug   string            `json:"slug"`
	Status rates.StatusTable `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	d, loadedAt := s.store.Get()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Gantries: d.Len(),
		LoadedAt: utils.Iso8601FromTime(loadedAt),
	})
}

func (s *Server) handleGantries(w http.ResponseWriter, r *http.Request) {
	d, _ := s.store.Get()
	w.Header().Set("Content-Type", "application/geo+json")
	_ = formatter.WriteFeatureCollection(w, d.Features())
}

func (s *Server) handleGantry(w http.ResponseWriter, r *http.Request) {
	d, _ := s.store.Get()
	f, err := d.Gantry(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	q := r.URL.Query()
	vehicleType, dayType, err := groupParams(q.Get("vehicleType"), q.Get("dayType"))
	if err != nil {
		writeError(w, err)
		return
	}
	view := s.view
	if v := q.Get("view"); v != "" {
		if view, err = interval.ParseView(v); err != nil {
			writeError(w, &QueryError{Msg: err.Error()})
			return
		}
	}
	at, err := utils.ParseClock(q.Get("time"), s.timezone)
	if err != nil {
		writeError(w, &QueryError{Msg: err.Error()})
		return
	}

	d, _ := s.store.Get()
	full, window, err := d.Rates(id, vehicleType, dayType, view, at)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratesResponse{
		GantryID:      id,
		VehicleType:   vehicleType,
		DayType:       dayType,
		View:          view,
		Time:          at,
		MaxRateAmount: full.MaxRateAmount,
		Rates:         window,
	})
}

func (s *Server) handleActiveLayer(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vehicleType, dayType, err := groupParams(q.Get("vehicleType"), q.Get("dayType"))
	if err != nil {
		writeError(w, err)
		return
	}
	at, err := utils.ParseClock(q.Get("time"), s.timezone)
	if err != nil {
		writeError(w, &QueryError{Msg: err.Error()})
		return
	}
	d, _ := s.store.Get()
	key, ok := d.ActiveLayer(vehicleType, dayType, at)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no active layer at " + string(at)})
		return
	}
	writeJSON(w, http.StatusOK, layerResponse{Key: key, Time: at})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vehicleType, dayType, err := groupParams(q.Get("vehicleType"), q.Get("dayType"))
	if err != nil {
		writeError(w, err)
		return
	}
	slug := keys.Slugify(keys.Label(vehicleType, dayType))
	table, ok := s.store.Status(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no status for " + slug})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Slug: slug, Status: table})
}

func groupParams(vehicleType, dayType string) (string, string, error) {
	if vehicleType == "" {
		return "", "", &QueryError{Msg: "You must provide a vehicleType."}
	}
	if dayType == "" {
		return "", "", &QueryError{Msg: "You must provide a dayType."}
	}
	return vehicleType, dayType, nil
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var qe *QueryError
	switch {
	case errors.As(err, &qe):
		status = http.StatusBadRequest
	case errors.Is(err, gantry.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
