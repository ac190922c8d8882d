package gantry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/theoremus-urban-solutions/erp-rates/rates"
)

// Property names set on every feature besides the rate keys.
const (
	PropGantryID = "gantryId"
	PropZoneID   = "zoneId"
	PropName     = "name"
)

var featureNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/theoremus-urban-solutions/erp-rates/gantry"))

var validate = validator.New()

// Gantry is a physical charging point belonging to one zone.
type Gantry struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name"`
	ZoneID    string  `json:"zoneId" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Properties are the feature properties: identity fields plus one entry per
// flattened rate key.
type Properties map[string]any

// Geometry is a GeoJSON Point; Coordinates is [longitude, latitude].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature is a GeoJSON Feature for one gantry.
type Feature struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// GantryID returns the gantry identifier stored in the feature properties.
func (f Feature) GantryID() string {
	id, _ := f.Properties[PropGantryID].(string)
	return id
}

// FeatureID returns the stable feature id of a gantry.
func FeatureID(gantryID string) string {
	return uuid.NewSHA1(featureNamespace, []byte(gantryID)).String()
}

// BuildFeatures attaches the flattened rates of each gantry's zone to a
// point feature. Features are ordered by gantry ID.
func BuildFeatures(gantries []Gantry, flat rates.Flattened) ([]Feature, error) {
	seen := make(map[string]struct{}, len(gantries))
	out := make([]Feature, 0, len(gantries))
	for i, g := range gantries {
		if err := validate.Struct(g); err != nil {
			return nil, fmt.Errorf("gantry %d: %w", i, err)
		}
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("gantry %q listed twice", g.ID)
		}
		seen[g.ID] = struct{}{}

		props := Properties{
			PropGantryID: g.ID,
			PropZoneID:   g.ZoneID,
			PropName:     g.Name,
		}
		for k, v := range flat[g.ZoneID] {
			props[k] = v
		}
		out = append(out, Feature{
			Type:       "Feature",
			ID:         FeatureID(g.ID),
			Geometry:   Geometry{Type: "Point", Coordinates: [2]float64{g.Longitude, g.Latitude}},
			Properties: props,
		})
	}
	slices.SortFunc(out, func(a, b Feature) int { return strings.Compare(a.GantryID(), b.GantryID()) })
	return out, nil
}
