// Package api serves a built gantry dataset over HTTP.
//
// Routes:
//
//	GET /api/health
//	GET /api/gantries                      FeatureCollection of every gantry
//	GET /api/gantries/{id}                 one feature
//	GET /api/gantries/{id}/rates           ?vehicleType=&dayType=&view=all|minimal&time=HH:MM
//	GET /api/layers/active                 ?vehicleType=&dayType=&time=HH:MM
//
// When time is omitted the current wall clock in the configured timezone is
// used.
package api
