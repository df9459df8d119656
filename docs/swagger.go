// Package docs Garden Planner API.
//
// Service for planning plantings on raised garden beds. Tracks plant,
// pest, treatment and care catalogs, computes plant placement diagrams
// for each bed, and maintains a care calendar generated from planting
// dates.
//
// Main features:
// - Raised bed registry with planting history
// - Plant catalog with pest and care links
// - Planting (culture) lifecycle with row and alignment layout
// - Bed diagrams as JSON coordinates or SVG
// - Care calendar generated asynchronously from planting events
// - Garden-wide summary counters
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- image/svg+xml
//
// swagger:meta
package docs
