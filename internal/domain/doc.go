// Package domain models oil records from the NOAA ADIOS oil database and the
// simulation-ready property sets derived from them.
//
// # Data Source
//
// Oil records come from the ADIOS oil database maintained by the NOAA Office
// of Response and Restoration, available at https://adios.orr.noaa.gov/. The
// listing endpoint returns lightweight summary fragments; the per-oil endpoint
// returns the full record with chemical and physical metadata. The adapter
// package fetches both; this package parses them.
//
// # Record Shapes
//
// Listing fragment (one element of the listing response's data array):
//
//	{_id, type, attributes: {metadata: {name, API, gnome_suitable, labels,
//	 location, model_completeness, product_type, sample_date}}}
//
// Parsed strictly into [ThinOil]: a fragment with missing or unrecognized
// metadata keys is rejected. ThinOil is an immutable snapshot; it upgrades to
// a full [Oil] through an [OilFetcher].
//
// Full record:
//
//	{data: {_id, attributes: {metadata: {...}, sub_samples: [...], ...}}}
//
// The attributes object is parsed into [OilRecord], the canonical source of
// truth. The first sub-sample describes the fresh (unweathered) oil; its
// physical property measurements and distillation cuts feed the derived
// property models. Measured quantities are value/unit pairs; temperatures may
// be reported in K, C, or F, densities in kg/m³ or g/cm³, viscosities in
// m²/s or cSt.
//
// # GNOME Suitability
//
// A record flagged gnome_suitable carries enough data to build a [GnomeOil]:
// the flattened per-pseudo-component property set (mass fractions, boiling
// points, molecular weights) plus scalar weathering parameters that drift and
// weathering models consume directly. An [Oil] built from an unsuitable record
// has no GnomeOil, and every accessor that needs one fails with
// [ErrNotFullOil]. The conversion happens once at construction; accessors
// recompute derived values on demand and never cache.
//
// # Pseudo-Components
//
// Distillation cuts discretize an oil into pseudo-components. Cut i boils off
// between cumulative fractions f(i-1) and f(i) at vapor temperature T(i), so a
// component's mass fraction is the difference of consecutive cumulative
// fractions and its boiling point is the cut's vapor temperature. Mass not
// covered by the reported cuts becomes a residual component with an
// extrapolated boiling point, and the fractions are normalized to sum to one.
//
// # API Gravity
//
// The petroleum-industry density scale: API = 141.5/SG − 131.5, with SG the
// specific gravity at 15.6 °C. Higher API means lighter oil. Several empirical
// correlations in this package (surface tension, emulsification onset) take
// API gravity as their only input.
package domain
