// Package pagesift extracts the main content of web pages. It fetches a
// page over plain HTTP or, when the page depends on JavaScript, through a
// full browser render, converts the markup into an ordered fragment
// sequence, detects the regions likely to hold primary content, prunes
// navigation-like link runs, filters low-value blocks, and caches completed
// extractions by a normalized locator fingerprint.
//
// This package contains domain types, interfaces, and the pure filtering
// pipeline following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// sqlite/, rod/, goquery/).
package pagesift
