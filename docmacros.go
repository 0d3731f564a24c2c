// Package docmacros provides template helpers for documentation sites.
// It captures the navigation tree a site build produces and renders it as a
// nested Markdown list, and it renders CSV-backed vocabularies as Markdown
// tables.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, yaml/, goquery/, goldmark/).
package docmacros
