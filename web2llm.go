// Package web2llm turns arbitrary web pages into clean, boilerplate-free
// Markdown documents suitable as input for text and AI pipelines. It strips
// navigation, headers, footers and ads from raw HTML, recovers content lost
// by over-aggressive extraction, and converts the surviving HTML to Markdown
// through competing strategies with quality-based selection.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, sqlite/).
package web2llm
