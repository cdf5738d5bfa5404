// Package hndigest provides a Hacker News daily digest generator.
// It scrapes the front page, reads each linked article, summarizes the
// articles with a language-model agent, and writes a formatted digest
// to a dated markdown file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, fs/).
package hndigest
