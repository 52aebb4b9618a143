// Package domain contains core business types for the Folio application.
package domain

import "time"

// Message is a contact-form submission. Messages are written once by the
// public site and only ever read (and marked seen) from the admin console.
type Message struct {
	ID         string
	Name       string
	Email      string
	Body       string
	Seen       bool
	ReceivedAt time.Time
}

// CaseStudy is the optional long-form write-up attached to a project.
type CaseStudy struct {
	Challenge string
	Solution  string
	Results   string
}

// Project is a portfolio entry managed from the admin console.
//
// Stack is stored as a single delimited string (the wire form used by the
// public site); use ParseStack/JoinStack to move between the stored form
// and the editable list form. Order controls list position and is assigned
// append-to-end on create; deletions leave gaps.
type Project struct {
	ID          string
	Title       string
	Description string
	Stack       string
	LiveURL     string
	CodeURL     string
	Image       string
	Highlights  []string
	CaseStudy   *CaseStudy
	Order       int
	CreatedAt   time.Time
}

// Slug returns the URL path segment for the project, derived from its title.
func (p Project) Slug() string {
	return Slugify(p.Title)
}
