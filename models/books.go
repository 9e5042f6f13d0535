// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CoverSize selects one of the cover image renditions.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// WorkID strips the "/works/" prefix from a work key, so "/works/OL45804W"
// and "OL45804W" name the same work. The bare form is what the backend
// stores as bookId.
func WorkID(key string) string {
	return strings.TrimPrefix(strings.TrimSpace(key), "/works/")
}

// AuthorID strips the "/authors/" prefix from an author key.
func AuthorID(key string) string {
	return strings.TrimPrefix(strings.TrimSpace(key), "/authors/")
}

// Work is an Open Library work record (GET /works/{key}.json).
type Work struct {
	Key         string       `json:"key"`
	Title       string       `json:"title"`
	Description TextValue    `json:"description"`
	Covers      []int64      `json:"covers"`
	Subjects    []string     `json:"subjects"`
	Authors     []WorkAuthor `json:"authors"`
}

// WorkAuthor links a work to an author record.
type WorkAuthor struct {
	Author struct {
		Key string `json:"key"`
	} `json:"author"`
}

// Author is an Open Library author record (GET /authors/{key}.json).
type Author struct {
	Key  string    `json:"key"`
	Name string    `json:"name"`
	Bio  TextValue `json:"bio"`
}

// SearchResponse is the body of GET /search.json.
type SearchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []SearchDoc `json:"docs"`
}

// SearchDoc is a single hit of a work search.
type SearchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	CoverID          int64    `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
}

// SubjectResponse is the body of GET /subjects/{subject}.json.
type SubjectResponse struct {
	Name      string        `json:"name"`
	WorkCount int           `json:"work_count"`
	Works     []SubjectWork `json:"works"`
}

// SubjectWork is a work listed under a subject.
type SubjectWork struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	CoverID int64  `json:"cover_id"`
	Authors []struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"authors"`
}

// TextValue decodes Open Library text fields that are either a plain string
// or an object of the form {"type": "/type/text", "value": "..."}.
type TextValue string

// UnmarshalJSON implements [json.Unmarshaler].
func (t *TextValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = TextValue(s)
		return nil
	}

	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*t = TextValue(obj.Value)
	return nil
}
