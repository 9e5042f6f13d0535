// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

const (
	maxSubjects     = 5
	maxReviewsShown = 5
	descriptionWrap = 70
)

// bookDetail is the details pane of one list item: the Open Library work
// record and the book's reviews. The two load independently.
type bookDetail struct {
	item    models.ListItem
	workID  string
	loading bool

	work    models.Work
	workErr error

	reviews    []models.Review
	reviewsErr error
}

var descriptionStyle = lipgloss.NewStyle().Width(descriptionWrap)

func (m mainLoopModel) cmdLoadBook(workID string) tea.Cmd {
	ctx := m.ctx
	books := m.services.Books
	reviews := m.services.Reviews
	session := m.services.SessionService

	return func() tea.Msg {
		msg := bookMsg{workID: workID}
		msg.work, msg.workErr = books.GetWork(ctx, workID)
		msg.reviews, msg.reviewsErr = reviews.GetReviewsByBook(ctx, workID, session.Token())
		return msg
	}
}

// cmdReviewCount loads the number of reviews the user has written. The
// header simply omits the count when this fails.
func (m mainLoopModel) cmdReviewCount() tea.Cmd {
	if m.services.Reviews == nil {
		return nil
	}

	ctx := m.ctx
	reviews := m.services.Reviews
	session := m.services.SessionService

	return func() tea.Msg {
		token := session.Token()
		if token == "" {
			return reviewCountMsg{err: service.ErrNotAuthenticated}
		}
		n, err := reviews.GetMyCount(ctx, token)
		return reviewCountMsg{count: n, err: err}
	}
}

func (m mainLoopModel) coverURL() string {
	if len(m.book.work.Covers) > 0 && m.book.work.Covers[0] > 0 {
		return m.services.Books.CoverURL(m.book.work.Covers[0], models.CoverMedium)
	}
	return valueOrDash(m.book.item.CoverImageURL)
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating.Float64()
	}
	return sum / float64(len(reviews))
}

func (m mainLoopModel) bookView() string {
	book := m.book

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Author:   %s\n", book.item.BookAuthor))
	b.WriteString(fmt.Sprintf("Work:     %s\n", book.workID))

	if book.loading {
		b.WriteString("\nLoading details...")
		return b.String()
	}

	if book.workErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Details unavailable: " + humanizeError(book.workErr)))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("Cover:    %s\n", m.coverURL()))
		subjects := book.work.Subjects
		if len(subjects) > maxSubjects {
			subjects = subjects[:maxSubjects]
		}
		if len(subjects) > 0 {
			b.WriteString(fmt.Sprintf("Subjects: %s\n", strings.Join(subjects, ", ")))
		}
		if desc := strings.TrimSpace(string(book.work.Description)); desc != "" {
			b.WriteString("\n")
			b.WriteString(descriptionStyle.Render(desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case book.reviewsErr != nil:
		b.WriteString(errorStyle.Render("Reviews unavailable: " + humanizeError(book.reviewsErr)))
	case len(book.reviews) == 0:
		b.WriteString("No reviews yet.")
	default:
		n := len(book.reviews)
		b.WriteString(fmt.Sprintf("%d %s, average %.1f / 5\n", n, plural(n, "review", "reviews"), averageRating(book.reviews)))
		for i, r := range book.reviews {
			if i == maxReviewsShown {
				b.WriteString(fmt.Sprintf("  ... and %d more\n", n-maxReviewsShown))
				break
			}
			text := ""
			if r.ReviewText != nil {
				text = fitText(strings.Join(strings.Fields(*r.ReviewText), " "), 48)
			}
			b.WriteString(fmt.Sprintf("  %-16s %.1f  %s\n", fitText(r.Username, 16), r.Rating.Float64(), text))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
