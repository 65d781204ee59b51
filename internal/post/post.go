package post

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a post is not found.
var ErrNotFound = errors.New("post not found")

// Post represents a blog post.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields are the initial values of a new post.
type Fields struct {
	Title    string
	Content  string
	Summary  string
	Category string
}

// Patch lists the fields to change on an existing post. Nil fields are left alone.
type Patch struct {
	Title    *string
	Content  *string
	Summary  *string
	Category *string
}

// Query defines filters and pagination for listing posts.
type Query struct {
	Category string
	Limit    int
	Offset   int
}

// New builds a post from f, validating each field as it is assigned.
func New(f Fields) (*Post, error) {
	p := &Post{}
	if err := p.SetTitle(f.Title); err != nil {
		return nil, err
	}
	if err := p.SetContent(f.Content); err != nil {
		return nil, err
	}
	if err := p.SetCategory(f.Category); err != nil {
		return nil, err
	}
	if err := p.SetSummary(f.Summary); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Post) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	p.Title = title
	return nil
}

func (p *Post) SetContent(content string) error {
	if err := ValidateLength(FieldContent, content); err != nil {
		return err
	}
	p.Content = content
	return nil
}

func (p *Post) SetSummary(summary string) error {
	if err := ValidateLength(FieldSummary, summary); err != nil {
		return err
	}
	p.Summary = summary
	return nil
}

func (p *Post) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	p.Category = category
	return nil
}

// Apply runs the setters for every field present in patch. It stops at the
// first rejected value, leaving later fields untouched.
func (p *Post) Apply(patch Patch) error {
	steps := []struct {
		value *string
		set   func(string) error
	}{
		{patch.Title, p.SetTitle},
		{patch.Content, p.SetContent},
		{patch.Category, p.SetCategory},
		{patch.Summary, p.SetSummary},
	}
	for _, s := range steps {
		if s.value == nil {
			continue
		}
		if err := s.set(*s.value); err != nil {
			return err
		}
	}
	return nil
}

func (p Post) String() string {
	return fmt.Sprintf("Post(id=%d, title=%s content=%s, summary=%s)", p.ID, p.Title, p.Content, p.Summary)
}
