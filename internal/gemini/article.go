package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultTitle    = "Untitled Satire"
	DefaultContent  = "<p>No content generated</p>"
	DefaultLanguage = "en"
	fallbackSlug    = "untitled-satire"
	maxSlugLength   = 100
)

var DefaultTags = []string{"nepal", "satire"}

var (
	fenceJSON     = regexp.MustCompile("```json\\n?")
	fencePlain    = regexp.MustCompile("```\\n?")
	slugStrip     = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces    = regexp.MustCompile(`\s+`)
	contentPolicy = bluemonday.UGCPolicy()
)

// GeneratedArticle is the coerced form of the model's JSON answer. Every field
// is always populated.
type GeneratedArticle struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	ContentHTML string   `json:"content_html"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"`
}

// ParseGenerated never fails: text that is not a JSON object, and any field
// that is missing or of the wrong type, falls back to its default.
func ParseGenerated(text string) *GeneratedArticle {
	cleaned := fenceJSON.ReplaceAllString(text, "")
	cleaned = fencePlain.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		fields = nil
	}

	article := &GeneratedArticle{
		Title:       DefaultTitle,
		ContentHTML: DefaultContent,
		Language:    DefaultLanguage,
		Tags:        append([]string(nil), DefaultTags...),
	}

	if title, ok := stringField(fields, "title"); ok {
		article.Title = title
	}

	if slug, ok := stringField(fields, "slug"); ok {
		article.Slug = Slugify(slug)
	} else {
		article.Slug = Slugify(article.Title)
	}

	if summary, ok := stringField(fields, "summary"); ok {
		article.Summary = summary
	}

	if content, ok := stringField(fields, "content_html"); ok {
		if sanitized := strings.TrimSpace(contentPolicy.Sanitize(content)); sanitized != "" {
			article.ContentHTML = sanitized
		}
	}

	if tags := tagsField(fields); len(tags) > 0 {
		article.Tags = tags
	}

	if lang, ok := stringField(fields, "language"); ok {
		lang = strings.ToLower(lang)
		if lang == "en" || lang == "ne" {
			article.Language = lang
		}
	}

	return article
}

// Slugify lowercases, drops everything but word characters, whitespace and
// hyphens, joins words with hyphens and caps the result at 100 characters.
func Slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	if slug == "" {
		return fallbackSlug
	}
	return slug
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}

func tagsField(fields map[string]json.RawMessage) []string {
	raw, ok := fields["tags"]
	if !ok {
		return nil
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		tag, ok := item.(string)
		if !ok {
			continue
		}
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
