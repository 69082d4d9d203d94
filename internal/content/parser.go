package content

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"albumstore/internal/models"
)

// TypeConfig describes one content type: its metadata file and image pattern
type TypeConfig struct {
	Type         string
	Filename     string
	ImagePattern *regexp.Regexp
}

var (
	ArtworkPattern = regexp.MustCompile(`(?i)^artwork\.(jpg|jpeg|png|svg|webp)$`)
	PreviewPattern = regexp.MustCompile(`(?i)^preview\.(jpg|jpeg|png|svg|webp)$`)

	frontmatterRegexp = regexp.MustCompile(`(?s)\A---\n(.*?)\n---`)
	bodyRegexp        = regexp.MustCompile(`(?s)\A---\n.*?\n---\n?`)
)

// TypeConfigs - фиксированный порядок перечисления типов, он же порядок вывода
var TypeConfigs = []TypeConfig{
	{Type: "album", Filename: "album.txt", ImagePattern: ArtworkPattern},
	{Type: "writing", Filename: "writing.txt", ImagePattern: ArtworkPattern},
	{Type: "artwork", Filename: "item.txt", ImagePattern: PreviewPattern},
	{Type: "education", Filename: "course.txt", ImagePattern: PreviewPattern},
}

const (
	ReasonNoFrontmatter = "no frontmatter"
	ReasonNotPublished  = "not published"
	ReasonReadError     = "read error"
)

// Skip explains why a present content file produced no item
type Skip struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type Frontmatter struct {
	Title      string
	Date       string
	PriceCents int64
	Published  bool
}

// ExtractFrontmatter returns the text between the leading --- line and the next --- line
func ExtractFrontmatter(content string) (string, bool) {
	match := frontmatterRegexp.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractBody returns everything after the closing delimiter, trimmed
func ExtractBody(content string) string {
	return strings.TrimSpace(bodyRegexp.ReplaceAllString(content, ""))
}

// GetField - поля ищутся независимо друг от друга, по одному регулярному выражению на поле
func GetField(frontmatter, field, defaultValue string) string {
	re := regexp.MustCompile(field + `:\s*(.+)`)
	match := re.FindStringSubmatch(frontmatter)
	if match == nil {
		return defaultValue
	}
	return strings.TrimSpace(match[1])
}

func GetIntField(frontmatter, field string, defaultValue int64) int64 {
	re := regexp.MustCompile(field + `:\s*(\d+)`)
	match := re.FindStringSubmatch(frontmatter)
	if match == nil {
		return defaultValue
	}
	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func GetBoolField(frontmatter, field string, defaultValue bool) bool {
	re := regexp.MustCompile(field + `:\s*(true|false)`)
	match := re.FindStringSubmatch(frontmatter)
	if match == nil {
		return defaultValue
	}
	return match[1] == "true"
}

func ParseFrontmatter(content string) (*Frontmatter, bool) {
	frontmatter, ok := ExtractFrontmatter(content)
	if !ok {
		return nil, false
	}

	return &Frontmatter{
		Title:      GetField(frontmatter, "title", "Untitled"),
		Date:       GetField(frontmatter, "date", ""),
		PriceCents: GetIntField(frontmatter, "price_cents", 0),
		Published:  GetBoolField(frontmatter, "published", false),
	}, true
}

// FindImage returns the first file name matching the pattern
func FindImage(files []string, pattern *regexp.Regexp) string {
	for _, f := range files {
		if pattern.MatchString(f) {
			return f
		}
	}
	return ""
}

// ParseSlugContent parses every configured content type found in the slug directory.
// Per-type failures never abort the remaining types: they come back as Skip values.
func ParseSlugContent(slugsDir, slug string) ([]models.ContentItem, []Skip, error) {
	itemPath := filepath.Join(slugsDir, slug)

	entries, err := os.ReadDir(itemPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при чтении каталога %s: %w", itemPath, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}

	var items []models.ContentItem
	var skips []Skip

	for _, cfg := range TypeConfigs {
		item, skip := parseContentItem(itemPath, slug, files, cfg)
		if skip != nil {
			skips = append(skips, *skip)
			continue
		}
		if item != nil {
			items = append(items, *item)
		}
	}

	return items, skips, nil
}

func parseContentItem(itemPath, slug string, files []string, cfg TypeConfig) (*models.ContentItem, *Skip) {
	found := false
	for _, f := range files {
		if f == cfg.Filename {
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	raw, err := os.ReadFile(filepath.Join(itemPath, cfg.Filename))
	if err != nil {
		return nil, &Skip{Type: cfg.Type, Reason: ReasonReadError}
	}

	frontmatter, ok := ParseFrontmatter(string(raw))
	if !ok {
		return nil, &Skip{Type: cfg.Type, Reason: ReasonNoFrontmatter}
	}

	if !frontmatter.Published {
		return nil, &Skip{Type: cfg.Type, Reason: ReasonNotPublished}
	}

	item := &models.ContentItem{
		Type:       cfg.Type,
		Slug:       slug,
		Title:      frontmatter.Title,
		Date:       frontmatter.Date,
		PriceCents: frontmatter.PriceCents,
		URL:        "/" + slug,
	}

	if image := FindImage(files, cfg.ImagePattern); image != "" {
		item.Image = "/slugs/" + slug + "/" + image
	}

	return item, nil
}
