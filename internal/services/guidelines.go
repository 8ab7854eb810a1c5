package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"
)

// GuidelineService renders and caches the per-role guideline document.
// A document is generated lazily on first request and treated as an
// immutable cache entry afterwards: it is never regenerated, even if the
// guideline content changes in a later release. Cache invalidation is a
// known limitation.
type GuidelineService interface {
	Ensure(role string) (string, error)
	DocumentName(role string) string
}

type guidelineService struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGuidelineService(dir string) GuidelineService {
	return &guidelineService{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// NormalizeRoleKey converts a job role into a filesystem-safe cache key.
func NormalizeRoleKey(role string) string {
	return strings.ReplaceAll(role, " ", "_")
}

// RoleFromKey reverses NormalizeRoleKey for URL parameters.
func RoleFromKey(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// Ensure implements GuidelineService. If a document already exists for the
// role it is returned unchanged; otherwise it is rendered and persisted.
// The first render is serialized per role key.
func (g *guidelineService) Ensure(role string) (string, error) {
	key := NormalizeRoleKey(role)
	path := filepath.Join(g.dir, fmt.Sprintf("guidelines_%s.pdf", key))

	lock := g.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create guidelines directory: %w", err)
	}

	if err := renderGuidelines(role, path); err != nil {
		return "", fmt.Errorf("failed to render guidelines for %q: %w", role, err)
	}

	return path, nil
}

// DocumentName implements GuidelineService. Used for downloads and email
// attachments.
func (g *guidelineService) DocumentName(role string) string {
	return fmt.Sprintf("Guidelines_%s.pdf", role)
}

func (g *guidelineService) keyLock(key string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	lock, ok := g.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[key] = lock
	}
	return lock
}

const (
	pageLeftMargin   = 40.0
	pageTopOffset    = 50.0
	bodyStartOffset  = 90.0
	pageBottomMargin = 60.0
	lineHeight       = 18.0
)

// guidelineTipCategories maps a role-name substring match to extra tip
// lines. A role may match several categories; matching lines are appended
// in declaration order.
var guidelineTipCategories = []struct {
	substrings []string
	line       string
}{
	{[]string{"Data", "Machine"}, "- Work on data pipelines, ML models, and Jupyter notebooks."},
	{[]string{"Web", "Frontend", "Full Stack"}, "- Build deployable web apps and practice UI/UX basics."},
	{[]string{"DevOps"}, "- Learn Docker, Kubernetes, CI/CD, cloud basics."},
}

func guidelineLines(role string) []string {
	lines := []string{
		"These guidelines help improve placement chances.",
		"",
		"1) Improve CGPA: aim for > 4.0 (out of 10).",
		"2) Communication: practice speaking, mock interviews, presentations.",
		"3) Certifications: complete relevant certifications and display them on your resume.",
		"4) Internships: seek internships or practical projects to build experience.",
		"5) Projects: build 3-5 meaningful projects and document them on GitHub.",
		"6) Skills: keep a concise skills list and practice problem solving.",
		"",
		"Role-specific tips:",
	}

	for _, category := range guidelineTipCategories {
		for _, sub := range category.substrings {
			if strings.Contains(role, sub) {
				lines = append(lines, category.line)
				break
			}
		}
	}

	return lines
}

func renderGuidelines(role, path string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	_, pageHeight := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(pageLeftMargin, pageTopOffset, fmt.Sprintf("Placement Guidelines - %s", role))

	pdf.SetFont("Helvetica", "", 12)
	y := bodyStartOffset

	for _, line := range guidelineLines(role) {
		if y > pageHeight-pageBottomMargin {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 12)
			y = pageTopOffset
		}
		pdf.Text(pageLeftMargin, y, line)
		y += lineHeight
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}
