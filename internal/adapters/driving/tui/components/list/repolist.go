// Package list provides the repository list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

// linesPerRepo is the height of one rendered entry.
const linesPerRepo = 2

// RepoList displays repositories projected from the latest response.
type RepoList struct {
	repos    []domain.Repository
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRepoList creates an empty repository list.
func NewRepoList(s *styles.Styles) *RepoList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &RepoList{styles: s, width: 80, height: 10}
}

// Update handles list navigation keys.
func (r *RepoList) Update(msg tea.Msg) (*RepoList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of the list.
func (r *RepoList) View() string {
	if len(r.repos) == 0 {
		return r.styles.Muted.Render("No repositories in response")
	}

	visible := max((r.height-2)/linesPerRepo, 1)
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.repos))

	lines := make([]string, 0, (end-start)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Repositories (%d)", len(r.repos))), "")
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRepo(i, &r.repos[i]))
	}
	return strings.Join(lines, "\n")
}

func (r *RepoList) renderRepo(index int, repo *domain.Repository) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := repo.Name
	if name == "" {
		name = "(unnamed)"
	}
	stars := fmt.Sprintf("★ %d", repo.Stars)
	name = truncate(name, max(r.width-len(stars)-6, 10))

	var title string
	if index == r.selected {
		title = r.styles.Selected.Render(indicator+name) + "  " + r.styles.Accent.Render(stars)
	} else {
		title = r.styles.Normal.Render(indicator+name) + "  " + r.styles.Accent.Render(stars)
	}

	detail := repo.Description
	if repo.Language != "" {
		detail = "[" + repo.Language + "] " + detail
	}
	detail = truncate(detail, max(r.width-6, 20))

	return title + "\n" + r.styles.Muted.Render("    "+detail)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// SetRepositories replaces the list contents and resets the selection.
func (r *RepoList) SetRepositories(repos []domain.Repository) {
	r.repos = repos
	r.selected = 0
}

// Repositories returns the current list contents.
func (r *RepoList) Repositories() []domain.Repository {
	return r.repos
}

// Selected returns the index of the selected repository.
func (r *RepoList) Selected() int {
	return r.selected
}

// SelectedRepository returns the selected repository, or nil if the list is empty.
func (r *RepoList) SelectedRepository() *domain.Repository {
	if r.selected < 0 || r.selected >= len(r.repos) {
		return nil
	}
	return &r.repos[r.selected]
}

// MoveUp moves selection up.
func (r *RepoList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RepoList) MoveDown() {
	if r.selected < len(r.repos)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RepoList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of repositories.
func (r *RepoList) Count() int {
	return len(r.repos)
}
