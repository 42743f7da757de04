// Package content loads the portfolio text shown on the level screens.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/automoto/arcade-portfolio/navigation"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

type Stat struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

type Ability struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Player struct {
	Name      string  `yaml:"name"`
	Class     string  `yaml:"class"`
	Level     int     `yaml:"level"`
	Stats     []Stat  `yaml:"stats"`
	Backstory string  `yaml:"backstory"`
	Ability   Ability `yaml:"ability"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type SkillCategory struct {
	Category string  `yaml:"category"`
	Items    []Skill `yaml:"items"`
}

type SpecialItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Link        string   `yaml:"link"`
}

type HighScore struct {
	Rank  string `yaml:"rank"`
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// Level is a card on the level select screen.
type Level struct {
	Number      int                 `yaml:"number"`
	ScreenName  string              `yaml:"screen"`
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Screen      navigation.ScreenID `yaml:"-"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Portfolio is everything the level screens display.
type Portfolio struct {
	Player       Player          `yaml:"player"`
	Skills       []SkillCategory `yaml:"skills"`
	SpecialItems []SpecialItem   `yaml:"special_items"`
	Projects     []Project       `yaml:"projects"`
	HighScores   []HighScore     `yaml:"high_scores"`
	Levels       []Level         `yaml:"levels"`
	Social       []Link          `yaml:"social"`
}

// Load parses the embedded portfolio.
func Load() (*Portfolio, error) {
	return Parse(portfolioYAML)
}

// Parse decodes and validates a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	if err := p.resolve(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) resolve() error {
	for i := range p.Levels {
		id, err := navigation.ParseScreenID(p.Levels[i].ScreenName)
		if err != nil {
			return fmt.Errorf("level %d: %w", p.Levels[i].Number, err)
		}
		p.Levels[i].Screen = id
	}
	return nil
}

// Validate checks ranges, required titles and unique ids.
func (p *Portfolio) Validate() error {
	var errs []error

	if strings.TrimSpace(p.Player.Name) == "" {
		errs = append(errs, errors.New("player name is empty"))
	}
	for _, s := range p.Player.Stats {
		if s.Value < 0 || s.Value > 100 {
			errs = append(errs, fmt.Errorf("stat %s: value %d out of range 0..100", s.Name, s.Value))
		}
	}
	for _, c := range p.Skills {
		for _, s := range c.Items {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("skill %s: level %d out of range 0..100", s.Name, s.Level))
			}
		}
	}

	ids := lo.Map(p.Projects, func(pr Project, _ int) string { return pr.ID })
	for _, dup := range lo.FindDuplicates(ids) {
		errs = append(errs, fmt.Errorf("duplicate project id %q", dup))
	}
	for _, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			errs = append(errs, fmt.Errorf("project %q has no title", pr.ID))
		}
	}

	for _, l := range p.Levels {
		if strings.TrimSpace(l.Title) == "" {
			errs = append(errs, fmt.Errorf("level %d has no title", l.Number))
		}
	}
	screens := lo.Map(p.Levels, func(l Level, _ int) navigation.ScreenID { return l.Screen })
	for _, dup := range lo.FindDuplicates(screens) {
		errs = append(errs, fmt.Errorf("screen %s listed by more than one level", dup))
	}

	return errors.Join(errs...)
}

// Project returns the project with the given id.
func (p *Portfolio) Project(id string) (Project, bool) {
	return lo.Find(p.Projects, func(pr Project) bool { return pr.ID == id })
}

// SkillCount returns the number of skills across all categories.
func (p *Portfolio) SkillCount() int {
	return lo.SumBy(p.Skills, func(c SkillCategory) int { return len(c.Items) })
}

// FormatScore renders a score with thousands separators.
func FormatScore(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
