package tips

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrParse: el JSON interno de tips no trae las seis categorías.
	ErrParse = errors.New("tips: missing or invalid field")
)

// Category es una de las seis áreas de recomendación.
type Category string

const (
	HealthIssues  Category = "health_issues"
	Nutrition     Category = "nutrition"
	ExerciseNeeds Category = "exercise_needs"
	Grooming      Category = "grooming"
	Behavior      Category = "behavior"
	Environment   Category = "environment"
)

var Categories = []Category{HealthIssues, Nutrition, ExerciseNeeds, Grooming, Behavior, Environment}

var categoryTitles = map[Category]string{
	HealthIssues:  "Health Issues",
	Nutrition:     "Nutrition",
	ExerciseNeeds: "Exercise Needs",
	Grooming:      "Grooming",
	Behavior:      "Behavior",
	Environment:   "Environment",
}

func (c Category) Title() string { return categoryTitles[c] }

// Recommendations es el payload del backend: texto por categoría + importancia.
type Recommendations struct {
	Bullets    map[Category]string  `json:"recommendation_bullets"`
	Importance map[Category]float64 `json:"recommendation_importance"`
}

// ParseRecommendations exige las seis categorías en ambos objetos.
func ParseRecommendations(raw []byte) (Recommendations, error) {
	var aux struct {
		Bullets    map[Category]*string  `json:"recommendation_bullets"`
		Importance map[Category]*float64 `json:"recommendation_importance"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return Recommendations{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	out := Recommendations{
		Bullets:    make(map[Category]string, len(Categories)),
		Importance: make(map[Category]float64, len(Categories)),
	}
	for _, c := range Categories {
		b, ok := aux.Bullets[c]
		if !ok || b == nil {
			return Recommendations{}, fmt.Errorf("%w: recommendation_bullets.%s", ErrParse, c)
		}
		imp, ok := aux.Importance[c]
		if !ok || imp == nil {
			return Recommendations{}, fmt.Errorf("%w: recommendation_importance.%s", ErrParse, c)
		}
		out.Bullets[c] = *b
		out.Importance[c] = *imp
	}
	return out, nil
}

// BulletPoint: Index es la línea (1-based) del texto original, por eso puede
// saltar números cuando hay líneas vacías.
type BulletPoint struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

var bulletPrefix = regexp.MustCompile(`^\s*-\s*|^\s*[0-9]+\.\s*`)

func ParseBulletPoints(text string) []BulletPoint {
	lines := strings.Split(text, "\n")
	out := make([]BulletPoint, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		out = append(out, BulletPoint{Index: i + 1, Text: line})
	}
	return out
}

type Tip struct {
	Category   Category      `json:"category"`
	Title      string        `json:"title"`
	Importance float64       `json:"importance"`
	Text       string        `json:"text"`
	Points     []BulletPoint `json:"points"`
}

// Sorted devuelve las categorías de mayor a menor importancia (estable ante empates).
func (r Recommendations) Sorted() []Tip {
	out := make([]Tip, 0, len(Categories))
	for _, c := range Categories {
		text := r.Bullets[c]
		out = append(out, Tip{
			Category:   c,
			Title:      c.Title(),
			Importance: r.Importance[c],
			Text:       text,
			Points:     ParseBulletPoints(text),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out
}

// Record es lo que se cachea por pet.
type Record struct {
	UserID          string          `json:"user_id"`
	PetID           string          `json:"pet_id"`
	FetchedAt       time.Time       `json:"fetched_at"`
	Recommendations Recommendations `json:"recommendations"`
}
