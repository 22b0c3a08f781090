package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Project es una entrada del portfolio.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageURL"`
	Technologies []string  `json:"technologies"`
	LiveDemoLink string    `json:"liveDemoLink,omitempty"`
	GithubLink   string    `json:"githubLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TechnologyList acepta en el JSON de entrada tanto una lista de strings como
// un único string delimitado por comas, y siempre produce la forma canónica:
// lista ordenada de strings recortados, sin entradas vacías. La forma se
// resuelve aquí, en el borde; el resto del servicio solo ve []string.
type TechnologyList []string

func (t *TechnologyList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = NormalizeTechnologies(list)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*t = NormalizeTechnologies(strings.Split(single, ","))
	return nil
}

// NormalizeTechnologies recorta cada entrada y descarta las vacías,
// preservando el orden.
func NormalizeTechnologies(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
