// Package store persists harvested article links.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Afrik-Presse/liens-afrique/internal/domain"
)

// SaveJSON writes the articles as an indented UTF-8 JSON array, overwriting
// any existing file at path. HTML escaping is disabled so accented
// characters and URLs are written literally.
func SaveJSON(articles []domain.Article, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if articles == nil {
		articles = []domain.Article{}
	}
	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("encode articles: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// LoadJSON reads back a previously saved article list.
func LoadJSON(path string) ([]domain.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read output file: %w", err)
	}

	var articles []domain.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}
