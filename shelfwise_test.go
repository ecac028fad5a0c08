package shelfwise

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func testCatalog() []Book {
	return []Book{
		{Title: "The Martian", Author: "Andy Weir", Genre: "Science Fiction",
			Description: "An astronaut stranded on Mars survives with botany and engineering", Rating: 4.4, Year: 2011},
		{Title: "Project Hail Mary", Author: "Andy Weir", Genre: "Science Fiction",
			Description: "A lone astronaut must save humanity from an extinction level threat", Rating: 4.6, Year: 2021},
		{Title: "The Name of the Wind", Author: "Patrick Rothfuss", Genre: "Fantasy",
			Description: "A gifted young man grows into a legendary magician and musician", Rating: 4.5, Year: 2007},
		{Title: "Gone Girl", Author: "Gillian Flynn", Genre: "Thriller",
			Description: "A marriage turns dark when a wife disappears and secrets surface", Rating: 4.0, Year: 2012},
	}
}

func TestNew_DefaultSampleCatalog(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Ready() {
		t.Fatal("expected client to be ready")
	}

	health := c.Health(context.Background())
	if health.Status != "healthy" || !health.ModelLoaded {
		t.Errorf("unexpected health: %+v", health)
	}
}

func TestRecommend_WithCatalog(t *testing.T) {
	c, err := New(WithCatalog(testCatalog()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := c.Recommend(context.Background(), "astronaut stranded on mars", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if recs[0].Title != "The Martian" {
		t.Errorf("expected The Martian first, got %q", recs[0].Title)
	}
	if recs[0].Score <= 0.01 {
		t.Errorf("expected score above threshold, got %f", recs[0].Score)
	}
	if recs[0].Cover == "" {
		t.Error("expected a cover URL")
	}
}

func TestRecommend_InvalidQuery(t *testing.T) {
	c, err := New(WithCatalog(testCatalog()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Recommend(context.Background(), "a", nil)
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRecommend_Options(t *testing.T) {
	c, err := New(WithCatalog(testCatalog()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	minRating := 4.5
	recs, err := c.Recommend(context.Background(), "astronaut saves humanity", &RecommendOptions{
		MaxResults: 5,
		MinRating:  &minRating,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range recs {
		if r.Rating < minRating {
			t.Errorf("rating filter leaked %q with rating %f", r.Title, r.Rating)
		}
	}
}

func TestBatchRecommend_PerEntryIsolation(t *testing.T) {
	c, err := New(WithCatalog(testCatalog()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results := c.BatchRecommend(context.Background(), []string{"wizard magician legend", "", "dark thriller marriage"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Errorf("entry 0: unexpected error: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, ErrInvalidQuery) {
		t.Errorf("entry 1: expected ErrInvalidQuery, got %v", results[1].Err)
	}
	if results[2].Err != nil {
		t.Errorf("entry 2: unexpected error: %v", results[2].Err)
	}
	if results[1].Query != "" {
		t.Errorf("expected original query preserved, got %q", results[1].Query)
	}
}

func TestNew_WithModelDir_Missing(t *testing.T) {
	_, err := New(WithModelDir(filepath.Join(t.TempDir(), "nope")))
	if !errors.Is(err, ErrArtifactsMissing) {
		t.Errorf("expected ErrArtifactsMissing, got %v", err)
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	_, err := New(WithCatalog([]Book{}))
	if err != nil {
		// Empty WithCatalog falls back to the sample catalog.
		t.Fatalf("unexpected error: %v", err)
	}
}
