package vectorizer

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/shelfwise/shelfwise/internal/domain"
)

func TestFit_EmptyCorpus(t *testing.T) {
	_, err := Fit(nil)
	if !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestFit_Deterministic(t *testing.T) {
	docs := []string{
		"dystopian surveillance novel",
		"romantic novel about marriage",
		"epic fantasy quest",
	}

	v1, err := Fit(docs)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	v2, err := Fit(docs)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	if !reflect.DeepEqual(v1.Terms(), v2.Terms()) {
		t.Errorf("vocabularies differ: %v vs %v", v1.Terms(), v2.Terms())
	}
	if !reflect.DeepEqual(v1.IDF(), v2.IDF()) {
		t.Errorf("idf values differ")
	}
	if !reflect.DeepEqual(v1.Transform(docs[0]), v2.Transform(docs[0])) {
		t.Errorf("transforms differ for identical input")
	}
}

func TestFit_MaxDocRatioPrunesUbiquitousTerms(t *testing.T) {
	// "novel" appears in all 5 documents (df=5 > 0.8*5) and must be pruned.
	docs := []string{
		"dystopian novel", "romantic novel", "fantasy novel",
		"war novel", "crime novel",
	}
	v, err := Fit(docs)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for _, term := range v.Terms() {
		if term == "novel" {
			t.Errorf("term %q should have been pruned by max document ratio", term)
		}
	}
	// The rare unigrams survive.
	found := false
	for _, term := range v.Terms() {
		if term == "dystopian" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in vocabulary %v", "dystopian", v.Terms())
	}
}

func TestFit_ColumnsAlphabetical(t *testing.T) {
	v, err := Fit([]string{"zebra apple", "apple mango"})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	terms := v.Terms()
	for i := 1; i < len(terms); i++ {
		if terms[i-1] >= terms[i] {
			t.Fatalf("terms not sorted: %v", terms)
		}
	}
}

func TestTransform_UnknownTermsContributeZero(t *testing.T) {
	v, err := Fit([]string{"dystopian surveillance", "romantic marriage"})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	vec := v.Transform("completely unrelated vocabulary")
	for i, w := range vec {
		if w != 0 {
			t.Errorf("expected zero vector, got weight %f at column %d", w, i)
		}
	}
}

func TestTransform_L2Normalized(t *testing.T) {
	v, err := Fit([]string{
		"dystopian surveillance totalitarian",
		"romantic marriage manners",
		"fantasy wizard quest",
	})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	vec := v.Transform("dystopian surveillance state")

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
		t.Errorf("expected unit norm, got %f", math.Sqrt(norm))
	}
}

func TestTransform_DimensionMatchesVocabulary(t *testing.T) {
	v, err := Fit([]string{"alpha beta", "gamma delta"})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if got := len(v.Transform("anything")); got != v.Size() {
		t.Errorf("vector dimension %d != vocabulary size %d", got, v.Size())
	}
}

func TestTransformAll_RowOrderFollowsDocs(t *testing.T) {
	docs := []string{"dystopian surveillance", "romantic marriage"}
	v, err := Fit(docs)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	rows := v.TransformAll(docs)
	if len(rows) != len(docs) {
		t.Fatalf("expected %d rows, got %d", len(docs), len(rows))
	}
	for i, doc := range docs {
		if !reflect.DeepEqual(rows[i], v.Transform(doc)) {
			t.Errorf("row %d does not match Transform of its document", i)
		}
	}
}

func TestNew_LengthMismatch(t *testing.T) {
	if _, err := New([]string{"a", "b"}, []float64{1}); err == nil {
		t.Error("expected error for terms/idf length mismatch")
	}
}

func TestNew_RoundTrip(t *testing.T) {
	fitted, err := Fit([]string{"dystopian surveillance", "romantic marriage"})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	restored, err := New(fitted.Terms(), fitted.IDF())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	q := "dystopian state"
	if !reflect.DeepEqual(fitted.Transform(q), restored.Transform(q)) {
		t.Error("restored vocabulary transforms differently")
	}
}
