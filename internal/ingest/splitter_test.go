package ingest

import (
	"context"
	"strings"
	"testing"
)

func TestSplitShortTextIsOneChunk(t *testing.T) {
	got := Split("The Weimaraner is a German hunting dog.", 500, 80)
	if len(got) != 1 || got[0] != "The Weimaraner is a German hunting dog." {
		t.Fatalf("unexpected chunks: %#v", got)
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split("  \n ", 500, 80); got != nil {
		t.Fatalf("expected nil for blank input, got %#v", got)
	}
}

func TestSplitRespectsSizeAndOverlaps(t *testing.T) {
	sentence := "The Weimaraner needs a lot of daily exercise and mental stimulation. "
	text := strings.Repeat(sentence, 30)

	chunks := Split(text, 200, 40)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if n := len([]rune(c)); n > 200 {
			t.Fatalf("chunk %d exceeds size: %d runes", i, n)
		}
	}
	// Consecutive chunks share text because of the overlap: the head of each
	// chunk re-appears near the tail of the previous one.
	for i := 1; i < len(chunks); i++ {
		head := []rune(chunks[i])
		if len(head) > 15 {
			head = head[:15]
		}
		if !strings.Contains(chunks[i-1], strings.TrimSpace(string(head))) {
			t.Fatalf("chunks %d/%d do not overlap:\nprev: %q\nnext: %q", i-1, i, chunks[i-1], chunks[i])
		}
	}
}

func TestSplitPrefersParagraphBoundary(t *testing.T) {
	text := "First paragraph about the breed history.\n\nSecond paragraph about temperament and training needs of the dog."
	chunks := Split(text, 60, 10)
	if len(chunks) < 2 {
		t.Fatalf("expected a split, got %#v", chunks)
	}
	if chunks[0] != "First paragraph about the breed history." {
		t.Fatalf("first chunk should end at the paragraph break, got %q", chunks[0])
	}
}

type fakeEmbedder struct{ batches [][]string }

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.batches = append(f.batches, texts)
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(i)}
	}
	return out, nil
}

type fakeWriter struct{ vectors []Vector }

func (f *fakeWriter) Upsert(ctx context.Context, vectors []Vector) error {
	f.vectors = append(f.vectors, vectors...)
	return nil
}

func TestBuilderIndexesEveryChunk(t *testing.T) {
	e := &fakeEmbedder{}
	w := &fakeWriter{}
	b := NewBuilder(e, w, 100, 20)

	text := strings.Repeat("A fact about the Weimaraner breed and its care. ", 20)
	n, err := b.Build(context.Background(), text)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if n == 0 || len(w.vectors) != n {
		t.Fatalf("want %d vectors written, got %d", n, len(w.vectors))
	}
	for _, v := range w.vectors {
		if v.ID == "" || v.Text == "" || len(v.Values) == 0 {
			t.Fatalf("incomplete vector: %+v", v)
		}
	}
}

func TestBuilderRejectsEmptyDocument(t *testing.T) {
	b := NewBuilder(&fakeEmbedder{}, &fakeWriter{}, 100, 20)
	if _, err := b.Build(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
