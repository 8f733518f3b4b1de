package frame_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-refine/internal/frame"
)

func TestWrite(t *testing.T) {
	f, err := frame.NewFrame(
		&frame.Column{Name: "order_id", Type: frame.Text, Cells: []any{"a1", "b2"}},
		&frame.Column{Name: "price", Type: frame.Float, Cells: []any{58.9, nil}},
		&frame.Column{Name: "qty", Type: frame.Int, Cells: []any{int64(2), int64(1)}},
	)
	require.NoError(t, err)

	// The output directory does not exist yet; Write must create it.
	path := filepath.Join(t.TempDir(), "refined", "out.csv")
	require.NoError(t, frame.Write(f, path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "order_id,price,qty\na1,58.9,2\nb2,,1\n", string(got))
}

func TestWriteHeaderOnly(t *testing.T) {
	f, err := frame.NewFrame(
		&frame.Column{Name: "id", Type: frame.Text},
		&frame.Column{Name: "score", Type: frame.Int},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, frame.Write(f, path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,score\n", string(got))
}

func TestWriteQuotesSpecialFields(t *testing.T) {
	f, err := frame.NewFrame(
		&frame.Column{Name: "review_id", Type: frame.Text, Cells: []any{"r1"}},
		&frame.Column{Name: "review_comment_message", Type: frame.Text, Cells: []any{"chegou rapido, recomendo"}},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, frame.Write(f, path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "review_id,review_comment_message\nr1,\"chegou rapido, recomendo\"\n", string(got))
}

func TestWriteLoadRoundTrip(t *testing.T) {
	// A refined file reloaded and written again must come back byte for
	// byte, so repeated runs leave output untouched.
	content := "order_id,price,qty,bought_at,note\n" +
		"a1,58.9,2,2017-10-02 10:56:33,plain\n" +
		"b2,,1,,\"has, comma\"\n"

	specs := []frame.ColumnSpec{
		{Name: "order_id", Type: frame.Text},
		{Name: "price", Type: frame.Float},
		{Name: "qty", Type: frame.Int},
		{Name: "bought_at", Type: frame.Time},
		{Name: "note", Type: frame.Text},
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))

	f, err := frame.Load(src, specs, nil)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.csv")
	require.NoError(t, frame.Write(f, out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	f, err := frame.NewFrame(
		&frame.Column{Name: "id", Type: frame.Text, Cells: []any{"fresh"}},
	)
	require.NoError(t, err)
	require.NoError(t, frame.Write(f, path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\nfresh\n", string(got))
}
