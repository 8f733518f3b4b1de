package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-refine/internal/dataset"
	"csv-refine/internal/frame"
)

func TestAllSpecs(t *testing.T) {
	specs := dataset.All()
	require.Len(t, specs, 9)

	names := make(map[string]bool)
	raws := make(map[string]bool)
	outs := make(map[string]bool)
	for _, s := range specs {
		assert.NotEmpty(t, s.Name)
		assert.False(t, names[s.Name], "duplicate name %s", s.Name)
		assert.False(t, raws[s.RawFile], "duplicate raw file %s", s.RawFile)
		assert.False(t, outs[s.OutputFile], "duplicate output file %s", s.OutputFile)
		names[s.Name] = true
		raws[s.RawFile] = true
		outs[s.OutputFile] = true

		assert.True(t, strings.HasSuffix(s.OutputFile, ".csv"))
		assert.NotEmpty(t, s.Columns)
	}
}

func TestGet(t *testing.T) {
	spec, ok := dataset.Get("products")
	require.True(t, ok)
	assert.Equal(t, "olist_products_dataset.csv", spec.RawFile)

	_, ok = dataset.Get("nope")
	assert.False(t, ok)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "customers_dataset_refined", dataset.Customers.TableName())
	assert.Equal(t, "product_category_refined", dataset.CategoryTranslation.TableName())
}

func TestRefinedColumns(t *testing.T) {
	cols := dataset.OrderItems.RefinedColumns()
	require.Len(t, cols, len(dataset.OrderItems.Columns)+1)

	last := cols[len(cols)-1]
	assert.Equal(t, "total_value", last.Name)
	assert.Equal(t, frame.Float, last.Type)
	assert.True(t, last.Nullable)
}

func TestProductsHeaderOverride(t *testing.T) {
	// Override must cover the raw file's nine columns and carry the
	// corrected spellings.
	require.Len(t, dataset.Products.HeaderOverride, len(dataset.Products.Columns))
	assert.Contains(t, dataset.Products.HeaderOverride, "product_name_length")
	assert.Contains(t, dataset.Products.HeaderOverride, "product_description_length")
	assert.NotContains(t, dataset.Products.HeaderOverride, "product_name_lenght")
}
