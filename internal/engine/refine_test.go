package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-refine/internal/dataset"
	"csv-refine/internal/engine"
	"csv-refine/internal/errors"
	"csv-refine/internal/frame"
)

const customersRaw = "customer_id,customer_unique_id,customer_zip_code_prefix,customer_city,customer_state\n" +
	"c1,u1,01037,sao paulo,SP\n" +
	"c2,u2,14409,franca,SP\n"

const badCustomersRaw = "customer_id,customer_unique_id,customer_zip_code_prefix,customer_city,customer_state\n" +
	"c1,u1,01037,sao paulo,SP\n" +
	"c2,u2,9790,santo andre,XX\n"

const itemsRaw = "order_id,order_item_id,product_id,seller_id,shipping_limit_date,price,freight_value\n" +
	"o1,1,p1,s1,2017-09-19 09:45:35,58.9,13.29\n" +
	"o1,2,p2,s1,2017-09-19 09:45:35,239.9,19.93\n" +
	"o2,1,p3,s2,2017-05-03 11:05:13,199.33,\n"

const reviewsRaw = "review_id,order_id,review_score,review_comment_title,review_comment_message,review_creation_date,review_answer_timestamp\n" +
	"r1,o1,5,,recomendo,2018-01-18 00:00:00,2018-01-18 21:46:59\n" +
	"r2,o2,3,,,2018-03-10 00:00:00,2018-03-11 03:05:13\n" +
	"r3,o3,1,ruim,nao chegou,2017-04-21 00:00:00,2017-04-21 22:02:06\n"

const productsRaw = "product_id,product_category_name,product_name_lenght,product_description_lenght,product_photos_qty,product_weight_g,product_length_cm,product_height_cm,product_width_cm\n" +
	"p1,perfumaria,40,287,1,2250,16,10,14\n" +
	"p2,bebes,50,509,,0,52,10,40\n" +
	"p3,,60,745,2,4000,,10,15\n" +
	"p4,moveis_decoracao,56,184,4,50,105,105,105\n"

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRefineOrderItems(t *testing.T) {
	source := writeFixture(t, t.TempDir(), dataset.OrderItems.RawFile, itemsRaw)

	f, err := engine.Refine(dataset.OrderItems, source)
	require.NoError(t, err)

	require.Equal(t, 3, f.NumRows())
	assert.Equal(t, "total_value", f.Header()[len(f.Header())-1])

	v, ok := f.Row(0).Float("total_value")
	require.True(t, ok)
	assert.InDelta(t, 72.19, v, 1e-9)

	v, ok = f.Row(1).Float("total_value")
	require.True(t, ok)
	assert.InDelta(t, 259.83, v, 1e-9)

	assert.Nil(t, f.Row(2).Value("total_value"), "missing freight leaves the total missing")
}

func TestRefineOrderReviews(t *testing.T) {
	source := writeFixture(t, t.TempDir(), dataset.OrderReviews.RawFile, reviewsRaw)

	f, err := engine.Refine(dataset.OrderReviews, source)
	require.NoError(t, err)
	require.Equal(t, 3, f.NumRows())

	want := []string{dataset.SatisfactionHappy, dataset.SatisfactionUnhappy, dataset.SatisfactionUnhappy}
	for i, label := range want {
		got, ok := f.Row(i).Text("satisfaction")
		require.True(t, ok, "row %d", i)
		assert.Equal(t, label, got, "row %d", i)
	}
}

func TestRefineProducts(t *testing.T) {
	source := writeFixture(t, t.TempDir(), dataset.Products.RawFile, productsRaw)

	f, err := engine.Refine(dataset.Products, source)
	require.NoError(t, err)
	require.Equal(t, 4, f.NumRows())

	t.Run("header override corrects the spelling", func(t *testing.T) {
		assert.Contains(t, f.Header(), "product_name_length")
		assert.NotContains(t, f.Header(), "product_name_lenght")
	})

	t.Run("volume multiplies the dimensions", func(t *testing.T) {
		v, ok := f.Row(0).Float("product_volume_cc")
		require.True(t, ok)
		assert.Equal(t, 2240.0, v)

		assert.Nil(t, f.Row(2).Value("product_volume_cc"), "missing length leaves the volume missing")
	})

	t.Run("heaviness classifies by density", func(t *testing.T) {
		want := []string{
			dataset.HeavinessLight,
			dataset.HeavinessUnknown,
			dataset.HeavinessLight,
			dataset.HeavinessHeavy,
		}
		for i, label := range want {
			got, ok := f.Row(i).Text("is_heavy")
			require.True(t, ok, "row %d", i)
			assert.Equal(t, label, got, "row %d", i)
		}
	})

	t.Run("empty photo count is missing, not zero", func(t *testing.T) {
		assert.Nil(t, f.Row(1).Value("product_photos_qty"))
	})
}

func TestTransformationLifecycle(t *testing.T) {
	dir := t.TempDir()
	source := writeFixture(t, dir, dataset.Customers.RawFile, customersRaw)

	t.Run("export before transform is a state error", func(t *testing.T) {
		tr := engine.NewTransformation(dataset.Customers, source)
		err := tr.Export(dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.State))
		assert.Contains(t, err.Error(), "transform has not run")
	})

	t.Run("validate before transform is a state error", func(t *testing.T) {
		tr := engine.NewTransformation(dataset.Customers, source)
		err := tr.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.State))
	})

	t.Run("full pass writes the refined file", func(t *testing.T) {
		tr := engine.NewTransformation(dataset.Customers, source)
		require.Nil(t, tr.Frame())
		require.NoError(t, tr.Transform())
		require.NoError(t, tr.Validate())

		out := filepath.Join(dir, "refined")
		require.NoError(t, tr.Export(out))
		assert.FileExists(t, filepath.Join(out, dataset.Customers.OutputFile))
		assert.Equal(t, 2, tr.Frame().NumRows())
	})
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	source := writeFixture(t, dir, dataset.Customers.RawFile, badCustomersRaw)

	f, err := engine.Refine(dataset.Customers, source)
	require.NoError(t, err)

	err = engine.Validate(dataset.Customers, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.Validation))

	// Both broken columns are reported in one pass.
	assert.Contains(t, err.Error(), "customer_zip_code_prefix: 1 rows fail")
	assert.Contains(t, err.Error(), "customer_state: 1 rows fail")
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	writeFixture(t, in, dataset.Customers.RawFile, customersRaw)
	writeFixture(t, in, dataset.OrderItems.RawFile, itemsRaw)
	// No orders file on purpose.

	specs := []dataset.Spec{dataset.Customers, dataset.Orders, dataset.OrderItems}

	t.Run("a failing variant does not stop the others", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "refined")
		ticks := 0
		results := engine.Run(specs, engine.Options{
			InputDir:   in,
			OutputDir:  out,
			OnProgress: func() { ticks++ },
		})

		require.Len(t, results, 3)
		assert.Equal(t, "OK", results[0].Status)
		assert.Equal(t, "FAILED", results[1].Status)
		assert.NotEmpty(t, results[1].ErrMsg)
		assert.Equal(t, "OK", results[2].Status)
		assert.Equal(t, 3, ticks)

		assert.FileExists(t, filepath.Join(out, dataset.Customers.OutputFile))
		assert.NoFileExists(t, filepath.Join(out, dataset.Orders.OutputFile))
		assert.FileExists(t, filepath.Join(out, dataset.OrderItems.OutputFile))
	})

	t.Run("fail fast stops at the first failure", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "refined")
		results := engine.Run([]dataset.Spec{dataset.Orders, dataset.Customers}, engine.Options{
			InputDir:  in,
			OutputDir: out,
			FailFast:  true,
		})

		require.Len(t, results, 1)
		assert.Equal(t, "FAILED", results[0].Status)
		assert.NoFileExists(t, filepath.Join(out, dataset.Customers.OutputFile))
	})

	t.Run("row and column counts land in the result", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "refined")
		results := engine.Run([]dataset.Spec{dataset.OrderItems}, engine.Options{
			InputDir:  in,
			OutputDir: out,
		})

		require.Len(t, results, 1)
		assert.Equal(t, "order_items", results[0].Dataset)
		assert.Equal(t, 3, results[0].Rows)
		assert.Equal(t, 8, results[0].Columns)
		assert.Equal(t, dataset.OrderItems.OutputFile, results[0].Output)
	})
}

func TestRunValidateOption(t *testing.T) {
	in := t.TempDir()
	writeFixture(t, in, dataset.Customers.RawFile, badCustomersRaw)

	t.Run("without validation the variant refines", func(t *testing.T) {
		results := engine.Run([]dataset.Spec{dataset.Customers}, engine.Options{
			InputDir:  in,
			OutputDir: filepath.Join(t.TempDir(), "refined"),
		})
		require.Len(t, results, 1)
		assert.Equal(t, "OK", results[0].Status)
	})

	t.Run("with validation the variant fails and exports nothing", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "refined")
		results := engine.Run([]dataset.Spec{dataset.Customers}, engine.Options{
			InputDir:  in,
			OutputDir: out,
			Validate:  true,
		})
		require.Len(t, results, 1)
		assert.Equal(t, "FAILED", results[0].Status)
		assert.Contains(t, results[0].ErrMsg, "customer_state")
		assert.NoFileExists(t, filepath.Join(out, dataset.Customers.OutputFile))
	})
}

func TestExportReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	source := writeFixture(t, dir, dataset.OrderReviews.RawFile, reviewsRaw)

	f, err := engine.Refine(dataset.OrderReviews, source)
	require.NoError(t, err)

	first := filepath.Join(dir, "first")
	require.NoError(t, engine.Export(dataset.OrderReviews, f, first))

	// Refined output reloads under the refined column set, derived
	// columns included, and exports to the same bytes.
	reloaded, err := frame.Load(
		filepath.Join(first, dataset.OrderReviews.OutputFile),
		dataset.OrderReviews.RefinedColumns(),
		nil,
	)
	require.NoError(t, err)

	second := filepath.Join(dir, "second")
	require.NoError(t, engine.Export(dataset.OrderReviews, reloaded, second))

	a, err := os.ReadFile(filepath.Join(first, dataset.OrderReviews.OutputFile))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second, dataset.OrderReviews.OutputFile))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
