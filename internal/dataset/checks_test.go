package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-refine/internal/dataset"
)

func TestZipPrefixCheck(t *testing.T) {
	zip := dataset.Customers.Checks[0]
	require.Equal(t, "customer_zip_code_prefix", zip.Column)

	assert.True(t, zip.OK("01037"), "leading zeros are part of the prefix")
	assert.True(t, zip.OK("95110"))
	assert.False(t, zip.OK("1037"), "too short")
	assert.False(t, zip.OK("010375"), "too long")
	assert.False(t, zip.OK("01a37"))
	assert.False(t, zip.OK(""))
	assert.False(t, zip.OK(nil))
}

func TestStateCheck(t *testing.T) {
	state := dataset.Sellers.Checks[1]
	require.Equal(t, "seller_state", state.Column)

	assert.True(t, state.OK("SP"))
	assert.True(t, state.OK("DF"))
	assert.False(t, state.OK("sp"), "codes are upper case")
	assert.False(t, state.OK("XX"))
	assert.False(t, state.OK(nil))
}

func TestReviewScoreCheck(t *testing.T) {
	score := dataset.OrderReviews.Checks[0]

	for s := int64(1); s <= 5; s++ {
		assert.True(t, score.OK(s))
	}
	assert.False(t, score.OK(int64(0)))
	assert.False(t, score.OK(int64(6)))
	assert.False(t, score.OK(nil))
}

func TestPaymentChecks(t *testing.T) {
	installments := dataset.OrderPayments.Checks[0]
	value := dataset.OrderPayments.Checks[1]

	assert.True(t, installments.OK(int64(0)))
	assert.True(t, installments.OK(int64(10)))
	assert.False(t, installments.OK(int64(-1)))

	assert.True(t, value.OK(99.33))
	assert.True(t, value.OK(0.0))
	assert.False(t, value.OK(-0.01))
	assert.False(t, value.OK(nil))
}
