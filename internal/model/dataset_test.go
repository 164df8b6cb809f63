package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(dateStr, amountStr string) Record {
	d, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		panic(err)
	}
	return Record{Date: d, Amount: decimal.RequireFromString(amountStr)}
}

func TestNew_SeedsFixedCategories(t *testing.T) {
	ds := New()
	assert.Equal(t, []string{"energy", "water", "waste"}, ds.Categories())
	for _, cat := range ds.Categories() {
		assert.Zero(t, ds.Len(cat))
	}
}

func TestAppend_KnownCategory(t *testing.T) {
	ds := New()
	ok := ds.Append("energy", rec("2025-03-01", "40"))
	require.True(t, ok)
	ok = ds.Append("energy", rec("2025-03-02", "70"))
	require.True(t, ok)

	recs := ds.Records("energy")
	require.Len(t, recs, 2)
	assert.True(t, recs[0].Amount.Equal(decimal.RequireFromString("40")))
	assert.True(t, recs[1].Amount.Equal(decimal.RequireFromString("70")))
}

func TestAppend_UnknownCategoryIsNoOp(t *testing.T) {
	ds := New()
	ok := ds.Append("gas", rec("2025-03-01", "5"))
	assert.False(t, ok)
	for _, cat := range ds.Categories() {
		assert.Zero(t, ds.Len(cat))
	}
	assert.False(t, ds.Has("gas"))
}

func TestMarshal_KeyOrderAndBareNumbers(t *testing.T) {
	ds := New()
	require.True(t, ds.Append("water", rec("2025-06-15", "12.5")))

	out, err := json.Marshal(ds)
	require.NoError(t, err)
	assert.JSONEq(t, `{"energy":[],"water":[{"date":"2025-06-15","amount":12.5}],"waste":[]}`, string(out))

	// Key order is significant, not just set membership.
	assert.Equal(t, `{"energy":[],"water":[{"date":"2025-06-15","amount":12.5}],"waste":[]}`, string(out))
}

func TestUnmarshal_AdoptsFileOrderAndExtraKeys(t *testing.T) {
	in := `{"water":[],"gas":[{"date":"2025-01-01","amount":3}],"energy":[{"date":"2025-01-02","amount":40}],"waste":[]}`

	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(in), &ds))

	assert.Equal(t, []string{"water", "gas", "energy", "waste"}, ds.Categories())
	assert.True(t, ds.Has("gas"))
	require.Equal(t, 1, ds.Len("gas"))
	assert.True(t, ds.Records("gas")[0].Amount.Equal(decimal.RequireFromString("3")))

	// Extra keys survive a round trip untouched, in the same position.
	out, err := json.Marshal(&ds)
	require.NoError(t, err)
	assert.Equal(t, `{"water":[],"gas":[{"date":"2025-01-01","amount":3}],"energy":[{"date":"2025-01-02","amount":40}],"waste":[]}`, string(out))
}

func TestUnmarshal_RejectsNonObject(t *testing.T) {
	var ds Dataset
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &ds))
	assert.Error(t, json.Unmarshal([]byte(`"hello"`), &ds))
	assert.Error(t, json.Unmarshal([]byte(`{"energy":"not a list"}`), &ds))
}

func TestRoundTrip_NegativeAndZeroAmounts(t *testing.T) {
	ds := New()
	require.True(t, ds.Append("waste", rec("2025-02-28", "-4.2")))
	require.True(t, ds.Append("waste", rec("2025-02-28", "0")))

	out, err := json.Marshal(ds)
	require.NoError(t, err)

	var back Dataset
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, 2, back.Len("waste"))
	assert.True(t, back.Records("waste")[0].Amount.Equal(decimal.RequireFromString("-4.2")))
	assert.True(t, back.Records("waste")[1].Amount.IsZero())
}
