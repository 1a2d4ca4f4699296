package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageList_ValueAndScan(t *testing.T) {
	list := ImageList{"uploads/hotels/1-a.jpg", "uploads/hotels/2-b.jpg"}

	value, err := list.Value()
	require.NoError(t, err)

	var scanned ImageList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)
}

func TestImageList_NilValueIsEmptyArray(t *testing.T) {
	var list ImageList

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestImageList_ScanNil(t *testing.T) {
	list := ImageList{"something"}
	require.NoError(t, list.Scan(nil))
	assert.Nil(t, list)
}

func TestCurrency_Valid(t *testing.T) {
	assert.True(t, CurrencyXOF.Valid())
	assert.True(t, CurrencyEuro.Valid())
	assert.True(t, CurrencyDollar.Valid())
	assert.False(t, Currency("CFA").Valid())
	assert.False(t, Currency("").Valid())
}

func TestHotelStatus_Valid(t *testing.T) {
	assert.True(t, HotelStatusActive.Valid())
	assert.True(t, HotelStatusClosed.Valid())
	assert.True(t, HotelStatusRenovating.Valid())
	assert.False(t, HotelStatus("Open").Valid())
}
