package product_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsandoval/suds/internal/product"
)

func TestParseCSV_HeaderCaseInsensitive(t *testing.T) {
	input := "NAME,priceperliter,STOCK\nBlue Soap,10,50\n"

	rows, err := product.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Blue Soap", rows[0].Name)
}

func TestParseCSV_SkipsEmptyNames(t *testing.T) {
	input := strings.Join([]string{
		"Name,PricePerLiter,Stock",
		"Blue Soap,10,50",
		"  ,5,20",
		"Bleach,4,80",
	}, "\n")

	rows, err := product.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Blue Soap", rows[0].Name)
	assert.Equal(t, "Bleach", rows[1].Name)
}

func TestParseCSV_DefaultsCategoryAndActive(t *testing.T) {
	input := "Name,PricePerLiter,Stock\nBlue Soap,10,50\n"

	rows, err := product.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, product.CategorySoap, rows[0].Category)
	assert.True(t, rows[0].Active)
}

func TestParseCSV_MissingRequiredColumn(t *testing.T) {
	input := "Name,Category\nBlue Soap,soap\n"

	_, err := product.ParseCSV(strings.NewReader(input))
	assert.ErrorContains(t, err, "priceperliter")
}

func TestParseCSV_Empty(t *testing.T) {
	rows, err := product.ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
