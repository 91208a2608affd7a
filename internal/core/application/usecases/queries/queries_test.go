package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labeling/internal/core/application/usecases/queries"
)

func TestNewGetLabelsByInvoiceQuery(t *testing.T) {
	t.Run("should construct with an invoice number", func(t *testing.T) {
		query, err := queries.NewGetLabelsByInvoiceQuery("12345")

		require.NoError(t, err)
		assert.Equal(t, "12345", query.InvoiceNumber())
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject a blank invoice number", func(t *testing.T) {
		_, err := queries.NewGetLabelsByInvoiceQuery("")

		assert.ErrorIs(t, err, queries.ErrInvoiceNumberIsRequired)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var query queries.GetLabelsByInvoiceQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetLabelsByInvoiceQueryIsNotConstructed)
	})
}

func TestNewGetLabelByCodeQuery(t *testing.T) {
	t.Run("should construct with a code", func(t *testing.T) {
		query, err := queries.NewGetLabelByCodeQuery("12345-001-28082615")

		require.NoError(t, err)
		assert.Equal(t, "12345-001-28082615", query.Code())
	})

	t.Run("should reject a blank code", func(t *testing.T) {
		_, err := queries.NewGetLabelByCodeQuery("")

		assert.ErrorIs(t, err, queries.ErrCodeIsRequired)
	})
}

func TestNewGetMasterLabelsQuery(t *testing.T) {
	t.Run("constructed query should validate", func(t *testing.T) {
		query := queries.NewGetMasterLabelsQuery()

		assert.NoError(t, query.Validate())
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var query queries.GetMasterLabelsQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetMasterLabelsQueryIsNotConstructed)
	})
}
