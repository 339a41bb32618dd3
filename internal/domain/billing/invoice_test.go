package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	t.Run("master invoice has no parent", func(t *testing.T) {
		inv, err := NewMasterInvoice("MINV-2025-0001", uuid.New(), "Acme Ltd")
		require.NoError(t, err)
		assert.Equal(t, InvoiceKindMaster, inv.Kind)
		assert.Nil(t, inv.ParentID)
	})

	t.Run("child invoice requires a parent", func(t *testing.T) {
		parent := uuid.New()
		inv, err := NewChildInvoice("INV-2025-0002", parent, uuid.New(), "Acme Ltd")
		require.NoError(t, err)
		assert.Equal(t, InvoiceKindChild, inv.Kind)
		require.NotNil(t, inv.ParentID)
		assert.Equal(t, parent, *inv.ParentID)

		_, err = NewChildInvoice("INV-2025-0003", uuid.Nil, uuid.New(), "Acme Ltd")
		assert.Error(t, err)
	})

	t.Run("rejects empty invoice number", func(t *testing.T) {
		_, err := NewMasterInvoice("", uuid.New(), "Acme Ltd")
		assert.Error(t, err)
	})
}

func TestInvoice_Lifecycle(t *testing.T) {
	t.Run("issue then pay", func(t *testing.T) {
		inv, err := NewMasterInvoice("MINV-2025-0001", uuid.New(), "Acme Ltd")
		require.NoError(t, err)

		require.NoError(t, inv.Issue())
		assert.NotNil(t, inv.IssuedAt)
		require.NoError(t, inv.MarkPaid())
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
	})

	t.Run("paid invoice cannot be voided", func(t *testing.T) {
		inv, err := NewMasterInvoice("MINV-2025-0001", uuid.New(), "Acme Ltd")
		require.NoError(t, err)
		require.NoError(t, inv.Issue())
		require.NoError(t, inv.MarkPaid())
		assert.Error(t, inv.Void())
	})
}
