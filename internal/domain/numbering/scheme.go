package numbering

import (
	"fmt"

	"github.com/quoteline/backend/internal/domain/shared"
)

// DocumentType identifies a numbered document category
type DocumentType string

const (
	DocTypeQuote         DocumentType = "quote"
	DocTypeMasterInvoice DocumentType = "masterInvoice"
	DocTypeChildInvoice  DocumentType = "childInvoice"
	DocTypeVendorPo      DocumentType = "vendorPo"
	DocTypeGrn           DocumentType = "grn"
	DocTypeSalesOrder    DocumentType = "salesOrder"
)

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// DefaultFormat is the numbering template used when no format setting exists
const DefaultFormat = "{PREFIX}-{YEAR}-{COUNTER:04d}"

// Scheme describes how numbers for one document type are produced: which
// counter namespace they draw from, which settings keys configure them
// (primary key first, legacy aliases after), and the hardcoded defaults used
// when no configuration exists.
type Scheme struct {
	Type             DocumentType
	CounterNamespace string
	PrefixKeys       []string
	FormatKeys       []string
	DefaultPrefix    string
	DefaultFormat    string
}

// Master and child invoices deliberately share the "invoice" counter
// namespace: both draw consecutive values from one monotonic sequence even
// though their prefixes and format settings differ. Per-subtype sequences
// therefore interleave; a gap in the MINV numbers is not a defect.
var schemes = map[DocumentType]Scheme{
	DocTypeQuote: {
		Type:             DocTypeQuote,
		CounterNamespace: "quote",
		PrefixKeys:       []string{"quotePrefix", "quotationPrefix"},
		FormatKeys:       []string{"quoteFormat", "quotationFormat"},
		DefaultPrefix:    "QT",
		DefaultFormat:    DefaultFormat,
	},
	DocTypeMasterInvoice: {
		Type:             DocTypeMasterInvoice,
		CounterNamespace: "invoice",
		PrefixKeys:       []string{"masterInvoicePrefix", "mainInvoicePrefix"},
		FormatKeys:       []string{"masterInvoiceFormat", "mainInvoiceFormat"},
		DefaultPrefix:    "MINV",
		DefaultFormat:    DefaultFormat,
	},
	DocTypeChildInvoice: {
		Type:             DocTypeChildInvoice,
		CounterNamespace: "invoice",
		PrefixKeys:       []string{"childInvoicePrefix", "invoicePrefix"},
		FormatKeys:       []string{"childInvoiceFormat", "invoiceFormat"},
		DefaultPrefix:    "INV",
		DefaultFormat:    DefaultFormat,
	},
	DocTypeVendorPo: {
		Type:             DocTypeVendorPo,
		CounterNamespace: "vendor_po",
		PrefixKeys:       []string{"vendorPoPrefix", "poPrefix", "purchaseOrderPrefix"},
		FormatKeys:       []string{"vendorPoFormat", "poFormat", "purchaseOrderFormat"},
		DefaultPrefix:    "PO",
		DefaultFormat:    DefaultFormat,
	},
	DocTypeGrn: {
		Type:             DocTypeGrn,
		CounterNamespace: "grn",
		PrefixKeys:       []string{"grnPrefix", "goodsReceiptPrefix"},
		FormatKeys:       []string{"grnFormat", "goodsReceiptFormat"},
		DefaultPrefix:    "GRN",
		DefaultFormat:    DefaultFormat,
	},
	DocTypeSalesOrder: {
		Type:             DocTypeSalesOrder,
		CounterNamespace: "sales_order",
		PrefixKeys:       []string{"salesOrderPrefix", "soPrefix"},
		FormatKeys:       []string{"salesOrderFormat", "soFormat"},
		DefaultPrefix:    "SO",
		DefaultFormat:    DefaultFormat,
	},
}

// AllDocumentTypes lists every numbered document type in a stable order
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocTypeQuote,
		DocTypeMasterInvoice,
		DocTypeChildInvoice,
		DocTypeVendorPo,
		DocTypeGrn,
		DocTypeSalesOrder,
	}
}

// SchemeFor returns the numbering scheme for a document type
func SchemeFor(t DocumentType) (Scheme, error) {
	s, ok := schemes[t]
	if !ok {
		return Scheme{}, shared.NewDomainError("UNKNOWN_DOCUMENT_TYPE",
			fmt.Sprintf("No numbering scheme for document type %q", t))
	}
	return s, nil
}

// ParseDocumentType converts a string to a DocumentType
func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(s)
	if _, ok := schemes[t]; !ok {
		return "", shared.NewDomainError("UNKNOWN_DOCUMENT_TYPE",
			fmt.Sprintf("Unknown document type %q", s))
	}
	return t, nil
}
