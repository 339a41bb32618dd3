package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quoteline/backend/internal/domain/procurement"
)

// VendorPurchaseOrderModel is the persistence model for the VendorPurchaseOrder aggregate root.
type VendorPurchaseOrderModel struct {
	AggregateModel
	PoNumber    string               `gorm:"type:varchar(50);not null;uniqueIndex"`
	VendorID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	VendorName  string               `gorm:"type:varchar(200);not null"`
	TotalAmount decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Status      procurement.PoStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Remark      string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VendorPurchaseOrderModel) TableName() string {
	return "vendor_purchase_orders"
}

// ToDomain converts the persistence model to a domain VendorPurchaseOrder entity.
func (m *VendorPurchaseOrderModel) ToDomain() *procurement.VendorPurchaseOrder {
	po := &procurement.VendorPurchaseOrder{
		PoNumber:    m.PoNumber,
		VendorID:    m.VendorID,
		VendorName:  m.VendorName,
		TotalAmount: m.TotalAmount,
		Status:      m.Status,
		Remark:      m.Remark,
	}
	m.PopulateAggregateRoot(&po.BaseAggregateRoot)
	return po
}

// FromDomain populates the persistence model from a domain VendorPurchaseOrder entity.
func (m *VendorPurchaseOrderModel) FromDomain(po *procurement.VendorPurchaseOrder) {
	m.FromDomainAggregateRoot(po.BaseAggregateRoot)
	m.PoNumber = po.PoNumber
	m.VendorID = po.VendorID
	m.VendorName = po.VendorName
	m.TotalAmount = po.TotalAmount
	m.Status = po.Status
	m.Remark = po.Remark
}

// VendorPurchaseOrderModelFromDomain creates a new persistence model from a domain VendorPurchaseOrder.
func VendorPurchaseOrderModelFromDomain(po *procurement.VendorPurchaseOrder) *VendorPurchaseOrderModel {
	m := &VendorPurchaseOrderModel{}
	m.FromDomain(po)
	return m
}

// GoodsReceivedNoteModel is the persistence model for the GoodsReceivedNote aggregate root.
type GoodsReceivedNoteModel struct {
	AggregateModel
	GrnNumber       string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceivedAt      time.Time `gorm:"not null"`
	ReceivedBy      string    `gorm:"type:varchar(100);not null"`
	Remark          string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (GoodsReceivedNoteModel) TableName() string {
	return "goods_received_notes"
}

// ToDomain converts the persistence model to a domain GoodsReceivedNote entity.
func (m *GoodsReceivedNoteModel) ToDomain() *procurement.GoodsReceivedNote {
	grn := &procurement.GoodsReceivedNote{
		GrnNumber:       m.GrnNumber,
		PurchaseOrderID: m.PurchaseOrderID,
		ReceivedAt:      m.ReceivedAt,
		ReceivedBy:      m.ReceivedBy,
		Remark:          m.Remark,
	}
	m.PopulateAggregateRoot(&grn.BaseAggregateRoot)
	return grn
}

// FromDomain populates the persistence model from a domain GoodsReceivedNote entity.
func (m *GoodsReceivedNoteModel) FromDomain(grn *procurement.GoodsReceivedNote) {
	m.FromDomainAggregateRoot(grn.BaseAggregateRoot)
	m.GrnNumber = grn.GrnNumber
	m.PurchaseOrderID = grn.PurchaseOrderID
	m.ReceivedAt = grn.ReceivedAt
	m.ReceivedBy = grn.ReceivedBy
	m.Remark = grn.Remark
}

// GoodsReceivedNoteModelFromDomain creates a new persistence model from a domain GoodsReceivedNote.
func GoodsReceivedNoteModelFromDomain(grn *procurement.GoodsReceivedNote) *GoodsReceivedNoteModel {
	m := &GoodsReceivedNoteModel{}
	m.FromDomain(grn)
	return m
}
