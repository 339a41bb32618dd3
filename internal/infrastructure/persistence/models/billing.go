package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quoteline/backend/internal/domain/billing"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
// Master and child invoices share the table, distinguished by kind.
type InvoiceModel struct {
	AggregateModel
	InvoiceNumber string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	Kind          billing.InvoiceKind   `gorm:"type:varchar(10);not null;index"`
	ParentID      *uuid.UUID            `gorm:"type:uuid;index"`
	SalesOrderID  *uuid.UUID            `gorm:"type:uuid;index"`
	CustomerID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	CustomerName  string                `gorm:"type:varchar(200);not null"`
	TotalAmount   decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Status        billing.InvoiceStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	IssuedAt      *time.Time
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		InvoiceNumber: m.InvoiceNumber,
		Kind:          m.Kind,
		ParentID:      m.ParentID,
		SalesOrderID:  m.SalesOrderID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		TotalAmount:   m.TotalAmount,
		Status:        m.Status,
		IssuedAt:      m.IssuedAt,
	}
	m.PopulateAggregateRoot(&inv.BaseAggregateRoot)
	return inv
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.InvoiceNumber = inv.InvoiceNumber
	m.Kind = inv.Kind
	m.ParentID = inv.ParentID
	m.SalesOrderID = inv.SalesOrderID
	m.CustomerID = inv.CustomerID
	m.CustomerName = inv.CustomerName
	m.TotalAmount = inv.TotalAmount
	m.Status = inv.Status
	m.IssuedAt = inv.IssuedAt
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}
