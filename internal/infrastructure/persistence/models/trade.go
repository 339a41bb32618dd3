package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quoteline/backend/internal/domain/trade"
)

// QuoteModel is the persistence model for the Quote aggregate root.
type QuoteModel struct {
	AggregateModel
	QuoteNumber  string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	CustomerName string            `gorm:"type:varchar(200);not null"`
	TotalAmount  decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	Status       trade.QuoteStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	ValidUntil   *time.Time
	Remark       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "quotes"
}

// ToDomain converts the persistence model to a domain Quote entity.
func (m *QuoteModel) ToDomain() *trade.Quote {
	q := &trade.Quote{
		QuoteNumber:  m.QuoteNumber,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		TotalAmount:  m.TotalAmount,
		Status:       m.Status,
		ValidUntil:   m.ValidUntil,
		Remark:       m.Remark,
	}
	m.PopulateAggregateRoot(&q.BaseAggregateRoot)
	return q
}

// FromDomain populates the persistence model from a domain Quote entity.
func (m *QuoteModel) FromDomain(q *trade.Quote) {
	m.FromDomainAggregateRoot(q.BaseAggregateRoot)
	m.QuoteNumber = q.QuoteNumber
	m.CustomerID = q.CustomerID
	m.CustomerName = q.CustomerName
	m.TotalAmount = q.TotalAmount
	m.Status = q.Status
	m.ValidUntil = q.ValidUntil
	m.Remark = q.Remark
}

// QuoteModelFromDomain creates a new persistence model from a domain Quote.
func QuoteModelFromDomain(q *trade.Quote) *QuoteModel {
	m := &QuoteModel{}
	m.FromDomain(q)
	return m
}

// SalesOrderModel is the persistence model for the SalesOrder aggregate root.
type SalesOrderModel struct {
	AggregateModel
	OrderNumber  string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	QuoteID      *uuid.UUID        `gorm:"type:uuid;index"`
	CustomerID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	CustomerName string            `gorm:"type:varchar(200);not null"`
	TotalAmount  decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	Status       trade.OrderStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Remark       string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// ToDomain converts the persistence model to a domain SalesOrder entity.
func (m *SalesOrderModel) ToDomain() *trade.SalesOrder {
	so := &trade.SalesOrder{
		OrderNumber:  m.OrderNumber,
		QuoteID:      m.QuoteID,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		TotalAmount:  m.TotalAmount,
		Status:       m.Status,
		Remark:       m.Remark,
	}
	m.PopulateAggregateRoot(&so.BaseAggregateRoot)
	return so
}

// FromDomain populates the persistence model from a domain SalesOrder entity.
func (m *SalesOrderModel) FromDomain(so *trade.SalesOrder) {
	m.FromDomainAggregateRoot(so.BaseAggregateRoot)
	m.OrderNumber = so.OrderNumber
	m.QuoteID = so.QuoteID
	m.CustomerID = so.CustomerID
	m.CustomerName = so.CustomerName
	m.TotalAmount = so.TotalAmount
	m.Status = so.Status
	m.Remark = so.Remark
}

// SalesOrderModelFromDomain creates a new persistence model from a domain SalesOrder.
func SalesOrderModelFromDomain(so *trade.SalesOrder) *SalesOrderModel {
	m := &SalesOrderModel{}
	m.FromDomain(so)
	return m
}
