package shared

// BaseAggregateRoot provides common fields for aggregate roots.
// Version is the optimistic-locking counter: a writer must present the
// version it last read, and the repository rejects the write if the stored
// version has since advanced.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// IncrementVersion advances the optimistic-locking counter before a locked save
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
