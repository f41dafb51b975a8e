package specification

import "gorm.io/gorm"

// Specification narrows a repository query. Implementations are small
// composable structs applied in order.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
