package services

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateMapping     = errors.New("category is already mapped to subcategory")
	ErrInvalidSizeTypeState = errors.New("size type must reference exactly one of clothing size or shoe size")
	ErrPairNotMapped        = errors.New("category is not mapped to subcategory")
	ErrDuplicateSku         = errors.New("sku already in use")
	ErrVariantHasAttributes = errors.New("variant already has attributes")
	ErrInvalidMovement      = errors.New("invalid stock movement")
)

// NotFoundError names the missing entity. errors.Is(err, ErrNotFound) holds.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

const mysqlDuplicateEntry = 1062

// isDuplicateKey recognises unique-constraint violations from gorm's error
// translation and from the raw MySQL driver error.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
