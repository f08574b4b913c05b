package services

import (
	"context"
	"errors"
	"fmt"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"

	"gorm.io/gorm"
)

// dependent names a child table whose rows block deleting their parent
type dependent struct {
	model  interface{}
	column string
	label  string
}

func getRecord[T any](ctx context.Context, db *gorm.DB, entity string, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(entity)
		}
		return nil, classify("get "+entity, err)
	}
	return &row, nil
}

func createRecord[T any](ctx context.Context, db *gorm.DB, entity string, row *T, check func(tx *gorm.DB) error) (*T, error) {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if check != nil {
			if err := check(tx); err != nil {
				return err
			}
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, classify("create "+entity, err)
	}
	return row, nil
}

// updateRecord applies a patch to an existing row and returns the stored result.
// check runs inside the transaction before the write and may add values.
func updateRecord[T any](ctx context.Context, db *gorm.DB, entity string, id uint, patch schema.Patch, check func(tx *gorm.DB, current *T, values map[string]interface{}) error) (*T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(entity)
			}
			return err
		}

		values := make(map[string]interface{}, len(patch))
		for k, v := range patch {
			values[k] = v
		}
		if check != nil {
			if err := check(tx, &row, values); err != nil {
				return err
			}
		}
		if len(values) == 0 {
			return nil
		}
		if err := tx.Model(&row).Updates(values).Error; err != nil {
			return err
		}
		return tx.First(&row, id).Error
	})
	if err != nil {
		return nil, classify("update "+entity, err)
	}
	return &row, nil
}

// deleteRecord removes a row, refusing while any dependent rows still point at it
func deleteRecord[T any](ctx context.Context, db *gorm.DB, entity string, id uint, dependents ...dependent) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound(entity)
		}

		for _, dep := range dependents {
			var n int64
			if err := tx.Model(dep.model).Where(dep.column+" = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return &ConstraintError{
					Constraint: ConstraintRestrict,
					Message:    fmt.Sprintf("%s still has %d %s", entity, n, dep.label),
				}
			}
		}

		result := tx.Delete(new(T), id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound(entity)
		}
		return nil
	})
	return classify("delete "+entity, err)
}

// requireRecord fails with a foreign-key ConstraintError when the referenced row is missing
func requireRecord(tx *gorm.DB, model interface{}, entity string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &ConstraintError{
			Constraint: ConstraintForeignKey,
			Message:    fmt.Sprintf("%s %d does not exist", entity, id),
		}
	}
	return nil
}

func requireCase(tx *gorm.DB, id uint) error {
	return requireRecord(tx, &models.Case{}, "case", id)
}

func requireClient(tx *gorm.DB, id uint) error {
	return requireRecord(tx, &models.Client{}, "client", id)
}

// patchedID returns the new value of a foreign-key field when the patch sets it
func patchedID(patch schema.Patch, field string) (uint, bool) {
	v, ok := patch[field]
	if !ok || v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
