package repository

import (
	"context"
	"errors"

	"lello/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// GetByCardID loads the card's checklist with its elements in order.
func (r *ChecklistRepository) GetByCardID(ctx context.Context, cardID uuid.UUID) (*model.Checklist, error) {
	var checklist model.Checklist
	err := r.db.WithContext(ctx).
		Preload("Elements", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&checklist, "card_id = ?", cardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChecklistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

// Upsert creates the card's checklist or renames the existing one.
func (r *ChecklistRepository) Upsert(ctx context.Context, cardID uuid.UUID, name string) (*model.Checklist, error) {
	var checklist model.Checklist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&checklist, "card_id = ?", cardID).Error
		if err == nil {
			checklist.Name = name
			return tx.Omit(clause.Associations).Save(&checklist).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		checklist = model.Checklist{CardID: cardID, Name: name}
		return tx.Omit(clause.Associations).Create(&checklist).Error
	})
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

// AddElement appends an element after the current last one.
func (r *ChecklistRepository) AddElement(ctx context.Context, checklistID uuid.UUID, text string) (*model.Element, error) {
	element := &model.Element{ChecklistID: checklistID, Text: text}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPosition struct {
			Max int
		}
		if err := tx.Model(&model.Element{}).
			Select("COALESCE(MAX(position), 0) as max").
			Where("checklist_id = ?", checklistID).
			Scan(&maxPosition).Error; err != nil {
			return err
		}
		element.Position = maxPosition.Max + 1
		return tx.Create(element).Error
	})
	if err != nil {
		return nil, err
	}
	return element, nil
}
