package repository

import (
	"context"
	"errors"

	"lello/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(list).Error
}

func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

// GetAll returns every list grouped by board and ordered by position.
func (r *ListRepository) GetAll(ctx context.Context) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).Order("board_id").Order("position").Find(&lists).Error
	return lists, err
}

func (r *ListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("position").Find(&lists).Error
	return lists, err
}

func (r *ListRepository) IDsByBoardID(ctx context.Context, boardID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.List{}).Where("board_id = ?", boardID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ListRepository) Update(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(list).Error
}

// Delete removes the list and every card in it.
func (r *ListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.List{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrListNotFound
		}
		return deleteListsCascade(tx, []uuid.UUID{id})
	})
}

func (r *ListRepository) GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("board_id = ?", boardID).
		Scan(&maxPosition).Error

	return maxPosition.Max, err
}

func deleteListsCascade(tx *gorm.DB, listIDs []uuid.UUID) error {
	if len(listIDs) == 0 {
		return nil
	}
	var cardIDs []uuid.UUID
	if err := tx.Model(&model.Card{}).Where("list_id IN ?", listIDs).Pluck("id", &cardIDs).Error; err != nil {
		return err
	}
	if err := deleteCardsCascade(tx, cardIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", listIDs).Delete(&model.List{}).Error
}
