package repository

import (
	"context"
	"errors"

	"lello/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(board).Error
}

func (r *BoardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(board).Error
}

// Delete removes the board together with its lists, cards, calendar and
// events. It returns ErrBoardNotFound when nothing was deleted.
func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listIDs []uuid.UUID
		if err := tx.Model(&model.List{}).Where("board_id = ?", id).Pluck("id", &listIDs).Error; err != nil {
			return err
		}
		if err := deleteListsCascade(tx, listIDs); err != nil {
			return err
		}

		var calendarIDs []uuid.UUID
		if err := tx.Model(&model.Calendar{}).Where("board_id = ?", id).Pluck("id", &calendarIDs).Error; err != nil {
			return err
		}
		if len(calendarIDs) > 0 {
			if err := tx.Where("calendar_id IN ?", calendarIDs).Delete(&model.Event{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", calendarIDs).Delete(&model.Calendar{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Board{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBoardNotFound
		}
		return nil
	})
}
