package repository

import (
	"context"
	"errors"

	"lello/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create adds a new card to the database
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(card).Error
}

// GetByID retrieves a card with its labels and assignees
func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).
		Preload("Labels").
		Preload("Assignees").
		First(&card, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetAll retrieves every card with its labels and assignees
func (r *CardRepository) GetAll(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	result := r.db.WithContext(ctx).
		Preload("Labels").
		Preload("Assignees").
		Order("created_at").
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// GetByListID retrieves all cards in a list with their labels and assignees
func (r *CardRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	result := r.db.WithContext(ctx).
		Preload("Labels").
		Preload("Assignees").
		Where("list_id = ?", listID).
		Order("created_at").
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// IDsByListIDs returns the ids of the cards held by any of the lists
func (r *CardRepository) IDsByListIDs(ctx context.Context, listIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(listIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Card{}).Where("list_id IN ?", listIDs).Pluck("id", &ids).Error
	return ids, err
}

// Update saves the scalar fields of a card
func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes a card with its checklist and label/assignee links
func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Card{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCardNotFound
		}
		return deleteCardsCascade(tx, []uuid.UUID{id})
	})
}

// AddLabel adds a label to a card
func (r *CardRepository) AddLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO card_labels (card_id, label_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		cardID, labelID,
	).Error
}

// RemoveLabel removes a label from a card
func (r *CardRepository) RemoveLabel(ctx context.Context, cardID, labelID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM card_labels WHERE card_id = ? AND label_id = ?",
		cardID, labelID,
	).Error
}

// AssignUser adds a user to the card's assignees
func (r *CardRepository) AssignUser(ctx context.Context, cardID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO card_assignees (card_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		cardID, userID,
	).Error
}

// UnassignUser removes a user from the card's assignees
func (r *CardRepository) UnassignUser(ctx context.Context, cardID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM card_assignees WHERE card_id = ? AND user_id = ?",
		cardID, userID,
	).Error
}

func deleteCardsCascade(tx *gorm.DB, cardIDs []uuid.UUID) error {
	if len(cardIDs) == 0 {
		return nil
	}
	if err := tx.Exec("DELETE FROM card_labels WHERE card_id IN ?", cardIDs).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM card_assignees WHERE card_id IN ?", cardIDs).Error; err != nil {
		return err
	}
	var checklistIDs []uuid.UUID
	if err := tx.Model(&model.Checklist{}).Where("card_id IN ?", cardIDs).Pluck("id", &checklistIDs).Error; err != nil {
		return err
	}
	if len(checklistIDs) > 0 {
		if err := tx.Where("checklist_id IN ?", checklistIDs).Delete(&model.Element{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", checklistIDs).Delete(&model.Checklist{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", cardIDs).Delete(&model.Card{}).Error
}
