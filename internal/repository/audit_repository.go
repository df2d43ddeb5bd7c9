package repository

import (
	"context"
	"strings"

	"lello/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, audit *model.Audit) error {
	return r.db.WithContext(ctx).Create(audit).Error
}

// ForBoard returns the audits written for the board itself, for any of the
// given lists and cards, and any audit that names the board directly. Each
// row is returned once no matter how many conditions it matches.
func (r *AuditRepository) ForBoard(ctx context.Context, boardID uuid.UUID, listIDs, cardIDs []uuid.UUID) ([]model.Audit, error) {
	conds := []string{
		"board_id = ?",
		"(subject_kind = ? AND subject_id = ?)",
	}
	args := []any{boardID, string(model.SubjectBoard), boardID}
	if len(listIDs) > 0 {
		conds = append(conds, "(subject_kind = ? AND subject_id IN ?)")
		args = append(args, string(model.SubjectList), listIDs)
	}
	if len(cardIDs) > 0 {
		conds = append(conds, "(subject_kind = ? AND subject_id IN ?)")
		args = append(args, string(model.SubjectCard), cardIDs)
	}

	var audits []model.Audit
	err := r.db.WithContext(ctx).
		Where("("+strings.Join(conds, " OR ")+")", args...).
		Order("created_at").
		Find(&audits).Error
	return audits, err
}
