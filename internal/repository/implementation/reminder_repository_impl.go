package implementation

import (
	"context"
	"errors"

	"luma-companion-be/internal/entity"
	"luma-companion-be/internal/mapper"
	"luma-companion-be/internal/model"
	"luma-companion-be/internal/repository/contract"
	"luma-companion-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReminderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReminderMapper
}

func NewReminderRepository(db *gorm.DB) contract.ReminderRepository {
	return &ReminderRepositoryImpl{
		db:     db,
		mapper: mapper.NewReminderMapper(),
	}
}

func (r *ReminderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReminderRepositoryImpl) Create(ctx context.Context, reminder *entity.Reminder) error {
	m := r.mapper.ToModel(reminder)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reminder = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReminderRepositoryImpl) Update(ctx context.Context, reminder *entity.Reminder) error {
	m := r.mapper.ToModel(reminder)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*reminder = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReminderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reminder, error) {
	var m model.Reminder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReminderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reminder, error) {
	var models []*model.Reminder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Reminder, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
