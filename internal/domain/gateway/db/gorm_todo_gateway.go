package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

// TodoItemModel is one row of the ordered list. Position is the 0-based index exposed to callers.
type TodoItemModel struct {
	ID          uint      `gorm:"primaryKey"`
	Position    int       `gorm:"column:position;not null;index"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description;not null"`
	Status      uint8     `gorm:"column:status;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (TodoItemModel) TableName() string {
	return "todo_items"
}

// TodoOwnerModel holds the single owner row.
type TodoOwnerModel struct {
	ID        uint      `gorm:"primaryKey"`
	Address   string    `gorm:"column:address;not null;size:42"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (TodoOwnerModel) TableName() string {
	return "todo_owner"
}

func (m TodoItemModel) toEntity() entity.Todo {
	return entity.Todo{
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.Status(m.Status),
	}
}

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

// NewGormTodoGateway migrates the todo tables and returns the gateway.
func NewGormTodoGateway(db *gorm.DB) (*GormTodoGateway, error) {
	if err := db.AutoMigrate(&TodoItemModel{}, &TodoOwnerModel{}); err != nil {
		return nil, fmt.Errorf("migrate todo tables: %w", err)
	}
	return &GormTodoGateway{DB: db}, nil
}

func (gateway *GormTodoGateway) InitOwner(ctx context.Context, owner entity.Address) (entity.Address, error) {
	var stored TodoOwnerModel
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Order("id asc").First(&stored).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stored = TodoOwnerModel{Address: owner.String()}
			return tx.Create(&stored).Error
		}
		return err
	})
	if err != nil {
		return entity.ZeroAddress, err
	}
	return entity.ParseAddress(stored.Address)
}

func (gateway *GormTodoGateway) Count(ctx context.Context) (int, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&TodoItemModel{}).Count(&count).Error
	return int(count), err
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	var rows []TodoItemModel
	if err := gateway.DB.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	todos := make([]entity.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, row.toEntity())
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByIndex(ctx context.Context, index int) (*entity.Todo, error) {
	var row TodoItemModel
	err := gateway.DB.WithContext(ctx).Where("position = ?", index).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPositionNotFound
	}
	if err != nil {
		return nil, err
	}
	todo := row.toEntity()
	return &todo, nil
}

func (gateway *GormTodoGateway) Append(ctx context.Context, todo entity.Todo) (int, error) {
	var position int
	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&TodoItemModel{}).Count(&count).Error; err != nil {
			return err
		}
		position = int(count)
		return tx.Create(&TodoItemModel{
			Position:    position,
			Title:       todo.Title,
			Description: todo.Description,
			Status:      uint8(todo.Status),
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return position, nil
}

func (gateway *GormTodoGateway) ReplaceAt(ctx context.Context, index int, todo entity.Todo) error {
	result := gateway.DB.WithContext(ctx).Model(&TodoItemModel{}).
		Where("position = ?", index).
		Updates(map[string]any{
			"title":       todo.Title,
			"description": todo.Description,
			"status":      uint8(todo.Status),
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPositionNotFound
	}
	return nil
}

func (gateway *GormTodoGateway) RemoveAt(ctx context.Context, index int) error {
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("position = ?", index).Delete(&TodoItemModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPositionNotFound
		}
		return tx.Model(&TodoItemModel{}).
			Where("position > ?", index).
			Update("position", gorm.Expr("position - 1")).Error
	})
}
