package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

type TodoListRepository struct {
	db *gorm.DB
}

func NewTodoListRepository(db *gorm.DB) repositories.TodoListRepository {
	return &TodoListRepository{db: db}
}

func (r *TodoListRepository) FindById(ctx context.Context, id int64) (*entities.TodoList, error) {
	var listModel TodoListModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapListToEntity(&listModel), nil
}

func (r *TodoListRepository) FindByOwnerId(ctx context.Context, ownerId int64) ([]*entities.TodoList, error) {
	var listModels []TodoListModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerId).Order("id").Find(&listModels).Error; err != nil {
		return nil, err
	}

	lists := make([]*entities.TodoList, 0, len(listModels))
	for i := range listModels {
		lists = append(lists, mapListToEntity(&listModels[i]))
	}
	return lists, nil
}

func (r *TodoListRepository) ExistsByTitleAndOwnerId(ctx context.Context, title string, ownerId int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TodoListModel{}).
		Where("title = ? AND user_id = ?", title, ownerId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TodoListRepository) Create(ctx context.Context, list *entities.TodoList) (*entities.TodoList, error) {
	listModel := TodoListModel{
		Title:  list.Title,
		UserId: list.OwnerId,
	}

	if err := r.db.WithContext(ctx).Create(&listModel).Error; err != nil {
		return nil, err
	}

	return mapListToEntity(&listModel), nil
}

// Delete removes the items first so no orphan survives even where the driver does not
// enforce the ON DELETE CASCADE foreign key.
func (r *TodoListRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todolist_id = ?", id).Delete(&TodoListItemModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&TodoListModel{}).Error
	})
}

func mapListToEntity(listModel *TodoListModel) *entities.TodoList {
	return &entities.TodoList{
		Id:      listModel.Id,
		Title:   listModel.Title,
		OwnerId: listModel.UserId,
	}
}
