package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

type TodoListItemRepository struct {
	db *gorm.DB
}

func NewTodoListItemRepository(db *gorm.DB) repositories.TodoListItemRepository {
	return &TodoListItemRepository{db: db}
}

func (r *TodoListItemRepository) FindById(ctx context.Context, id int64) (*entities.TodoListItem, error) {
	var itemModel TodoListItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapItemToEntity(&itemModel), nil
}

func (r *TodoListItemRepository) FindByListId(ctx context.Context, listId int64) ([]*entities.TodoListItem, error) {
	var itemModels []TodoListItemModel
	if err := r.db.WithContext(ctx).Where("todolist_id = ?", listId).Order("id").Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.TodoListItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, mapItemToEntity(&itemModels[i]))
	}
	return items, nil
}

func (r *TodoListItemRepository) ExistsById(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TodoListItemModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TodoListItemRepository) Create(ctx context.Context, item *entities.TodoListItem) (*entities.TodoListItem, error) {
	itemModel := TodoListItemModel{
		Title:  item.Title,
		IsDone: item.IsDone,
		ListId: item.ListId,
	}

	// Select keeps is_done=false from being replaced by the column default.
	if err := r.db.WithContext(ctx).Select("Title", "IsDone", "ListId").Create(&itemModel).Error; err != nil {
		return nil, err
	}

	return mapItemToEntity(&itemModel), nil
}

func (r *TodoListItemRepository) UpdateIsDone(ctx context.Context, id int64, isDone bool) error {
	return r.db.WithContext(ctx).Model(&TodoListItemModel{}).Where("id = ?", id).Update("is_done", isDone).Error
}

func (r *TodoListItemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&TodoListItemModel{}).Error
}

func mapItemToEntity(itemModel *TodoListItemModel) *entities.TodoListItem {
	return &entities.TodoListItem{
		Id:     itemModel.Id,
		Title:  itemModel.Title,
		IsDone: itemModel.IsDone,
		ListId: itemModel.ListId,
	}
}
