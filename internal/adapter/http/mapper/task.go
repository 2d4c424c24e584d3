package mapper

import (
	"time"

	"boardhub/internal/adapter/http/dto"
	"boardhub/internal/core/domain"
)

func ToTasks(tasks []domain.TaskItem) []dto.Task {
	items := make([]dto.Task, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTask(task))
	}
	return items
}

func ToTask(task domain.TaskItem) dto.Task {
	item := dto.Task{
		ID:          task.ID,
		BoardID:     task.BoardID,
		Title:       task.Title,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Tags:        task.Tags,
		CreatedByID: task.CreatedByID,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}

	if task.ListID != nil {
		value := *task.ListID
		item.ListID = &value
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.AssignedToID != nil {
		value := *task.AssignedToID
		item.AssignedToID = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if task.CompletedBy != nil {
		value := *task.CompletedBy
		item.CompletedBy = &value
	}

	return item
}
