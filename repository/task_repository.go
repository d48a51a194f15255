package repository

import (
	"context"
	"time"

	"crit-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskRepositoryInterface interface {
	SaveTask(task models.Task) (string, error)
	FindTaskByID(id string) (models.Task, error)
	FindTasksByBoardID(boardID string) ([]models.Task, error)
	UpdateTaskStatus(id, status string) error
	DeleteTaskByID(id string) error
	DeleteTasksByBoardID(boardID string) error
}

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(collection *mongo.Collection) *TaskRepository {
	return &TaskRepository{collection: collection}
}

func (r *TaskRepository) SaveTask(task models.Task) (string, error) {
	now := time.Now()
	task.ID = primitive.NewObjectID().Hex()
	task.CreatedAt = now
	task.UpdatedAt = now

	doc := bson.M{
		"_id":        task.ID,
		"board_id":   task.BoardID,
		"text":       task.Text,
		"status":     task.Status,
		"created_at": task.CreatedAt,
		"updated_at": task.UpdatedAt,
	}
	if task.SourceCommentID != "" {
		doc["source_comment_id"] = task.SourceCommentID
	}

	if _, err := r.collection.InsertOne(context.Background(), doc); err != nil {
		return "", err
	}
	return task.ID, nil
}

func (r *TaskRepository) FindTaskByID(id string) (models.Task, error) {
	var task models.Task
	err := r.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&task)
	return task, err
}

func (r *TaskRepository) FindTasksByBoardID(boardID string) ([]models.Task, error) {
	var tasks []models.Task
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(context.Background(), bson.M{"board_id": boardID}, opts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(context.Background(), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateTaskStatus(id, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	_, err := r.collection.UpdateOne(context.Background(), bson.M{"_id": id}, update, options.Update().SetUpsert(false))
	return err
}

func (r *TaskRepository) DeleteTaskByID(id string) error {
	_, err := r.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}

func (r *TaskRepository) DeleteTasksByBoardID(boardID string) error {
	_, err := r.collection.DeleteMany(context.Background(), bson.M{"board_id": boardID})
	return err
}
