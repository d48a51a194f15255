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

type CommentRepositoryInterface interface {
	SaveComment(comment models.Comment) (string, error)
	FindCommentByID(id string) (models.Comment, error)
	FindCommentsByBoardID(boardID string) ([]models.Comment, error)
	UpdateComment(id string, patch models.CommentPatch) error
	DeleteCommentByID(id string) error
	DeleteCommentsByBoardID(boardID string) error
}

type CommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(collection *mongo.Collection) *CommentRepository {
	return &CommentRepository{collection: collection}
}

func (r *CommentRepository) SaveComment(comment models.Comment) (string, error) {
	objectID := primitive.NewObjectID()
	comment.ID = objectID.Hex()
	comment.CreatedAt = time.Now()

	doc := bson.M{
		"_id":        objectID.Hex(),
		"board_id":   comment.BoardID,
		"author":     comment.Author,
		"text":       comment.Text,
		"is_task":    comment.IsTask,
		"source":     comment.Source,
		"created_at": comment.CreatedAt,
	}
	if comment.ElementRef != "" {
		doc["element_ref"] = comment.ElementRef
	}
	if comment.Category != "" {
		doc["category"] = comment.Category
	}

	if _, err := r.collection.InsertOne(context.Background(), doc); err != nil {
		return "", err
	}
	return comment.ID, nil
}

func (r *CommentRepository) FindCommentByID(id string) (models.Comment, error) {
	var comment models.Comment
	err := r.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&comment)
	return comment, err
}

func (r *CommentRepository) FindCommentsByBoardID(boardID string) ([]models.Comment, error) {
	var comments []models.Comment
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(context.Background(), bson.M{"board_id": boardID}, opts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(context.Background(), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) UpdateComment(id string, patch models.CommentPatch) error {
	set := bson.M{}
	if patch.Text != nil {
		set["text"] = *patch.Text
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.IsTask != nil {
		set["is_task"] = *patch.IsTask
	}

	_, err := r.collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": set}, options.Update().SetUpsert(false))
	return err
}

func (r *CommentRepository) DeleteCommentByID(id string) error {
	_, err := r.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}

func (r *CommentRepository) DeleteCommentsByBoardID(boardID string) error {
	_, err := r.collection.DeleteMany(context.Background(), bson.M{"board_id": boardID})
	return err
}
