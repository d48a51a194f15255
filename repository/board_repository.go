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

type BoardRepositoryInterface interface {
	SaveBoard(board models.Board) (string, error)
	FindBoardByID(id string) (models.Board, error)
	FindBoardsByOwnerID(ownerID string) ([]models.Board, error)
	UpdateBoardTitle(id, newTitle string) error
	UpdateBoardVisibility(id, visibility string) error
	DeleteBoardByID(id string) error
}

type BoardRepository struct {
	collection *mongo.Collection
}

func NewBoardRepository(collection *mongo.Collection) *BoardRepository {
	return &BoardRepository{collection: collection}
}

func (r *BoardRepository) SaveBoard(board models.Board) (string, error) {
	now := time.Now()

	var objectID primitive.ObjectID
	var err error

	if board.ID != "" {
		objectID, err = primitive.ObjectIDFromHex(board.ID)
		if err != nil {
			return "", err
		}
	} else {
		objectID = primitive.NewObjectID()
		board.CreatedAt = now
	}

	update := bson.M{
		"$set": bson.M{
			"title":      board.Title,
			"visibility": board.Visibility,
			"owner_id":   board.OwnerID,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err = r.collection.UpdateOne(context.Background(), bson.M{"_id": objectID.Hex()}, update, opts)
	if err != nil {
		return "", err
	}
	return objectID.Hex(), nil
}

func (r *BoardRepository) FindBoardByID(id string) (models.Board, error) {
	var board models.Board
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return board, err
	}
	err = r.collection.FindOne(context.Background(), bson.M{"_id": objectID.Hex()}).Decode(&board)
	return board, err
}

func (r *BoardRepository) FindBoardsByOwnerID(ownerID string) ([]models.Board, error) {
	var boards []models.Board
	cursor, err := r.collection.Find(context.Background(), bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	if err = cursor.All(context.Background(), &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *BoardRepository) UpdateBoardTitle(id, newTitle string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"title": newTitle, "updated_at": time.Now()}}
	_, err = r.collection.UpdateOne(context.Background(), bson.M{"_id": objectID.Hex()}, update, options.Update().SetUpsert(false))
	return err
}

func (r *BoardRepository) UpdateBoardVisibility(id, visibility string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"visibility": visibility, "updated_at": time.Now()}}
	_, err = r.collection.UpdateOne(context.Background(), bson.M{"_id": objectID.Hex()}, update, options.Update().SetUpsert(false))
	return err
}

func (r *BoardRepository) DeleteBoardByID(id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(context.Background(), bson.M{"_id": objectID.Hex()})
	return err
}
