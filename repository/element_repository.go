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

type ElementRepositoryInterface interface {
	SaveElement(element models.Element) (string, error)
	FindElementByID(id string) (models.Element, error)
	FindElementsByBoardID(boardID string) ([]models.Element, error)
	UpdateElement(id string, patch models.ElementPatch) error
	DeleteElementByID(id string) error
	DeleteElementsByBoardID(boardID string) error
}

type ElementRepository struct {
	collection *mongo.Collection
}

func NewElementRepository(collection *mongo.Collection) *ElementRepository {
	return &ElementRepository{collection: collection}
}

func (r *ElementRepository) SaveElement(element models.Element) (string, error) {
	now := time.Now()

	var objectID primitive.ObjectID
	var err error

	if element.ID != "" {
		objectID, err = primitive.ObjectIDFromHex(element.ID)
		if err != nil {
			return "", err
		}
	} else {
		objectID = primitive.NewObjectID()
	}

	update := bson.M{
		"$set": bson.M{
			"board_id":   element.BoardID,
			"type":       element.Type,
			"x":          element.X,
			"y":          element.Y,
			"width":      element.Width,
			"height":     element.Height,
			"rotation":   element.Rotation,
			"z_index":    element.ZIndex,
			"content":    element.Content,
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

func (r *ElementRepository) FindElementByID(id string) (models.Element, error) {
	var element models.Element
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return element, err
	}
	err = r.collection.FindOne(context.Background(), bson.M{"_id": objectID.Hex()}).Decode(&element)
	return element, err
}

func (r *ElementRepository) FindElementsByBoardID(boardID string) ([]models.Element, error) {
	var elements []models.Element
	opts := options.Find().SetSort(bson.D{{Key: "z_index", Value: 1}})
	cursor, err := r.collection.Find(context.Background(), bson.M{"board_id": boardID}, opts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(context.Background(), &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// UpdateElement applies only the patch's non-nil fields. Last write wins.
func (r *ElementRepository) UpdateElement(id string, patch models.ElementPatch) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now()}
	if patch.X != nil {
		set["x"] = *patch.X
	}
	if patch.Y != nil {
		set["y"] = *patch.Y
	}
	if patch.Width != nil {
		set["width"] = *patch.Width
	}
	if patch.Height != nil {
		set["height"] = *patch.Height
	}
	if patch.Rotation != nil {
		set["rotation"] = *patch.Rotation
	}
	if patch.ZIndex != nil {
		set["z_index"] = *patch.ZIndex
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}

	_, err = r.collection.UpdateOne(context.Background(), bson.M{"_id": objectID.Hex()}, bson.M{"$set": set}, options.Update().SetUpsert(false))
	return err
}

func (r *ElementRepository) DeleteElementByID(id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(context.Background(), bson.M{"_id": objectID.Hex()})
	return err
}

func (r *ElementRepository) DeleteElementsByBoardID(boardID string) error {
	_, err := r.collection.DeleteMany(context.Background(), bson.M{"board_id": boardID})
	return err
}
