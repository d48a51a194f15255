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

type CritSessionRepositoryInterface interface {
	SaveSession(session models.CritSession) (string, error)
	FindSessionByID(id string) (models.CritSession, error)
	FindSessionByBoardID(boardID string) (models.CritSession, error)
	FindSessionByJoinCode(code string) (models.CritSession, error)
	ReactivateSession(id string) error
	EndSession(id string) error
	DeleteSessionsByBoardID(boardID string) error
}

type CritSessionRepository struct {
	collection *mongo.Collection
}

func NewCritSessionRepository(collection *mongo.Collection) *CritSessionRepository {
	return &CritSessionRepository{collection: collection}
}

func (r *CritSessionRepository) SaveSession(session models.CritSession) (string, error) {
	session.ID = primitive.NewObjectID().Hex()
	session.CreatedAt = time.Now()

	doc := bson.M{
		"_id":        session.ID,
		"board_id":   session.BoardID,
		"join_code":  session.JoinCode,
		"status":     session.Status,
		"created_at": session.CreatedAt,
	}
	if _, err := r.collection.InsertOne(context.Background(), doc); err != nil {
		return "", err
	}
	return session.ID, nil
}

func (r *CritSessionRepository) FindSessionByID(id string) (models.CritSession, error) {
	var session models.CritSession
	err := r.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&session)
	return session, err
}

func (r *CritSessionRepository) FindSessionByBoardID(boardID string) (models.CritSession, error) {
	var session models.CritSession
	err := r.collection.FindOne(context.Background(), bson.M{"board_id": boardID}).Decode(&session)
	return session, err
}

func (r *CritSessionRepository) FindSessionByJoinCode(code string) (models.CritSession, error) {
	var session models.CritSession
	err := r.collection.FindOne(context.Background(), bson.M{"join_code": code}).Decode(&session)
	return session, err
}

// ReactivateSession flips an ended session back to active, keeping its join code.
func (r *CritSessionRepository) ReactivateSession(id string) error {
	update := bson.M{
		"$set":   bson.M{"status": models.SessionActive},
		"$unset": bson.M{"ended_at": ""},
	}
	_, err := r.collection.UpdateOne(context.Background(), bson.M{"_id": id}, update, options.Update().SetUpsert(false))
	return err
}

func (r *CritSessionRepository) EndSession(id string) error {
	update := bson.M{"$set": bson.M{"status": models.SessionEnded, "ended_at": time.Now()}}
	_, err := r.collection.UpdateOne(context.Background(), bson.M{"_id": id}, update, options.Update().SetUpsert(false))
	return err
}

func (r *CritSessionRepository) DeleteSessionsByBoardID(boardID string) error {
	_, err := r.collection.DeleteMany(context.Background(), bson.M{"board_id": boardID})
	return err
}
