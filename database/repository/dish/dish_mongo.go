package dishRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mycare/database"
	"mycare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDishRepo implements DishRepository using MongoDB.
type MongoDishRepo struct {
	coll *mongo.Collection
}

// NewMongoDishRepo creates a new instance of DishRepository using MongoDB.
func NewMongoDishRepo() DishRepository {
	coll := database.DB().Collection("platos")
	repo := &MongoDishRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDishRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a plato by its numeric ID.
func (r *MongoDishRepo) GetByID(id int64) (*models.Plato, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Plato
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch plato with id %d: %w", id, err)
	}
	return &p, nil
}

// GetAll retrieves all platos sorted by name.
func (r *MongoDishRepo) GetAll() ([]models.Plato, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list platos: %w", err)
	}
	defer cursor.Close(ctx)

	var platos []models.Plato
	if err := cursor.All(ctx, &platos); err != nil {
		return nil, fmt.Errorf("failed to decode platos: %w", err)
	}
	return platos, nil
}

// Create inserts a new plato document. The caller assigns the ID.
func (r *MongoDishRepo) Create(p *models.Plato) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create plato: %w", err)
	}
	return nil
}

// Update modifies an existing plato document.
func (r *MongoDishRepo) Update(p *models.Plato) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update plato with id %d: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("plato with id %d not found", p.ID)
	}
	return nil
}

// Delete removes a plato document by its ID.
func (r *MongoDishRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete plato with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("plato with id %d not found", id)
	}
	return nil
}
