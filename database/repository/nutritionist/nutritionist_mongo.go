package nutritionistRepo

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

// MongoNutritionistRepo implements NutritionistRepository using MongoDB.
type MongoNutritionistRepo struct {
	coll *mongo.Collection
}

// NewMongoNutritionistRepo creates a new instance of NutritionistRepository using MongoDB.
func NewMongoNutritionistRepo() NutritionistRepository {
	coll := database.DB().Collection("nutricionistas")
	repo := &MongoNutritionistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNutritionistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "correo", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a nutricionista by their numeric ID.
func (r *MongoNutritionistRepo) GetByID(id int64) (*models.Nutricionista, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var n models.Nutricionista
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch nutricionista with id %d: %w", id, err)
	}
	return &n, nil
}

// GetAll retrieves all nutricionistas.
func (r *MongoNutritionistRepo) GetAll() ([]models.Nutricionista, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "apellidos", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list nutricionistas: %w", err)
	}
	defer cursor.Close(ctx)

	var nutricionistas []models.Nutricionista
	if err := cursor.All(ctx, &nutricionistas); err != nil {
		return nil, fmt.Errorf("failed to decode nutricionistas: %w", err)
	}
	return nutricionistas, nil
}

// Create inserts a new nutricionista document. The caller assigns the ID.
func (r *MongoNutritionistRepo) Create(n *models.Nutricionista) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create nutricionista: %w", err)
	}
	return nil
}

// Update modifies an existing nutricionista document.
func (r *MongoNutritionistRepo) Update(n *models.Nutricionista) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": n.ID}, bson.M{"$set": n})
	if err != nil {
		return fmt.Errorf("failed to update nutricionista with id %d: %w", n.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("nutricionista with id %d not found", n.ID)
	}
	return nil
}

// Delete removes a nutricionista document by its ID.
func (r *MongoNutritionistRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete nutricionista with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("nutricionista with id %d not found", id)
	}
	return nil
}
