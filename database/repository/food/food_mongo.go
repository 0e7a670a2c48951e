package foodRepo

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

// MongoFoodRepo implements FoodRepository using MongoDB.
type MongoFoodRepo struct {
	coll    *mongo.Collection
	catColl *mongo.Collection
}

// NewMongoFoodRepo creates a new instance of FoodRepository using MongoDB.
func NewMongoFoodRepo() FoodRepository {
	db := database.DB()
	repo := &MongoFoodRepo{
		coll:    db.Collection("alimentos"),
		catColl: db.Collection("categorias"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFoodRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "categoriaNombre", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an alimento by its numeric ID.
func (r *MongoFoodRepo) GetByID(id int64) (*models.Alimento, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Alimento
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch alimento with id %d: %w", id, err)
	}
	return &a, nil
}

// GetAll retrieves all alimentos sorted by name.
func (r *MongoFoodRepo) GetAll() ([]models.Alimento, error) {
	return r.find(bson.M{})
}

// GetByCategoriaNombre retrieves all alimentos of a named category.
func (r *MongoFoodRepo) GetByCategoriaNombre(nombre string) ([]models.Alimento, error) {
	return r.find(bson.M{"categoriaNombre": nombre})
}

func (r *MongoFoodRepo) find(filter bson.M) ([]models.Alimento, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list alimentos: %w", err)
	}
	defer cursor.Close(ctx)

	var alimentos []models.Alimento
	if err := cursor.All(ctx, &alimentos); err != nil {
		return nil, fmt.Errorf("failed to decode alimentos: %w", err)
	}
	return alimentos, nil
}

// Create inserts a new alimento document. The caller assigns the ID.
func (r *MongoFoodRepo) Create(a *models.Alimento) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create alimento: %w", err)
	}
	return nil
}

// Update modifies an existing alimento document.
func (r *MongoFoodRepo) Update(a *models.Alimento) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": a.ID}, bson.M{"$set": a})
	if err != nil {
		return fmt.Errorf("failed to update alimento with id %d: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("alimento with id %d not found", a.ID)
	}
	return nil
}

// Delete removes an alimento document by its ID.
func (r *MongoFoodRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete alimento with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("alimento with id %d not found", id)
	}
	return nil
}

// GetCategorias retrieves all categorias.
func (r *MongoFoodRepo) GetCategorias() ([]models.Categoria, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.catColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categorias: %w", err)
	}
	defer cursor.Close(ctx)

	var categorias []models.Categoria
	if err := cursor.All(ctx, &categorias); err != nil {
		return nil, fmt.Errorf("failed to decode categorias: %w", err)
	}
	return categorias, nil
}

// GetCategoriaByID retrieves one categoria, nil when absent.
func (r *MongoFoodRepo) GetCategoriaByID(id int64) (*models.Categoria, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Categoria
	if err := r.catColl.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch categoria with id %d: %w", id, err)
	}
	return &c, nil
}
