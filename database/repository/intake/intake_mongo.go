package intakeRepo

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

// MongoIntakeRepo implements IntakeRepository using MongoDB.
type MongoIntakeRepo struct {
	ingestaColl *mongo.Collection
	comerColl   *mongo.Collection
}

// NewMongoIntakeRepo creates a new instance of IntakeRepository using MongoDB.
func NewMongoIntakeRepo() IntakeRepository {
	db := database.DB()
	repo := &MongoIntakeRepo{
		ingestaColl: db.Collection("usuario_ingesta"),
		comerColl:   db.Collection("comidas"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoIntakeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	ingestaIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "usuarioId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "imc", Value: 1}}},
	}
	if _, err := r.ingestaColl.Indexes().CreateMany(ctx, ingestaIndexes); err != nil {
		return fmt.Errorf("failed to create ingesta indexes: %w", err)
	}

	comerIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "usuarioId", Value: 1}, {Key: "fechaConsumo", Value: -1}}},
	}
	if _, err := r.comerColl.Indexes().CreateMany(ctx, comerIndexes); err != nil {
		return fmt.Errorf("failed to create comer indexes: %w", err)
	}
	return nil
}

// GetIngesta retrieves a user's intake recommendation, nil when absent.
func (r *MongoIntakeRepo) GetIngesta(usuarioID int64) (*models.UsuarioIngesta, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ingesta models.UsuarioIngesta
	if err := r.ingestaColl.FindOne(ctx, bson.M{"usuarioId": usuarioID}).Decode(&ingesta); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch ingesta for usuario %d: %w", usuarioID, err)
	}
	return &ingesta, nil
}

// GetAllIngestas retrieves all intake recommendations.
func (r *MongoIntakeRepo) GetAllIngestas() ([]models.UsuarioIngesta, error) {
	return r.findIngestas(bson.M{})
}

// GetIngestasByIMCRange retrieves recommendations whose BMI falls in [min, max].
func (r *MongoIntakeRepo) GetIngestasByIMCRange(minIMC, maxIMC float64) ([]models.UsuarioIngesta, error) {
	return r.findIngestas(bson.M{"imc": bson.M{"$gte": minIMC, "$lte": maxIMC}})
}

func (r *MongoIntakeRepo) findIngestas(filter bson.M) ([]models.UsuarioIngesta, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.ingestaColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "usuarioId", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list ingestas: %w", err)
	}
	defer cursor.Close(ctx)

	var ingestas []models.UsuarioIngesta
	if err := cursor.All(ctx, &ingestas); err != nil {
		return nil, fmt.Errorf("failed to decode ingestas: %w", err)
	}
	return ingestas, nil
}

// UpsertIngesta creates or replaces a user's intake recommendation.
func (r *MongoIntakeRepo) UpsertIngesta(ingesta *models.UsuarioIngesta) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ingesta.FechaCalculo = time.Now()
	filter := bson.M{"usuarioId": ingesta.UsuarioID}
	update := bson.M{"$set": ingesta}
	opts := options.Update().SetUpsert(true)

	if _, err := r.ingestaColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert ingesta for usuario %d: %w", ingesta.UsuarioID, err)
	}
	return nil
}

// DeleteIngesta removes a user's intake recommendation.
func (r *MongoIntakeRepo) DeleteIngesta(usuarioID int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.ingestaColl.DeleteOne(ctx, bson.M{"usuarioId": usuarioID})
	if err != nil {
		return fmt.Errorf("failed to delete ingesta for usuario %d: %w", usuarioID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("ingesta for usuario %d not found", usuarioID)
	}
	return nil
}

// CreateComer inserts a food-log entry. The caller assigns the ID and
// FechaRegistro.
func (r *MongoIntakeRepo) CreateComer(comer *models.Comer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.comerColl.InsertOne(ctx, comer); err != nil {
		return fmt.Errorf("failed to create comer entry: %w", err)
	}
	return nil
}

// GetComerByID retrieves one food-log entry, nil when absent.
func (r *MongoIntakeRepo) GetComerByID(id int64) (*models.Comer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var comer models.Comer
	if err := r.comerColl.FindOne(ctx, bson.M{"id": id}).Decode(&comer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch comer entry %d: %w", id, err)
	}
	return &comer, nil
}

// GetComerByUsuario retrieves a user's food log, newest first.
func (r *MongoIntakeRepo) GetComerByUsuario(usuarioID int64) ([]models.Comer, error) {
	return r.findComer(bson.M{"usuarioId": usuarioID})
}

// GetComerByUsuarioFecha retrieves a user's food log for one day.
func (r *MongoIntakeRepo) GetComerByUsuarioFecha(usuarioID int64, fecha string) ([]models.Comer, error) {
	return r.findComer(bson.M{"usuarioId": usuarioID, "fechaConsumo": fecha})
}

func (r *MongoIntakeRepo) findComer(filter bson.M) ([]models.Comer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "fechaConsumo", Value: -1}, {Key: "horaConsumo", Value: -1}})
	cursor, err := r.comerColl.Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list comer entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.Comer
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode comer entries: %w", err)
	}
	return entries, nil
}

// DeleteComer removes a food-log entry by its ID.
func (r *MongoIntakeRepo) DeleteComer(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.comerColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete comer entry %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("comer entry %d not found", id)
	}
	return nil
}
