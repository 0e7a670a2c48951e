package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll     *mongo.Collection
	infoColl *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.DB()
	repo := &MongoUserRepo{
		coll:     db.Collection("usuarios"),
		infoColl: db.Collection("usuario_informacion"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "correo", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	infoIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "usuarioId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.infoColl.Indexes().CreateOne(ctx, infoIndex); err != nil {
		return fmt.Errorf("failed to create informacion index: %w", err)
	}
	return nil
}

// GetByID retrieves a usuario by their numeric ID.
func (r *MongoUserRepo) GetByID(id int64) (*models.Usuario, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var usuario models.Usuario
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&usuario); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch usuario with id %d: %w", id, err)
	}
	return &usuario, nil
}

// GetByUsername retrieves a usuario by username.
func (r *MongoUserRepo) GetByUsername(username string) (*models.Usuario, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var usuario models.Usuario
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&usuario); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch usuario %s: %w", username, err)
	}
	return &usuario, nil
}

// GetAll retrieves all usuarios.
func (r *MongoUserRepo) GetAll() ([]models.Usuario, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}
	defer cursor.Close(ctx)

	var usuarios []models.Usuario
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, fmt.Errorf("failed to decode usuarios: %w", err)
	}
	return usuarios, nil
}

// Create inserts a new usuario document. The caller assigns the ID and
// creation timestamps.
func (r *MongoUserRepo) Create(usuario *models.Usuario) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, usuario); err != nil {
		return fmt.Errorf("failed to create usuario: %w", err)
	}
	return nil
}

// Update modifies an existing usuario document.
func (r *MongoUserRepo) Update(usuario *models.Usuario) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	usuario.FechaActualizacion = time.Now()
	filter := bson.M{"id": usuario.ID}
	update := bson.M{"$set": usuario}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update usuario with id %d: %w", usuario.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("usuario with id %d not found", usuario.ID)
	}
	return nil
}

// Delete removes a usuario document by its ID.
func (r *MongoUserRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete usuario with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("usuario with id %d not found", id)
	}
	return nil
}

// GetInformacion retrieves a user's physical profile, nil when absent.
func (r *MongoUserRepo) GetInformacion(usuarioID int64) (*models.UsuarioInformacion, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var info models.UsuarioInformacion
	if err := r.infoColl.FindOne(ctx, bson.M{"usuarioId": usuarioID}).Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch informacion for usuario %d: %w", usuarioID, err)
	}
	return &info, nil
}

// UpsertInformacion creates or replaces a user's physical profile.
func (r *MongoUserRepo) UpsertInformacion(info *models.UsuarioInformacion) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"usuarioId": info.UsuarioID}
	update := bson.M{"$set": info}
	opts := options.Update().SetUpsert(true)

	if _, err := r.infoColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert informacion for usuario %d: %w", info.UsuarioID, err)
	}
	return nil
}
