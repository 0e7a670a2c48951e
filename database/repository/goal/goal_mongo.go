package goalRepo

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

// MongoGoalRepo implements GoalRepository using MongoDB.
type MongoGoalRepo struct {
	objColl   *mongo.Collection
	nivelColl *mongo.Collection
	linkColl  *mongo.Collection
}

// NewMongoGoalRepo creates a new instance of GoalRepository using MongoDB.
func NewMongoGoalRepo() GoalRepository {
	db := database.DB()
	repo := &MongoGoalRepo{
		objColl:   db.Collection("objetivos"),
		nivelColl: db.Collection("niveles_actividad"),
		linkColl:  db.Collection("usuario_objetivos"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGoalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	link := mongo.IndexModel{Keys: bson.D{{Key: "usuarioId", Value: 1}, {Key: "fechaAsignacion", Value: -1}}}
	if _, err := r.linkColl.Indexes().CreateOne(ctx, link); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetObjetivos retrieves the objetivo catalog.
func (r *MongoGoalRepo) GetObjetivos() ([]models.Objetivo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.objColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list objetivos: %w", err)
	}
	defer cursor.Close(ctx)

	var objetivos []models.Objetivo
	if err := cursor.All(ctx, &objetivos); err != nil {
		return nil, fmt.Errorf("failed to decode objetivos: %w", err)
	}
	return objetivos, nil
}

// GetObjetivoByID retrieves one objetivo, nil when absent.
func (r *MongoGoalRepo) GetObjetivoByID(id int64) (*models.Objetivo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var o models.Objetivo
	if err := r.objColl.FindOne(ctx, bson.M{"id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch objetivo with id %d: %w", id, err)
	}
	return &o, nil
}

// GetNivelesActividad retrieves the activity-level catalog.
func (r *MongoGoalRepo) GetNivelesActividad() ([]models.NivelActividad, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.nivelColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "factor", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list niveles de actividad: %w", err)
	}
	defer cursor.Close(ctx)

	var niveles []models.NivelActividad
	if err := cursor.All(ctx, &niveles); err != nil {
		return nil, fmt.Errorf("failed to decode niveles de actividad: %w", err)
	}
	return niveles, nil
}

// GetNivelActividadByID retrieves one activity level, nil when absent.
func (r *MongoGoalRepo) GetNivelActividadByID(id int64) (*models.NivelActividad, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var n models.NivelActividad
	if err := r.nivelColl.FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch nivel de actividad with id %d: %w", id, err)
	}
	return &n, nil
}

// AssignObjetivo links a user to a goal. The caller assigns the link's ID
// and FechaAsignacion.
func (r *MongoGoalRepo) AssignObjetivo(uo *models.UsuarioObjetivo) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.linkColl.InsertOne(ctx, uo); err != nil {
		return fmt.Errorf("failed to assign objetivo: %w", err)
	}
	return nil
}

// GetObjetivosByUsuario retrieves a user's goal assignments, newest first.
func (r *MongoGoalRepo) GetObjetivosByUsuario(usuarioID int64) ([]models.UsuarioObjetivo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "fechaAsignacion", Value: -1}})
	cursor, err := r.linkColl.Find(ctx, bson.M{"usuarioId": usuarioID}, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list objetivos for usuario %d: %w", usuarioID, err)
	}
	defer cursor.Close(ctx)

	var links []models.UsuarioObjetivo
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("failed to decode usuario objetivos: %w", err)
	}
	return links, nil
}
