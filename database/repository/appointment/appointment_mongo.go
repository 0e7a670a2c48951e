package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.DB().Collection("citas")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes backs the booking invariants with a partial unique index on
// (nutricionistaId, fecha, hora) scoped to PROGRAMADA citas, so a race that
// slips past the service-level check still cannot produce two active bookings
// for the same slot.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{
				{Key: "nutricionistaId", Value: 1},
				{Key: "fecha", Value: 1},
				{Key: "hora", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"estado": models.CitaProgramada}),
		},
		{Keys: bson.D{{Key: "usuarioId", Value: 1}, {Key: "fecha", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a cita by its numeric ID.
func (r *MongoAppointmentRepo) GetByID(id int64) (*models.Cita, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cita models.Cita
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cita); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cita with id %d: %w", id, err)
	}
	return &cita, nil
}

// GetAll retrieves all citas.
func (r *MongoAppointmentRepo) GetAll() ([]models.Cita, error) {
	return r.find(bson.M{})
}

// GetByNutricionista retrieves all citas booked against one nutritionist.
func (r *MongoAppointmentRepo) GetByNutricionista(nutricionistaID int64) ([]models.Cita, error) {
	return r.find(bson.M{"nutricionistaId": nutricionistaID})
}

// GetProgramadasByNutricionista retrieves PROGRAMADA citas for one nutritionist
// within [desde, hasta]. Dates are "YYYY-MM-DD" so the range works lexically.
func (r *MongoAppointmentRepo) GetProgramadasByNutricionista(nutricionistaID int64, desde, hasta string) ([]models.Cita, error) {
	return r.find(bson.M{
		"nutricionistaId": nutricionistaID,
		"estado":          models.CitaProgramada,
		"fecha":           bson.M{"$gte": desde, "$lte": hasta},
	})
}

// GetByUsuario retrieves all citas held by one user.
func (r *MongoAppointmentRepo) GetByUsuario(usuarioID int64) ([]models.Cita, error) {
	return r.find(bson.M{"usuarioId": usuarioID})
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Cita, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}, {Key: "hora", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list citas: %w", err)
	}
	defer cursor.Close(ctx)

	var citas []models.Cita
	if err := cursor.All(ctx, &citas); err != nil {
		return nil, fmt.Errorf("failed to decode citas: %w", err)
	}
	return citas, nil
}

// Create inserts a new cita document. The caller assigns the ID and
// FechaRegistro.
func (r *MongoAppointmentRepo) Create(cita *models.Cita) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, cita); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotOcupado
		}
		return fmt.Errorf("failed to create cita: %w", err)
	}
	return nil
}

// Update modifies an existing cita document.
func (r *MongoAppointmentRepo) Update(cita *models.Cita) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": cita.ID}, bson.M{"$set": cita})
	if err != nil {
		return fmt.Errorf("failed to update cita with id %d: %w", cita.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("cita with id %d not found", cita.ID)
	}
	return nil
}

// Delete removes a cita document by its ID.
func (r *MongoAppointmentRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cita with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("cita with id %d not found", id)
	}
	return nil
}

// MarkRecordada flags a cita whose reminder has been dispatched.
func (r *MongoAppointmentRepo) MarkRecordada(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"recordada": true}})
	if err != nil {
		return fmt.Errorf("failed to mark cita %d as recordada: %w", id, err)
	}
	return nil
}

// ErrSlotOcupado surfaces a duplicate-key violation of the partial unique
// index on (nutricionistaId, fecha, hora).
var ErrSlotOcupado = errors.New("slot already booked for this nutritionist")
