package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

// truckClassDocument is the MongoDB shape of a truck class.
type truckClassDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	BaseKmPerLiter   float64            `bson:"base_km_per_liter"`
	LoadedMultiplier float64            `bson:"loaded_multiplier"`
	IsActive         bool               `bson:"is_active"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (d *truckClassDocument) toModel() *model.TruckClass {
	return &model.TruckClass{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		BaseKmPerLiter:   d.BaseKmPerLiter,
		LoadedMultiplier: d.LoadedMultiplier,
		IsActive:         d.IsActive,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// TruckClassRepository stores truck classes in MongoDB.
type TruckClassRepository struct {
	collection *mongo.Collection
	db         *MongoDB
}

// NewTruckClassRepository creates a new MongoDB truck class repository.
func NewTruckClassRepository(db *MongoDB) *TruckClassRepository {
	return &TruckClassRepository{
		collection: db.TruckClasses,
		db:         db,
	}
}

// List returns truck classes ordered by name.
func (r *TruckClassRepository) List(ctx context.Context, activeOnly bool) ([]model.TruckClass, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []truckClassDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	classes := make([]model.TruckClass, len(docs))
	for i := range docs {
		classes[i] = *docs[i].toModel()
	}
	return classes, nil
}

// GetByID returns the truck class with the given hex id. Malformed ids match nothing.
func (r *TruckClassRepository) GetByID(ctx context.Context, id string) (*model.TruckClass, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByName returns the truck class with the given name.
func (r *TruckClassRepository) GetByName(ctx context.Context, name string) (*model.TruckClass, error) {
	return r.findOne(ctx, bson.M{"name": strings.TrimSpace(name)})
}

func (r *TruckClassRepository) findOne(ctx context.Context, filter bson.M) (*model.TruckClass, error) {
	var doc truckClassDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

// Create inserts a truck class and returns it with its id and timestamps set.
func (r *TruckClassRepository) Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	now := time.Now().UTC()
	doc := truckClassDocument{
		ID:               primitive.NewObjectID(),
		Name:             tc.Name,
		BaseKmPerLiter:   tc.BaseKmPerLiter,
		LoadedMultiplier: tc.LoadedMultiplier,
		IsActive:         tc.IsActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return doc.toModel(), nil
}

// Update replaces the mutable fields of an existing truck class.
// Returns nil, nil when the id does not exist.
func (r *TruckClassRepository) Update(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	oid, err := primitive.ObjectIDFromHex(tc.ID)
	if err != nil {
		return nil, nil
	}

	update := bson.M{
		"$set": bson.M{
			"name":              tc.Name,
			"base_km_per_liter": tc.BaseKmPerLiter,
			"loaded_multiplier": tc.LoadedMultiplier,
			"is_active":         tc.IsActive,
			"updated_at":        time.Now().UTC(),
		},
	}

	var doc truckClassDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, nil
	case mongo.IsDuplicateKeyError(err):
		return nil, ErrDuplicateName
	case err != nil:
		return nil, err
	}
	return doc.toModel(), nil
}

// Ping checks the underlying MongoDB connection.
func (r *TruckClassRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
