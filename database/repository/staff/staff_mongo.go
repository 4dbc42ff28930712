package staffRepo

import (
	"context"
	"fmt"
	"time"

	"kycdesk/database"
	"kycdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.MongoClient.Database("kycdesk").Collection("staff")
	repo := &MongoStaffRepo{coll: coll}

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
func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "agencyId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a staff user by ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoStaffRepo) GetByIDWithProjection(id string, projection bson.M) (*models.StaffUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var staff models.StaffUser
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&staff); err != nil {
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

// GetByID retrieves a staff user by its unique ID (full document).
func (r *MongoStaffRepo) GetByID(id string) (*models.StaffUser, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a staff user by email.
func (r *MongoStaffRepo) GetByEmail(email string) (*models.StaffUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.StaffUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with email %s: %w", email, err)
	}
	return &staff, nil
}

// GetByAgency retrieves all staff users of an agency.
func (r *MongoStaffRepo) GetByAgency(agencyID string) ([]models.StaffUser, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"agencyId": agencyID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff for agency %s: %w", agencyID, err)
	}
	defer cursor.Close(ctx)

	var users []models.StaffUser
	for cursor.Next(ctx) {
		var u models.StaffUser
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode staff user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// Create inserts a new staff record.
func (r *MongoStaffRepo) Create(staff *models.StaffUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, staff)
	if err != nil {
		return fmt.Errorf("failed to create staff user: %w", err)
	}
	return nil
}

// Update modifies an existing staff record.
func (r *MongoStaffRepo) Update(staff *models.StaffUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	staff.UpdatedAt = time.Now()
	filter := bson.M{"id": staff.ID}
	update := bson.M{"$set": staff}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update staff with id %s: %w", staff.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", staff.ID)
	}
	return nil
}
