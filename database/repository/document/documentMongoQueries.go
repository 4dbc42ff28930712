// File: database/repository/document/documentMongoQueries.go
package documentRepo

import (
	"errors"
	"fmt"
	"time"

	"kycdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a document by its unique ID. Returns (nil, nil) when no
// document carries the ID; any other error is a real failure.
func (r *MongoDocumentRepo) GetByID(id string) (*models.KYCDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.KYCDocument
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch document with id %s: %w", id, err)
	}
	return &doc, nil
}

// GetByAgency retrieves all documents owned by an agency, oldest first.
func (r *MongoDocumentRepo) GetByAgency(agencyID string) ([]models.KYCDocument, error) {
	return r.GetByAgencyWithProjection(agencyID, nil)
}

// GetByAgencyWithProjection retrieves an agency's documents with an optional projection.
func (r *MongoDocumentRepo) GetByAgencyWithProjection(agencyID string, projection bson.M) ([]models.KYCDocument, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"agencyId": agencyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents for agency %s: %w", agencyID, err)
	}
	defer cursor.Close(ctx)

	var docs []models.KYCDocument
	for cursor.Next(ctx) {
		var d models.KYCDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// GetByClient retrieves all documents submitted by a client.
func (r *MongoDocumentRepo) GetByClient(clientID string) ([]models.KYCDocument, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)

	var docs []models.KYCDocument
	for cursor.Next(ctx) {
		var d models.KYCDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// GetExpiringBetween retrieves an agency's documents whose expiry lies in
// [from, to] inclusive, in the same order GetByAgency would return them.
func (r *MongoDocumentRepo) GetExpiringBetween(agencyID string, from, to time.Time) ([]models.KYCDocument, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"agencyId":  agencyID,
		"expiresAt": bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve expiring documents for agency %s: %w", agencyID, err)
	}
	defer cursor.Close(ctx)

	var docs []models.KYCDocument
	for cursor.Next(ctx) {
		var d models.KYCDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// GetAgencyIDs lists the distinct agency IDs holding documents.
func (r *MongoDocumentRepo) GetAgencyIDs() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "agencyId", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list agency ids: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
