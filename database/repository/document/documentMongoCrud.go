// File: database/repository/document/documentMongoCrud.go
package documentRepo

import (
	"fmt"
	"time"

	"kycdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new document record.
func (r *MongoDocumentRepo) Create(doc *models.KYCDocument) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// UpdateStatus moves a document to the given status and bumps updatedAt.
func (r *MongoDocumentRepo) UpdateStatus(id string, status models.DocumentStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status of document %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("document with id %s not found", id)
	}
	return nil
}
