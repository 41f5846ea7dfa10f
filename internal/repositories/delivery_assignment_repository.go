package repositories

import (
	"context"
	"errors"

	"delivery_management/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrAssignmentNotFound = errors.New("delivery assignment not found")

type DeliveryAssignmentRepository interface {
	FindAll(ctx context.Context) ([]models.DeliveryAssignment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryAssignment, error)
	FindByDriverID(ctx context.Context, driverID primitive.ObjectID) ([]models.DeliveryAssignment, error)
	Insert(ctx context.Context, assignment *models.DeliveryAssignment) error
	Replace(ctx context.Context, id primitive.ObjectID, assignment *models.DeliveryAssignment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DeliveryAssignmentRepositoryImpl struct {
	collection *mongo.Collection
}

func NewDeliveryAssignmentRepository(db *mongo.Database, collectionName string) *DeliveryAssignmentRepositoryImpl {
	return &DeliveryAssignmentRepositoryImpl{
		collection: db.Collection(collectionName),
	}
}

func (r *DeliveryAssignmentRepositoryImpl) FindAll(ctx context.Context) ([]models.DeliveryAssignment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	assignments := []models.DeliveryAssignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *DeliveryAssignmentRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryAssignment, error) {
	var assignment models.DeliveryAssignment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *DeliveryAssignmentRepositoryImpl) FindByDriverID(ctx context.Context, driverID primitive.ObjectID) ([]models.DeliveryAssignment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"driverId": driverID})
	if err != nil {
		return nil, err
	}

	assignments := []models.DeliveryAssignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Insert stores a new assignment. The id is generated by the store and
// written back to assignment.ID.
func (r *DeliveryAssignmentRepositoryImpl) Insert(ctx context.Context, assignment *models.DeliveryAssignment) error {
	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		assignment.ID = oid
	}
	return nil
}

func (r *DeliveryAssignmentRepositoryImpl) Replace(ctx context.Context, id primitive.ObjectID, assignment *models.DeliveryAssignment) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, assignment)
	return err
}

func (r *DeliveryAssignmentRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
