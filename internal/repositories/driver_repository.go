package repositories

import (
	"context"
	"errors"

	"delivery_management/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrDriverNotFound = errors.New("driver not found")

type DriverRepository interface {
	FindAll(ctx context.Context) ([]models.Driver, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	FindByEmail(ctx context.Context, email string) (*models.Driver, error)
	FindByStatus(ctx context.Context, status models.DriverStatus) ([]models.Driver, error)
	Insert(ctx context.Context, driver *models.Driver) error
	Replace(ctx context.Context, id primitive.ObjectID, driver *models.Driver) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DriverRepositoryImpl struct {
	collection *mongo.Collection
}

func NewDriverRepository(db *mongo.Database, collectionName string) *DriverRepositoryImpl {
	return &DriverRepositoryImpl{
		collection: db.Collection(collectionName),
	}
}

func (r *DriverRepositoryImpl) FindAll(ctx context.Context) ([]models.Driver, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	drivers := []models.Driver{}
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *DriverRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	var driver models.Driver
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&driver)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.Driver, error) {
	var driver models.Driver
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&driver)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepositoryImpl) FindByStatus(ctx context.Context, status models.DriverStatus) ([]models.Driver, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}

	drivers := []models.Driver{}
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// Insert stores a new driver. The id is generated by the store and written
// back to driver.ID.
func (r *DriverRepositoryImpl) Insert(ctx context.Context, driver *models.Driver) error {
	result, err := r.collection.InsertOne(ctx, driver)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		driver.ID = oid
	}
	return nil
}

func (r *DriverRepositoryImpl) Replace(ctx context.Context, id primitive.ObjectID, driver *models.Driver) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, driver)
	return err
}

func (r *DriverRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
