package repositories

import (
	"context"
	"errors"

	"delivery_management/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	FindAll(ctx context.Context) ([]models.Notification, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	Insert(ctx context.Context, notification *models.Notification) error
	Replace(ctx context.Context, id primitive.ObjectID, notification *models.Notification) error
	// MarkAsRead and SetStatus are targeted field updates, not full
	// document rewrites.
	MarkAsRead(ctx context.Context, id primitive.ObjectID) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.NotificationStatus) error
}

type NotificationRepositoryImpl struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database, collectionName string) *NotificationRepositoryImpl {
	return &NotificationRepositoryImpl{
		collection: db.Collection(collectionName),
	}
}

func (r *NotificationRepositoryImpl) FindAll(ctx context.Context) ([]models.Notification, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	var notification models.Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Insert stores a new notification. The id is generated by the store and
// written back to notification.ID.
func (r *NotificationRepositoryImpl) Insert(ctx context.Context, notification *models.Notification) error {
	result, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		notification.ID = oid
	}
	return nil
}

func (r *NotificationRepositoryImpl) Replace(ctx context.Context, id primitive.ObjectID, notification *models.Notification) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, notification)
	return err
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isRead": true}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *NotificationRepositoryImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status models.NotificationStatus) error {
	update := bson.M{"$set": bson.M{"status": status}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
