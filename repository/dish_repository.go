package repository

import (
	"context"
	"time"

	"github.com/itsraghul/hearty-foods/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DishRepository defines data access for the dishes collection.
type DishRepository interface {
	FindAll(ctx context.Context) ([]models.Dish, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Dish, error)
	FindBySlug(ctx context.Context, slug string) (*models.Dish, error)
	Create(ctx context.Context, dish *models.Dish) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, dishes []models.Dish) error
}

type mongoDishRepository struct {
	collection *mongo.Collection
}

// NewDishRepository creates a mongo-backed dish repository.
func NewDishRepository(db *mongo.Database) DishRepository {
	return &mongoDishRepository{collection: db.Collection("dishes")}
}

// notDeleted excludes soft-deleted documents.
func notDeleted() bson.M {
	return bson.M{"deleted_at": bson.M{"$exists": false}}
}

func (r *mongoDishRepository) FindAll(ctx context.Context) ([]models.Dish, error) {
	cursor, err := r.collection.Find(ctx, notDeleted())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dishes := []models.Dish{}
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *mongoDishRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Dish, error) {
	filter := notDeleted()
	filter["_id"] = id

	var dish models.Dish
	if err := r.collection.FindOne(ctx, filter).Decode(&dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *mongoDishRepository) FindBySlug(ctx context.Context, slug string) (*models.Dish, error) {
	filter := notDeleted()
	filter["slug"] = slug

	var dish models.Dish
	if err := r.collection.FindOne(ctx, filter).Decode(&dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *mongoDishRepository) Create(ctx context.Context, dish *models.Dish) error {
	if dish.ID.IsZero() {
		dish.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	dish.CreatedAt = now
	dish.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, dish)
	return err
}

func (r *mongoDishRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	updates["updated_at"] = time.Now().UTC()

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *mongoDishRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	update := bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *mongoDishRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, notDeleted())
}

func (r *mongoDishRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

func (r *mongoDishRepository) InsertMany(ctx context.Context, dishes []models.Dish) error {
	docs := make([]interface{}, 0, len(dishes))
	now := time.Now().UTC()
	for i := range dishes {
		if dishes[i].ID.IsZero() {
			dishes[i].ID = primitive.NewObjectID()
		}
		dishes[i].CreatedAt = now
		dishes[i].UpdatedAt = now
		docs = append(docs, dishes[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
