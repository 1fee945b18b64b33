package repository

import (
	"context"
	"errors"

	"chatter-api/internal/domain"
	"chatter-api/internal/domain/user"
	"chatter-api/pkg/database"
	chatter_errors "chatter-api/pkg/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	c *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{c: db.Collection(database.TableUser)}
}

func (r *MongoUserRepository) Create(ctx context.Context, u *user.User) (string, error) {
	u.ID = uuid.NewString()
	if _, err := r.c.InsertOne(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var u user.User
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, chatter_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []user.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) GetByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}

	cur, err := r.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var found []user.User
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[string]user.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	users := make([]user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

func (r *MongoUserRepository) Update(ctx context.Context, id string, fields domain.Fields) (UpdateResult, error) {
	set := fields.Without("id")
	if len(set) == 0 {
		// An empty $set is rejected by the server; report a match as unchanged.
		n, err := r.c.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return UpdateResult{}, err
		}
		return UpdateResult{Unchanged: n}, nil
	}

	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Replaced: res.ModifiedCount, Unchanged: res.MatchedCount - res.ModifiedCount}, nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
