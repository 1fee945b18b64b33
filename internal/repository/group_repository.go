package repository

import (
	"context"
	"errors"

	"chatter-api/internal/domain/group"
	"chatter-api/pkg/database"
	chatter_errors "chatter-api/pkg/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoGroupRepository struct {
	c *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) GroupRepository {
	return &MongoGroupRepository{c: db.Collection(database.TableGroup)}
}

func (r *MongoGroupRepository) Create(ctx context.Context, g *group.Group) (string, error) {
	g.ID = uuid.NewString()
	if _, err := r.c.InsertOne(ctx, g); err != nil {
		return "", err
	}
	return g.ID, nil
}

func (r *MongoGroupRepository) GetByID(ctx context.Context, id string) (group.Group, error) {
	var g group.Group
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return group.Group{}, chatter_errors.ErrNotFound
		}
		return group.Group{}, err
	}
	return g, nil
}

type MongoUserGroupRepository struct {
	c *mongo.Collection
}

func NewUserGroupRepository(db *mongo.Database) UserGroupRepository {
	return &MongoUserGroupRepository{c: db.Collection(database.TableUserGroup)}
}

func (r *MongoUserGroupRepository) Create(ctx context.Context, ug *group.UserGroup) (string, error) {
	ug.ID = uuid.NewString()
	if ug.MemberIDs == nil {
		ug.MemberIDs = []string{}
	}
	if _, err := r.c.InsertOne(ctx, ug); err != nil {
		return "", err
	}
	return ug.ID, nil
}

func (r *MongoUserGroupRepository) FindByGroupID(ctx context.Context, groupID string) ([]group.UserGroup, error) {
	cur, err := r.c.Find(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ugs := []group.UserGroup{}
	if err := cur.All(ctx, &ugs); err != nil {
		return nil, err
	}
	return ugs, nil
}

func (r *MongoUserGroupRepository) GroupsOfMember(ctx context.Context, memberID string) ([]group.Group, error) {
	pipe := mongo.Pipeline{
		// member_ids is an array, so equality matches any element
		bson.D{{Key: "$match", Value: bson.M{"member_ids": memberID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         database.TableGroup,
			"localField":   "group_id",
			"foreignField": "_id",
			"as":           "g",
		}}},
		bson.D{{Key: "$unwind", Value: "$g"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$g"}}},
	}

	cur, err := r.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []group.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *MongoUserGroupRepository) Replace(ctx context.Context, ug group.UserGroup) (UpdateResult, error) {
	if ug.MemberIDs == nil {
		ug.MemberIDs = []string{}
	}
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": ug.ID}, ug)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Replaced: res.ModifiedCount, Unchanged: res.MatchedCount - res.ModifiedCount}, nil
}
