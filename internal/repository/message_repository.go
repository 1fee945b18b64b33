package repository

import (
	"context"

	"chatter-api/internal/domain/message"
	"chatter-api/internal/domain/user"
	"chatter-api/pkg/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// senderField is where the $lookup stage puts the joined sender.
const senderField = "sender"

type MongoMessageRepository struct {
	c *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &MongoMessageRepository{c: db.Collection(database.TableMessage)}
}

func (r *MongoMessageRepository) Create(ctx context.Context, m *message.Message) (string, error) {
	m.ID = uuid.NewString()
	if _, err := r.c.InsertOne(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

func (r *MongoMessageRepository) Received(ctx context.Context, receiverID string) ([]message.WithSender, error) {
	return r.withSenders(ctx, bson.M{"receiver_id": receiverID})
}

func (r *MongoMessageRepository) Conversation(ctx context.Context, a, b string) ([]message.WithSender, error) {
	return r.withSenders(ctx, bson.M{"$or": bson.A{
		bson.M{"receiver_id": a, "sender_id": b},
		bson.M{"receiver_id": b, "sender_id": a},
	}})
}

func (r *MongoMessageRepository) withSenders(ctx context.Context, filter bson.M) ([]message.WithSender, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "date_created", Value: 1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         database.TableUser,
			"localField":   "sender_id",
			"foreignField": "_id",
			"as":           senderField,
		}}},
	}

	cur, err := r.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []message.WithSender{}
	for cur.Next(ctx) {
		var m message.Message
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		// the joined array lands in the passthrough map; pull it back out
		delete(m.Extra, senderField)
		if len(m.Extra) == 0 {
			m.Extra = nil
		}

		var joined struct {
			Sender []user.User `bson:"sender"`
		}
		if err := cur.Decode(&joined); err != nil {
			return nil, err
		}

		row := message.WithSender{Message: m}
		if len(joined.Sender) > 0 {
			row.Sender = &joined.Sender[0]
		}
		out = append(out, row)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoMessageRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoMessageRepository) DeleteFromSender(ctx context.Context, receiverID, senderID string) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.M{"receiver_id": receiverID, "sender_id": senderID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
