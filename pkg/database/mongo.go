package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chatter-api/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Table names. They keep the tbl_ prefix the existing data was written with.
const (
	TableUser      = "tbl_User"
	TableGroup     = "tbl_Group"
	TableUserGroup = "tbl_UserGroup"
	TableMessage   = "tbl_Message"
)

// Mongo owns the single client shared by every repository.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	timeout := time.Duration(cfg.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		// passthrough sub-documents decode as maps so they render as JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Mongo{Client: client, DB: client.Database(cfg.Database)}, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the secondary indexes the queries rely on. It is
// idempotent; creating an index that already exists is a no-op in Mongo.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if _, err := db.Collection(TableMessage).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "receiver_id", Value: 1}},
			Options: options.Index().SetName("idx_message_receiver_id"),
		},
		{
			Keys:    bson.D{{Key: "receiver_id", Value: 1}, {Key: "sender_id", Value: 1}, {Key: "date_created", Value: 1}},
			Options: options.Index().SetName("idx_message_receiver_sender_created"),
		},
	}); err != nil {
		problems = append(problems, TableMessage+": "+err.Error())
	}

	if _, err := db.Collection(TableUserGroup).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}},
			Options: options.Index().SetName("idx_usergroup_group_id"),
		},
		{
			Keys:    bson.D{{Key: "member_ids", Value: 1}},
			Options: options.Index().SetName("idx_usergroup_member_ids"),
		},
	}); err != nil {
		problems = append(problems, TableUserGroup+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
