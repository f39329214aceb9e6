// Package analytics keeps the engagement audit log in MongoDB.
package analytics

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

const (
	clicksCollection = "banner_clicks"
	viewsCollection  = "article_views"
)

var _ newsportal.EventRecorder = (*Store)(nil)

type Store struct {
	client *mongo.Client
	clicks *mongo.Collection
	views  *mongo.Collection
}

// Connect dials MongoDB and verifies the connection.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

func New(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		client: client,
		clicks: db.Collection(clicksCollection),
		views:  db.Collection(viewsCollection),
	}
}

// EnsureIndexes creates the lookup indexes used by RecentClicks and view reports.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.clicks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "bannerId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "position", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create click indexes: %w", err)
	}

	_, err = s.views.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "articleId", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create view indexes: %w", err)
	}

	return nil
}

type clickDocument struct {
	BannerID  string    `bson:"bannerId"`
	Position  string    `bson:"position,omitempty"`
	UserAgent string    `bson:"userAgent,omitempty"`
	Referrer  string    `bson:"referrer,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

type viewDocument struct {
	ArticleID string    `bson:"articleId"`
	SessionID string    `bson:"sessionId,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (s *Store) RecordClick(ctx context.Context, record newsportal.ClickRecord) error {
	doc := clickDocument{
		BannerID:  record.BannerID,
		Position:  record.Position,
		UserAgent: record.UserAgent,
		Referrer:  record.Referrer,
		Timestamp: record.Timestamp.UTC(),
	}

	if _, err := s.clicks.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

func (s *Store) RecordView(ctx context.Context, event newsportal.ViewEvent) error {
	doc := viewDocument{
		ArticleID: event.ArticleID,
		SessionID: event.SessionID,
		Timestamp: event.Timestamp.UTC(),
	}

	if _, err := s.views.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert view: %w", err)
	}
	return nil
}

// RecentClicks returns the newest click records of a banner.
func (s *Store) RecentClicks(ctx context.Context, bannerID string, limit int) ([]newsportal.ClickRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.clicks.Find(ctx, bson.M{"bannerId": bannerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find clicks: %w", err)
	}
	defer cur.Close(ctx)

	var docs []clickDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clicks: %w", err)
	}

	result := make([]newsportal.ClickRecord, len(docs))
	for i, d := range docs {
		result[i] = newsportal.ClickRecord{
			BannerID:  d.BannerID,
			Position:  d.Position,
			UserAgent: d.UserAgent,
			Referrer:  d.Referrer,
			Timestamp: d.Timestamp,
		}
	}

	return result, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
