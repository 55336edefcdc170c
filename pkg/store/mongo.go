package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/mandala"
)

// MongoConfig configures a [MongoStore].
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore keeps one document per mandala, keyed by its id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	now    func() time.Time
}

type record struct {
	ID        string          `bson:"_id"`
	Doc       mandala.Mandala `bson:"doc"`
	UpdatedAt time.Time       `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and pings the primary.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "mandala"
	}
	if cfg.Collection == "" {
		cfg.Collection = "mandalas"
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "mongo connect")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "mongo ping")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		now:    time.Now,
	}, nil
}

// Load reads the document with the given id.
func (s *MongoStore) Load(ctx context.Context, id string) (*mandala.Mandala, error) {
	if err := errors.ValidateID(id); err != nil {
		return nil, err
	}
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "mandala %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "load %s", id)
	}
	m := rec.Doc
	m.ID = rec.ID
	m.Normalize()
	m.Refresh()
	return &m, nil
}

// Save upserts m.
func (s *MongoStore) Save(ctx context.Context, m *mandala.Mandala) error {
	if err := errors.ValidateID(m.ID); err != nil {
		return err
	}
	rec := record{ID: m.ID, Doc: *m, UpdatedAt: s.now()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "save %s", m.ID)
	}
	return nil
}

// WritePosition loads the document, applies the update, and replaces it.
func (s *MongoStore) WritePosition(ctx context.Context, upd mandala.PositionUpdate) error {
	return s.update(ctx, upd.MandalaID, upd.ItemID, func(m *mandala.Mandala) bool { return m.Apply(upd) })
}

// WriteContent loads the document, applies the update, and replaces it.
func (s *MongoStore) WriteContent(ctx context.Context, upd mandala.ContentUpdate) error {
	return s.update(ctx, upd.MandalaID, upd.ItemID, func(m *mandala.Mandala) bool { return m.ApplyContent(upd) })
}

func (s *MongoStore) update(ctx context.Context, id, itemID string, apply func(*mandala.Mandala) bool) error {
	m, err := s.Load(ctx, id)
	if err != nil {
		return err
	}
	if !apply(m) {
		return errors.New(errors.ErrCodeItemNotFound, "item %s not found in %s", itemID, id)
	}
	return s.Save(ctx, m)
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
