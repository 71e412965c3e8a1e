package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

const collectionReadingEntries = "reading_entries"

type ReadingEntryRepository struct {
	col *mongo.Collection
}

func NewReadingEntryRepository(db *mongo.Database) *ReadingEntryRepository {
	return &ReadingEntryRepository{col: db.Collection(collectionReadingEntries)}
}

func (r *ReadingEntryRepository) Create(ctx context.Context, entry *domain.ReadingEntry) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *ReadingEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ReadingEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var entry domain.ReadingEntry
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ReadingEntryRepository) FindByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*domain.ReadingEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var entry domain.ReadingEntry
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "book_id": bookID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ReadingEntryRepository) ListByUser(ctx context.Context, userID uuid.UUID, status domain.ReadingStatus) ([]*domain.ReadingEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*domain.ReadingEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update replaces the whole aggregate so a lifecycle transition lands as one
// write: status, progress, dates, and review move together or not at all.
func (r *ReadingEntryRepository) Update(ctx context.Context, entry *domain.ReadingEntry) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *ReadingEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates the compound unique index guarding the one-entry-per
// (user, book) rule, plus the listing index.
func (r *ReadingEntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
