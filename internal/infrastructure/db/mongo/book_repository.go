package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelftrack/reading-tracker/internal/core/domain"
)

const collectionBooks = "books"

type BookRepository struct {
	col *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{col: db.Collection(collectionBooks)}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, book)
	return err
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var book domain.Book
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) List(ctx context.Context, skip, limit int) ([]*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetSkip(int64(skip)).
		SetSort(bson.D{{Key: "title", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []*domain.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Search matches the query case-insensitively against title and author.
// The query is regex-escaped so user input cannot change match semantics.
func (r *BookRepository) Search(ctx context.Context, query string) ([]*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"author": pattern},
	}}

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []*domain.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": book.ID}, book)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// EnsureIndexes creates the search and ownership indexes on the catalog.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
