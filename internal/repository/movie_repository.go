package repository

import (
	"context" // context carries request cancellation into every store call
	"errors"  // errors maps driver sentinels onto ErrMovieNotFound
	"fmt"     // fmt wraps driver errors with the failing operation

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/movie-catalog/internal/model"
)

// MovieStore is the set of store operations the movie handlers need.
type MovieStore interface {
	List(ctx context.Context) ([]model.Movie, error)
	Create(ctx context.Context, m *model.Movie) error
	FindOne(ctx context.Context, l Lookup) (*model.Movie, error)
	Update(ctx context.Context, l Lookup, u model.MovieUpdate) (*model.Movie, error)
	Delete(ctx context.Context, l Lookup) (*model.Movie, error)
}

// MovieRepo encapsulates all queries against the movie collection.
type MovieRepo struct {
	coll *mongo.Collection // coll is the movies collection on the shared client
}

// NewMovieRepo constructs a MovieRepo over the given collection.
func NewMovieRepo(coll *mongo.Collection) *MovieRepo {
	return &MovieRepo{coll: coll}
}

// List returns every movie in the collection's natural order.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	out := []model.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return out, nil
}

// Create inserts m.  On success m.ID holds the identifier assigned by the store.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = oid
	}
	return nil
}

// FindOne returns the first movie matching l or ErrMovieNotFound.
func (r *MovieRepo) FindOne(ctx context.Context, l Lookup) (*model.Movie, error) {
	var m model.Movie
	if err := r.coll.FindOne(ctx, l.Filter()).Decode(&m); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

// Update sets the present fields of u on the first movie matching l and
// returns the document as it is after the update.  An empty update returns
// the matching movie unchanged because MongoDB rejects an empty $set.
func (r *MovieRepo) Update(ctx context.Context, l Lookup, u model.MovieUpdate) (*model.Movie, error) {
	if u.IsEmpty() {
		return r.FindOne(ctx, l)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m model.Movie
	err := r.coll.FindOneAndUpdate(ctx, l.Filter(), bson.M{"$set": u.Fields()}, opts).Decode(&m)
	if err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

// Delete removes the first movie matching l in a single find-and-delete and
// returns the removed document.
func (r *MovieRepo) Delete(ctx context.Context, l Lookup) (*model.Movie, error) {
	var m model.Movie
	if err := r.coll.FindOneAndDelete(ctx, l.Filter()).Decode(&m); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrMovieNotFound
	}
	return err
}
