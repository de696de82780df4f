package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie represents one document in the `movies` collection.  The BSON keys
// keep the field names used by the existing collection.
//
// Fields:
//  ID       – native identifier assigned by MongoDB on insert.
//  MovieID  – domain identifier supplied by the client; not unique.
//  Title    – display title.
//  Released – free-form release date, empty when unknown.
//  Genre    – genre label, empty when unknown.
//  Rating   – numeric rating, 0 when unknown.
type Movie struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"` // movies._id
	MovieID  int                `bson:"Movie_ID"`      // movies.Movie_ID
	Title    string             `bson:"Title"`         // movies.Title
	Released string             `bson:"Released"`      // movies.Released
	Genre    string             `bson:"Genre"`         // movies.Genre
	Rating   float64            `bson:"Rating"`        // movies.Rating
}

// MovieUpdate lists which of the updatable fields are present in an update
// request.  A nil field is left untouched.  Only Title and Released can be
// changed after creation.
type MovieUpdate struct {
	Title    *string
	Released *string
}

// NewMovieUpdate keeps the non-empty values only.
func NewMovieUpdate(title, released string) MovieUpdate {
	var u MovieUpdate
	if title != "" {
		u.Title = &title
	}
	if released != "" {
		u.Released = &released
	}
	return u
}

// IsEmpty reports whether no field is present.
func (u MovieUpdate) IsEmpty() bool {
	return u.Title == nil && u.Released == nil
}

// Fields returns the present fields keyed by their stored name.
func (u MovieUpdate) Fields() map[string]any {
	out := map[string]any{}
	if u.Title != nil {
		out["Title"] = *u.Title
	}
	if u.Released != nil {
		out["Released"] = *u.Released
	}
	return out
}
