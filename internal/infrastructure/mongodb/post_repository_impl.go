package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahtasham/user-directory/internal/domain/entity"
	"github.com/ahtasham/user-directory/internal/domain/repository"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListWithAuthors joins each post with its author document via $lookup.
// $unwind drops posts whose author no longer exists, which keeps the single
// optional join semantics: a dangling reference simply yields no row.
func (r *PostRepository) ListWithAuthors(ctx context.Context) ([]entity.PostWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "author",
			"foreignField": "_id",
			"as":           "authorDetails",
		}}},
		bson.D{{Key: "$unwind", Value: "$authorDetails"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	posts := make([]entity.PostWithAuthor, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
