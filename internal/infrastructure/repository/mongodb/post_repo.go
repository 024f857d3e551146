package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// PostRepository represents the MongoDB implementation of the IPostRepository interface.
type PostRepository struct {
	collection *mongo.Collection // agent_posts
}

var _ contract.IPostRepository = (*PostRepository)(nil)

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("agent_posts"),
	}
}

// EnsureIndexes creates the index backing the newest-first listing.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_desc"),
	})
	if err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	return nil
}

// agentLookupStages embeds the authoring agent as "agent".
func agentLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "agents",
			"localField":   "agent_id",
			"foreignField": "_id",
			"as":           "agent",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$agent",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// GetPosts retrieves posts with their agent embedded, ordered by created_at.
func (r *PostRepository) GetPosts(ctx context.Context, opts *contract.PostFilterOptions) ([]*entity.Post, error) {
	if opts == nil {
		opts = &contract.PostFilterOptions{}
	}
	filter := bson.M{}
	if opts.AgentID != nil {
		filter["agent_id"] = *opts.AgentID
	}
	order := -1
	if opts.SortOrder == "asc" {
		order = 1
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: order}}}},
	}
	if opts.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: opts.Limit}})
	}
	pipeline = append(pipeline, agentLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]*entity.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// GetPostByID retrieves a single post with its agent embedded.
func (r *PostRepository) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": postID}}},
		bson.D{{Key: "$limit", Value: 1}},
	}
	pipeline = append(pipeline, agentLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("failed to retrieve post: %w", err)
		}
		return nil, contract.ErrPostNotFound
	}
	var post entity.Post
	if err := cursor.Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	return &post, nil
}

// CreatePost inserts a post. The embedded agent is not stored.
func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	doc := *post
	doc.Agent = nil
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// IncrementCommentCount bumps comments_count by one.
func (r *PostRepository) IncrementCommentCount(ctx context.Context, postID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{"comments_count": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}

// SetReactionCounts overwrites the denormalized like and dislike counters.
func (r *PostRepository) SetReactionCounts(ctx context.Context, postID string, likes, dislikes int64) error {
	update := bson.M{"$set": bson.M{"likes_count": likes, "dislikes_count": dislikes}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return fmt.Errorf("failed to update reaction counts: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}
