package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post references its author by ObjectID; the author document lives in the
// users collection and is joined at query time.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PostWithAuthor is the aggregation result of a post joined with its author.
type PostWithAuthor struct {
	Post   `bson:",inline"`
	Joined User `bson:"authorDetails"`
}

// PostInfo is the post shape returned to clients, with the author embedded
// as a shaped user record instead of a bare reference.
type PostInfo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    UserInfo  `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Info shapes the joined post for API responses.
func (p *PostWithAuthor) Info() PostInfo {
	return PostInfo{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Joined.Info(),
		CreatedAt: p.CreatedAt,
	}
}
