package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ahtasham/user-directory/internal/domain/repository"
)

// listFilter translates a ListQuery search into a Mongo filter: a
// case-insensitive substring match over firstName, lastName and email, or
// match-all when no search text is given. The search text is quoted so it
// is treated literally, never as a regex.
func listFilter(q repository.ListQuery) bson.M {
	if q.Search == "" {
		return bson.M{}
	}
	re := bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{"firstName": re},
		bson.M{"lastName": re},
		bson.M{"email": re},
	}}
}

// listSort maps the requested field and direction onto a Mongo sort doc.
func listSort(q repository.ListQuery) bson.D {
	dir := 1
	if q.SortDesc {
		dir = -1
	}
	return bson.D{{Key: q.SortField, Value: dir}}
}
