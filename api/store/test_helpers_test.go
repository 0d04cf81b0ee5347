/* test_helpers_test.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// newMockedStore creates a Store whose collections all point at the mocked mtest collection
func newMockedStore(mt *mtest.T) *Store {
	return &Store{
		Client:     mt.Client,
		Database:   mt.DB,
		Tournament: "test_tournament",
		Collections: Collections{
			Players:  mt.Coll,
			Matches:  mt.Coll,
			Counters: mt.Coll,
		},
	}
}

func playerDoc(id int64, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "tournament", Value: "test_tournament"},
		{Key: "name", Value: name},
	}
}

func matchDoc(winner, loser int64) bson.D {
	return bson.D{
		{Key: "tournament", Value: "test_tournament"},
		{Key: "winner", Value: winner},
		{Key: "loser", Value: loser},
	}
}
