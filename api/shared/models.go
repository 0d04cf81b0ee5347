/* models.go
 * This file contain the structs that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

// Player is a registered competitor as stored in the db. IDs are assigned in registration order
type Player struct {
	ID   int64  `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Match is a single reported result. Matches are never edited once reported
type Match struct {
	WinnerID int64 `bson:"winner" json:"winner"`
	LoserID  int64 `bson:"loser" json:"loser"`
}

// Standing is one row of the standings table
type Standing struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
}

// Pairing is one match of the next round
type Pairing struct {
	ID1   int64  `json:"id1"`
	Name1 string `json:"name1"`
	ID2   int64  `json:"id2"`
	Name2 string `json:"name2"`
}

