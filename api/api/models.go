/* models.go
 * This file contain the structs that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import "swiss-tournament/api/shared"

// PairingReport is the result of a pairing request. Unmatched lists the players, in rank order, that did not get an
// opponent. It is only ever non-empty when rematches are avoided
type PairingReport struct {
	Pairings  []shared.Pairing  `json:"pairings"`
	Unmatched []shared.Standing `json:"unmatched,omitempty"`
}

// Complete reports whether every player was paired
func (r PairingReport) Complete() bool {
	return len(r.Unmatched) == 0
}
