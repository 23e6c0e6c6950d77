package staticcache

import (
	"math/rand"
	"net/http"
	"strconv"
)

// handleDice answers /d20 with a random roll between 1 and 20
// inclusive.
func (s *Server) handleDice(w http.ResponseWriter, r *http.Request) {
	roll := rand.Intn(20) + 1
	sendResponse(w, http.StatusOK, "text/plain", []byte(strconv.Itoa(roll)))
}
