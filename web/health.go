/* health.go
 * Contains the health endpoint handler. Hosting platforms that expect a bound
 * HTTP port probe this to decide whether the bot process is live
 */

package web

import (
	"encoding/json"
	"log"
	"net/http"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
}

// Server is the HTTP server that answers health probes
type Server struct{}

type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler answers GET /healthz with a static ok body
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthResponse{Status: "ok"}); err != nil {
		log.Println("failed to encode health response:", err)
	}
}
