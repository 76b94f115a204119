package health

import "net/http"

// Handler reports process liveness. It deliberately checks nothing else:
// database or Redis trouble surfaces through the API endpoints themselves.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
