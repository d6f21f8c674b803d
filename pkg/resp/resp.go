package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse сериализует data в JSON и пишет его в ответ
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Println("write json response:", err)
	}
}
