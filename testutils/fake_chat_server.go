package testutils

import (
	"net/http"
	"net/http/httptest"
)

// FakeChatReply is what the fake completion endpoint always says.
const FakeChatReply = "Scoreboard says otherwise, champ."

// NewFakeChatServer stands in for the Anthropic messages endpoint. It
// answers every POST with a fixed single-block text response.
func NewFakeChatServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("x-api-key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"content": [
				{"type": "text", "text": "` + FakeChatReply + `"}
			]
		}`))
	}))
}
