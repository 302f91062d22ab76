package cfbdata_client

import (
	"github.com/mcdev12/pick6/go/clients"
)

// CFBDataClient talks to the CollegeFootballData API, the game results feed
// behind standings and the game loader.
type CFBDataClient struct {
	*clients.BaseClient
}

func NewCFBDataClient(apiKey string) *CFBDataClient {
	client := &CFBDataClient{
		BaseClient: clients.NewBaseClient(BaseURL),
	}

	client.SetHeader(JsonHeader, JsonContentType)
	if apiKey != "" {
		client.SetHeader(AuthHeader, "Bearer "+apiKey)
	}

	return client
}
