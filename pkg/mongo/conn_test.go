package mongo

import (
	"testing"
)

// mongo.Connect builds the client without dialing, so the cached client can
// be exercised with no server running.
func TestGetMongoClientReturnsSharedInstance(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	first := GetMongoClient()
	second := GetMongoClient()

	if first == nil {
		t.Fatal("expected a client, got nil")
	}
	if first != second {
		t.Error("expected repeated calls to return the same client instance")
	}
}
