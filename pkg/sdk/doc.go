// Package sdk is the HTTP client for a running shelfwise API server.
//
// It speaks the server's JSON contract: /health, /recommendations and
// /batch_recommendations. For an in-process engine without a server,
// use the root shelfwise package instead.
//
//	client := sdk.New("http://localhost:5000")
//	recs, err := client.Recommend(ctx, "dystopian future", nil)
package sdk
