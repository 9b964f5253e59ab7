// Package mdblist provides an HTTP client for the MDBList search API as
// exposed through RapidAPI.
//
// # Overview
//
// Marquee issues exactly one kind of request: a title search.
//
//	client, err := mdblist.NewClient(mdblist.Options{APIKey: key})
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//	results, err := client.Search(ctx, "Matrix")
//
// # Request Handling
//
// Every request:
//   - Is a GET against the base URL with the query in the s parameter
//   - Sets Accept: application/json and User-Agent: marquee/0.1
//   - Carries the x-rapidapi-key and x-rapidapi-host headers
//   - Is bounded by the http.Client timeout (10s unless configured)
//
// # Error Handling
//
// Non-2xx responses surface as *StatusError so callers can inspect the code
// with errors.As. Transport and decode failures are wrapped with context:
//
//   - "execute request: dial tcp: connection refused"
//   - "api / returned status 403"
//   - "decode response: unexpected EOF"
//
// The client does not retry or cache. Callers decide what to do with failures.
package mdblist
