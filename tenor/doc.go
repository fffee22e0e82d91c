// Package tenor provides a client for the Tenor v2 media search API.
//
// Tenor serves GIFs, stickers and short clips. This package wraps its read-only
// endpoints with typed parameters and typed responses. Every call is a single
// HTTP GET; there is no retry, caching or pagination logic.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := tenor.NewClient(
//		"your-api-key",
//		tenor.WithClientKey("my-app"),
//		tenor.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.SearchByQuery(ctx, "excited", &tenor.SearchParameters{
//		FilterParameters: tenor.FilterParameters{Limit: tenor.Int(8)},
//	})
//
// Pass results.Next as Pos on the following call to fetch the next page.
//
// # Parameters
//
// Query parameters are strings on the wire and stay strings here. Use Bool and
// Int to produce the exact forms the API expects. Enumerated values such as
// ContentFilterHigh are provided as constants but are not validated locally;
// the service rejects invalid values.
//
// # Error Handling
//
// When the service reports a failure in the response body, the call returns an
// *APIError carrying the upstream code, message and, when present, status and
// details:
//
//	var apiErr *tenor.APIError
//	if errors.As(err, &apiErr) {
//		if apiErr.IsInvalidArgument() {
//			// Handle bad parameters
//		}
//	}
//
// A non-2xx response without an error body is returned as *HTTPError.
package tenor
