// Package zoom provides a client for the Zoom REST API.
//
// The client covers the two calls the recordings page needs:
//   - Acquiring an access token via the server-to-server
//     account-credentials OAuth grant
//   - Listing one page of a user's cloud recordings
//
// Authentication:
// Zoom's server-to-server apps use the account_credentials grant: the app's
// client id and secret authorize as HTTP Basic against the token endpoint,
// with the account id passed as a query parameter. The returned bearer token
// authorizes API calls. Tokens are deliberately not cached; each page render
// re-authenticates, keeping the client stateless.
//
// Example usage:
//
//	client, err := zoom.NewClient(accountID, clientID, clientSecret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := client.Token(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	meetings, err := client.ListUserRecordings(ctx, token, "me", 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
package zoom
