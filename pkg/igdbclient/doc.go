// Package igdbclient provides the main entry point for creating IGDB API clients.
//
//	cli, err := igdbclient.NewWithClientCredentials(clientID, clientSecret)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	covers, err := cli.Covers().GetByGameID(ctx, 1942, 1)
//
// For full control pass an igdb.Config to New.
package igdbclient
