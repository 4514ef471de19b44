// Package igdb provides types, interfaces, and helpers for working with the
// IGDB v4 API.
//
// # Overview
//
// The igdb package defines the resource types (Game, Character, Platform,
// Cover, ...), the query builder, and the interfaces of the generic endpoint
// clients. A concrete implementation is provided by the igdbclient package,
// which wires configuration, transport and authentication. Most consumers
// import igdbclient to construct a client and then use the interfaces here.
//
//	cli, err := igdbclient.NewWithClientCredentials(clientID, clientSecret)
//	if err != nil { log.Fatal(err) }
//
//	games, err := cli.Games().GetByName(ctx, "Zelda", 10)
//
// # Queries
//
// Query assembles an Apicalypse query body. Clauses always render in the
// order fields, where, search, sort, limit, offset:
//
//	q := cli.CreateRequest().
//		AddField("name").
//		Contains("name", "Ast").
//		AddWhere("category", igdb.OpNotEqual, "0").
//		SortBy("name", igdb.Descending).
//		Limit(3)
//
//	// fields name; where name ~ *"Ast"* & category != 0; sort name desc; limit 3;
//
// Filter values are inserted verbatim. Quote string literals yourself and
// never pass unescaped user input.
//
// # Errors
//
// Every error wraps one of ErrTransport, ErrTimeout, ErrDecode, ErrNotFound,
// ErrInvalidArgument or ErrIO. Non-success responses carry a ResponseError.
// Helpers such as IsNotFound and IsTimeout make branching easy.
//
// # Media
//
// Covers, screenshots, artworks, character mug shots and platform logos can
// be downloaded with DownloadByID in any ImageSize.
package igdb
