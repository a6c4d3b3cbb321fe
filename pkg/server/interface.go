/*
Package server implements msgpack IPC for vocabulary queries.

Clients write msgpack encoded requests to stdin and read one response per
request from stdout. Logs go to stderr so they never corrupt the stream.

# IPC

Every message is a map. A query names the input with "q":

	{"id": "req_001", "q": "th"}

The response always has the same shape, whatever the outcome:

	{"id": "req_001", "m": "th", "w": false, "u": 0,
	 "s": [{"w": "the", "u": 13, "r": 1}, {"w": "then", "u": 1, "r": 2}], "c": 2, "t": 12}

"m" is the matched prefix, "w" is set on exact hits and "u" carries the use
count of an exact hit. Suggestions are ranked from 1.

Other operations use "action":

	{"id": "s1", "action": "stats"}
	{"action": "health"}

A request without an id gets a generated one echoed back. Requests that
can't be understood get an error message with code 400. The server writes
{"status": "ready"} once at startup and stops at the end of input.
*/
package server

// Request is the union of all request shapes; Action selects the operation
// and defaults to "query".
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Query  string `msgpack:"q"`
}

// Suggestion - single ranked suggestion
type Suggestion struct {
	Word string `msgpack:"w"`
	Used uint   `msgpack:"u"`
	Rank uint16 `msgpack:"r"`
}

// QueryResponse - query response, same fields for hits, partials and misses
type QueryResponse struct {
	ID          string       `msgpack:"id"`
	Match       string       `msgpack:"m"`
	IsWord      bool         `msgpack:"w"`
	Used        uint         `msgpack:"u"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatsResponse - corpus and index statistics
type StatsResponse struct {
	ID          string `msgpack:"id"`
	Status      string `msgpack:"status"`
	Lines       int    `msgpack:"lines"`
	Tokens      int    `msgpack:"tokens"`
	Distinct    int    `msgpack:"distinct"`
	Words       int    `msgpack:"words"`
	Nodes       int    `msgpack:"nodes"`
	LongestWord string `msgpack:"longest_word"`
	Limit       int    `msgpack:"limit"`
}

// StatusResponse - readiness and health replies
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
