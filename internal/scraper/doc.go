// Package scraper fetches a day's grid document from the MLB gameday service.
//
// The scraper package issues a single GET per date, with no retries, and hands
// the body to the gameday package to collect and trim the game records. Any
// transport failure or non-2xx response is reported as a *FetchError naming
// the URL.
package scraper
