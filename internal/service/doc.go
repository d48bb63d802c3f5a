// Package service orchestrates scrapes: it fetches profiles through the
// athlete client, snapshots them, persists a record per scrape and announces
// each one to subscribers.
package service
