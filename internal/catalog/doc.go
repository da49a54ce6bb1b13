package catalog

// Package catalog implements the client for the sysbird confectionery API.
// It issues the single fixed GET request, decodes the JSON feed, drops
// incomplete records, and classifies failures so the UI can tell a broken
// network from an empty catalog. No retries, no caching.
