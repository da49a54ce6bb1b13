package model

// Package model defines the data-transfer schema for the remote confectionery
// catalog: the per-item record, the response document, and the predicates the
// rest of the app uses to decide what is worth showing. Structures are designed
// for direct binding in the UI and tolerant JSON decoding.
